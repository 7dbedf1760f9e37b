package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultDreamListLimit caps a single dream list page.
const DefaultDreamListLimit = 24

// MinImagePromptLength is the shortest description worth sending to the
// image model.
const MinImagePromptLength = 10

// Dream is one journal entry. It always belongs to exactly one user.
type Dream struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Date           time.Time
	Description    string
	Tags           []string
	Emotions       []string
	Interpretation *AIInterpretation
	ImageURL       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Interpreted reports whether an AI interpretation is attached.
func (d *Dream) Interpreted() bool {
	return d.Interpretation != nil
}

// Visualized reports whether a generated image is attached.
func (d *Dream) Visualized() bool {
	return d.ImageURL != nil && *d.ImageURL != ""
}

// DreamFields holds the user-editable fields written on create and update.
type DreamFields struct {
	Title       string
	Date        time.Time
	Description string
	Tags        []string
	Emotions    []string
}

// DreamFilter narrows a dream listing.
type DreamFilter struct {
	// Query is matched case-insensitively against title or description.
	Query string
	Limit int
}

// DreamSymbol pairs a symbol found in a dream with its meaning.
type DreamSymbol struct {
	Symbol  string `json:"symbol"`
	Meaning string `json:"meaning"`
}

// AIInterpretation is the structured result of a dream analysis.
type AIInterpretation struct {
	OverallMeaning string        `json:"overallMeaning"`
	Symbols        []DreamSymbol `json:"symbols"`
	EmotionalTone  string        `json:"emotionalTone"`
}

// Validate reports whether the interpretation carries every required field.
func (a AIInterpretation) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(a.OverallMeaning) == "" {
		errs = append(errs, FieldError{Field: "overallMeaning", Message: "required"})
	}
	if strings.TrimSpace(a.EmotionalTone) == "" {
		errs = append(errs, FieldError{Field: "emotionalTone", Message: "required"})
	}
	for _, s := range a.Symbols {
		if strings.TrimSpace(s.Symbol) == "" {
			errs = append(errs, FieldError{Field: "symbols", Message: "symbol name is required"})
			break
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// NormalizeTags splits a comma-separated tag string, trims each tag and drops
// empty ones. Duplicates (case-insensitive) keep their first spelling.
func NormalizeTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}

// Authorize checks that a record belongs to the caller. A mismatch is
// reported as ErrNotFound so foreign records stay invisible.
func Authorize(ownerID, recordOwnerID uuid.UUID) error {
	if ownerID == uuid.Nil || ownerID != recordOwnerID {
		return ErrNotFound
	}
	return nil
}
