package dream

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 20000
	maxTags              = 30
	dateLayout           = "2006-01-02"

	// futureDateSlack lets a client east of UTC record "today" before UTC
	// has reached it.
	futureDateSlack = 24 * time.Hour
)

var earliestDreamDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// DreamInput is the user-editable part of a dream as submitted by a client.
// Tags is the raw comma-separated string.
type DreamInput struct {
	Title       string
	Date        string
	Description string
	Tags        string
	Emotions    []string
}

// Validate checks all fields and collects all errors.
func (i DreamInput) Validate() error {
	_, err := i.normalize()
	return err
}

// normalize validates the input and converts it to the persisted field set.
func (i DreamInput) normalize() (domain.DreamFields, error) {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	description := strings.TrimSpace(i.Description)
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else if utf8.RuneCountInString(description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 20000 characters"})
	}

	date, dateErr := parseDate(i.Date, time.Now())
	if dateErr != nil {
		errs = append(errs, *dateErr)
	}

	tags := domain.NormalizeTags(i.Tags)
	if len(tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 30 tags"})
	}

	emotions := make([]string, 0, len(i.Emotions))
	seen := make(map[string]struct{}, len(i.Emotions))
	for _, raw := range i.Emotions {
		e, ok := domain.CanonicalEmotion(raw)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "emotions", Message: "unknown emotion: " + strings.TrimSpace(raw)})
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		emotions = append(emotions, e)
	}

	if len(errs) > 0 {
		return domain.DreamFields{}, domain.NewValidationErrors(errs)
	}

	return domain.DreamFields{
		Title:       title,
		Date:        date,
		Description: description,
		Tags:        tags,
		Emotions:    emotions,
	}, nil
}

// parseDate accepts RFC 3339 timestamps and bare calendar dates (UTC
// midnight) between 1900-01-01 and now.
func parseDate(raw string, now time.Time) (time.Time, *domain.FieldError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, &domain.FieldError{Field: "date", Message: "required"}
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if t, err = time.Parse(dateLayout, raw); err != nil {
			return time.Time{}, &domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD or RFC 3339"}
		}
	}
	t = t.UTC()

	if t.Before(earliestDreamDate) || t.After(now.Add(futureDateSlack)) {
		return time.Time{}, &domain.FieldError{Field: "date", Message: "must be between 1900-01-01 and today"}
	}
	return t, nil
}
