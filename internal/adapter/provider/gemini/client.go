// Package gemini calls Google Gemini for dream interpretations and images.
package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

// generator is the slice of genai.Models this package uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client interprets dreams and renders images with Gemini models.
type Client struct {
	models         generator
	interpretModel string
	imageModel     string
	log            *slog.Logger
}

// New creates a Gemini client for the Gemini Developer API.
func New(ctx context.Context, apiKey, interpretModel, imageModel string, logger *slog.Logger) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}

	return newClient(gc.Models, interpretModel, imageModel, logger), nil
}

func newClient(models generator, interpretModel, imageModel string, logger *slog.Logger) *Client {
	return &Client{
		models:         models,
		interpretModel: interpretModel,
		imageModel:     imageModel,
		log:            logger.With("adapter", "gemini"),
	}
}

// interpretationSchema constrains the model to the AIInterpretation JSON shape.
var interpretationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"overallMeaning": {
			Type:        genai.TypeString,
			Description: "A summary of the potential meaning of the dream.",
		},
		"symbols": {
			Type:        genai.TypeArray,
			Description: "Key symbols identified in the dream and their meanings.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol":  {Type: genai.TypeString, Description: "A key symbol identified in the dream."},
					"meaning": {Type: genai.TypeString, Description: "The traditional or potential meaning of the symbol."},
				},
				Required: []string{"symbol", "meaning"},
			},
		},
		"emotionalTone": {
			Type:        genai.TypeString,
			Description: "The dominant emotions detected in the dream text.",
		},
	},
	Required: []string{"overallMeaning", "symbols", "emotionalTone"},
}

// Interpret asks the model for a structured interpretation of the dream text.
// Transport failures and unusable answers are reported as domain.ErrAI.
func (c *Client) Interpret(ctx context.Context, dreamText string) (*domain.AIInterpretation, error) {
	resp, err := c.models.GenerateContent(ctx, c.interpretModel, genai.Text(InterpretPrompt(dreamText)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   interpretationSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini interpret: %w: %w", domain.ErrAI, err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("gemini interpret: %w: empty response", domain.ErrAI)
	}

	var interp domain.AIInterpretation
	if err := json.Unmarshal([]byte(text), &interp); err != nil {
		return nil, fmt.Errorf("gemini interpret: %w: decode: %w", domain.ErrAI, err)
	}
	if err := interp.Validate(); err != nil {
		return nil, fmt.Errorf("gemini interpret: %w: %w", domain.ErrAI, err)
	}

	c.log.DebugContext(ctx, "interpretation generated", slog.Int("symbols", len(interp.Symbols)))
	return &interp, nil
}

// GenerateImage renders the dream and returns the image as a data URI.
func (c *Client) GenerateImage(ctx context.Context, dreamText string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.imageModel, genai.Text(ImagePrompt(dreamText)), &genai.GenerateContentConfig{
		// The image preview model refuses IMAGE-only requests.
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return "", fmt.Errorf("gemini image: %w: %w", domain.ErrAI, err)
	}

	for _, part := range parts(resp) {
		if part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mime := part.InlineData.MIMEType
		if !strings.HasPrefix(mime, "image/") {
			continue
		}
		return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
	}

	c.log.WarnContext(ctx, "image model returned no image", slog.String("text", responseText(resp)))
	return "", fmt.Errorf("gemini image: %w: no image in response", domain.ErrAI)
}

func parts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, part := range parts(resp) {
		if part.Text != "" && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}
