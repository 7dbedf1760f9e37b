// Package anthropic interprets dreams with Claude. It has no image
// capability; images always come from Gemini.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

type messenger interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Client is a dream interpreter backed by the Messages API.
type Client struct {
	messages messenger
	model    string
	log      *slog.Logger
}

// New creates a Claude interpreter.
func New(apiKey, model string, logger *slog.Logger) *Client {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return newClient(&client.Messages, model, logger)
}

func newClient(messages messenger, model string, logger *slog.Logger) *Client {
	return &Client{
		messages: messages,
		model:    model,
		log:      logger.With("adapter", "anthropic"),
	}
}

// Interpret returns a structured interpretation of the dream text.
func (c *Client) Interpret(ctx context.Context, dreamText string) (*domain.AIInterpretation, error) {
	msg, err := c.messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 2048,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(dreamText))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("claude interpret: %w: %w", domain.ErrAI, err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("claude interpret: %w: empty response", domain.ErrAI)
	}

	jsonStr, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return nil, fmt.Errorf("claude interpret: %w: %w", domain.ErrAI, err)
	}

	var interp domain.AIInterpretation
	if err := json.Unmarshal([]byte(jsonStr), &interp); err != nil {
		return nil, fmt.Errorf("claude interpret: %w: decode: %w", domain.ErrAI, err)
	}
	if err := interp.Validate(); err != nil {
		return nil, fmt.Errorf("claude interpret: %w: %w", domain.ErrAI, err)
	}

	c.log.DebugContext(ctx, "interpretation generated", slog.Int("symbols", len(interp.Symbols)))
	return &interp, nil
}

func buildPrompt(dreamText string) string {
	return fmt.Sprintf(`You are a dream interpreter. Analyze the following dream for its symbols, emotional tone, and potential meaning.

Dream:
%s

Output ONLY a valid JSON object matching this exact schema:
{
  "overallMeaning": "<a summary of the potential meaning of the dream>",
  "symbols": [
    {"symbol": "<a key symbol identified in the dream>", "meaning": "<its traditional or potential meaning>"}
  ],
  "emotionalTone": "<the dominant emotions detected in the dream text>"
}

Rules:
- List 1-6 symbols that actually appear in the dream
- Output ONLY the JSON, no markdown, no explanations`, dreamText)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
