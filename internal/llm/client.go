package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hirestream/hirestream/internal/config"
	ierr "github.com/hirestream/hirestream/internal/errors"
)

// Client is an abstraction over the LLM provider so services and tests can
// swap in their own implementation.
type Client interface {
	// GenerateJSON sends a text prompt and returns the raw JSON response body.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	// GenerateJSONFromFile sends a prompt together with a file attachment
	// (e.g. an uploaded PDF) and returns the raw JSON response body.
	GenerateJSONFromFile(ctx context.Context, prompt string, data []byte, mimeType string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

type geminiClient struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed client. Returns nil when the collaborator
// is disabled in config so callers can treat absence as "not configured".
func NewClient(ctx context.Context, cfg *config.Configuration) (Client, error) {
	if !cfg.LLM.Enabled {
		return nil, nil
	}

	if cfg.LLM.APIKey == "" {
		return nil, ierr.NewError("llm api key is required").
			WithHint("Set HIRESTREAM_LLM_API_KEY or disable the llm section").
			Mark(ierr.ErrValidation)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.LLM.APIKey))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to create llm client").
			Mark(ierr.ErrHTTPClient)
	}

	return &geminiClient{
		client: client,
		model:  cfg.LLM.Model,
	}, nil
}

func (c *geminiClient) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	model := c.client.GenerativeModel(c.model)
	// Low temperature for consistent structured output.
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("The document analysis collaborator is unavailable").
			Mark(ierr.ErrHTTPClient)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	return cleanJSONBlock(text), nil
}

func (c *geminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, genai.Text(prompt))
}

func (c *geminiClient) GenerateJSONFromFile(ctx context.Context, prompt string, data []byte, mimeType string) (string, error) {
	return c.generate(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(prompt),
	)
}

func (c *geminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", ierr.NewError("no candidates in llm response").
			Mark(ierr.ErrHTTPClient)
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", ierr.NewError("no content in llm response").
			Mark(ierr.ErrHTTPClient)
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", ierr.NewError("no text parts in llm response").
			Mark(ierr.ErrHTTPClient)
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers the model sometimes
// emits despite the JSON response MIME type.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
