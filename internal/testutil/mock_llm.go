package testutil

import (
	"context"

	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/llm"
)

var _ llm.Client = (*MockLLMClient)(nil)

// MockLLMClient is a scripted LLM client for tests. Set Response or Err
// before use; Prompts records everything sent.
type MockLLMClient struct {
	Response string
	Err      error
	Prompts  []string
}

func NewMockLLMClient() *MockLLMClient {
	return &MockLLMClient{}
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response == "" {
		return "", ierr.NewError("no scripted response").
			Mark(ierr.ErrHTTPClient)
	}
	return m.Response, nil
}

func (m *MockLLMClient) GenerateJSONFromFile(ctx context.Context, prompt string, data []byte, mimeType string) (string, error) {
	return m.GenerateJSON(ctx, prompt)
}

func (m *MockLLMClient) Close() error {
	return nil
}
