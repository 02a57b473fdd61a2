package llm

import (
	"context"
	"fmt"
)

// FakeProvider is a deterministic in-memory Provider for tests. Responses
// are keyed by exact prompt match; Default is returned otherwise.
type FakeProvider struct {
	Responses map[string]string
	Default   string
	Err       error
}

var _ Provider = (*FakeProvider)(nil)

// NewFakeProvider returns a FakeProvider that always answers with response.
func NewFakeProvider(response string) *FakeProvider {
	return &FakeProvider{Default: response}
}

// Generate returns the configured response for prompt, or Default.
func (p *FakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	if resp, ok := p.Responses[prompt]; ok {
		return resp, nil
	}
	if p.Default != "" {
		return p.Default, nil
	}
	return "", fmt.Errorf("llm: fake provider has no response configured for prompt")
}
