package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// DefaultAnthropicModel is used when AnthropicConfig.Model is empty.
const DefaultAnthropicModel = "claude-sonnet-4-5-20250929"

// AnthropicConfig configures an AnthropicProvider.
type AnthropicConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int64
	Temperature float64
	Throttle    Throttle
}

// AnthropicProvider implements Provider against the Anthropic Messages API.
type AnthropicProvider struct {
	cfg      AnthropicConfig
	client   anthropic.Client
	throttle Throttle
}

var _ Provider = (*AnthropicProvider)(nil)

// NewAnthropicProvider constructs a Provider backed by the official
// Anthropic SDK. A nil Throttle defaults to NoThrottle.
func NewAnthropicProvider(cfg AnthropicConfig) *AnthropicProvider {
	if cfg.Model == "" {
		cfg.Model = DefaultAnthropicModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	throttle := cfg.Throttle
	if throttle == nil {
		throttle = NoThrottle{}
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &AnthropicProvider{
		cfg:      cfg,
		client:   anthropic.NewClient(opts...),
		throttle: throttle,
	}
}

// Generate sends prompt as a single user message and returns the first
// text block of the response.
func (p *AnthropicProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if err := p.throttle.Wait(ctx); err != nil {
		return "", fmt.Errorf("llm: throttle wait: %w", err)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.cfg.Model),
		MaxTokens: p.cfg.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if p.cfg.Temperature > 0 {
		params.Temperature = param.NewOpt(p.cfg.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("llm: anthropic request failed: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("llm: anthropic response contained no text block")
}
