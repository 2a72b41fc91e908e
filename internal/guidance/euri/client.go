// Package euri provides an advisory generator backed by the EURI AI
// gateway. The gateway speaks the OpenAI chat completion wire format.
package euri

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/disasternav/disasternav/internal/guidance"
)

const (
	// ProviderName identifies this generator.
	ProviderName = "euri"

	// DefaultBaseURL is the EURI gateway endpoint.
	DefaultBaseURL = "https://api.euron.one/api/v1/euri/alpha"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.5-pro-exp-03-25"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 30 * time.Second

	// Low temperature keeps safety instructions consistent between runs.
	advisoryTemperature = 0.3
	advisoryMaxTokens   = 600
)

// ClientConfig holds configuration for the EURI client.
type ClientConfig struct {
	// APIKey authenticates against the gateway.
	APIKey string

	// Model overrides DefaultModel when set.
	Model string

	// BaseURL overrides DefaultBaseURL when set.
	BaseURL string

	// Timeout for individual API requests (default: 30s).
	Timeout time.Duration

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client generates advisories via the EURI gateway.
type Client struct {
	api    *openai.Client
	model  string
	logger zerolog.Logger
}

// NewClient creates a new EURI client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = baseURL
	apiCfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		api:    openai.NewClientWithConfig(apiCfg),
		model:  model,
		logger: cfg.Logger,
	}
}

// Name returns the generator name.
func (c *Client) Name() string {
	return ProviderName
}

// GenerateAdvisory requests a safety briefing from the gateway.
func (c *Client) GenerateAdvisory(ctx context.Context, req guidance.Request) (*guidance.Advisory, error) {
	prompt := guidance.BuildPrompt(req)

	c.logger.Debug().
		Str("model", c.model).
		Int("prompt_length", len(prompt)).
		Msg("requesting advisory completion")

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: advisoryTemperature,
		MaxTokens:   advisoryMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", guidance.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no completion choices returned", guidance.ErrGenerationFailed)
	}

	return &guidance.Advisory{
		Text:  resp.Choices[0].Message.Content,
		Model: c.model,
	}, nil
}
