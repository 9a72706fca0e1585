// Package genai wraps an OpenAI-compatible chat-completions endpoint behind
// the contract.TextGenerator boundary. OpenRouter, OpenAI, and Gemini's
// compatibility surface all satisfy this shape.
package genai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog/log"

	contractx "github.com/skillradar/agentcore/agent/contract"
)

type Config struct {
	BaseURL  string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey   string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model    string        `envconfig:"MODEL" split_words:"true" required:"true"`
	Timeout  time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL  string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName string        `envconfig:"SITE_NAME" split_words:"true"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: model is required", contractx.ErrValidation)
	}
	return nil
}

// Client implements contract.TextGenerator.
type Client struct {
	api   *openaisdk.Client
	model string
}

var _ contractx.TextGenerator = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.SiteURL != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.SiteURL))
	}
	if cfg.SiteName != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.SiteName))
	}

	api := openaisdk.NewClient(opts...)
	return &Client{
		api:   &api,
		model: strings.TrimSpace(cfg.Model),
	}, nil
}

// Generate performs a single completion call. No retries; the caller owns
// timeout and retry policy via ctx.
func (c *Client) Generate(ctx context.Context, prompt string, settings contractx.GenerationSettings) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt is empty", contractx.ErrValidation)
	}

	params := openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(c.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
	}
	if settings.Temperature > 0 {
		params.Temperature = openaisdk.Float(float64(settings.Temperature))
	}
	if settings.TopP > 0 {
		params.TopP = openaisdk.Float(float64(settings.TopP))
	}
	if settings.MaxOutputTokens > 0 {
		params.MaxTokens = openaisdk.Int(int64(settings.MaxOutputTokens))
	}
	if settings.TopK > 0 {
		// The chat-completions surface has no top_k parameter.
		log.Debug().Int("top_k", settings.TopK).Msg("genai: dropping unsupported top_k setting")
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("genai: completion call: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("genai: completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
