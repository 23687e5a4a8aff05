// Package openai is a plain-text completion client for OpenAI-compatible
// chat completion endpoints.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/va6996/tripmate/log"
	"github.com/va6996/tripmate/plugins"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1/"
	DefaultModel   = "gpt-4o-mini"
)

// Client sends single-turn prompts to a chat completion endpoint.
type Client struct {
	Model  string
	client openai.Client
}

// Ensure Client satisfies LLMClient
var _ plugins.LLMClient = (*Client)(nil)

// NewClient creates a client. An empty baseURL targets OpenAI itself; any
// OpenAI-compatible server (vLLM, LM Studio, z.ai) works as well.
func NewClient(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		Model: model,
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
			option.WithMaxRetries(1),
		),
	}, nil
}

// GenerateContent sends prompt as one user message and returns the first choice.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	log.Debugf(ctx, "OpenAI: generating with %s", c.Model)

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(c.Model),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return completion.Choices[0].Message.Content, nil
}
