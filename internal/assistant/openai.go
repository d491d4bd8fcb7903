package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient answers stateless messages with a single-turn chat completion.
// Each completion choice becomes one text item of the reply.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient is the constructor. baseURL may be empty to use the public API.
func NewOpenAIClient(apiKey, model, baseURL string, timeout time.Duration) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// MessageStateless sends text as the only user message; no history is kept.
func (c *OpenAIClient) MessageStateless(ctx context.Context, text string) (*MessageResponse, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
			return nil, &StatusError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
			return nil, &StatusError{StatusCode: reqErr.HTTPStatusCode, Body: reqErr.Error()}
		}
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}

	out := &MessageResponse{}
	for _, choice := range resp.Choices {
		out.Output.Generic = append(out.Output.Generic, TextItem(choice.Message.Content))
	}
	return out, nil
}
