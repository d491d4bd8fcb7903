package mediator

//go:generate mockgen -destination=./clients_mock_test.go -package=mediator -source=clients.go

import (
	"context"

	"healthai/internal/assistant"
)

// AssistantClient is the contract for the external assistant: one stateless text
// message in, one structured reply out. No session or conversation memory is
// created or read.
type AssistantClient interface {
	MessageStateless(ctx context.Context, text string) (*assistant.MessageResponse, error)
}

var (
	_ AssistantClient = (*assistant.WatsonClient)(nil)
	_ AssistantClient = (*assistant.OpenAIClient)(nil)
	_ AssistantClient = (*assistant.StubClient)(nil)
)
