package assistant

import (
	"context"
	"fmt"
)

// StubClient is a fake assistant for running the service without credentials.
type StubClient struct{}

// NewStubClient creates a fake client.
func NewStubClient() *StubClient {
	return &StubClient{}
}

// MessageStateless returns a canned reply that quotes the input.
func (s *StubClient) MessageStateless(ctx context.Context, text string) (*MessageResponse, error) {
	return TextReply(fmt.Sprintf("This is a placeholder answer to: %q. Please consult a medical professional.", text)), nil
}
