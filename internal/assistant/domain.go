package assistant

import (
	"fmt"
	"strings"
)

// ResponseTypeText is the only reply item kind the mediator reads.
const ResponseTypeText = "text"

// MessageInput is the user input of a stateless message.
type MessageInput struct {
	MessageType string `json:"message_type"`
	Text        string `json:"text"`
}

// MessageRequest is the body of a stateless message call.
type MessageRequest struct {
	Input MessageInput `json:"input"`
}

// MessageResponse is the structured reply of a stateless message call.
type MessageResponse struct {
	Output MessageOutput `json:"output"`
}

// MessageOutput holds the response items produced by the assistant.
type MessageOutput struct {
	Generic []GenericItem `json:"generic"`
}

// GenericItem is one entry of the reply. Only the kind and the text are decoded;
// Text is nil when the item has no text field at all.
type GenericItem struct {
	ResponseType string  `json:"response_type,omitempty"`
	Text         *string `json:"text,omitempty"`
}

// TextItem builds a text item.
func TextItem(text string) GenericItem {
	return GenericItem{ResponseType: ResponseTypeText, Text: &text}
}

// IsText reports whether the item is a text item that carries a text field.
// Replies that omit response_type but set text count as text items.
func (g GenericItem) IsText() bool {
	if g.Text == nil {
		return false
	}
	return g.ResponseType == "" || g.ResponseType == ResponseTypeText
}

// FirstText returns the text of the first text item, skipping items of other kinds
// and text items without a text field.
func (r *MessageResponse) FirstText() (string, bool) {
	if r == nil {
		return "", false
	}
	for _, item := range r.Output.Generic {
		if item.IsText() {
			return *item.Text, true
		}
	}
	return "", false
}

// Kinds lists the response_type of every item, in reply order.
func (r *MessageResponse) Kinds() []string {
	if r == nil {
		return nil
	}
	kinds := make([]string, 0, len(r.Output.Generic))
	for _, item := range r.Output.Generic {
		kinds = append(kinds, item.ResponseType)
	}
	return kinds
}

// TextReply builds a reply holding a single text item.
func TextReply(text string) *MessageResponse {
	return &MessageResponse{
		Output: MessageOutput{
			Generic: []GenericItem{TextItem(text)},
		},
	}
}

// StatusError is returned when the assistant endpoint answers with a non-success status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("assistant returned non-2xx status: %d", e.StatusCode)
	}
	return fmt.Sprintf("assistant returned non-2xx status: %d: %s", e.StatusCode, body)
}
