package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultWatsonVersion is the API version date sent when none is configured.
const DefaultWatsonVersion = "2023-08-01"

// maxErrorBody caps how much of a failed response body is kept in a StatusError.
const maxErrorBody = 4 << 10

// WatsonClient sends stateless messages to a Watson Assistant v2 instance.
// It authenticates with HTTP basic auth using the "apikey" user, so there is no
// token exchange to manage.
type WatsonClient struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	assistantID string
	version     string
}

// NewWatsonClient is the constructor. A zero timeout leaves the HTTP client without
// a local deadline; callers still bound calls through the context.
func NewWatsonClient(baseURL, apiKey, assistantID, version string, timeout time.Duration) *WatsonClient {
	if version == "" {
		version = DefaultWatsonVersion
	}
	return &WatsonClient{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		assistantID: assistantID,
		version:     version,
	}
}

// MessageStateless sends one text message without creating a session.
func (c *WatsonClient) MessageStateless(ctx context.Context, text string) (*MessageResponse, error) {
	reqBody, err := json.Marshal(MessageRequest{
		Input: MessageInput{MessageType: "text", Text: text},
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal message request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/assistants/%s/message?version=%s",
		c.baseURL, url.PathEscape(c.assistantID), url.QueryEscape(c.version))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("could not create message http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("message request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var msgResp MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return nil, fmt.Errorf("could not decode message response: %w", err)
	}
	return &msgResp, nil
}
