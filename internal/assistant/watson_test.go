package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatsonClient_MessageStateless_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/assistants/assistant-abc/message", r.URL.Path)
		assert.Equal(t, "2023-08-01", r.URL.Query().Get("version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "apikey", user)
		assert.Equal(t, "key-123", pass)

		var body MessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "text", body.Input.MessageType)
		assert.Equal(t, "Symptoms: headache, fatigue", body.Input.Text)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"output":{"generic":[{"response_type":"text","text":"Possible flu"}]}}`))
	}))
	defer server.Close()

	c := NewWatsonClient(server.URL+"/", "key-123", "assistant-abc", "", 0)
	resp, err := c.MessageStateless(context.Background(), "Symptoms: headache, fatigue")

	require.NoError(t, err)
	text, ok := resp.FirstText()
	assert.True(t, ok)
	assert.Equal(t, "Possible flu", text)
}

func TestWatsonClient_MessageStateless_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized","code":401}`))
	}))
	defer server.Close()

	c := NewWatsonClient(server.URL, "bad-key", "assistant-abc", "2023-08-01", 0)
	_, err := c.MessageStateless(context.Background(), "hello")

	require.Error(t, err)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Contains(t, statusErr.Error(), "Unauthorized")
}

func TestWatsonClient_MessageStateless_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	c := NewWatsonClient(server.URL, "key", "assistant-abc", "", 0)
	_, err := c.MessageStateless(context.Background(), "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not decode message response")
}

func TestWatsonClient_MessageStateless_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewWatsonClient(server.URL, "key", "assistant-abc", "", 0)
	_, err := c.MessageStateless(context.Background(), "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "message request failed")
}

func TestMessageResponse_FirstText(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		want   string
		wantOK bool
	}{
		{"text first", `{"output":{"generic":[{"response_type":"text","text":"A"},{"response_type":"text","text":"B"}]}}`, "A", true},
		{"untyped text", `{"output":{"generic":[{"text":"Possible flu"}]}}`, "Possible flu", true},
		{"skips leading image", `{"output":{"generic":[{"response_type":"image","source":"x.png"},{"response_type":"text","text":"B"}]}}`, "B", true},
		{"empty generic", `{"output":{"generic":[]}}`, "", false},
		{"missing generic", `{"output":{}}`, "", false},
		{"missing output", `{}`, "", false},
		{"text kind without text field", `{"output":{"generic":[{"response_type":"text"}]}}`, "", false},
		{"skips text kind without text field", `{"output":{"generic":[{"response_type":"text"},{"response_type":"text","text":"real answer"}]}}`, "real answer", true},
		{"empty text is still text", `{"output":{"generic":[{"response_type":"text","text":""}]}}`, "", true},
		{"only options", `{"output":{"generic":[{"response_type":"option","title":"Pick one"}]}}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp MessageResponse
			require.NoError(t, json.Unmarshal([]byte(tt.reply), &resp))
			got, ok := resp.FirstText()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	var nilResp *MessageResponse
	_, ok := nilResp.FirstText()
	assert.False(t, ok)
}

func TestMessageResponse_Kinds(t *testing.T) {
	var resp MessageResponse
	require.NoError(t, json.Unmarshal([]byte(`{"output":{"generic":[{"response_type":"image"},{"response_type":"text"}]}}`), &resp))

	assert.Equal(t, []string{"image", "text"}, resp.Kinds())

	var nilResp *MessageResponse
	assert.Nil(t, nilResp.Kinds())
}
