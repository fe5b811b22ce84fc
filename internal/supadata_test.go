package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranscriptServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transcript", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		q := r.URL.Query()
		assert.Equal(t, "en", q.Get("lang"))
		assert.Equal(t, "true", q.Get("text"))
		assert.Equal(t, "auto", q.Get("mode"))
		assert.NotEmpty(t, q.Get("url"))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestTranscriptResponseShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"object with content and lang", `{"content":"hello world","lang":"en"}`, "hello world"},
		{"object with content only", `{"content":"hola"}`, "hola"},
		{"bare string", `"just text"`, "just text"},
		{"fallback text field", `{"text":"from text"}`, "from text"},
		{"fallback transcript field", `{"transcript":"from transcript"}`, "from transcript"},
		{"fallback data field", `{"data":"from data"}`, "from data"},
		{"fallback result field", `{"result":"from result"}`, "from result"},
		{"text preferred over later fallbacks", `{"result":"late","text":"early"}`, "early"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTranscriptServer(t, http.StatusOK, tt.body)
			defer server.Close()

			client := NewSupadataClient(server.URL, "test-key", time.Second, zerolog.Nop())
			got, err := client.Transcript(context.Background(), "https://youtu.be/abc")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranscriptUnrecognizedShape(t *testing.T) {
	t.Parallel()

	server := newTranscriptServer(t, http.StatusOK, `{"chunks":[{"offset":0}]}`)
	defer server.Close()

	client := NewSupadataClient(server.URL, "test-key", time.Second, zerolog.Nop())
	_, err := client.Transcript(context.Background(), "https://youtu.be/abc")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "unrecognized transcript response shape")
}

func TestTranscriptAPIError(t *testing.T) {
	t.Parallel()

	server := newTranscriptServer(t, http.StatusUnauthorized, `{"error":"invalid-api-key","message":"Invalid API key"}`)
	defer server.Close()

	client := NewSupadataClient(server.URL, "test-key", time.Second, zerolog.Nop())
	_, err := client.Transcript(context.Background(), "https://youtu.be/abc")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "Invalid API key")
	assert.Equal(t, "https://youtu.be/abc", fetchErr.URL)
}

func TestTranscriptTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewSupadataClient(server.URL, "test-key", time.Second, zerolog.Nop())
	_, err := client.Transcript(context.Background(), "https://youtu.be/abc")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
