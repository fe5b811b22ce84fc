package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// TranscriptFetcher turns a video URL into plain transcript text.
type TranscriptFetcher interface {
	Transcript(ctx context.Context, videoURL string) (string, error)
}

// maxTranscriptResponseBytes bounds how much of a provider response is
// read; transcripts are large but not unbounded.
const maxTranscriptResponseBytes = 16 << 20

// SupadataClient calls the hosted Supadata transcription API. It asks
// for plain text (not timestamped chunks) in auto mode with an English
// preference, matching what the summarizer expects.
type SupadataClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  zerolog.Logger
}

var _ TranscriptFetcher = (*SupadataClient)(nil)

// NewSupadataClient creates a reusable transcript client.
func NewSupadataClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *SupadataClient {
	return &SupadataClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Transcript fetches the transcript for videoURL. Every failure mode,
// transport errors, API errors, and unrecognized response shapes,
// comes back as a *FetchError; nothing unstructured escapes.
func (c *SupadataClient) Transcript(ctx context.Context, videoURL string) (string, error) {
	query := url.Values{}
	query.Set("url", videoURL)
	query.Set("lang", "en")
	query.Set("text", "true")
	query.Set("mode", "auto")
	endpoint := c.baseURL + "/transcript?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &FetchError{URL: videoURL, Err: err}
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &FetchError{URL: videoURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTranscriptResponseBytes))
	if err != nil {
		return "", &FetchError{URL: videoURL, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: videoURL, Err: apiError(resp.Status, body)}
	}

	text, lang, err := extractTranscript(body)
	if err != nil {
		return "", &FetchError{URL: videoURL, Err: err}
	}

	c.logger.Info().
		Str("url", videoURL).
		Int("chars", utf8.RuneCountInString(text)).
		Str("lang", lang).
		Msg("transcript retrieved")
	return text, nil
}

// apiError condenses a non-200 provider response into one error.
func apiError(status string, body []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return fmt.Errorf("supadata %s: %s", status, payload.Message)
		}
		if payload.Error != "" {
			return fmt.Errorf("supadata %s: %s", status, payload.Error)
		}
	}
	return fmt.Errorf("supadata %s", status)
}

// fallbackFields are tried, in order, when the response is an object
// without the usual content field.
var fallbackFields = []string{"text", "transcript", "data", "result"}

// extractTranscript normalizes the provider's response shapes into
// transcript text. Strategies are tried in order: an object carrying
// "content" (with an optional detected-language tag), a bare JSON
// string, then the fallback field names.
func extractTranscript(body []byte) (text, lang string, err error) {
	var shaped struct {
		Content string `json:"content"`
		Lang    string `json:"lang"`
	}
	if err := json.Unmarshal(body, &shaped); err == nil && shaped.Content != "" {
		return shaped.Content, shaped.Lang, nil
	}

	var plain string
	if err := json.Unmarshal(body, &plain); err == nil && plain != "" {
		return plain, "", nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, name := range fallbackFields {
			raw, ok := fields[name]
			if !ok {
				continue
			}
			var value string
			if err := json.Unmarshal(raw, &value); err == nil && value != "" {
				return value, "", nil
			}
		}
	}

	return "", "", fmt.Errorf("unrecognized transcript response shape")
}
