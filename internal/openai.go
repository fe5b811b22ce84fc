package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"github.com/rs/zerolog"
)

// ChatClient defines the interface for language-model operations
type ChatClient interface {
	CreateStructuredCompletion(ctx context.Context, model, instruction, content string) (string, error)
}

// OpenAIClient wraps the official OpenAI Go SDK
type OpenAIClient struct {
	client *openai.Client
}

var _ ChatClient = (*OpenAIClient)(nil)

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{client: &client}
}

// summarySchema constrains the model to a single text field.
var summarySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text": map[string]any{"type": "string"},
	},
	"required":             []string{"text"},
	"additionalProperties": false,
}

// CreateStructuredCompletion sends instruction as the system message
// and content as the user message, asking for a response conforming to
// the single-field summary schema. Returns the raw JSON string.
func (c *OpenAIClient) CreateStructuredCompletion(ctx context.Context, model, instruction, content string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(instruction),
			openai.UserMessage(content),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "summary",
					Strict: openai.Bool(true),
					Schema: summarySchema,
				},
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

// Summarizer turns transcripts into structured summaries via a chat
// model, applying input truncation before anything leaves the process.
type Summarizer struct {
	client  ChatClient
	model   string
	timeout time.Duration
	logger  zerolog.Logger
}

// NewSummarizer creates a new summarizer on top of a chat client.
func NewSummarizer(client ChatClient, model string, timeout time.Duration, logger zerolog.Logger) *Summarizer {
	return &Summarizer{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// summaryPayload mirrors the schema requested from the model.
type summaryPayload struct {
	Text string `json:"text"`
}

// Summarize sends the transcript with the instruction prompt and
// extracts the text field of the structured response. Transcripts over
// MaxTranscriptChars are cut with a visible marker first. All failures
// come back as a *SummarizeError.
func (s *Summarizer) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	if utf8.RuneCountInString(transcript) > MaxTranscriptChars {
		transcript = TruncateWithMarker(transcript, MaxTranscriptChars)
		s.logger.Warn().Int("max_chars", MaxTranscriptChars).Msg("transcript truncated before summarization")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	content, err := s.client.CreateStructuredCompletion(ctx, s.model, instruction, transcript)
	if err != nil {
		return "", &SummarizeError{Err: err}
	}

	var payload summaryPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return "", &SummarizeError{Err: fmt.Errorf("parsing structured response: %w", err)}
	}
	if payload.Text == "" {
		return "", &SummarizeError{Err: fmt.Errorf("structured response has no text")}
	}

	s.logger.Info().Str("model", s.model).Msg("analysis completed")
	return payload.Text, nil
}
