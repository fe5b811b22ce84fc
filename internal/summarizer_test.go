package internal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSummarizer(chat ChatClient) *Summarizer {
	return NewSummarizer(chat, "gpt-4o-mini", time.Second, zerolog.Nop())
}

func TestSummarizeExtractsText(t *testing.T) {
	t.Parallel()

	chat := &stubChat{respond: func(instruction, content string) (string, error) {
		return `{"text":"a tidy summary"}`, nil
	}}

	got, err := newTestSummarizer(chat).Summarize(context.Background(), "some transcript", "instruction")
	require.NoError(t, err)
	assert.Equal(t, "a tidy summary", got)

	require.Len(t, chat.contents, 1)
	assert.Equal(t, "some transcript", chat.contents[0])
	assert.Equal(t, "instruction", chat.instructions[0])
	assert.Equal(t, "gpt-4o-mini", chat.model)
}

func TestSummarizeTruncatesLongTranscript(t *testing.T) {
	t.Parallel()

	chat := &stubChat{respond: func(instruction, content string) (string, error) {
		return `{"text":"ok"}`, nil
	}}

	transcript := strings.Repeat("w", 150000)
	_, err := newTestSummarizer(chat).Summarize(context.Background(), transcript, "instruction")
	require.NoError(t, err)

	require.Len(t, chat.contents, 1)
	sent := chat.contents[0]
	assert.True(t, strings.HasSuffix(sent, TruncationMarker))
	assert.Equal(t, MaxTranscriptChars+utf8.RuneCountInString(TruncationMarker), utf8.RuneCountInString(sent))
}

func TestSummarizeMalformedResponse(t *testing.T) {
	t.Parallel()

	chat := &stubChat{respond: func(instruction, content string) (string, error) {
		return "not json at all", nil
	}}

	_, err := newTestSummarizer(chat).Summarize(context.Background(), "transcript", "instruction")

	var sumErr *SummarizeError
	require.ErrorAs(t, err, &sumErr)
	assert.Contains(t, sumErr.Error(), "parsing structured response")
}

func TestSummarizeEmptyText(t *testing.T) {
	t.Parallel()

	chat := &stubChat{respond: func(instruction, content string) (string, error) {
		return `{"text":""}`, nil
	}}

	_, err := newTestSummarizer(chat).Summarize(context.Background(), "transcript", "instruction")

	var sumErr *SummarizeError
	require.ErrorAs(t, err, &sumErr)
}

func TestSummarizeClientFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("rate limited")
	chat := &stubChat{respond: func(instruction, content string) (string, error) {
		return "", cause
	}}

	_, err := newTestSummarizer(chat).Summarize(context.Background(), "transcript", "instruction")

	var sumErr *SummarizeError
	require.ErrorAs(t, err, &sumErr)
	assert.ErrorIs(t, err, cause)
}
