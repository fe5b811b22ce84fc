package internal

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Processor drives a single worklist entry through the per-record
// state machine: "" -> PROCESSING -> COMPLETED or ERROR.
type Processor struct {
	fetcher    TranscriptFetcher
	summarizer *Summarizer
	writer     *StatusWriter
	prompt     string
	logger     zerolog.Logger
}

// NewProcessor wires a processor from its collaborators. prompt is the
// fixed instruction sent with every transcript.
func NewProcessor(fetcher TranscriptFetcher, summarizer *Summarizer, writer *StatusWriter, prompt string, logger zerolog.Logger) *Processor {
	return &Processor{
		fetcher:    fetcher,
		summarizer: summarizer,
		writer:     writer,
		prompt:     prompt,
		logger:     logger,
	}
}

// Process runs the state machine for one entry. Every failure is
// contained here: it becomes a persisted ERROR status with a readable
// message and a non-nil return, never an abort of the surrounding run.
// Status transitions are monotonic within the attempt; a terminal
// state is never reset back.
func (p *Processor) Process(ctx context.Context, entry WorklistEntry) error {
	log := p.logger.With().Str("url", entry.URL).Int("row", entry.Row).Logger()
	log.Info().Msg("processing record")

	// Advisory marker; a failed write here must not abort the attempt.
	p.writer.Write(ctx, entry.Row, StatusProcessing, "")

	transcript, err := p.fetcher.Transcript(ctx, entry.URL)
	if err == nil && transcript == "" {
		err = &FetchError{URL: entry.URL, Err: errors.New("provider returned empty transcript")}
	}
	if err != nil {
		return p.fail(ctx, entry, log, fmt.Errorf("could not retrieve transcript using Supadata: %w", err))
	}
	log.Info().Int("chars", utf8.RuneCountInString(transcript)).Msg("transcript retrieved")

	summary, err := p.summarizer.Summarize(ctx, transcript, p.prompt)
	if err == nil && summary == "" {
		err = &SummarizeError{Err: errors.New("model returned empty summary")}
	}
	if err != nil {
		return p.fail(ctx, entry, log, fmt.Errorf("OpenAI analysis failed: %w", err))
	}

	p.writer.Write(ctx, entry.Row, StatusCompleted, summary)
	log.Info().Msg("record completed")
	return nil
}

// fail persists the ERROR terminal state with a human-readable
// description in the result column and returns the cause.
func (p *Processor) fail(ctx context.Context, entry WorklistEntry, log zerolog.Logger, err error) error {
	log.Error().Err(err).Msg("record failed")
	p.writer.Write(ctx, entry.Row, StatusError, "Error: "+err.Error())
	return err
}
