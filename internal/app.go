package internal

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// App holds the pipeline's long-lived collaborators: the sheet, the
// transcription provider, and the language-model client. They are
// constructed once at startup and passed by reference; there is no
// ambient global state.
type App struct {
	sheet      Sheet
	fetcher    TranscriptFetcher
	chat       ChatClient
	summarizer *Summarizer
	scanner    *Scanner
	writer     *StatusWriter
	processor  *Processor
	prompt     string
	config     *Config
	logger     zerolog.Logger
	ui         UIManager
}

// AppOption customizes App creation
type AppOption func(*App)

// WithSheet sets a custom tabular store
func WithSheet(sheet Sheet) AppOption {
	return func(a *App) {
		a.sheet = sheet
	}
}

// WithFetcher sets a custom transcript fetcher
func WithFetcher(fetcher TranscriptFetcher) AppOption {
	return func(a *App) {
		a.fetcher = fetcher
	}
}

// WithChatClient sets a custom language-model client
func WithChatClient(chat ChatClient) AppOption {
	return func(a *App) {
		a.chat = chat
	}
}

// NewApp wires the application. The sheet is only constructed when the
// config carries spreadsheet coordinates; commands that never touch
// the store (preview) work without them.
func NewApp(ctx context.Context, config *Config, logger zerolog.Logger, options ...AppOption) (*App, error) {
	app := &App{
		config: config,
		logger: logger,
		ui:     NewUIManager(config.Quiet),
	}

	for _, option := range options {
		option(app)
	}

	prompt, err := NewPromptManager(config.ConfigDir, config.Prompt).Instruction()
	if err != nil {
		return nil, &SetupError{Err: err}
	}
	app.prompt = prompt

	if app.fetcher == nil {
		app.fetcher = NewSupadataClient(
			config.SupadataBaseURL,
			config.SupadataAPIKey,
			config.RequestTimeout,
			logger.With().Str("component", "supadata").Logger(),
		)
	}

	if app.chat == nil {
		app.chat = NewOpenAIClient(config.OpenAIAPIKey)
	}
	app.summarizer = NewSummarizer(app.chat, config.Model, config.SummaryTimeout,
		logger.With().Str("component", "summarizer").Logger())

	if app.sheet == nil && config.SpreadsheetID != "" && config.GoogleCredentials != "" {
		sheet, err := NewGoogleSheet(ctx, []byte(config.GoogleCredentials), config.SpreadsheetID, config.WorksheetName)
		if err != nil {
			return nil, &SetupError{Err: err}
		}
		app.sheet = sheet
	}

	if app.sheet != nil {
		app.scanner = NewScanner(app.sheet, logger.With().Str("component", "scanner").Logger())
		app.writer = NewStatusWriter(app.sheet, logger.With().Str("component", "writer").Logger())
		app.processor = NewProcessor(app.fetcher, app.summarizer, app.writer, app.prompt,
			logger.With().Str("component", "processor").Logger())
	}

	return app, nil
}

// ErrNoSheet is returned by sheet-backed operations when the store was
// never configured.
var ErrNoSheet = errors.New("no spreadsheet configured - set GOOGLE_CREDENTIALS and SPREADSHEET_ID")

// Run executes one full pipeline pass: scan once, process every
// worklist entry sequentially, log aggregate counts. Records are
// processed strictly one at a time. Eligibility is read-then-write
// against the sheet without a transaction, so two overlapping
// invocations could both pick up the same row before either marks it
// PROCESSING; that race is accepted under the single scheduled-run
// model rather than locked around.
func (app *App) Run(ctx context.Context) error {
	if app.scanner == nil {
		return ErrNoSheet
	}

	app.logger.Info().Msg("starting video summary pipeline")

	entries, err := app.scanner.Scan(ctx)
	if err != nil {
		app.logger.Error().Err(err).Msg("scan failed, no records processed")
		return err
	}

	if len(entries) == 0 {
		app.logger.Info().Msg("no new URLs to process")
		return nil
	}

	bar := app.ui.NewProgressBar(len(entries), "Processing videos")
	succeeded, failed := 0, 0
	for i, entry := range entries {
		if err := app.processEntry(ctx, entry); err != nil {
			failed++
		} else {
			succeeded++
		}
		bar.Set(i + 1)
	}
	bar.Finish()

	app.logger.Info().
		Int("succeeded", succeeded).
		Int("failed", failed).
		Msg("processing complete")
	return nil
}

// processEntry isolates a single record. The processor already
// contains its own failures; the recover here is defense in depth so
// one record can never abort the run.
func (app *App) processEntry(ctx context.Context, entry WorklistEntry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure processing %s: %v", entry.URL, r)
			app.logger.Error().Err(err).Int("row", entry.Row).Msg("record processing panicked")
		}
	}()
	return app.processor.Process(ctx, entry)
}

// PendingRecords returns the worklist a run would process right now,
// without touching any row.
func (app *App) PendingRecords(ctx context.Context) ([]WorklistEntry, error) {
	if app.scanner == nil {
		return nil, ErrNoSheet
	}
	return app.scanner.Scan(ctx)
}

// FetchTranscript retrieves the transcript for a single URL.
func (app *App) FetchTranscript(ctx context.Context, url string) (string, error) {
	if !IsSupportedVideoURL(url) {
		return "", fmt.Errorf("%q is not a supported video URL", url)
	}
	return app.fetcher.Transcript(ctx, url)
}

// SummarizeURL performs the fetch-then-summarize workflow for a single
// URL without going through the sheet.
func (app *App) SummarizeURL(ctx context.Context, url string) (string, error) {
	transcript, err := app.FetchTranscript(ctx, url)
	if err != nil {
		return "", err
	}
	return app.summarizer.Summarize(ctx, transcript, app.prompt)
}
