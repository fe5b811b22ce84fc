package internal

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// cellUpdate records one successful sheet write.
type cellUpdate struct {
	Cell  string
	Value string
}

// fakeSheet implements Sheet in memory for tests.
type fakeSheet struct {
	rows      [][]string
	rowsErr   error
	failCells map[string]error

	updates  []cellUpdate // successful writes, in order
	attempts []string     // every cell a write was attempted on
}

func (f *fakeSheet) Rows(ctx context.Context) ([][]string, error) {
	if f.rowsErr != nil {
		return nil, f.rowsErr
	}
	return f.rows, nil
}

func (f *fakeSheet) UpdateCell(ctx context.Context, cell, value string) error {
	f.attempts = append(f.attempts, cell)
	if err, ok := f.failCells[cell]; ok {
		return err
	}
	f.updates = append(f.updates, cellUpdate{Cell: cell, Value: value})
	return nil
}

// lastValue returns the most recent value written to cell, if any.
func (f *fakeSheet) lastValue(cell string) (string, bool) {
	for i := len(f.updates) - 1; i >= 0; i-- {
		if f.updates[i].Cell == cell {
			return f.updates[i].Value, true
		}
	}
	return "", false
}

// stubFetcher implements TranscriptFetcher with canned responses per URL.
type stubFetcher struct {
	transcripts map[string]string
	err         error
}

func (s *stubFetcher) Transcript(ctx context.Context, videoURL string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.transcripts[videoURL], nil
}

// stubChat implements ChatClient, capturing what was sent.
type stubChat struct {
	respond func(instruction, content string) (string, error)

	model        string
	instructions []string
	contents     []string
}

func (s *stubChat) CreateStructuredCompletion(ctx context.Context, model, instruction, content string) (string, error) {
	s.model = model
	s.instructions = append(s.instructions, instruction)
	s.contents = append(s.contents, content)
	return s.respond(instruction, content)
}

// newTestApp wires an App entirely from fakes. The prompt is an inline
// string so no config directory is touched.
func newTestApp(sheet Sheet, fetcher TranscriptFetcher, chat ChatClient) (*App, error) {
	config := &Config{
		Model:          "gpt-4o-mini",
		Prompt:         "Summarize the transcript in a short brief.",
		SummaryTimeout: time.Second,
		RequestTimeout: time.Second,
		WorksheetName:  "Sheet1",
		Quiet:          true,
	}
	return NewApp(context.Background(), config, zerolog.Nop(),
		WithSheet(sheet), WithFetcher(fetcher), WithChatClient(chat))
}
