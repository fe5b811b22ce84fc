package internal

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Scanner builds the worklist of sheet rows eligible for processing.
type Scanner struct {
	sheet  Sheet
	logger zerolog.Logger
}

// NewScanner creates a scanner over the given sheet.
func NewScanner(sheet Sheet, logger zerolog.Logger) *Scanner {
	return &Scanner{sheet: sheet, logger: logger}
}

// Scan reads the full row set and returns eligible entries in row
// order, 1-indexed. Eligibility is evaluated fresh on every call: the
// row's column A must hold a supported video URL and its column C must
// be empty. Any non-empty status counts as handled, including values
// outside the known set, so manually annotated rows are left alone.
// A read failure yields a *ScanError and no entries at all, never a
// partial worklist.
func (s *Scanner) Scan(ctx context.Context) ([]WorklistEntry, error) {
	rows, err := s.sheet.Rows(ctx)
	if err != nil {
		return nil, &ScanError{Err: err}
	}

	var entries []WorklistEntry
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}

		url := strings.TrimSpace(row[0])
		status := ""
		if len(row) > 2 {
			status = strings.TrimSpace(row[2])
		}

		if url == "" || !IsSupportedVideoURL(url) {
			continue
		}
		if status != "" {
			continue
		}

		entries = append(entries, WorklistEntry{URL: url, Row: i + 1})
	}

	s.logger.Info().Int("pending", len(entries)).Msg("scan complete")
	return entries, nil
}
