package internal

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Sheet columns, by position: A holds the source URL (written by an
// external actor), B the result text, C the status.
const (
	resultColumn = "B"
	statusColumn = "C"
)

// StatusWriter persists status and result cells for a row. It is the
// only component that mutates the sheet.
type StatusWriter struct {
	sheet  Sheet
	logger zerolog.Logger
}

// NewStatusWriter creates a writer over the given sheet.
func NewStatusWriter(sheet Sheet, logger zerolog.Logger) *StatusWriter {
	return &StatusWriter{sheet: sheet, logger: logger}
}

// Write persists result (column B, only when non-empty, truncated to
// the cell limit) and status (column C, always) for row. The two cell
// writes are independent: a result failure is logged and the status
// write still happens. Write never returns an error; the cells are the
// side effect being attempted, so failures terminate in the log.
func (w *StatusWriter) Write(ctx context.Context, row int, status Status, result string) {
	if result != "" {
		result = TruncateWithMarker(result, MaxCellChars)
		cell := fmt.Sprintf("%s%d", resultColumn, row)
		if err := w.sheet.UpdateCell(ctx, cell, result); err != nil {
			w.logger.Error().Err(&WriteError{Cell: cell, Err: err}).Msg("result write failed")
		} else {
			w.logger.Debug().Str("cell", cell).Msg("result written")
		}
	}

	cell := fmt.Sprintf("%s%d", statusColumn, row)
	if err := w.sheet.UpdateCell(ctx, cell, string(status)); err != nil {
		w.logger.Error().Err(&WriteError{Cell: cell, Err: err}).Msg("status write failed")
		return
	}
	w.logger.Info().Str("cell", cell).Str("status", string(status)).Msg("status written")
}
