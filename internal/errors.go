package internal

import (
	"fmt"
	"strings"
)

// SetupError reports missing or invalid configuration. It is fatal and
// aborts before any record is touched.
type SetupError struct {
	Missing []string
	Err     error
}

func (e *SetupError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("invalid configuration: %v", e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// ScanError means the sheet could not be read. The run aborts with
// zero records processed.
type ScanError struct {
	Err error
}

func (e *ScanError) Error() string { return fmt.Sprintf("scanning sheet: %v", e.Err) }
func (e *ScanError) Unwrap() error { return e.Err }

// FetchError is a per-record transcript retrieval failure. It is
// recorded as that record's ERROR status and never aborts the run.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetching transcript for %s: %v", e.URL, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// SummarizeError is a per-record summarization failure, recorded as
// ERROR like a fetch failure.
type SummarizeError struct {
	Err error
}

func (e *SummarizeError) Error() string { return fmt.Sprintf("summarizing transcript: %v", e.Err) }
func (e *SummarizeError) Unwrap() error { return e.Err }

// WriteError is a failed cell write. Writes are best effort; the
// failure ends in the log, not in the caller.
type WriteError struct {
	Cell string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("writing cell %s: %v", e.Cell, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }
