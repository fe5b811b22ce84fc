package internal

// Status marks how far a sheet row has progressed through the pipeline.
// The empty string means the row has not been picked up yet.
type Status string

const (
	StatusPending    Status = ""
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusError      Status = "ERROR"
)

// WorklistEntry is a scan-time snapshot of a row selected for
// processing. Status and result are not carried along; they are
// overwritten by row index during the attempt.
type WorklistEntry struct {
	URL string
	Row int
}

const (
	// MaxTranscriptChars caps the transcript text sent to the language model.
	MaxTranscriptChars = 100000

	// MaxCellChars caps the text written into a single sheet cell.
	MaxCellChars = 50000

	// TruncationMarker is appended whenever text had to be cut.
	TruncationMarker = "... [TRUNCATED]"
)

// TruncateWithMarker cuts s down to max characters and appends the
// truncation marker. Counts runes, not bytes, so multi-byte
// transcripts are never cut mid-character.
func TruncateWithMarker(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + TruncationMarker
}
