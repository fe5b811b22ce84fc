package internal

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScanner(sheet Sheet) *Scanner {
	return NewScanner(sheet, zerolog.Nop())
}

func TestScanSingleEligibleRow(t *testing.T) {
	t.Parallel()

	sheet := &fakeSheet{rows: [][]string{
		{"https://youtu.be/abc", "", ""},
	}}

	entries, err := newTestScanner(sheet).Scan(context.Background())
	require.NoError(t, err)
	require.Equal(t, []WorklistEntry{{URL: "https://youtu.be/abc", Row: 1}}, entries)
}

func TestScanFiltersRows(t *testing.T) {
	t.Parallel()

	sheet := &fakeSheet{rows: [][]string{
		{"https://youtu.be/one", "", ""},               // row 1: eligible
		{},                                             // row 2: empty row
		{"https://example.com/video", "", ""},          // row 3: unsupported domain
		{"https://youtu.be/two", "", "COMPLETED"},      // row 4: already processed
		{"https://youtu.be/three", "", "needs review"}, // row 5: non-enum status still counts as handled
		{"", "", ""},                      // row 6: no URL
		{"https://vimeo.com/42"},          // row 7: status column absent, eligible
		{"https://youtu.be/four", "", ""}, // row 8: eligible
	}}

	entries, err := newTestScanner(sheet).Scan(context.Background())
	require.NoError(t, err)

	// Eligible rows only, original row order preserved.
	require.Equal(t, []WorklistEntry{
		{URL: "https://youtu.be/one", Row: 1},
		{URL: "https://vimeo.com/42", Row: 7},
		{URL: "https://youtu.be/four", Row: 8},
	}, entries)
}

func TestScanSkipsAnyNonEmptyStatus(t *testing.T) {
	t.Parallel()

	// Every status value, known or not, marks the row as handled.
	for _, status := range []string{"PROCESSING", "COMPLETED", "ERROR", "done", "x", " skip "} {
		sheet := &fakeSheet{rows: [][]string{
			{"https://youtu.be/abc", "", status},
		}}

		entries, err := newTestScanner(sheet).Scan(context.Background())
		require.NoError(t, err)
		assert.Empty(t, entries, "status %q must exclude the row", status)
	}
}

func TestScanIdempotent(t *testing.T) {
	t.Parallel()

	sheet := &fakeSheet{rows: [][]string{
		{"https://youtu.be/one", "", ""},
		{"https://youtu.be/two", "", ""},
	}}
	scanner := newTestScanner(sheet)

	first, err := scanner.Scan(context.Background())
	require.NoError(t, err)
	second, err := scanner.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScanReadFailure(t *testing.T) {
	t.Parallel()

	sheet := &fakeSheet{rowsErr: errors.New("api unavailable")}

	entries, err := newTestScanner(sheet).Scan(context.Background())
	require.Error(t, err)

	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
	// Fail-safe: no partial worklist.
	assert.Nil(t, entries)
}
