package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "ISO", input: "2025-06-23", want: "2025-06-23"},
		{name: "Long month", input: "June 23, 2025", want: "2025-06-23"},
		{name: "Long month with ordinal", input: "June 23rd, 2025", want: "2025-06-23"},
		{name: "Long month no comma", input: "June 23 2025", want: "2025-06-23"},
		{name: "Abbreviated month", input: "Jun 3, 2025", want: "2025-06-03"},
		{name: "Four letter September", input: "Sept 5, 2025", want: "2025-09-05"},
		{name: "Four letter September lowercase", input: "sept 5 2025", want: "2025-09-05"},
		{name: "US slashes", input: "6/23/2025", want: "2025-06-23"},
		{name: "US slashes zero padded", input: "06/23/2025", want: "2025-06-23"},
		{name: "US dashes", input: "6-23-2025", want: "2025-06-23"},
		{name: "First with ordinal", input: "March 1st, 2024", want: "2024-03-01"},
		{name: "Extra whitespace", input: "  June   23,  2025 ", want: "2025-06-23"},
		{name: "Garbage", input: "not a date", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ToISODate(got))
		})
	}
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "June 23, 2025", CleanDateString(" June  23rd, 2025 "))
	assert.Equal(t, "1 2 3", CleanDateString("1st 2nd 3rd"))
	// Ordinal stripping only applies to suffixes attached to digits.
	assert.Equal(t, "August first", CleanDateString("August first"))
	// "Sept" collapses to the parseable abbreviation; "September" is left
	// alone.
	assert.Equal(t, "Sep 5, 2025", CleanDateString("Sept 5, 2025"))
	assert.Equal(t, "September 5, 2025", CleanDateString("September 5, 2025"))
}

func TestWithinFutureTolerance(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	tolerance := 24 * time.Hour

	assert.True(t, WithinFutureTolerance(now.AddDate(0, 0, -30), now, tolerance))
	assert.True(t, WithinFutureTolerance(now, now, tolerance))
	assert.True(t, WithinFutureTolerance(now.Add(23*time.Hour), now, tolerance))
	assert.False(t, WithinFutureTolerance(now.Add(25*time.Hour), now, tolerance))
	assert.False(t, WithinFutureTolerance(now.AddDate(0, 1, 0), now, tolerance))
}

func TestTruncate(t *testing.T) {
	in := time.Date(2025, 6, 23, 17, 45, 12, 999, time.FixedZone("X", 3600))
	got := Truncate(in)

	assert.Equal(t, time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC), got)
}
