package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
)

func TestParseIntervals(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []domain.ParsedInterval
	}{
		{
			name: "empty input",
			raw:  "",
			want: []domain.ParsedInterval{},
		},
		{
			name: "single line",
			raw:  "2025-01-15 09:00:00-11:00:00",
			want: []domain.ParsedInterval{
				{Date: "2025-01-15", Start: "9:00 AM", End: "11:00 AM"},
			},
		},
		{
			name: "irregular spacing and blank lines",
			raw:  "\n  2025-01-15    13:00:00-14:30:00  \n\n\t2025-01-16\t06:00-08:00\n",
			want: []domain.ParsedInterval{
				{Date: "2025-01-15", Start: "1:00 PM", End: "2:30 PM"},
				{Date: "2025-01-16", Start: "6:00 AM", End: "8:00 AM"},
			},
		},
		{
			name: "malformed lines are dropped",
			raw: "2025-01-15 09:00:00-11:00:00\n" +
				"garbage\n" +
				"2025-01-15 nine-ten\n" +
				"2025-01-15 09:00:00\n" +
				"2025-01-15 12:00:00-13:00:00",
			want: []domain.ParsedInterval{
				{Date: "2025-01-15", Start: "9:00 AM", End: "11:00 AM"},
				{Date: "2025-01-15", Start: "12:00 PM", End: "1:00 PM"},
			},
		},
		{
			name: "inverted and empty windows are dropped",
			raw:  "2025-01-15 11:00:00-09:00:00\n2025-01-15 10:00:00-10:00:00",
			want: []domain.ParsedInterval{},
		},
		{
			name: "order and duplicates preserved",
			raw:  "2025-01-15 15:00:00-16:00:00\n2025-01-15 08:00:00-09:00:00\n2025-01-15 08:00:00-09:00:00",
			want: []domain.ParsedInterval{
				{Date: "2025-01-15", Start: "3:00 PM", End: "4:00 PM"},
				{Date: "2025-01-15", Start: "8:00 AM", End: "9:00 AM"},
				{Date: "2025-01-15", Start: "8:00 AM", End: "9:00 AM"},
			},
		},
		{
			name: "windows rows with carriage returns",
			raw:  "2025-01-15 09:00:00-10:00:00\r\n2025-01-15 10:30:00-11:00:00\r\n",
			want: []domain.ParsedInterval{
				{Date: "2025-01-15", Start: "9:00 AM", End: "10:00 AM"},
				{Date: "2025-01-15", Start: "10:30 AM", End: "11:00 AM"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIntervals(tt.raw))
		})
	}
}

func TestParseIntervalsStartBeforeEnd(t *testing.T) {
	raw := "2025-01-15 00:00:00-00:30:00\n" +
		"2025-01-15 11:45:00-12:15:00\n" +
		"2025-01-15 23:00:00-23:59:00\n" +
		"2025-01-15 18:00:00-06:00:00"

	intervals := ParseIntervals(raw)
	require.Len(t, intervals, 3)
	for _, interval := range intervals {
		start, end := interval.StartMinutes(), interval.EndMinutes()
		require.NotEqual(t, -1, start)
		require.NotEqual(t, -1, end)
		assert.Less(t, start, end)
	}
}

func TestParseIntervalsIsIdempotent(t *testing.T) {
	raw := "2025-01-15 09:00:00-11:00:00\nbad line\n2025-01-16 14:00:00-15:00:00"
	assert.Equal(t, ParseIntervals(raw), ParseIntervals(raw))
}

func TestFilterByDate(t *testing.T) {
	intervals := []domain.ParsedInterval{
		{Date: "2025-01-15", Start: "9:00 AM", End: "10:00 AM"},
		{Date: "2025-01-16", Start: "9:00 AM", End: "10:00 AM"},
		{Date: "2025-01-15T00:00:00", Start: "1:00 PM", End: "2:00 PM"},
	}

	got := FilterByDate(intervals, "2025-01-15")
	assert.Equal(t, []domain.ParsedInterval{intervals[0], intervals[2]}, got)
	assert.Empty(t, FilterByDate(intervals, "2025-02-01"))
}
