// Package schedule parses raw court schedule blobs into open-play intervals.
package schedule

import (
	"strings"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/pkg/types"
)

// ParseIntervals turns a newline-delimited schedule into intervals.
//
// Each line has the form "YYYY-MM-DD H:MM:SS-H:MM:SS". Lines that cannot be
// parsed are dropped, as are windows whose end is not after their start.
// Output keeps input line order: no sorting, no de-duplication.
func ParseIntervals(raw string) []domain.ParsedInterval {
	intervals := make([]domain.ParsedInterval, 0)
	if raw == "" {
		return intervals
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		interval, ok := parseLine(line)
		if !ok {
			continue
		}
		intervals = append(intervals, interval)
	}

	return intervals
}

// parseLine splits on the first whitespace run into date and time range
func parseLine(line string) (domain.ParsedInterval, bool) {
	idx := strings.IndexAny(line, " \t\r\f\v")
	if idx <= 0 {
		return domain.ParsedInterval{}, false
	}

	date := line[:idx]
	rest := strings.TrimSpace(line[idx:])

	startRaw, endRaw, ok := strings.Cut(rest, "-")
	if !ok {
		return domain.ParsedInterval{}, false
	}

	start := types.ToAmPm(startRaw)
	end := types.ToAmPm(endRaw)
	if start == "" || end == "" {
		return domain.ParsedInterval{}, false
	}

	if start.Minutes() >= end.Minutes() {
		return domain.ParsedInterval{}, false
	}

	return domain.ParsedInterval{
		Date:  date,
		Start: start,
		End:   end,
	}, true
}

// MatchesDate reports whether the interval date matches the target.
// Prefix match, so "2025-01-15T00:00:00" matches "2025-01-15".
func MatchesDate(interval domain.ParsedInterval, targetDate string) bool {
	return strings.HasPrefix(interval.Date, targetDate)
}

// FilterByDate keeps intervals on the target date, preserving order
func FilterByDate(intervals []domain.ParsedInterval, targetDate string) []domain.ParsedInterval {
	filtered := make([]domain.ParsedInterval, 0, len(intervals))
	for _, interval := range intervals {
		if MatchesDate(interval, targetDate) {
			filtered = append(filtered, interval)
		}
	}
	return filtered
}
