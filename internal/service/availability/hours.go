// Package availability computes per-facility availability summaries and
// half-hour slot statuses from parsed court schedules.
package availability

import (
	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/internal/service/schedule"
)

// HasAvailabilityForDate reports whether any interval on the date overlaps the
// display window at all. A sliver of overlap is enough.
func HasAvailabilityForDate(intervals []domain.ParsedInterval, targetDate string) bool {
	for _, interval := range intervals {
		if !schedule.MatchesDate(interval, targetDate) {
			continue
		}

		start, end := interval.StartMinutes(), interval.EndMinutes()
		if start < 0 || end < 0 {
			continue
		}

		if start < domain.DisplayEndMinutes && end > domain.DisplayStartMinutes {
			return true
		}
	}
	return false
}

// AvailableHoursForDate sums the display-window-clamped duration of intervals
// on the date. Clamped windows shorter than an hour contribute nothing.
func AvailableHoursForDate(intervals []domain.ParsedInterval, targetDate string) float64 {
	totalMinutes := 0

	for _, interval := range intervals {
		if !schedule.MatchesDate(interval, targetDate) {
			continue
		}

		start, end := interval.StartMinutes(), interval.EndMinutes()
		if start < 0 || end < 0 {
			continue
		}

		start = max(start, domain.DisplayStartMinutes)
		end = min(end, domain.DisplayEndMinutes)

		if duration := end - start; duration >= domain.MinUsefulDurationMinutes {
			totalMinutes += duration
		}
	}

	return float64(totalMinutes) / 60
}

// HoursRatioColor classifies available hours against the potential hours of
// totalCourts courts over the display window.
func HoursRatioColor(availableHours float64, totalCourts int) domain.AvailabilityColor {
	potentialHours := float64(totalCourts * domain.DisplayWindowHoursPerCourt)

	ratio := 0.0
	if potentialHours > 0 {
		ratio = availableHours / potentialHours
	}

	switch {
	case ratio >= domain.HoursRatioGreenThreshold:
		return domain.ColorGreen
	case ratio >= domain.HoursRatioOrangeThreshold:
		return domain.ColorOrange
	default:
		return domain.ColorRed
	}
}

// CountRatioColor classifies the share of courts with any availability.
// Used by the map markers; thresholds differ from HoursRatioColor.
func CountRatioColor(availableCount, totalCount int) domain.AvailabilityColor {
	ratio := 0.0
	if totalCount > 0 {
		ratio = float64(availableCount) / float64(totalCount)
	}

	switch {
	case ratio >= domain.CountRatioGreenThreshold:
		return domain.ColorGreen
	case ratio > 0:
		return domain.ColorOrange
	default:
		return domain.ColorRed
	}
}
