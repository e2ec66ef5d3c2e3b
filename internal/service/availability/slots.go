package availability

import (
	"fmt"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/pkg/types"
)

var timelineLabels = buildTimelineLabels()

func buildTimelineLabels() []types.TimeLabel {
	labels := make([]types.TimeLabel, 0, domain.TimelineLastHour-domain.TimelineFirstHour+1)
	for hour := domain.TimelineFirstHour; hour <= domain.TimelineLastHour; hour++ {
		labels = append(labels, types.ToAmPm(fmt.Sprintf("%d:00", hour)))
	}
	return labels
}

// TimeLabels returns the fixed hourly timeline labels (6:00 AM .. 9:00 PM)
func TimeLabels() []types.TimeLabel {
	out := make([]types.TimeLabel, len(timelineLabels))
	copy(out, timelineLabels)
	return out
}

// SlotStatusFor computes the half-hour status of the hour starting at label.
//
// A half is free only if a single interval fully contains it; partial overlap
// does not count. A 9:15-9:45 window leaves both halves of 9:00 not free.
// Intervals are expected to be already filtered to one date.
func SlotStatusFor(intervals []domain.ParsedInterval, label types.TimeLabel) domain.SlotStatus {
	slotStart := label.Minutes()
	if slotStart < 0 {
		return domain.SlotNone
	}
	mid := slotStart + domain.SlotHalfMinutes

	firstHalfFree := isFree(intervals, slotStart, mid)
	secondHalfFree := isFree(intervals, mid, mid+domain.SlotHalfMinutes)

	switch {
	case firstHalfFree && secondHalfFree:
		return domain.SlotFull
	case firstHalfFree:
		return domain.SlotFirstHalf
	case secondHalfFree:
		return domain.SlotSecondHalf
	default:
		return domain.SlotNone
	}
}

// isFree true if one interval contains [from, to]
func isFree(intervals []domain.ParsedInterval, from, to int) bool {
	for _, interval := range intervals {
		start, end := interval.StartMinutes(), interval.EndMinutes()
		if start < 0 || end < 0 {
			continue
		}
		if start <= from && end >= to {
			return true
		}
	}
	return false
}

// Timeline computes statuses for every fixed label
func Timeline(intervals []domain.ParsedInterval) []domain.TimelineSlot {
	slots := make([]domain.TimelineSlot, len(timelineLabels))
	for i, label := range timelineLabels {
		slots[i] = domain.TimelineSlot{
			Label:  label,
			Status: SlotStatusFor(intervals, label),
		}
	}
	return slots
}
