package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtAvailability/internal/domain"
	"github.com/m04kA/SMC-CourtAvailability/internal/service/schedule"
	"github.com/m04kA/SMC-CourtAvailability/pkg/types"
)

func TestTimeLabels(t *testing.T) {
	labels := TimeLabels()
	require.Len(t, labels, 16)
	assert.Equal(t, types.TimeLabel("6:00 AM"), labels[0])
	assert.Equal(t, types.TimeLabel("12:00 PM"), labels[6])
	assert.Equal(t, types.TimeLabel("9:00 PM"), labels[15])

	// callers get a copy
	labels[0] = "mutated"
	assert.Equal(t, types.TimeLabel("6:00 AM"), TimeLabels()[0])
}

func TestSlotStatusFor(t *testing.T) {
	tests := []struct {
		name      string
		intervals []domain.ParsedInterval
		label     types.TimeLabel
		want      domain.SlotStatus
	}{
		{"no intervals", nil, "9:00 AM", domain.SlotNone},
		{"whole hour free", []domain.ParsedInterval{iv(testDate, "9:00 AM", "10:00 AM")}, "9:00 AM", domain.SlotFull},
		{"containing window", []domain.ParsedInterval{iv(testDate, "7:00 AM", "1:00 PM")}, "9:00 AM", domain.SlotFull},
		{"first half only", []domain.ParsedInterval{iv(testDate, "8:00 AM", "9:30 AM")}, "9:00 AM", domain.SlotFirstHalf},
		{"second half only", []domain.ParsedInterval{iv(testDate, "9:30 AM", "11:00 AM")}, "9:00 AM", domain.SlotSecondHalf},
		{"partial overlap on both halves", []domain.ParsedInterval{iv(testDate, "9:15 AM", "9:45 AM")}, "9:00 AM", domain.SlotNone},
		{"first half not fully contained", []domain.ParsedInterval{iv(testDate, "9:10 AM", "10:00 AM")}, "9:00 AM", domain.SlotSecondHalf},
		{
			name: "halves from separate intervals",
			intervals: []domain.ParsedInterval{
				iv(testDate, "8:00 AM", "9:30 AM"),
				iv(testDate, "9:30 AM", "10:30 AM"),
			},
			label: "9:00 AM",
			want:  domain.SlotFull,
		},
		{"unusable interval ignored", []domain.ParsedInterval{iv(testDate, "nope", "10:00 AM")}, "9:00 AM", domain.SlotNone},
		{"unusable label", []domain.ParsedInterval{iv(testDate, "9:00 AM", "10:00 AM")}, "nine", domain.SlotNone},
		{"evening slot", []domain.ParsedInterval{iv(testDate, "8:00 PM", "10:00 PM")}, "9:00 PM", domain.SlotFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotStatusFor(tt.intervals, tt.label))
		})
	}
}

func TestSlotStatusForParsedReservationGap(t *testing.T) {
	intervals := schedule.ParseIntervals("2025-01-15 09:15:00-09:45:00")
	require.Len(t, intervals, 1)

	assert.Equal(t, domain.SlotNone, SlotStatusFor(intervals, "9:00 AM"))
}

func TestTimeline(t *testing.T) {
	intervals := []domain.ParsedInterval{
		iv(testDate, "6:00 AM", "7:30 AM"),
		iv(testDate, "8:30 PM", "10:00 PM"),
	}

	slots := Timeline(intervals)
	require.Len(t, slots, 16)

	statuses := make(map[types.TimeLabel]domain.SlotStatus, len(slots))
	for _, s := range slots {
		statuses[s.Label] = s.Status
	}

	assert.Equal(t, domain.SlotFull, statuses["6:00 AM"])
	assert.Equal(t, domain.SlotFirstHalf, statuses["7:00 AM"])
	assert.Equal(t, domain.SlotNone, statuses["12:00 PM"])
	assert.Equal(t, domain.SlotSecondHalf, statuses["8:00 PM"])
	assert.Equal(t, domain.SlotFull, statuses["9:00 PM"])
}
