package domain

import "github.com/m04kA/SMC-CourtAvailability/pkg/types"

// ParsedInterval is one open-play window of a court on a date.
// Start is strictly before End.
type ParsedInterval struct {
	Date  string // YYYY-MM-DD
	Start types.TimeLabel
	End   types.TimeLabel
}

// StartMinutes minutes since midnight, -1 if unusable
func (p ParsedInterval) StartMinutes() int {
	return p.Start.Minutes()
}

// EndMinutes minutes since midnight, -1 if unusable
func (p ParsedInterval) EndMinutes() int {
	return p.End.Minutes()
}

// SlotStatus half-hour availability of an hourly timeline slot
type SlotStatus string

const (
	SlotFull       SlotStatus = "full"
	SlotFirstHalf  SlotStatus = "first_half"
	SlotSecondHalf SlotStatus = "second_half"
	SlotNone       SlotStatus = "none"
)

// IsFree returns true if any part of the hour is free
func (s SlotStatus) IsFree() bool {
	return s != SlotNone
}

// TimelineSlot status of one fixed label
type TimelineSlot struct {
	Label  types.TimeLabel
	Status SlotStatus
}

// CourtTimeline slot statuses of one court for one date
type CourtTimeline struct {
	CourtID  int64
	Title    string
	Facility string
	Slots    []TimelineSlot
}

// AvailabilityColor traffic-light classification
type AvailabilityColor string

const (
	ColorGreen  AvailabilityColor = "green"
	ColorOrange AvailabilityColor = "orange"
	ColorRed    AvailabilityColor = "red"
)
