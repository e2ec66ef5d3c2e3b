package domain

// Display window used by the availability aggregator
const (
	DisplayStartMinutes        = 7 * 60  // 7:00 AM
	DisplayEndMinutes          = 19 * 60 // 7:00 PM
	MinUsefulDurationMinutes   = 60
	DisplayWindowHoursPerCourt = 12
)

// Hours-ratio color thresholds
const (
	HoursRatioGreenThreshold  = 0.75
	HoursRatioOrangeThreshold = 0.25
)

// Count-ratio color thresholds
const (
	CountRatioGreenThreshold = 0.5
)

// Timeline labels: hourly from 6:00 AM to 9:00 PM inclusive
const (
	TimelineFirstHour = 6
	TimelineLastHour  = 21
	SlotHalfMinutes   = 30
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
