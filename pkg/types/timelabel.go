package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeLabel is a canonical 12-hour clock label, e.g. "9:00 AM".
type TimeLabel string

// MinutesPerDay number of minutes in a calendar day
const MinutesPerDay = 24 * 60

var clock24Pattern = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

// ToAmPm converts a 24-hour "H:MM" or "H:MM:SS" string into a 12-hour label.
// Returns "" when the input does not look like a clock time; callers must
// treat "" as a parse failure, never as midnight.
func ToAmPm(raw string) TimeLabel {
	raw = strings.TrimSpace(raw)
	if !clock24Pattern.MatchString(raw) {
		return ""
	}

	parts := strings.Split(raw, ":")
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour > 23 {
		return ""
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute > 59 {
		return ""
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return TimeLabel(fmt.Sprintf("%d:%02d %s", hour12, minute, suffix))
}

// ToMinutes converts a "H:MM AM/PM" label into minutes since midnight.
// AM/PM is case-insensitive. Returns -1 for any malformed input.
func ToMinutes(label TimeLabel) int {
	fields := strings.Fields(string(label))
	if len(fields) != 2 {
		return -1
	}

	clock, meridiem := fields[0], strings.ToUpper(fields[1])
	if meridiem != "AM" && meridiem != "PM" {
		return -1
	}

	hourStr, minuteStr, ok := strings.Cut(clock, ":")
	if !ok || hourStr == "" || len(minuteStr) != 2 {
		return -1
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return -1
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > 59 {
		return -1
	}

	hour %= 12
	if meridiem == "PM" {
		hour += 12
	}

	return hour*60 + minute
}

// Minutes returns minutes since midnight, or -1 if the label is malformed
func (t TimeLabel) Minutes() int {
	return ToMinutes(t)
}

// IsValid reports whether the label parses
func (t TimeLabel) IsValid() bool {
	return ToMinutes(t) >= 0
}

// String implements fmt.Stringer
func (t TimeLabel) String() string {
	return string(t)
}

// FromMinutes builds a label from minutes since midnight, wrapping at a day boundary
func FromMinutes(minutes int) TimeLabel {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return ToAmPm(fmt.Sprintf("%d:%02d", minutes/60, minutes%60))
}
