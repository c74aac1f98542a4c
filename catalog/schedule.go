package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// slotMinutes is the width of a single schedule slot.
const slotMinutes = 30

// validDayCodes are the recognized single-letter day codes.
// R is Thursday, U is Sunday.
var validDayCodes = map[byte]bool{
	'M': true, 'T': true, 'W': true, 'R': true, 'F': true, 'S': true, 'U': true,
}

// ParseDays converts a weekday string like "MWF" into its day codes.
// "TBA" and unrecognized characters are ignored.
func ParseDays(weekday string) []string {
	weekday = strings.ToUpper(strings.TrimSpace(weekday))
	if weekday == "" || weekday == "TBA" {
		return nil
	}

	days := make([]string, 0, len(weekday))
	for i := 0; i < len(weekday); i++ {
		if validDayCodes[weekday[i]] {
			days = append(days, string(weekday[i]))
		}
	}
	if len(days) == 0 {
		return nil
	}
	return days
}

// ParseSlots expands a start/end time-of-day pair into the ordered sequence of
// 30-minute slot labels the meeting covers, stepping from start up to but not
// including end. An unparseable start or end yields no slots.
func ParseSlots(start, end string) []string {
	startMins := parseClock(start)
	endMins := parseClock(end)
	if startMins < 0 || endMins < 0 {
		return nil
	}

	var slots []string
	for mins := startMins; mins < endMins; mins += slotMinutes {
		slots = append(slots, FormatSlot(mins))
	}
	return slots
}

// parseClock parses a "H:MM AM|PM" token into minutes since midnight.
// Returns -1 if the token does not match the expected pattern.
func parseClock(s string) int {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ".", "") // tolerate "A.M." style periods

	parts := strings.Fields(s)
	if len(parts) != 2 {
		return -1
	}
	timePart, period := parts[0], parts[1]
	if period != "AM" && period != "PM" {
		return -1
	}

	hm := strings.Split(timePart, ":")
	if len(hm) != 2 {
		return -1
	}
	h, err := strconv.Atoi(hm[0])
	if err != nil {
		return -1
	}
	m, err := strconv.Atoi(hm[1])
	if err != nil {
		return -1
	}
	if h < 1 || h > 12 || m < 0 || m > 59 {
		return -1
	}

	if period == "PM" && h != 12 {
		h += 12
	}
	if period == "AM" && h == 12 {
		h = 0
	}
	return h*60 + m
}

// FormatSlot renders minutes since midnight as a 12-hour slot label,
// e.g. 570 -> "9:30 AM", 0 -> "12:00 AM".
func FormatSlot(mins int) string {
	h := mins / 60
	m := mins % 60
	period := "AM"
	if h >= 12 {
		period = "PM"
		if h > 12 {
			h -= 12
		}
	}
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, period)
}

// MeetingTime builds the display string for a schedule, e.g.
// "MWF 9:00 AM-9:50 AM". Any missing component yields "TBA".
func MeetingTime(weekday, start, end string) string {
	if strings.TrimSpace(weekday) == "" || strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return "TBA"
	}
	return fmt.Sprintf("%s %s-%s", weekday, start, end)
}
