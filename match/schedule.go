package match

import "github.com/kaitongg-bit/course-pilot/core"

// Compatible reports whether the course's full meeting pattern fits inside
// the given availability. An empty availability means no constraint and
// admits every course. Under any non-empty availability a course with an
// unknown schedule is rejected; the filter never guesses in the user's favor.
func Compatible(course *core.Course, availability core.Availability) bool {
	if len(availability) == 0 {
		return true
	}
	if !course.Scheduled() {
		return false
	}
	for _, day := range course.MeetingDays {
		for _, slot := range course.MeetingSlots {
			if !availability.Allows(day, slot) {
				return false
			}
		}
	}
	return true
}
