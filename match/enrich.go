package match

import (
	"math"

	"github.com/kaitongg-bit/course-pilot/core"
)

const (
	// defaultRating stands in for courses with no valid reviews.
	defaultRating = 4.5

	lightWorkloadMaxHours  = 7
	mediumWorkloadMaxHours = 11

	maxTags = 10
)

// enrich builds the response payload for one ranked course, joining in the
// review aggregates and display metadata. The summary starts as the stored
// description; callers with a Summarizer overwrite it per profile.
func (m *Matcher) enrich(sc core.ScoredCourse) core.CourseResult {
	course := sc.Course
	agg := m.reviews.Aggregate(course.Code)

	rating := agg.AvgRating
	if agg.ReviewCount == 0 || rating == 0 {
		rating = defaultRating
	}

	tags := course.Tags
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	return core.CourseResult{
		CourseId:      course.Code,
		CourseName:    course.Name,
		Rating:        rating,
		MatchPercent:  matchPercent(sc.Score),
		WorkloadLabel: workloadLabel(agg.AvgWorkloadHours),
		Level:         course.Level,
		Tags:          tags,
		Summary:       course.Description,
		Reviews:       m.reviews.Reviews(course.Code),
		Industry:      course.Industry,
		MeetingTime:   course.MeetingTime,
		Days:          course.MeetingDays,
		Times:         course.MeetingSlots,
		Raw:           course.Raw,
	}
}

// matchPercent converts a hybrid score to a display percentage in [0,100].
func matchPercent(score float32) int {
	s := float64(score)
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	return int(math.Round(s * 100))
}

// workloadLabel maps average weekly hours to a display label.
// Zero hours means no valid workload samples.
func workloadLabel(hours float64) string {
	switch {
	case hours == 0:
		return "Unknown"
	case hours <= lightWorkloadMaxHours:
		return "Light Workload"
	case hours <= mediumWorkloadMaxHours:
		return "Medium Workload"
	default:
		return "Heavy Workload"
	}
}
