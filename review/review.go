package review

import (
	"math"
	"strconv"
	"strings"

	"github.com/kaitongg-bit/course-pilot/catalog"
	"github.com/kaitongg-bit/course-pilot/core"
)

// Review source column names.
const (
	colCourseID       = "CourseID"
	colRowID          = "RowID"
	colTimestamp      = "Timestamp"
	colOverallRating  = "OverallRating"
	colWorkloadHours  = "WorkloadHours"
	colWorkloadRating = "WorkloadRating"
	colComment        = "Comment"
	colWorkflow       = "Workflow"
	colInterestRating = "InterestRating"
	colUtilityRating  = "UtilityRating"
)

const defaultRating = 5

// Set holds all loaded reviews grouped by course code, plus the aggregates
// computed once over them. Immutable after Load.
type Set struct {
	ByCourse   map[string][]core.Review
	Aggregates map[string]core.ReviewAggregate
}

// NewEmptySet returns a Set with no reviews.
// Used when the review source is absent.
func NewEmptySet() *Set {
	return &Set{
		ByCourse:   map[string][]core.Review{},
		Aggregates: map[string]core.ReviewAggregate{},
	}
}

// Reviews returns the reviews for a course, or nil if there are none.
func (s *Set) Reviews(code string) []core.Review {
	return s.ByCourse[code]
}

// Aggregate returns the aggregate for a course.
// The zero aggregate means no valid samples were seen.
func (s *Set) Aggregate(code string) core.ReviewAggregate {
	return s.Aggregates[code]
}

// Load groups raw review rows by course code and computes per-course
// aggregates. Rows with an empty course code are skipped entirely; rows with
// invalid numeric fields load with defaults but do not contribute to the
// corresponding aggregate.
func Load(rows []catalog.Row) *Set {
	byCourse := make(map[string][]core.Review)
	ratings := make(map[string][]int)
	workloadHours := make(map[string][]int)

	for _, row := range rows {
		code := strings.TrimSpace(row[colCourseID])
		if code == "" {
			continue
		}

		if hours, ok := positiveInt(row[colWorkloadHours]); ok {
			workloadHours[code] = append(workloadHours[code], hours)
		}
		if rating, ok := positiveInt(row[colOverallRating]); ok && rating <= 5 {
			ratings[code] = append(ratings[code], rating)
		}

		byCourse[code] = append(byCourse[code], core.Review{
			CourseCode: code,
			RowId:      row[colRowID],
			Author:     "Student",
			Semester:   semester(row[colTimestamp]),
			Rating:     ratingOrDefault(row[colOverallRating]),
			Comment:    row[colComment],
			Workload:   workloadLabel(row[colWorkloadRating]),
			Workflow:   row[colWorkflow],
			Interest:   ratingOrDefault(row[colInterestRating]),
			Utility:    ratingOrDefault(row[colUtilityRating]),
		})
	}

	aggregates := make(map[string]core.ReviewAggregate, len(byCourse))
	for code, reviews := range byCourse {
		agg := core.ReviewAggregate{ReviewCount: len(reviews)}
		if rs := ratings[code]; len(rs) > 0 {
			agg.AvgRating = round1(mean(rs))
		}
		if hs := workloadHours[code]; len(hs) > 0 {
			agg.AvgWorkloadHours = mean(hs)
		}
		aggregates[code] = agg
	}

	return &Set{ByCourse: byCourse, Aggregates: aggregates}
}

// positiveInt parses a strictly positive integer.
func positiveInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// ratingOrDefault parses a rating field, substituting the default on
// missing or invalid values.
func ratingOrDefault(s string) int {
	if v, ok := positiveInt(s); ok {
		return v
	}
	return defaultRating
}

// workloadLabel maps the 1-5 workload rating onto its label.
// Invalid values read as the middle of the scale.
func workloadLabel(s string) string {
	rating, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		rating = 3
	}
	switch {
	case rating <= 2:
		return "Light"
	case rating == 3:
		return "Medium"
	default:
		return "Heavy"
	}
}

// semester extracts the date part of an ISO timestamp.
func semester(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 {
		return ts[:i]
	}
	return ts
}

func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
