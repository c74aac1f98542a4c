package review

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kaitongg-bit/course-pilot/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewRow(code, rating string) catalog.Row {
	return catalog.Row{
		"CourseID":      code,
		"RowID":         "r1",
		"Timestamp":     "2024-09-01T12:00:00",
		"OverallRating": rating,
		"Comment":       "Solid course overall.",
	}
}

func TestLoadGroupsByCourse(t *testing.T) {
	rows := []catalog.Row{
		reviewRow("15-112", "4"),
		reviewRow("15-112", "2"),
		reviewRow("15-213", "5"),
		reviewRow("", "5"), // no course code, skipped
	}

	set := Load(rows)
	assert.Len(t, set.Reviews("15-112"), 2)
	assert.Len(t, set.Reviews("15-213"), 1)
	assert.Len(t, set.ByCourse, 2)
}

func TestLoadAggregates(t *testing.T) {
	t.Run("average rating rounds to one decimal", func(t *testing.T) {
		set := Load([]catalog.Row{
			reviewRow("15-112", "4"),
			reviewRow("15-112", "2"),
		})
		agg := set.Aggregate("15-112")
		assert.Equal(t, 3.0, agg.AvgRating)
		assert.Equal(t, 2, agg.ReviewCount)
	})

	t.Run("invalid rating does not change the average", func(t *testing.T) {
		set := Load([]catalog.Row{
			reviewRow("15-112", "4"),
			reviewRow("15-112", "2"),
			reviewRow("15-112", "n/a"),
		})
		agg := set.Aggregate("15-112")
		assert.Equal(t, 3.0, agg.AvgRating)
		// The invalid row is still retained for display.
		assert.Len(t, set.Reviews("15-112"), 3)
		assert.Equal(t, 3, agg.ReviewCount)
	})

	t.Run("non-positive values are excluded", func(t *testing.T) {
		set := Load([]catalog.Row{
			reviewRow("15-112", "0"),
			reviewRow("15-112", "-3"),
		})
		agg := set.Aggregate("15-112")
		assert.Zero(t, agg.AvgRating)
		assert.Len(t, set.Reviews("15-112"), 2)
	})

	t.Run("workload hours average", func(t *testing.T) {
		rows := []catalog.Row{
			{"CourseID": "15-213", "OverallRating": "5", "WorkloadHours": "10"},
			{"CourseID": "15-213", "OverallRating": "4", "WorkloadHours": "14"},
			{"CourseID": "15-213", "OverallRating": "4", "WorkloadHours": "zero"},
		}
		agg := Load(rows).Aggregate("15-213")
		assert.Equal(t, 12.0, agg.AvgWorkloadHours)
	})

	t.Run("one third decimal rounding", func(t *testing.T) {
		set := Load([]catalog.Row{
			reviewRow("15-112", "5"),
			reviewRow("15-112", "5"),
			reviewRow("15-112", "4"),
		})
		assert.Equal(t, 4.7, set.Aggregate("15-112").AvgRating)
	})
}

func TestLoadReviewFields(t *testing.T) {
	rows := []catalog.Row{{
		"CourseID":       "15-112",
		"RowID":          "abc",
		"Timestamp":      "2024-09-01T12:00:00",
		"OverallRating":  "bad",
		"WorkloadRating": "5",
		"InterestRating": "2",
		"Comment":        "Heavy but worth it.",
		"Workflow":       "projects",
	}}

	set := Load(rows)
	reviews := set.Reviews("15-112")
	require.Len(t, reviews, 1)

	r := reviews[0]
	assert.Equal(t, "abc", r.RowId)
	assert.Equal(t, "Student", r.Author)
	assert.Equal(t, "2024-09-01", r.Semester)
	assert.Equal(t, 5, r.Rating) // invalid rating reads as default
	assert.Equal(t, "Heavy", r.Workload)
	assert.Equal(t, 2, r.Interest)
	assert.Equal(t, 5, r.Utility) // missing column reads as default
	assert.Equal(t, "projects", r.Workflow)
}

func TestWorkloadLabel(t *testing.T) {
	assert.Equal(t, "Light", workloadLabel("1"))
	assert.Equal(t, "Light", workloadLabel("2"))
	assert.Equal(t, "Medium", workloadLabel("3"))
	assert.Equal(t, "Heavy", workloadLabel("4"))
	assert.Equal(t, "Heavy", workloadLabel("5"))
	assert.Equal(t, "Medium", workloadLabel("not a number"))
	assert.Equal(t, "Medium", workloadLabel(""))
}

func TestLoadFile(t *testing.T) {
	t.Run("absent file yields empty set", func(t *testing.T) {
		set, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
		require.NoError(t, err)
		assert.Empty(t, set.ByCourse)
		assert.Empty(t, set.Aggregates)
	})

	t.Run("loads a review CSV", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reviews.csv")
		data := "CourseID,OverallRating,Comment\n15-112,4,Great\n15-112,2,Rough\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		set, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 3.0, set.Aggregate("15-112").AvgRating)
	})

	t.Run("empty file yields empty set", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reviews.csv")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		set, err := LoadFile(path)
		require.NoError(t, err)
		assert.Empty(t, set.ByCourse)
	})
}
