package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("15-112,Fundamentals of Programming")
		id2 := IDFromContent("15-112,Fundamentals of Programming")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content produces different IDs", func(t *testing.T) {
		id1 := IDFromContent("15-112")
		id2 := IDFromContent("15-213")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content produces valid ID", func(t *testing.T) {
		id := IDFromContent("")
		assert.NotZero(t, id)
	})
}

func TestCourseScheduled(t *testing.T) {
	scheduled := &Course{
		Code:         "15-112",
		MeetingDays:  []string{"M", "W", "F"},
		MeetingSlots: []string{"9:00 AM", "9:30 AM"},
	}
	assert.True(t, scheduled.Scheduled())

	tba := &Course{Code: "15-819"}
	assert.False(t, tba.Scheduled())
}

func TestProfileQueryText(t *testing.T) {
	t.Run("joins all fragments", func(t *testing.T) {
		p := &Profile{
			Goal:   "machine learning",
			Skills: []string{"python", "math"},
			Resume: "research assistant",
		}
		assert.Equal(t, "machine learning python math research assistant", p.QueryText())
	})

	t.Run("skips empty fragments", func(t *testing.T) {
		p := &Profile{Skills: []string{"", "go", "  "}}
		assert.Equal(t, "go", p.QueryText())
	})

	t.Run("empty profile yields empty string", func(t *testing.T) {
		p := &Profile{}
		assert.Equal(t, "", p.QueryText())
	})
}

func TestAvailabilityAllows(t *testing.T) {
	avail := Availability{
		"M": {"9:00 AM": true, "9:30 AM": true},
	}

	assert.True(t, avail.Allows("M", "9:00 AM"))
	assert.False(t, avail.Allows("M", "10:00 AM"))
	assert.False(t, avail.Allows("T", "9:00 AM"))

	var empty Availability
	require.Empty(t, empty)
	assert.False(t, empty.Allows("M", "9:00 AM"))
}
