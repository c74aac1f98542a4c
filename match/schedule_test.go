package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaitongg-bit/course-pilot/core"
)

func TestCompatible(t *testing.T) {
	scheduled := &core.Course{
		Code:         "15-112",
		MeetingDays:  []string{"M", "W"},
		MeetingSlots: []string{"9:00 AM", "9:30 AM"},
	}
	unscheduled := &core.Course{Code: "15-110", MeetingTime: "TBA"}

	t.Run("empty availability admits everything", func(t *testing.T) {
		assert.True(t, Compatible(scheduled, core.Availability{}))
		assert.True(t, Compatible(scheduled, nil))
		assert.True(t, Compatible(unscheduled, nil))
	})

	t.Run("full coverage is compatible", func(t *testing.T) {
		availability := core.Availability{
			"M": {"9:00 AM": true, "9:30 AM": true},
			"W": {"9:00 AM": true, "9:30 AM": true},
		}
		assert.True(t, Compatible(scheduled, availability))
	})

	t.Run("missing slot on one day rejects", func(t *testing.T) {
		availability := core.Availability{
			"M": {"9:00 AM": true, "9:30 AM": true},
			"W": {"9:00 AM": true},
		}
		assert.False(t, Compatible(scheduled, availability))
	})

	t.Run("missing day rejects", func(t *testing.T) {
		availability := core.Availability{
			"M": {"9:00 AM": true, "9:30 AM": true},
		}
		assert.False(t, Compatible(scheduled, availability))
	})

	t.Run("unscheduled course rejected under constraint", func(t *testing.T) {
		availability := core.Availability{
			"M": {"9:00 AM": true},
		}
		assert.False(t, Compatible(unscheduled, availability))
	})

	t.Run("availability superset is compatible", func(t *testing.T) {
		availability := core.Availability{
			"M": {"9:00 AM": true, "9:30 AM": true, "10:00 AM": true},
			"W": {"9:00 AM": true, "9:30 AM": true},
			"F": {"1:00 PM": true},
		}
		assert.True(t, Compatible(scheduled, availability))
	})
}
