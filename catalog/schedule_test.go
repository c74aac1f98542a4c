package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDays(t *testing.T) {
	t.Run("splits day codes", func(t *testing.T) {
		assert.Equal(t, []string{"M", "W", "F"}, ParseDays("MWF"))
		assert.Equal(t, []string{"T", "R"}, ParseDays("TR"))
	})

	t.Run("lowercases are accepted", func(t *testing.T) {
		assert.Equal(t, []string{"M", "W"}, ParseDays("mw"))
	})

	t.Run("TBA yields no days", func(t *testing.T) {
		assert.Nil(t, ParseDays("TBA"))
	})

	t.Run("empty yields no days", func(t *testing.T) {
		assert.Nil(t, ParseDays(""))
		assert.Nil(t, ParseDays("   "))
	})

	t.Run("unrecognized characters are ignored", func(t *testing.T) {
		assert.Equal(t, []string{"M", "W"}, ParseDays("M/W"))
		assert.Nil(t, ParseDays("XYZ"))
	})
}

func TestParseSlots(t *testing.T) {
	t.Run("expands half-hour slots end exclusive", func(t *testing.T) {
		slots := ParseSlots("9:00 AM", "9:50 AM")
		assert.Equal(t, []string{"9:00 AM", "9:30 AM"}, slots)
	})

	t.Run("spans noon", func(t *testing.T) {
		slots := ParseSlots("11:30 AM", "1:00 PM")
		assert.Equal(t, []string{"11:30 AM", "12:00 PM", "12:30 PM"}, slots)
	})

	t.Run("midnight wraps to twelve", func(t *testing.T) {
		slots := ParseSlots("12:00 AM", "1:00 AM")
		assert.Equal(t, []string{"12:00 AM", "12:30 AM"}, slots)
	})

	t.Run("deterministic for repeated input", func(t *testing.T) {
		first := ParseSlots("2:30 PM", "3:50 PM")
		second := ParseSlots("2:30 PM", "3:50 PM")
		assert.Equal(t, first, second)
		assert.Equal(t, []string{"2:30 PM", "3:00 PM", "3:30 PM"}, first)
	})

	t.Run("dotted periods are tolerated", func(t *testing.T) {
		slots := ParseSlots("9:00 A.M.", "10:00 A.M.")
		assert.Equal(t, []string{"9:00 AM", "9:30 AM"}, slots)
	})

	t.Run("unparseable start yields no slots", func(t *testing.T) {
		assert.Nil(t, ParseSlots("TBA", "9:50 AM"))
		assert.Nil(t, ParseSlots("", "9:50 AM"))
		assert.Nil(t, ParseSlots("9 AM", "9:50 AM"))
	})

	t.Run("unparseable end yields no slots", func(t *testing.T) {
		assert.Nil(t, ParseSlots("9:00 AM", "later"))
	})

	t.Run("end before start yields no slots", func(t *testing.T) {
		assert.Empty(t, ParseSlots("10:00 AM", "9:00 AM"))
	})
}

func TestFormatSlot(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatSlot(0))
	assert.Equal(t, "9:30 AM", FormatSlot(9*60+30))
	assert.Equal(t, "12:00 PM", FormatSlot(12*60))
	assert.Equal(t, "1:00 PM", FormatSlot(13*60))
	assert.Equal(t, "11:30 PM", FormatSlot(23*60+30))
}

func TestMeetingTime(t *testing.T) {
	assert.Equal(t, "MWF 9:00 AM-9:50 AM", MeetingTime("MWF", "9:00 AM", "9:50 AM"))
	assert.Equal(t, "TBA", MeetingTime("", "9:00 AM", "9:50 AM"))
	assert.Equal(t, "TBA", MeetingTime("MWF", "", ""))
}
