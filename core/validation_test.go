package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCourse(t *testing.T) {
	t.Run("valid scheduled course", func(t *testing.T) {
		course := &Course{
			Code:         "15-112",
			Name:         "Fundamentals of Programming",
			MeetingDays:  []string{"M", "W", "F"},
			MeetingSlots: []string{"9:00 AM", "9:30 AM"},
		}
		require.NoError(t, ValidateCourse(course))
	})

	t.Run("valid unscheduled course", func(t *testing.T) {
		course := &Course{Code: "15-819"}
		require.NoError(t, ValidateCourse(course))
	})

	t.Run("nil course", func(t *testing.T) {
		err := ValidateCourse(nil)
		assert.ErrorIs(t, err, ErrInvalidCourse)
	})

	t.Run("empty code", func(t *testing.T) {
		err := ValidateCourse(&Course{})
		assert.ErrorIs(t, err, ErrInvalidCourse)
		assert.ErrorIs(t, err, ErrEmptyCourseCode)
	})

	t.Run("days without slots", func(t *testing.T) {
		err := ValidateCourse(&Course{
			Code:        "15-112",
			MeetingDays: []string{"M"},
		})
		assert.ErrorIs(t, err, ErrInconsistentSchedule)
	})

	t.Run("slots without days", func(t *testing.T) {
		err := ValidateCourse(&Course{
			Code:         "15-112",
			MeetingSlots: []string{"9:00 AM"},
		})
		assert.ErrorIs(t, err, ErrInconsistentSchedule)
	})
}

func TestValidateReview(t *testing.T) {
	t.Run("valid review", func(t *testing.T) {
		review := &Review{
			CourseCode: "15-112",
			Rating:     4,
			Comment:    "Great intro course.",
		}
		require.NoError(t, ValidateReview(review))
	})

	t.Run("nil review", func(t *testing.T) {
		err := ValidateReview(nil)
		assert.ErrorIs(t, err, ErrInvalidReview)
	})

	t.Run("empty course code", func(t *testing.T) {
		err := ValidateReview(&Review{Rating: 4})
		assert.ErrorIs(t, err, ErrEmptyCourseCode)
	})

	t.Run("rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, -1, 6} {
			err := ValidateReview(&Review{CourseCode: "15-112", Rating: rating})
			assert.ErrorIs(t, err, ErrRatingOutOfRange)
		}
	})
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ValidateRating(rating))
	}
	assert.Error(t, ValidateRating(0))
	assert.Error(t, ValidateRating(6))
}
