package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTagList(t *testing.T) {
	t.Run("bracketed single-quoted list", func(t *testing.T) {
		tags := DecodeTagList("['Python', 'Data Analysis', 'SQL']")
		assert.Equal(t, []string{"Python", "Data Analysis", "SQL"}, tags)
	})

	t.Run("bracketed double-quoted list", func(t *testing.T) {
		tags := DecodeTagList(`["Machine Learning", "Statistics"]`)
		assert.Equal(t, []string{"Machine Learning", "Statistics"}, tags)
	})

	t.Run("bare comma-separated list", func(t *testing.T) {
		tags := DecodeTagList("Python, Data Analysis")
		assert.Equal(t, []string{"Python", "Data Analysis"}, tags)
	})

	t.Run("single token", func(t *testing.T) {
		assert.Equal(t, []string{"Python"}, DecodeTagList("Python"))
	})

	t.Run("order is preserved", func(t *testing.T) {
		tags := DecodeTagList("['c', 'a', 'b']")
		assert.Equal(t, []string{"c", "a", "b"}, tags)
	})

	t.Run("empty and blank tokens are dropped", func(t *testing.T) {
		tags := DecodeTagList("['Python', '', ' ']")
		assert.Equal(t, []string{"Python"}, tags)
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Nil(t, DecodeTagList(""))
		assert.Nil(t, DecodeTagList("   "))
		assert.Nil(t, DecodeTagList("[]"))
	})
}
