package reindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func magnitude(v []float32) float64 {
	var sum float64
	for _, val := range v {
		sum += float64(val) * float64(val)
	}
	return math.Sqrt(sum)
}

func TestNormalize_UnitLength(t *testing.T) {
	v := Normalize([]float32{3, 4})
	require.Len(t, v, 2)
	assert.InDelta(t, 1.0, magnitude(v), 1e-6)
	assert.InDelta(t, 0.6, float64(v[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(v[1]), 1e-6)
}

func TestNormalize_AlreadyUnit(t *testing.T) {
	v := Normalize([]float32{0, 1, 0})
	assert.InDelta(t, 1.0, magnitude(v), 1e-6)
	assert.Equal(t, []float32{0, 1, 0}, v)
}

func TestNormalize_ZeroVector(t *testing.T) {
	v := Normalize([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, v)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]float32{}))
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	original := []float32{3, 4}
	Normalize(original)
	assert.Equal(t, []float32{3, 4}, original)
}
