package gpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeOptions_Table(t *testing.T) {
	opts := GradeOptions()
	require.Len(t, opts, 9)
	assert.Equal(t, "A+", opts[0].Label)
	assert.Equal(t, "F", opts[len(opts)-1].Label)

	seen := make(map[string]bool)
	for i, o := range opts {
		assert.False(t, seen[o.Label], "标签重复: %s", o.Label)
		seen[o.Label] = true
		if i > 0 {
			assert.Less(t, o.PointsOnFourScale, opts[i-1].PointsOnFourScale)
			assert.Less(t, o.PointsOnFiveScale, opts[i-1].PointsOnFiveScale)
		}
		assert.GreaterOrEqual(t, o.PointsOnFourScale, 0.0)
		assert.LessOrEqual(t, o.PointsOnFourScale, 4.0)
		assert.GreaterOrEqual(t, o.PointsOnFiveScale, 0.0)
		assert.LessOrEqual(t, o.PointsOnFiveScale, 5.0)
	}
}

func TestGradeOptions_ReturnsCopy(t *testing.T) {
	opts := GradeOptions()
	opts[0].PointsOnFourScale = 99

	g, ok := Lookup("A+")
	require.True(t, ok)
	assert.Equal(t, 4.0, g.PointsOnFourScale)
}

func TestLookup(t *testing.T) {
	g, ok := Lookup("B+")
	require.True(t, ok)
	assert.Equal(t, 3.5, g.PointsOnFourScale)
	assert.Equal(t, 4.5, g.PointsOnFiveScale)

	f, ok := Lookup("F")
	require.True(t, ok)
	assert.Equal(t, 0.0, f.PointsOnFourScale)
	assert.Equal(t, 1.0, f.PointsOnFiveScale)

	_, ok = Lookup("")
	assert.False(t, ok)
	_, ok = Lookup("A ")
	assert.False(t, ok)
	assert.True(t, IsKnownLabel("D"))
	assert.False(t, IsKnownLabel("E"))
}

func TestCreditOptions(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, CreditOptions())
	assert.Contains(t, CreditOptions(), DefaultCredits)
}
