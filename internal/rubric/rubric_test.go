package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllKeysShape(t *testing.T) {
	keys := AllKeys()
	require.Len(t, keys, 20)

	counts := map[Category]int{}
	for _, key := range keys {
		cat, ok := CategoryOf(key)
		require.True(t, ok, "key %s has no category", key)
		counts[cat]++
		assert.NotEmpty(t, LabelOf(key), "key %s has no label", key)
		assert.True(t, Contains(key))
	}
	assert.Equal(t, 9, counts[CategoryInquiry])
	assert.Equal(t, 5, counts[CategorySelfDirection])
	assert.Equal(t, 6, counts[CategoryProblemSolving])
}

func TestMaxScoreOf(t *testing.T) {
	total := 0
	for _, key := range AllKeys() {
		max := MaxScoreOf(key)
		cat, _ := CategoryOf(key)
		if cat == CategorySelfDirection {
			assert.Equal(t, 5, max, "key %s", key)
		} else {
			assert.Equal(t, 7, max, "key %s", key)
		}
		total += max
	}
	// 9*7 + 5*5 + 6*7
	assert.Equal(t, 130, total)
}

func TestCategoryOfUnknown(t *testing.T) {
	for _, key := range []Key{"", "D1_foo", "x9_bar"} {
		_, ok := CategoryOf(key)
		assert.False(t, ok, "key %q", key)
	}
	// Known prefix still derives a category even for a non-rubric key.
	cat, ok := CategoryOf("A99_invented")
	assert.True(t, ok)
	assert.Equal(t, CategoryInquiry, cat)
	assert.False(t, Contains("A99_invented"))
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "탐구력", CategoryInquiry.Name())
	assert.Equal(t, "자기주도성", CategorySelfDirection.Name())
	assert.Equal(t, "창의적 문제해결", CategoryProblemSolving.Name())
	assert.Equal(t, []Category{"A", "B", "C"}, Categories())
}
