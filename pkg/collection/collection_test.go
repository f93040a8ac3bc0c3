package collection_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/feastbook/pkg/collection"
)

type item struct {
	name  string
	price int
}

func TestFilterNeverNil(t *testing.T) {
	got := collection.Filter([]int{1, 2, 3}, func(int) bool { return false })
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Equal(t, []int{2}, collection.Filter([]int{1, 2, 3}, func(v int) bool { return v == 2 }))
}

func TestSortStableByKeepsInputOrderOnTies(t *testing.T) {
	items := []item{{"a", 3}, {"b", 1}, {"c", 3}, {"d", 1}, {"e", 2}}
	collection.SortStableBy(items, func(x, y item) int { return x.price - y.price })

	names := collection.Map(items, func(i item) string { return i.name })
	assert.Equal(t, []string{"b", "d", "e", "a", "c"}, names)
}

func TestSortByKeyUsesTieBreaker(t *testing.T) {
	items := []item{{"z", 1}, {"a", 1}, {"m", 0}}
	collection.SortByKey(items, func(i item) int { return i.price }, func(x, y item) int {
		return strings.Compare(x.name, y.name)
	})
	assert.Equal(t, []item{{"m", 0}, {"a", 1}, {"z", 1}}, items)
}

func TestKeyByFirstWins(t *testing.T) {
	m := collection.KeyBy([]item{{"a", 1}, {"a", 2}, {"b", 3}}, func(i item) string { return i.name })
	assert.Equal(t, 1, m["a"].price)
	assert.Len(t, m, 2)
}

func TestValuesAndReduce(t *testing.T) {
	vals := collection.Values(map[string]int{"x": 1, "y": 2, "z": 3})
	sort.Ints(vals)
	assert.Equal(t, []int{1, 2, 3}, vals)

	sum := collection.Reduce(vals, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, 6, sum)
}

func TestFirstAndContains(t *testing.T) {
	v, ok := collection.First([]string{"a", "bb", "cc"}, func(s string) bool { return len(s) == 2 })
	assert.True(t, ok)
	assert.Equal(t, "bb", v)
	assert.False(t, collection.Contains([]string{"a"}, func(s string) bool { return s == "q" }))
}
