package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var cities = []string{"Portland", "Port Angeles", "San Francisco", "Boston"}

func TestFilterOptionsEmptyQueryKeepsAll(t *testing.T) {
	got := FilterOptions("", cities)

	assert.Equal(t, cities, got)
	// Returned slice is a copy, not an alias of the input.
	got[0] = "mutated"
	assert.Equal(t, "Portland", cities[0])
}

func TestFilterOptionsCaseInsensitiveSubstring(t *testing.T) {
	assert.Equal(t, []string{"Portland", "Port Angeles"}, FilterOptions("port", cities))
	assert.Equal(t, []string{"San Francisco"}, FilterOptions("FRAN", cities))
}

func TestFilterOptionsRequiresEveryTerm(t *testing.T) {
	assert.Equal(t, []string{"Port Angeles"}, FilterOptions("port an gel", cities))
	assert.Empty(t, FilterOptions("port boston", cities))
}

func TestFilterOptionsPreservesOrder(t *testing.T) {
	got := FilterOptions("o", cities)

	assert.Equal(t, []string{"Portland", "Port Angeles", "San Francisco", "Boston"}, got)
}

func TestOptionIDIsStableAndPositionIndependent(t *testing.T) {
	id := OptionID("Banana")

	assert.Equal(t, id, OptionID("Banana"))
	assert.NotEqual(t, id, OptionID("Apple"))
	assert.Regexp(t, `^option-[0-9a-f]{8}$`, id)
}
