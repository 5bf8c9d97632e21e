package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyNoRulesUppercases(t *testing.T) {
	assert.Equal(t, "HELLO", Table(nil).Key("hello"))
}

func TestKeyAppliesRule(t *testing.T) {
	table := Table{{Search: "ph", Replace: "f"}}
	assert.Equal(t, "FONE", table.Key("phone"))
}

func TestKeyStartAnchor(t *testing.T) {
	table := Table{{Search: "kn", Replace: "n", StartAnchor: true}}
	assert.Equal(t, "NOW", table.Key("know"))
	assert.Equal(t, "UKNOWN", table.Key("uknown")) // not at start, no match
}

func TestKeyEndAnchor(t *testing.T) {
	table := Table{{Search: "gh", Replace: "", EndAnchor: true}}
	assert.Equal(t, "HI", table.Key("high"))
}

func TestDistanceIdentical(t *testing.T) {
	assert.Equal(t, 0, Distance("CAT", "CAT"))
}

func TestDistanceOneSub(t *testing.T) {
	assert.Equal(t, 1, Distance("CAT", "COT"))
}

func TestCandidatesBoundedByMax(t *testing.T) {
	words := []string{"a", "b", "c"}
	keys := []string{"X", "X", "X"}
	out := Candidates("X", words, keys, 0, 2)
	assert.Len(t, out, 2)
}
