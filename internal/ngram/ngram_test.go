package ngram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootScoreIdenticalIsHighest(t *testing.T) {
	same := RootScore("teh", "teh")
	diff := RootScore("teh", "xyz")
	assert.Greater(t, same, diff)
}

func TestRootScoreRewardsSharedPrefix(t *testing.T) {
	withPrefix := RootScore("running", "runner")
	noPrefix := RootScore("running", "zzzzzzz")
	assert.Greater(t, withPrefix, noPrefix)
}

func TestRoughAffixScoreExactMatch(t *testing.T) {
	assert.Greater(t, RoughAffixScore("hello", "hello"), RoughAffixScore("hello", "zzzzz"))
}

func TestPreciseAffixScoreCloserIsBetter(t *testing.T) {
	close := PreciseAffixScore("speling", "spelling", 1, 0, false)
	far := PreciseAffixScore("speling", "zzzzzzzz", 1, 0, false)
	assert.Greater(t, close, far)
}

func TestPreciseAffixScorePhoneticNudge(t *testing.T) {
	without := PreciseAffixScore("cat", "cot", 1, 0, false)
	with := PreciseAffixScore("cat", "cot", 1, 0, true)
	assert.Greater(t, with, without)
}

func TestScoreThresholdGrowsWithLength(t *testing.T) {
	assert.Less(t, ScoreThreshold("ab"), ScoreThreshold("abcdefgh"))
}

func TestScoresListBoundedTopN(t *testing.T) {
	l := NewScoresList[string](2)
	l.Add(5, "a")
	l.Add(1, "b")
	kept := l.Add(10, "c")
	assert.True(t, kept)
	assert.Equal(t, 2, l.Len())

	rejected := l.Add(0, "d")
	assert.False(t, rejected)

	assert.Equal(t, []string{"c", "a"}, l.Finish())
}
