package compound

import (
	"testing"

	"github.com/az-ai-labs/hunspell/internal/model"
	"github.com/stretchr/testify/assert"
)

func fs(f model.Flag) model.FlagSet { return model.NewFlagSet(f) }

func TestRuleFullMatchSimple(t *testing.T) {
	r := Rule{{Flag: "A"}, {Flag: "B"}}
	assert.True(t, r.FullMatch([]model.FlagSet{fs("A"), fs("B")}))
	assert.False(t, r.FullMatch([]model.FlagSet{fs("A")}))
	assert.False(t, r.FullMatch([]model.FlagSet{fs("A"), fs("B"), fs("C")}))
}

func TestRuleStarToken(t *testing.T) {
	// "A*B" matches B, AB, AAB, ...
	r := Rule{{Flag: "A", Star: true}, {Flag: "B"}}
	assert.True(t, r.FullMatch([]model.FlagSet{fs("B")}))
	assert.True(t, r.FullMatch([]model.FlagSet{fs("A"), fs("B")}))
	assert.True(t, r.FullMatch([]model.FlagSet{fs("A"), fs("A"), fs("B")}))
	assert.False(t, r.FullMatch([]model.FlagSet{fs("A"), fs("A")}))
}

func TestRulePartialMatch(t *testing.T) {
	r := Rule{{Flag: "A"}, {Flag: "B"}, {Flag: "C"}}
	assert.True(t, r.PartialMatch([]model.FlagSet{fs("A")}))
	assert.True(t, r.PartialMatch([]model.FlagSet{fs("A"), fs("B")}))
	assert.False(t, r.PartialMatch([]model.FlagSet{fs("X")}))
}
