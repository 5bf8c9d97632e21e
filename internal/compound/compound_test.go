package compound

import (
	"testing"

	"github.com/az-ai-labs/hunspell/internal/affixtab"
	"github.com/az-ai-labs/hunspell/internal/decompose"
	"github.com/az-ai-labs/hunspell/internal/dict"
	"github.com/az-ai-labs/hunspell/internal/formcheck"
	"github.com/az-ai-labs/hunspell/internal/model"
	"github.com/stretchr/testify/require"
)

func TestCompoundsByFlagsSimpleTwoPart(t *testing.T) {
	d := &model.Directives{CompoundMin: 1, CompoundFlag: "C"}

	dictIdx := dict.New(nil)
	dictIdx.Add(&model.Word{Stem: "book", Flags: model.NewFlagSet("C")})
	dictIdx.Add(&model.Word{Stem: "shelf", Flags: model.NewFlagSet("C")})

	table := affixtab.New(nil, nil)
	checker := &formcheck.Checker{
		Decomp:    &decompose.Decomposer{Affix: table},
		Dict:      dictIdx,
		Validator: &formcheck.Validator{Directives: d},
	}
	engine := &Engine{Checker: checker, Directives: d}

	word := model.LKWord{Surface: "bookshelf", Dict: dictIdx, Affix: table}
	forms := engine.CompoundForms(word)

	require.NotEmpty(t, forms)
	var found bool
	for _, cf := range forms {
		if cf.Concat() == "bookshelf" && len(cf) == 2 {
			found = true
		}
	}
	require.True(t, found, "expected a two-part book+shelf compound")
}

func TestCompoundsByRulesSimple(t *testing.T) {
	d := &model.Directives{}
	dictIdx := dict.New(nil)
	dictIdx.Add(&model.Word{Stem: "fire", Flags: model.NewFlagSet("A")})
	dictIdx.Add(&model.Word{Stem: "truck", Flags: model.NewFlagSet("B")})

	table := affixtab.New(nil, nil)
	checker := &formcheck.Checker{
		Decomp:    &decompose.Decomposer{Affix: table},
		Dict:      dictIdx,
		Validator: &formcheck.Validator{Directives: d},
	}
	engine := &Engine{
		Checker:    checker,
		Directives: d,
		Rules:      []Rule{{{Flag: "A"}, {Flag: "B"}}},
	}

	word := model.LKWord{Surface: "firetruck", Dict: dictIdx, Affix: table}
	forms := engine.CompoundForms(word)

	var found bool
	for _, cf := range forms {
		if cf.Concat() == "firetruck" {
			found = true
		}
	}
	require.True(t, found)
}

func newEmptyCheckerEngine(d *model.Directives) *Engine {
	dictIdx := dict.New(nil)
	table := affixtab.New(nil, nil)
	checker := &formcheck.Checker{
		Decomp:    &decompose.Decomposer{Affix: table},
		Dict:      dictIdx,
		Validator: &formcheck.Validator{Directives: d},
	}
	return &Engine{Checker: checker, Directives: d}
}

func TestIsBadCompoundForceUCase(t *testing.T) {
	d := &model.Directives{ForceUCase: "U"}
	engine := newEmptyCheckerEngine(d)

	w := &model.Word{Stem: "end", Flags: model.NewFlagSet("U")}
	cf := model.CompoundForm{
		{Text: "the", Stem: "the", Word: &model.Word{Stem: "the"}},
		{Text: "end", Stem: "end", Word: w},
	}
	require.True(t, engine.isBadCompound(cf, model.CapNo))
	require.False(t, engine.isBadCompound(cf, model.CapAll))
}

func TestIsBadCompoundCaseClash(t *testing.T) {
	d := &model.Directives{CheckCompoundCase: true}
	engine := newEmptyCheckerEngine(d)

	cf := model.CompoundForm{
		{Text: "foo", Stem: "foo", Word: &model.Word{Stem: "foo"}},
		{Text: "Bar", Stem: "Bar", Word: &model.Word{Stem: "Bar"}},
	}
	require.True(t, engine.isBadCompound(cf, model.CapNo))
}
