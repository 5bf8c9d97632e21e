package decompose

import (
	"testing"

	"github.com/az-ai-labs/hunspell/internal/affixtab"
	"github.com/az-ai-labs/hunspell/internal/condition"
	"github.com/az-ai-labs/hunspell/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCond(t *testing.T, pat string, side condition.Side) *condition.Condition {
	t.Helper()
	c, err := condition.Compile(pat, side)
	require.NoError(t, err)
	return c
}

// "walking" -> strip "ing", restore nothing, stem "walk". Flag S.
func TestEnumerateSingleSuffix(t *testing.T) {
	suf := &model.Suffix{
		Class:     "S",
		Add:       "ing",
		Condition: mustCond(t, ".", condition.AtStart),
	}
	table := affixtab.New(nil, []*model.Suffix{suf})
	d := &Decomposer{Affix: table}

	lw := model.LKWord{Surface: "walking"}
	var forms []model.AffixForm
	d.Enumerate(lw, model.LKFlags{}, func(f model.AffixForm) bool {
		forms = append(forms, f)
		return true
	})

	require.Len(t, forms, 2) // identity + single-suffix
	assert.Equal(t, "walking", forms[0].Stem)
	assert.Nil(t, forms[0].OuterSuffix)
	assert.Equal(t, "walk", forms[1].Stem)
	assert.Same(t, suf, forms[1].OuterSuffix)
	assert.Equal(t, "walking", forms[1].Rebuild())
}

// "un" + stem + "s": prefix UN (cross-product) combined with suffix S.
func TestEnumerateCrossProduct(t *testing.T) {
	pre := &model.Prefix{
		Class:        "P",
		Add:          "un",
		CrossProduct: true,
		Condition:    mustCond(t, ".", condition.AtEnd),
	}
	suf := &model.Suffix{
		Class:        "S",
		Add:          "s",
		CrossProduct: true,
		Condition:    mustCond(t, ".", condition.AtStart),
	}
	table := affixtab.New([]*model.Prefix{pre}, []*model.Suffix{suf})
	d := &Decomposer{Affix: table}

	lw := model.LKWord{Surface: "undoes"}
	var found bool
	d.Enumerate(lw, model.LKFlags{}, func(f model.AffixForm) bool {
		if f.OuterPrefix == pre && f.OuterSuffix == suf {
			found = true
			assert.Equal(t, "doe", f.Stem)
			assert.Equal(t, "undoes", f.Rebuild())
		}
		return true
	})
	assert.True(t, found, "expected a cross-product decomposition")
}

func TestEnumerateStopsEarly(t *testing.T) {
	suf := &model.Suffix{
		Class:     "S",
		Add:       "s",
		Condition: mustCond(t, ".", condition.AtStart),
	}
	table := affixtab.New(nil, []*model.Suffix{suf})
	d := &Decomposer{Affix: table}

	lw := model.LKWord{Surface: "cats"}
	var calls int
	d.Enumerate(lw, model.LKFlags{}, func(f model.AffixForm) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestEnumeratePositionRestrictsSide(t *testing.T) {
	pre := &model.Prefix{Class: "P", Add: "un", Condition: mustCond(t, ".", condition.AtEnd)}
	suf := &model.Suffix{Class: "S", Add: "s", Condition: mustCond(t, ".", condition.AtStart)}
	table := affixtab.New([]*model.Prefix{pre}, []*model.Suffix{suf})
	d := &Decomposer{Affix: table}

	// At PosEnd (last piece of a compound) only suffixes are tried.
	lw := model.LKWord{Surface: "unruns", Position: model.PosEnd}
	var sawPrefix bool
	d.Enumerate(lw, model.LKFlags{}, func(f model.AffixForm) bool {
		if f.OuterPrefix != nil {
			sawPrefix = true
		}
		return true
	})
	assert.False(t, sawPrefix)
}
