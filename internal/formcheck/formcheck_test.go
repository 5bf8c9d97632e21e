package formcheck

import (
	"testing"

	"github.com/az-ai-labs/hunspell/internal/casing"
	"github.com/az-ai-labs/hunspell/internal/model"
	"github.com/stretchr/testify/assert"
)

func baseWord(stem string, flags ...model.Flag) *model.Word {
	return &model.Word{Stem: stem, CapType: model.CapNo, Flags: model.NewFlagSet(flags...)}
}

func TestAcceptRejectsNilWord(t *testing.T) {
	v := &Validator{Directives: &model.Directives{}}
	ok := v.Accept(model.AffixForm{}, model.LKWord{})
	assert.False(t, ok)
}

func TestAcceptNoSuggestExcludedByDefault(t *testing.T) {
	w := baseWord("cat", "N")
	d := &model.Directives{NoSuggest: "N"}
	v := &Validator{Directives: d}
	form := model.AffixForm{Text: "cat", Stem: "cat", Word: w}
	assert.False(t, v.Accept(form, model.LKWord{Surface: "cat"}))

	v.AllowNoSuggest = true
	assert.True(t, v.Accept(form, model.LKWord{Surface: "cat"}))
}

func TestAcceptKeepCaseRejectsCaseMismatch(t *testing.T) {
	w := baseWord("Paris", "K")
	w.CapType = model.CapInit
	d := &model.Directives{KeepCase: "K"}
	v := &Validator{Directives: d}

	form := model.AffixForm{Text: "paris", Stem: "paris", Word: w}
	assert.False(t, v.Accept(form, model.LKWord{Surface: "paris", CapType: model.CapNo}))

	form2 := model.AffixForm{Text: "Paris", Stem: "Paris", Word: w}
	assert.True(t, v.Accept(form2, model.LKWord{Surface: "Paris", CapType: model.CapInit}))
}

func TestAcceptKeepCaseSharpSException(t *testing.T) {
	w := baseWord("straße", "K")
	d := &model.Directives{KeepCase: "K", CheckSharps: true}
	v := &Validator{Directives: d, Casing: casing.German{}}

	form := model.AffixForm{Text: "STRASSE", Stem: "STRASSE", Word: w}
	assert.True(t, v.Accept(form, model.LKWord{Surface: "STRASSE", CapType: model.CapAll}))
}

func TestAcceptNeedAffixRequiresAtLeastOneFreeAffix(t *testing.T) {
	w := baseWord("run")
	d := &model.Directives{NeedAffix: "X"}
	v := &Validator{Directives: d}

	// No affixes at all: root itself must not carry NEEDAFFIX.
	form := model.AffixForm{Text: "run", Stem: "run", Word: w}
	assert.True(t, v.Accept(form, model.LKWord{Surface: "run"}))

	w2 := baseWord("run", "X")
	form2 := model.AffixForm{Text: "run", Stem: "run", Word: w2}
	assert.False(t, v.Accept(form2, model.LKWord{Surface: "run"}))

	// With an affix that doesn't carry NEEDAFFIX, the word is fine even
	// if the dictionary word itself carries NEEDAFFIX=false semantics.
	suf := &model.Suffix{Class: "S", Flags: model.NewFlagSet("S")}
	form3 := model.AffixForm{Text: "runs", Stem: "run", Word: w, OuterSuffix: suf}
	assert.True(t, v.Accept(form3, model.LKWord{Surface: "runs"}))
}

func TestAcceptCircumfixSymmetry(t *testing.T) {
	w := baseWord("stem")
	d := &model.Directives{Circumfix: "C"}
	v := &Validator{Directives: d}

	pre := &model.Prefix{Class: "P", Flags: model.NewFlagSet("P", "C")}
	suf := &model.Suffix{Class: "S", Flags: model.NewFlagSet("S")}
	form := model.AffixForm{Text: "pstems", Stem: "stem", Word: w, OuterPrefix: pre, OuterSuffix: suf}
	assert.False(t, v.Accept(form, model.LKWord{Surface: "pstems"}))

	suf2 := &model.Suffix{Class: "S", Flags: model.NewFlagSet("S", "C")}
	form2 := model.AffixForm{Text: "pstems", Stem: "stem", Word: w, OuterPrefix: pre, OuterSuffix: suf2}
	assert.True(t, v.Accept(form2, model.LKWord{Surface: "pstems"}))
}

func TestAcceptCompoundPosition(t *testing.T) {
	d := &model.Directives{CompoundBegin: "B", OnlyInCompound: "O"}
	v := &Validator{Directives: d}

	w := baseWord("foo", "O")
	form := model.AffixForm{Text: "foo", Stem: "foo", Word: w}
	// Undefined position + ONLYINCOMPOUND => reject.
	assert.False(t, v.Accept(form, model.LKWord{Surface: "foo", Position: model.PosUndefined}))

	wBegin := baseWord("foo", "B")
	formBegin := model.AffixForm{Text: "foo", Stem: "foo", Word: wBegin}
	assert.True(t, v.Accept(formBegin, model.LKWord{Surface: "foo", Position: model.PosBegin}))

	wPlain := baseWord("foo")
	formPlain := model.AffixForm{Text: "foo", Stem: "foo", Word: wPlain}
	assert.False(t, v.Accept(formPlain, model.LKWord{Surface: "foo", Position: model.PosBegin}))
}

func TestIsForbiddenAndWarn(t *testing.T) {
	d := &model.Directives{ForbiddenWord: "!", Warn: "W"}
	v := &Validator{Directives: d}
	w := baseWord("badword", "!", "W")
	assert.True(t, v.IsForbidden(w))
	assert.True(t, v.IsWarn(w))

	clean := baseWord("goodword")
	assert.False(t, v.IsForbidden(clean))
	assert.False(t, v.IsWarn(clean))
}
