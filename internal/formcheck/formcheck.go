// Package formcheck implements the form validator (§4.G): the gate
// every AffixForm hypothesis from the decomposer must clear before it
// is accepted as explaining a surface word, whether standalone or as
// one segment of a compound.
package formcheck

import (
	"github.com/az-ai-labs/hunspell/internal/casing"
	"github.com/az-ai-labs/hunspell/internal/model"
)

// Validator holds the configuration a form check needs beyond the form
// itself: the affix description's special flags and the active casing
// mode (for the German sharps exception).
type Validator struct {
	Directives *model.Directives
	Casing     casing.Casing

	// AllowNoSuggest, when false (the default query mode), rejects
	// forms whose dictionary word carries NOSUGGEST. check() wants
	// NOSUGGEST words treated as correct; suggest()'s candidate
	// generation wants them excluded entirely. Exposed as a field so
	// callers choose per query rather than per engine.
	AllowNoSuggest bool
}

// Accept reports whether form, matched against lw's capitalization and
// compound position, passes every form-validator gate in spec.md §4.G.
// Accept assumes form.Word is already bound to the dictionary homonym
// being tested — the caller tries each homonym of form.Stem in turn.
func (v *Validator) Accept(form model.AffixForm, lw model.LKWord) bool {
	if form.Word == nil {
		return false
	}
	w := form.Word
	d := v.Directives

	if !v.AllowNoSuggest && d.NoSuggest.Has() && w.HasFlag(d.NoSuggest) {
		return false
	}

	if !v.acceptCasing(lw, w) {
		return false
	}

	if !v.acceptNeedAffix(form, w) {
		return false
	}

	if !v.acceptCircumfix(form) {
		return false
	}

	formFlags := form.Flags()
	if form.OuterPrefix != nil && !formFlags.Has(form.OuterPrefix.Class) {
		return false
	}
	if form.OuterSuffix != nil && !formFlags.Has(form.OuterSuffix.Class) {
		return false
	}

	if !v.acceptCompoundPosition(form, lw) {
		return false
	}

	return true
}

// acceptCasing implements: reject if the surface's CapType differs from
// the dictionary Word's CapType, the Word carries KEEPCASE, and the
// word isn't a sharps-bearing stem being matched under German mode's
// ß/ss equivalence (which makes the two cases the same word).
func (v *Validator) acceptCasing(lw model.LKWord, w *model.Word) bool {
	d := v.Directives
	if lw.CapType == w.CapType {
		return true
	}
	if !d.KeepCase.Has() || !w.HasFlag(d.KeepCase) {
		return true
	}
	if d.CheckSharps && v.Casing != nil {
		fold := func(s string) string { return v.Casing.SharpSFold(casing.ToLower(v.Casing, s)) }
		if fold(lw.Surface) == fold(w.Stem) {
			return true
		}
	}
	return false
}

// acceptNeedAffix implements: a form with affixes must not have every
// one of them carrying NEEDAFFIX; a form with none must not have the
// root itself carry NEEDAFFIX.
func (v *Validator) acceptNeedAffix(form model.AffixForm, w *model.Word) bool {
	d := v.Directives
	if !d.NeedAffix.Has() {
		return true
	}
	if !form.HasAffix() {
		return !w.HasFlag(d.NeedAffix)
	}
	affixes := outerInnerAffixFlags(form)
	if len(affixes) == 0 {
		return true
	}
	for _, flags := range affixes {
		if !flags.Has(d.NeedAffix) {
			return true // at least one affix lacks NEEDAFFIX
		}
	}
	return false // every affix carries NEEDAFFIX
}

func outerInnerAffixFlags(form model.AffixForm) []model.FlagSet {
	var out []model.FlagSet
	if form.OuterPrefix != nil {
		out = append(out, form.OuterPrefix.Flags)
	}
	if form.InnerPrefix != nil {
		out = append(out, form.InnerPrefix.Flags)
	}
	if form.OuterSuffix != nil {
		out = append(out, form.OuterSuffix.Flags)
	}
	if form.InnerSuffix != nil {
		out = append(out, form.InnerSuffix.Flags)
	}
	return out
}

// acceptCircumfix implements CIRCUMFIX symmetry: outer prefix carries
// CIRCUMFIX iff outer suffix does.
func (v *Validator) acceptCircumfix(form model.AffixForm) bool {
	d := v.Directives
	if !d.Circumfix.Has() {
		return true
	}
	prefixHas := form.OuterPrefix != nil && form.OuterPrefix.Flags.Has(d.Circumfix)
	suffixHas := form.OuterSuffix != nil && form.OuterSuffix.Flags.Has(d.Circumfix)
	return prefixHas == suffixHas
}

// acceptCompoundPosition implements the compound-position gate.
func (v *Validator) acceptCompoundPosition(form model.AffixForm, lw model.LKWord) bool {
	d := v.Directives
	flags := form.Flags()

	if lw.Position == model.PosUndefined {
		if d.OnlyInCompound.Has() && flags.Has(d.OnlyInCompound) {
			return false
		}
		return true
	}

	if d.CompoundFlag.Has() && flags.Has(d.CompoundFlag) {
		return true
	}

	var want model.Flag
	switch lw.Position {
	case model.PosBegin:
		want = d.CompoundBegin
	case model.PosMiddle:
		want = d.CompoundMiddle
	case model.PosEnd:
		want = d.CompoundEnd
	}
	return want.Has() && flags.Has(want)
}

// IsForbidden reports whether w is marked FORBIDDENWORD.
func (v *Validator) IsForbidden(w *model.Word) bool {
	d := v.Directives
	return d.ForbiddenWord.Has() && w.HasFlag(d.ForbiddenWord)
}

// IsWarn reports whether w is marked WARN.
func (v *Validator) IsWarn(w *model.Word) bool {
	d := v.Directives
	return d.Warn.Has() && w.HasFlag(d.Warn)
}
