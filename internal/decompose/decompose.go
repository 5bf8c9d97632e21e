// Package decompose enumerates (prefix, stem, suffix) hypotheses for a
// surface word (§4.F). Enumeration is lazy: callers supply a visitor
// that can stop the walk early by returning false, modeling the
// "stateful cursor" approach spec.md's design notes call for in a
// language without first-class generators.
package decompose

import (
	"regexp"

	"github.com/az-ai-labs/hunspell/internal/affixtab"
	"github.com/az-ai-labs/hunspell/internal/model"
)

// maxBreakDepth caps breakWord recursion (spec.md §4.F).
const maxBreakDepth = 10

// Decomposer enumerates AffixForm hypotheses against a fixed affix
// table. It holds no dictionary reference — dictionary membership is
// the form validator's job (§4.G), layered on top of Enumerate's raw
// hypotheses.
type Decomposer struct {
	Affix           *affixtab.Table
	ComplexPrefixes bool // COMPLEXPREFIXES: allow double-prefix decomposition
	Break           []*regexp.Regexp
}

// Visit is called with each candidate AffixForm. Returning false stops
// the enumeration early (the caller found what it needed).
type Visit func(model.AffixForm) bool

// Enumerate walks every decomposition hypothesis for lw under the
// compounding constraints in flags, in the order spec.md §4.F lists:
// identity, single-suffix, double-suffix, single-prefix, cross-product,
// double-prefix (if enabled).
func (d *Decomposer) Enumerate(lw model.LKWord, flags model.LKFlags, visit Visit) {
	surface := lw.Surface

	// 1. Identity form: no affixes at all.
	if !visit(model.AffixForm{Text: surface, Stem: surface}) {
		return
	}

	suffixAllowed := lw.Position == model.PosUndefined || lw.Position == model.PosEnd || !flags.Suffix.Empty()
	prefixAllowed := lw.Position == model.PosUndefined || lw.Position == model.PosBegin || !flags.Prefix.Empty()

	// 2 & 3. Suffix decompositions (single, then double).
	if suffixAllowed {
		cont := true
		d.eachSuffix(surface, flags.Suffix, flags.Forbidden, func(outer *model.Suffix, stem string) bool {
			form := model.AffixForm{Text: surface, Stem: stem, OuterSuffix: outer}
			if !visit(form) {
				cont = false
				return false
			}

			// Double-suffix: the already-found (outer) suffix's class
			// flag must appear among the inner suffix's contributed
			// flags — the standard Hunspell two-affix stacking rule —
			// in addition to whatever the compounding context already
			// requires (spec.md §9 leaves the exact required-set
			// composition ambiguous; this is the documented decision).
			required := model.NewFlagSet(outer.Class).Union(flags.Suffix)
			d.eachSuffix(stem, required, flags.Forbidden, func(inner *model.Suffix, innerStem string) bool {
				form2 := model.AffixForm{Text: surface, Stem: innerStem, OuterSuffix: outer, InnerSuffix: inner}
				if !visit(form2) {
					cont = false
					return false
				}
				return true
			})
			return cont
		})
		if !cont {
			return
		}
	}

	// 4. Single-prefix (and 6, double-prefix).
	if prefixAllowed {
		cont := true
		d.eachPrefix(surface, flags.Prefix, flags.Forbidden, func(outer *model.Prefix, stem string) bool {
			form := model.AffixForm{Text: surface, Stem: stem, OuterPrefix: outer}
			if !visit(form) {
				cont = false
				return false
			}

			// 5. Cross-product: combine this prefix with a suffix on
			// the remaining stem, if both sides allow it.
			if outer.CrossProduct {
				d.eachCrossSuffix(stem, flags.Suffix, flags.Forbidden, func(suf *model.Suffix, finalStem string) bool {
					xform := model.AffixForm{Text: surface, Stem: finalStem, OuterPrefix: outer, OuterSuffix: suf}
					if !visit(xform) {
						cont = false
						return false
					}
					return true
				})
				if !cont {
					return false
				}
			}

			// 6. Double-prefix, only under COMPLEXPREFIXES.
			if d.ComplexPrefixes {
				required := model.NewFlagSet(outer.Class).Union(flags.Prefix)
				d.eachPrefix(stem, required, flags.Forbidden, func(inner *model.Prefix, innerStem string) bool {
					form2 := model.AffixForm{Text: surface, Stem: innerStem, OuterPrefix: outer, InnerPrefix: inner}
					if !visit(form2) {
						cont = false
						return false
					}
					return true
				})
			}
			return cont
		})
		if !cont {
			return
		}
	}
}

// eachSuffix calls fn for every suffix candidate on surface whose
// condition matches and whose flags are compatible with required and
// forbidden. fn returns false to stop.
func (d *Decomposer) eachSuffix(surface string, required, forbidden model.FlagSet, fn func(*model.Suffix, string) bool) {
	for _, s := range d.Affix.CandidateSuffixes(surface) {
		if !s.On(surface) {
			continue
		}
		if !s.Compatible(required, forbidden) {
			continue
		}
		if !fn(s, s.Apply(surface)) {
			return
		}
	}
}

func (d *Decomposer) eachPrefix(surface string, required, forbidden model.FlagSet, fn func(*model.Prefix, string) bool) {
	for _, p := range d.Affix.CandidatePrefixes(surface) {
		if !p.On(surface) {
			continue
		}
		if !p.Compatible(required, forbidden) {
			continue
		}
		if !fn(p, p.Apply(surface)) {
			return
		}
	}
}

// eachCrossSuffix is like eachSuffix but additionally requires the
// suffix to be cross-product capable.
func (d *Decomposer) eachCrossSuffix(surface string, required, forbidden model.FlagSet, fn func(*model.Suffix, string) bool) {
	for _, s := range d.Affix.CandidateSuffixes(surface) {
		if !s.CrossProduct {
			continue
		}
		if !s.On(surface) {
			continue
		}
		if !s.Compatible(required, forbidden) {
			continue
		}
		if !fn(s, s.Apply(surface)) {
			return
		}
	}
}
