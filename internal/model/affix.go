package model

import (
	"strings"

	"github.com/az-ai-labs/hunspell/internal/condition"
)

// Prefix is one PFX entry: attaches Add to the front of a stem after
// restoring Strip, contributing Flags to the resulting form.
type Prefix struct {
	Class        Flag
	Strip        string
	Add          string
	Condition    *condition.Condition
	CrossProduct bool
	Flags        FlagSet // flags this affix contributes to the form
}

// On reports whether the surface could have been produced by applying
// this prefix: surface must start with Add, and the condition must
// match the stem that results from stripping Add and restoring Strip.
func (p *Prefix) On(surface string) bool {
	if !strings.HasPrefix(surface, p.Add) {
		return false
	}
	stem := p.Strip + surface[len(p.Add):]
	return p.Condition.Match(stem)
}

// Apply returns the stem this prefix implies for surface. Caller must
// have already verified On(surface).
func (p *Prefix) Apply(surface string) string {
	return p.Strip + surface[len(p.Add):]
}

// Unapply returns the surface form this prefix produces from stem.
// Caller must have already verified the stem is eligible (condition
// matches the portion of stem after Strip is removed).
func (p *Prefix) Unapply(stem string) string {
	return p.Add + strings.TrimPrefix(stem, p.Strip)
}

// Compatible reports whether this affix may be used given the
// constraints accumulated from an outer decomposition: p.Flags must
// share at least one flag with required (an empty required means
// "any"), and forbidden must share nothing with p.Flags.
func (p *Prefix) Compatible(required, forbidden FlagSet) bool {
	if !required.Empty() && !p.Flags.Intersects(required) {
		return false
	}
	return p.Flags.Disjoint(forbidden)
}

// Suffix is one SFX entry; symmetrical to Prefix but anchored at the
// end of the surface string.
type Suffix struct {
	Class        Flag
	Strip        string
	Add          string
	Condition    *condition.Condition
	CrossProduct bool
	Flags        FlagSet
}

func (s *Suffix) On(surface string) bool {
	if !strings.HasSuffix(surface, s.Add) {
		return false
	}
	stem := surface[:len(surface)-len(s.Add)] + s.Strip
	return s.Condition.Match(stem)
}

func (s *Suffix) Apply(surface string) string {
	return surface[:len(surface)-len(s.Add)] + s.Strip
}

func (s *Suffix) Unapply(stem string) string {
	return strings.TrimSuffix(stem, s.Strip) + s.Add
}

func (s *Suffix) Compatible(required, forbidden FlagSet) bool {
	if !required.Empty() && !s.Flags.Intersects(required) {
		return false
	}
	return s.Flags.Disjoint(forbidden)
}
