// Package dict indexes dictionary words (§4.E) for homonym lookup by
// stem, case-sensitive or not, and for per-stem flag queries. It is
// the engine's ground truth for "does this stem exist".
package dict

import (
	"strings"

	"github.com/az-ai-labs/hunspell/internal/model"
)

// Dictionary is a build-once, read-many index over a word list.
type Dictionary struct {
	byStem      map[string][]*model.Word
	byLowerStem map[string][]*model.Word
	lower       func(string) string
}

// New builds an empty Dictionary. lower is the engine's casing-aware
// lowering function (German/Turkic/Default), used to build the
// case-insensitive index.
func New(lower func(string) string) *Dictionary {
	if lower == nil {
		lower = strings.ToLower
	}
	return &Dictionary{
		byStem:      make(map[string][]*model.Word),
		byLowerStem: make(map[string][]*model.Word),
		lower:       lower,
	}
}

// Add inserts w into the index.
func (d *Dictionary) Add(w *model.Word) {
	d.byStem[w.Stem] = append(d.byStem[w.Stem], w)
	lk := d.lower(w.Stem)
	d.byLowerStem[lk] = append(d.byLowerStem[lk], w)
}

// Homonyms returns every Word whose stem matches query. With
// caseInsensitive false, only exact stems match; with it true, every
// Word whose lowercased stem equals lowercase(query) matches.
func (d *Dictionary) Homonyms(query string, caseInsensitive bool) []*model.Word {
	if caseInsensitive {
		return d.byLowerStem[d.lower(query)]
	}
	return d.byStem[query]
}

// HasFlag reports whether any (all=false) or every (all=true) homonym
// of stem carries f. Returns false if stem has no homonyms.
func (d *Dictionary) HasFlag(stem string, f model.Flag, all bool) bool {
	homonyms := d.byStem[stem]
	if len(homonyms) == 0 {
		return false
	}
	if all {
		for _, w := range homonyms {
			if !w.HasFlag(f) {
				return false
			}
		}
		return true
	}
	for _, w := range homonyms {
		if w.HasFlag(f) {
			return true
		}
	}
	return false
}

// All returns every Word in the dictionary. The order of the result
// is not defined: stems are visited in map iteration order. Used
// to build the n-gram scorer's filtered candidate set at engine build
// time (§5: "precomputed at build time, not per query").
func (d *Dictionary) All() []*model.Word {
	out := make([]*model.Word, 0, len(d.byStem))
	for _, homonyms := range d.byStem {
		out = append(out, homonyms...)
	}
	return out
}
