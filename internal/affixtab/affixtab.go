// Package affixtab builds and indexes the affix tables (§4.D): two
// maps keyed by class flag, plus the forward/reverse tries (§4.C) used
// to enumerate candidate affixes for a given surface string.
package affixtab

import (
	"github.com/az-ai-labs/hunspell/internal/model"
	"github.com/az-ai-labs/hunspell/internal/trie"
)

// Table indexes a dictionary's prefix and suffix entries both by class
// flag (for flag-driven lookups, e.g. "what does flag A mean") and by
// trie (for surface-driven lookups, e.g. "which suffixes could explain
// this word's ending").
type Table struct {
	byPrefixFlag map[model.Flag][]*model.Prefix
	bySuffixFlag map[model.Flag][]*model.Suffix

	prefixTrie trie.Trie[*model.Prefix] // keyed by Add, forward
	suffixTrie trie.Trie[*model.Suffix] // keyed by reverse(Add)
}

// New builds a Table from the full set of prefix and suffix entries.
func New(prefixes []*model.Prefix, suffixes []*model.Suffix) *Table {
	t := &Table{
		byPrefixFlag: make(map[model.Flag][]*model.Prefix),
		bySuffixFlag: make(map[model.Flag][]*model.Suffix),
	}
	for _, p := range prefixes {
		t.byPrefixFlag[p.Class] = append(t.byPrefixFlag[p.Class], p)
		t.prefixTrie.Insert(p.Add, p)
	}
	for _, s := range suffixes {
		t.bySuffixFlag[s.Class] = append(t.bySuffixFlag[s.Class], s)
		t.suffixTrie.Insert(reverseString(s.Add), s)
	}
	return t
}

// PrefixesWithFlag returns every prefix entry whose class is f.
func (t *Table) PrefixesWithFlag(f model.Flag) []*model.Prefix {
	return t.byPrefixFlag[f]
}

// SuffixesWithFlag returns every suffix entry whose class is f.
func (t *Table) SuffixesWithFlag(f model.Flag) []*model.Suffix {
	return t.bySuffixFlag[f]
}

// CandidatePrefixes returns every prefix whose Add string is a prefix
// of surface, regardless of length (the trie walk collects every depth
// along the way, including the zero-length "fully stripping" prefixes
// stored at the root).
func (t *Table) CandidatePrefixes(surface string) []*model.Prefix {
	var out []*model.Prefix
	for _, level := range t.prefixTrie.Segments(surface) {
		out = append(out, level...)
	}
	return out
}

// CandidateSuffixes returns every suffix whose Add string is a suffix
// of surface. Internally this walks the reverse-keyed trie over the
// reversed surface, since suffixes are indexed by reversed Add string.
func (t *Table) CandidateSuffixes(surface string) []*model.Suffix {
	var out []*model.Suffix
	for _, level := range t.suffixTrie.Segments(reverseString(surface)) {
		out = append(out, level...)
	}
	return out
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
