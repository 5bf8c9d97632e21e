package model

// CompoundPosition identifies where in a compound a segment sits.
// The zero value, PosUndefined, means "not currently compounding".
type CompoundPosition int

const (
	PosUndefined CompoundPosition = iota
	PosBegin
	PosMiddle
	PosEnd
)

// AffixTable is the subset of the affix-table component (§4.D) that
// LKWord-level code needs: lookup of entries by class flag. The
// concrete implementation lives in package affixtab; defining the
// interface here (rather than importing affixtab) keeps model free of
// a dependency on its own consumers.
type AffixTable interface {
	PrefixesWithFlag(f Flag) []*Prefix
	SuffixesWithFlag(f Flag) []*Suffix
}

// DictIndex is the subset of the dictionary-index component (§4.E)
// that LKWord-level code needs.
type DictIndex interface {
	Homonyms(stem string, caseInsensitive bool) []*Word
	HasFlag(stem string, f Flag, all bool) bool
}

// LKWord bundles a surface string with the context (affix table,
// dictionary) needed to decompose and validate it, plus its
// capitalization class and an optional compound position. It is
// immutable; every derivation method returns a new value.
type LKWord struct {
	Affix    AffixTable
	Dict     DictIndex
	Surface  string
	CapType  CapType
	Position CompoundPosition
}

// To returns a copy of lw with a different surface string, keeping the
// same affix/dict context, CapType, and Position.
func (lw LKWord) To(surface string) LKWord {
	lw.Surface = surface
	return lw
}

// Shift returns a copy of lw with a different compound position.
func (lw LKWord) Shift(pos CompoundPosition) LKWord {
	lw.Position = pos
	return lw
}

// Add returns a copy of lw whose surface is the concatenation of the
// current surface and s.
func (lw LKWord) Add(s string) LKWord {
	lw.Surface = lw.Surface + s
	return lw
}

// RuneLen returns the number of runes in the surface.
func (lw LKWord) RuneLen() int {
	return len([]rune(lw.Surface))
}

// Slice returns a copy of lw whose surface is the rune range [start,
// end) of the current surface. Negative indices count from the end
// (len+n), matching the corrected semantics from spec.md's design
// notes — the source this module is modeled on had an `len - n` bug
// here; this implementation pins the fix with a dedicated test.
func (lw LKWord) Slice(start, end int) LKWord {
	runes := []rune(lw.Surface)
	start = normalizeIndex(start, len(runes))
	end = normalizeIndex(end, len(runes))
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start > end {
		start = end
	}
	lw.Surface = string(runes[start:end])
	return lw
}

// At returns the rune at index n of the surface. A negative n indexes
// from the end: At(-1) is the last rune, At(-2) the one before it.
func (lw LKWord) At(n int) (rune, bool) {
	runes := []rune(lw.Surface)
	n = normalizeIndex(n, len(runes))
	if n < 0 || n >= len(runes) {
		return 0, false
	}
	return runes[n], true
}

// normalizeIndex converts a possibly-negative index into its
// from-the-end equivalent given a sequence of length n.
func normalizeIndex(idx, n int) int {
	if idx < 0 {
		return n + idx
	}
	return idx
}
