// Package model holds the data types shared across the engine's
// subsystems: flags, capitalization, dictionary words, affix entries,
// and the per-query value types (LKWord, AffixForm, CompoundForm).
//
// Everything here is pure data. Construction-time tables are immutable
// once built; per-query values are cheap, ephemeral, and safe to share
// by reference since nothing mutates them after creation.
package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Flag is an opaque token identifying an affix class or directive.
// Its textual form depends on the engine's FlagEncoding, but once
// parsed a Flag is just a comparable value.
type Flag string

// FlagEncoding selects how flag strings in the affix/word-list text
// are tokenized into Flag values.
type FlagEncoding int

const (
	EncodingShort   FlagEncoding = iota // UTF-8 / "short": each scalar is a flag
	EncodingLong                       // "long": flags are consecutive two-scalar pairs
	EncodingNumeric                     // "num": comma-separated decimal integers
	EncodingUTF8                        // explicit UTF-8: identical behavior to EncodingShort
)

// FlagSet is an unordered set of flags.
type FlagSet map[Flag]struct{}

// NewFlagSet builds a FlagSet from the given flags.
func NewFlagSet(flags ...Flag) FlagSet {
	fs := make(FlagSet, len(flags))
	for _, f := range flags {
		fs[f] = struct{}{}
	}
	return fs
}

// Has reports whether fs contains f.
func (fs FlagSet) Has(f Flag) bool {
	if fs == nil {
		return false
	}
	_, ok := fs[f]
	return ok
}

// Empty reports whether the set has no flags.
func (fs FlagSet) Empty() bool { return len(fs) == 0 }

// Intersects reports whether fs and other share any flag.
func (fs FlagSet) Intersects(other FlagSet) bool {
	small, big := fs, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for f := range small {
		if big.Has(f) {
			return true
		}
	}
	return false
}

// Disjoint reports whether fs and other share no flag.
func (fs FlagSet) Disjoint(other FlagSet) bool { return !fs.Intersects(other) }

// Union returns a new FlagSet containing every flag in fs or other.
func (fs FlagSet) Union(other FlagSet) FlagSet {
	out := make(FlagSet, len(fs)+len(other))
	for f := range fs {
		out[f] = struct{}{}
	}
	for f := range other {
		out[f] = struct{}{}
	}
	return out
}

// Add returns a new FlagSet with f added.
func (fs FlagSet) Add(f Flag) FlagSet {
	out := fs.Union(nil)
	out[f] = struct{}{}
	return out
}

// Slice returns the set's flags in sorted order, for deterministic output.
func (fs FlagSet) Slice() []Flag {
	out := make([]Flag, 0, len(fs))
	for f := range fs {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseFlags tokenizes a flag string under the given encoding.
// A purely numeric token is first tried against the alias table (AF);
// if it resolves, the alias's FlagSet is returned instead (AF is
// 1-indexed). Alias resolution only applies outside EncodingNumeric,
// where every token is already a flag number, not an index into AF.
func ParseFlags(s string, enc FlagEncoding, af AliasTable) (FlagSet, error) {
	if s == "" {
		return nil, nil
	}

	if enc != EncodingNumeric {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			if fs, ok := af.ResolveAF(n); ok {
				return fs, nil
			}
		}
	}

	switch enc {
	case EncodingLong:
		runes := []rune(s)
		if len(runes)%2 != 0 {
			return nil, fmt.Errorf("model: long-flag string %q has odd rune length", s)
		}
		fs := make(FlagSet, len(runes)/2)
		for i := 0; i < len(runes); i += 2 {
			fs[Flag(string(runes[i:i+2]))] = struct{}{}
		}
		return fs, nil

	case EncodingNumeric:
		parts := strings.Split(s, ",")
		fs := make(FlagSet, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, err := strconv.Atoi(p); err != nil {
				return nil, fmt.Errorf("model: invalid numeric flag %q: %w", p, err)
			}
			fs[Flag(p)] = struct{}{}
		}
		return fs, nil

	default: // EncodingShort, EncodingUTF8
		runes := []rune(s)
		fs := make(FlagSet, len(runes))
		for _, r := range runes {
			fs[Flag(string(r))] = struct{}{}
		}
		return fs, nil
	}
}

// ParseFlag returns the first flag encoded in s (used for single-flag
// directives such as COMPOUNDFLAG).
func ParseFlag(s string, enc FlagEncoding) (Flag, error) {
	fs, err := ParseFlags(s, enc, AliasTable{})
	if err != nil {
		return "", err
	}
	if len(fs) == 0 {
		return "", fmt.Errorf("model: empty flag string")
	}
	switch enc {
	case EncodingLong:
		return Flag(string([]rune(s)[:2])), nil
	case EncodingNumeric:
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				return Flag(p), nil
			}
		}
	}
	return Flag(string([]rune(s)[0])), nil
}

// AliasTable holds the AF (flag-set aliases) and AM (morphological-tag
// aliases) indirection tables. Both are 1-indexed in the source format:
// alias index 0 is unused.
type AliasTable struct {
	AF []FlagSet
	AM [][]string
}

// ResolveAF returns the FlagSet the index n refers to. Indices are
// 1-based; ok is false if n is out of range or the table is empty
// (meaning: no AF aliasing configured, so numeric tokens are literal
// flags, not indices).
func (a AliasTable) ResolveAF(n int) (FlagSet, bool) {
	if len(a.AF) == 0 || n < 1 || n > len(a.AF) {
		return nil, false
	}
	return a.AF[n-1], true
}

// ResolveAM returns the morphological tags the index n refers to.
func (a AliasTable) ResolveAM(n int) ([]string, bool) {
	if len(a.AM) == 0 || n < 1 || n > len(a.AM) {
		return nil, false
	}
	return a.AM[n-1], true
}
