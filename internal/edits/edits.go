// Package edits implements the suggestion edit permutators (§4.I): a
// dozen cheap, purely textual transforms of a misspelled surface word,
// each yielding candidate strings for the suggester to re-check as
// AffixForms or CompoundForms. Every permutator is lazy, calling back
// into a Visit function so the suggester can stop early once it has
// enough good candidates (mirroring internal/decompose's visitor
// style) and so a permutator with a combinatorial blowup (longswapchar,
// movechar) never has to materialize its full output.
package edits

import (
	"strings"

	"github.com/az-ai-labs/hunspell/internal/model"
)

// Kind tags which permutator produced a candidate, since the suggester
// treats some kinds specially (§4.L: UPPERCASE, REPLCHARS, and MAPCHARS
// suppress the compound pass for that variant; a two-word result ends
// the outer loop).
type Kind int

const (
	KindReplChars Kind = iota
	KindMapChars
	KindSwapChar
	KindLongSwapChar
	KindBadChar
	KindBadCharKey
	KindExtraChar
	KindForgotChar
	KindMoveChar
	KindDoubleTwoChars
	KindTwoWords
)

// Candidate is one permutator output.
type Candidate struct {
	Text string
	Kind Kind
}

// Visit receives each Candidate; returning false stops the permutator.
type Visit func(Candidate) bool

// longSwapMaxDistance bounds longswapchar's pair distance (spec.md
// §4.I: "up to distance 4").
const longSwapMaxDistance = 4

// moveMaxDistance bounds movechar's move distance.
const moveMaxDistance = 4

// ReplChars applies each REP rule once to s, everywhere it matches. A
// replacement whose Search/Replace contain a literal space produces a
// two-word split candidate.
func ReplChars(s string, reps []model.ReplRule, visit Visit) bool {
	for _, r := range reps {
		if r.Search == "" {
			continue
		}
		start := 0
		for {
			idx := strings.Index(s[start:], r.Search)
			if idx < 0 {
				break
			}
			pos := start + idx
			candidate := s[:pos] + r.Replace + s[pos+len(r.Search):]
			if !visit(Candidate{Text: candidate, Kind: KindReplChars}) {
				return false
			}
			start = pos + len(r.Search)
			if start > len(s) {
				break
			}
		}
	}
	return true
}

// MapChars substitutes, at every position, the rune there for every
// other member of its MAP equivalence class.
func MapChars(s string, groups [][]rune, visit Visit) bool {
	runes := []rune(s)
	for i, r := range runes {
		group := findGroup(groups, r)
		if group == nil {
			continue
		}
		for _, alt := range group {
			if alt == r {
				continue
			}
			out := make([]rune, len(runes))
			copy(out, runes)
			out[i] = alt
			if !visit(Candidate{Text: string(out), Kind: KindMapChars}) {
				return false
			}
		}
	}
	return true
}

func findGroup(groups [][]rune, r rune) []rune {
	for _, g := range groups {
		for _, gr := range g {
			if gr == r {
				return g
			}
		}
	}
	return nil
}

// SwapChar swaps every pair of adjacent runes, plus (for 4- and
// 5-letter words) every full two-swap: swapping two disjoint adjacent
// pairs at once.
func SwapChar(s string, visit Visit) bool {
	runes := []rune(s)
	n := len(runes)
	for i := 0; i+1 < n; i++ {
		out := make([]rune, n)
		copy(out, runes)
		out[i], out[i+1] = out[i+1], out[i]
		if !visit(Candidate{Text: string(out), Kind: KindSwapChar}) {
			return false
		}
	}

	if n == 4 || n == 5 {
		// Two disjoint adjacent swaps: for n==4, (0,1)+(2,3); for
		// n==5, (0,1)+(3,4) and (1,2)+(3,4).
		pairs := [][2]int{{0, 2}}
		if n == 5 {
			pairs = [][2]int{{0, 3}, {1, 3}}
		}
		for _, pp := range pairs {
			i, j := pp[0], pp[1]
			out := make([]rune, n)
			copy(out, runes)
			out[i], out[i+1] = out[i+1], out[i]
			out[j], out[j+1] = out[j+1], out[j]
			if !visit(Candidate{Text: string(out), Kind: KindSwapChar}) {
				return false
			}
		}
	}
	return true
}

// LongSwapChar swaps every pair of runes separated by 2 to
// longSwapMaxDistance positions (adjacent swaps are SwapChar's job).
func LongSwapChar(s string, visit Visit) bool {
	runes := []rune(s)
	n := len(runes)
	for i := 0; i < n; i++ {
		for dist := 2; dist <= longSwapMaxDistance; dist++ {
			j := i + dist
			if j >= n {
				break
			}
			out := make([]rune, n)
			copy(out, runes)
			out[i], out[j] = out[j], out[i]
			if !visit(Candidate{Text: string(out), Kind: KindLongSwapChar}) {
				return false
			}
		}
	}
	return true
}

// BadChar replaces each rune, in turn, with every rune in try.
func BadChar(s string, try []rune, visit Visit) bool {
	runes := []rune(s)
	for i := range runes {
		for _, c := range try {
			if c == runes[i] {
				continue
			}
			out := make([]rune, len(runes))
			copy(out, runes)
			out[i] = c
			if !visit(Candidate{Text: string(out), Kind: KindBadChar}) {
				return false
			}
		}
	}
	return true
}

// BadCharKey replaces each rune with its keyboard neighbors, as given
// by keyRows (each row already split on '|', runes adjacent within a
// row are neighbors).
func BadCharKey(s string, keyRows []string, visit Visit) bool {
	runes := []rune(s)
	for i, r := range runes {
		for _, n := range keyNeighbors(keyRows, r) {
			out := make([]rune, len(runes))
			copy(out, runes)
			out[i] = n
			if !visit(Candidate{Text: string(out), Kind: KindBadCharKey}) {
				return false
			}
		}
	}
	return true
}

func keyNeighbors(keyRows []string, r rune) []rune {
	var out []rune
	for _, row := range keyRows {
		rowRunes := []rune(row)
		for i, rr := range rowRunes {
			if rr != r {
				continue
			}
			if i > 0 {
				out = append(out, rowRunes[i-1])
			}
			if i+1 < len(rowRunes) {
				out = append(out, rowRunes[i+1])
			}
		}
	}
	return out
}

// ExtraChar deletes one rune at a time.
func ExtraChar(s string, visit Visit) bool {
	runes := []rune(s)
	for i := range runes {
		out := make([]rune, 0, len(runes)-1)
		out = append(out, runes[:i]...)
		out = append(out, runes[i+1:]...)
		if !visit(Candidate{Text: string(out), Kind: KindExtraChar}) {
			return false
		}
	}
	return true
}

// ForgotChar inserts each try rune at every position (including before
// the first rune and after the last).
func ForgotChar(s string, try []rune, visit Visit) bool {
	runes := []rune(s)
	for pos := 0; pos <= len(runes); pos++ {
		for _, c := range try {
			out := make([]rune, 0, len(runes)+1)
			out = append(out, runes[:pos]...)
			out = append(out, c)
			out = append(out, runes[pos:]...)
			if !visit(Candidate{Text: string(out), Kind: KindForgotChar}) {
				return false
			}
		}
	}
	return true
}

// MoveChar moves one rune up to moveMaxDistance positions in either
// direction.
func MoveChar(s string, visit Visit) bool {
	runes := []rune(s)
	n := len(runes)
	for i := 0; i < n; i++ {
		for d := 1; d <= moveMaxDistance; d++ {
			if j := i + d; j < n {
				if !visit(Candidate{Text: string(moveRune(runes, i, j)), Kind: KindMoveChar}) {
					return false
				}
			}
			if j := i - d; j >= 0 {
				if !visit(Candidate{Text: string(moveRune(runes, i, j)), Kind: KindMoveChar}) {
					return false
				}
			}
		}
	}
	return true
}

// moveRune returns a copy of runes with the rune at index from removed
// and reinserted so that it sits at index to of the result (both
// indices are positions in their respective arrays, runes being
// n-length and the result also being n-length).
func moveRune(runes []rune, from, to int) []rune {
	rest := make([]rune, 0, len(runes)-1)
	rest = append(rest, runes[:from]...)
	rest = append(rest, runes[from+1:]...)
	if to > len(rest) {
		to = len(rest)
	}
	result := make([]rune, 0, len(runes))
	result = append(result, rest[:to]...)
	result = append(result, runes[from])
	result = append(result, rest[to:]...)
	return result
}

// DoubleTwoChars collapses a word that is one string written twice
// (even length of at least 4): "foofoo" -> "foo".
func DoubleTwoChars(s string, visit Visit) bool {
	runes := []rune(s)
	n := len(runes)
	if n < 4 || n%2 != 0 {
		return true
	}
	half := n / 2
	if string(runes[:half]) != string(runes[half:]) {
		return true
	}
	return visit(Candidate{Text: string(runes[:half]), Kind: KindDoubleTwoChars})
}

// TwoWords yields every single-space split of s.
func TwoWords(s string, visit Visit) bool {
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		candidate := string(runes[:i]) + " " + string(runes[i:])
		if !visit(Candidate{Text: candidate, Kind: KindTwoWords}) {
			return false
		}
	}
	return true
}
