// Package phonetic implements the PHONE-table phonetic scorer (§4.K):
// compiling a word into a phonetic key via an ordered list of
// search/replace rules (with `^`/`$` position anchors), then
// ranking dictionary candidates by distance between phonetic keys.
//
// The rule-matching shape here — an ordered list of conditions, each
// tried left to right, first match wins, with positional anchors — is
// the same shape as morph/phonology.go's sound-change rule application;
// this package generalizes that idea from Azerbaijani phonology rules
// to Hunspell's PHONE table syntax.
package phonetic

import "strings"

// Rule is one compiled PHONE table row. Search is matched as a plain
// literal (the aff reader gives '_' no special meaning in it; only a
// replacement of "_" is special, meaning delete), with
// StartAnchor/EndAnchor carrying the '^'/'$'
// position constraints and Condition carrying a trailing bracket
// condition (e.g. "(aeiou)") that must match the character following
// the match.
type Rule struct {
	Search     string
	Replace    string
	StartAnchor bool // '^' prefix: only matches at the start of the word
	EndAnchor   bool // '$' suffix: only matches at the end of the word
	Condition   func(next rune, ok bool) bool
}

// Table is an ordered PHONE rule list.
type Table []Rule

// Key computes s's phonetic key by applying the table's rules in
// order, scanning left to right; the first matching rule at each
// position is applied and scanning resumes after the replacement
// (Hunspell's PHONE algorithm is single-pass, not repeated to a fixed
// point).
func (t Table) Key(s string) string {
	if len(t) == 0 {
		return strings.ToUpper(s)
	}
	runes := []rune(s)
	var out strings.Builder
	for i := 0; i < len(runes); {
		matched := false
		for _, r := range t {
			searchRunes := []rune(r.Search)
			n := len(searchRunes)
			if n == 0 || i+n > len(runes) {
				continue
			}
			if !runesEqualFold(runes[i:i+n], searchRunes) {
				continue
			}
			if r.StartAnchor && i != 0 {
				continue
			}
			if r.EndAnchor && i+n != len(runes) {
				continue
			}
			if r.Condition != nil {
				var next rune
				ok := i+n < len(runes)
				if ok {
					next = runes[i+n]
				}
				if !r.Condition(next, ok) {
					continue
				}
			}
			out.WriteString(strings.ToUpper(r.Replace))
			i += n
			matched = true
			break
		}
		if !matched {
			out.WriteRune(toUpperRune(runes[i]))
			i++
		}
	}
	return out.String()
}

func runesEqualFold(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if toUpperRune(a[i]) != toUpperRune(b[i]) {
			return false
		}
	}
	return true
}

func toUpperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// Distance computes a Levenshtein-like edit distance between two
// phonetic keys, for ranking candidates: the usual insert/delete/
// substitute recurrence over runes (the phonetic keys are typically
// pure ASCII consonant skeletons, so no transposition term is needed
// here the way edits/ngram's word-level scoring wants one).
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// Candidates scans dict (every known word's Key already precomputed by
// the caller into keys, parallel to words) and returns the words whose
// key is within maxDistance of miss's key, bounded by max results.
func Candidates(missKey string, words []string, keys []string, maxDistance, max int) []string {
	var out []string
	for i, k := range keys {
		if Distance(missKey, k) <= maxDistance {
			out = append(out, words[i])
			if len(out) >= max {
				break
			}
		}
	}
	return out
}
