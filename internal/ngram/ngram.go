// Package ngram implements the n-gram suggestion scorers (§4.J): rough
// and precise affix-form scores, a root-word score, and the bounded
// top-N container the suggester drains candidates through.
//
// The overlap-counting and longest-common-substring machinery here is
// grounded on spell/symspell.go's damerauLevenshtein: both work over
// rune slices with a small fixed alphabet of edit-adjacent operations,
// trading a generalized string-metric library for a purpose-built,
// allocation-light routine suited to being called once per dictionary
// candidate.
package ngram

import "sort"

// ngramOverlap counts the number of n-gram occurrences shared between a
// and b, using a "used" marker per b n-gram so a repeated n-gram in a
// cannot match the same position in b twice (Hunspell's own ngram
// counting has this same non-reuse rule).
func ngramOverlap(n int, a, b []rune) int {
	if len(a) < n || len(b) < n {
		return 0
	}
	used := make([]bool, len(b)-n+1)
	var count int
	for i := 0; i+n <= len(a); i++ {
		ag := a[i : i+n]
		for j := 0; j+n <= len(b); j++ {
			if used[j] {
				continue
			}
			if runesEqual(ag, b[j:j+n]) {
				used[j] = true
				count++
				break
			}
		}
	}
	return count
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// leftCommonSubstring returns the length of the longest common prefix
// of a and b.
func leftCommonSubstring(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// longestCommonSubsequence returns the length of the LCS of a and b,
// via the standard O(len(a)*len(b)) DP.
func longestCommonSubsequence(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// commonCharPositions counts positions where a and b have the same
// rune, over the shorter of the two lengths.
func commonCharPositions(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	count := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			count++
		}
	}
	return count
}

// RootScore scores a dictionary stem as a candidate root for miss: 3-gram
// overlap plus a bonus for a shared leading substring (§4.J).
func RootScore(miss, stem string) int {
	m, s := []rune(miss), []rune(stem)
	score := ngramOverlap(3, m, s) * 2
	score += leftCommonSubstring(m, s)
	return score
}

// RoughAffixScore computes a quick, lightly-weighted sum of 1/2/3/4-gram
// overlaps between miss and a candidate AffixForm's surface text,
// cheap enough to run over every dictionary entry's relevant affix
// forms before the precise scorer narrows the field.
func RoughAffixScore(miss, formText string) int {
	m, f := []rune(miss), []rune(formText)
	var score int
	weights := [...]int{1: 1, 2: 2, 3: 3, 4: 4}
	for n := 1; n <= 4; n++ {
		score += ngramOverlap(n, m, f) * weights[n]
	}
	return score
}

// Score buckets, per spec.md §4.J.
const (
	VeryGoodThreshold = 1000
	VeryBadThreshold  = -100
)

// PreciseAffixScore is the final, expensive-but-accurate score used to
// rank surviving candidates: LCS length (weighted), common-character
// positions, bigram overlap, and a small tie-breaker term from prior
// (e.g. dictionary frequency/order) and hasPhonetic (candidates that
// also matched phonetically get a nudge). factor scales the whole
// score, mirroring Hunspell's per-call scaling by candidate-list size.
func PreciseAffixScore(miss, candidate string, factor, prior int, hasPhonetic bool) int {
	m, c := []rune(miss), []rune(candidate)
	lcs := longestCommonSubsequence(m, c)
	score := lcs * 3
	score += commonCharPositions(m, c) * 2
	score += ngramOverlap(2, m, c)

	lenDiff := len(m) - len(c)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	score -= lenDiff

	score *= factor
	score += prior
	if hasPhonetic {
		score += 2
	}
	return score
}

// ScoreThreshold gives a per-word gate on rough scores: shorter words
// need a proportionally higher fraction of their grams to match before
// they're worth precise-scoring at all.
func ScoreThreshold(miss string) int {
	n := len([]rune(miss))
	switch {
	case n <= 3:
		return 1
	case n <= 6:
		return 2
	default:
		return 3
	}
}

// scoredItem pairs a payload with the score it was added under.
type scoredItem[T any] struct {
	score   int
	payload T
}

// ScoresList is a bounded top-N container (§4.J): Add only keeps a
// candidate if it beats the current worst of the top N, and Finish
// returns them sorted best-first.
type ScoresList[T any] struct {
	max   int
	items []scoredItem[T]
}

// NewScoresList creates a ScoresList that retains at most max entries.
func NewScoresList[T any](max int) *ScoresList[T] {
	if max < 1 {
		max = 1
	}
	return &ScoresList[T]{max: max}
}

// Add inserts payload under score if the list isn't full or score beats
// the current worst entry. Returns whether it was kept.
func (l *ScoresList[T]) Add(score int, payload T) bool {
	if len(l.items) < l.max {
		l.items = append(l.items, scoredItem[T]{score: score, payload: payload})
		return true
	}
	worstIdx, worstScore := 0, l.items[0].score
	for i, it := range l.items {
		if it.score < worstScore {
			worstIdx, worstScore = i, it.score
		}
	}
	if score <= worstScore {
		return false
	}
	l.items[worstIdx] = scoredItem[T]{score: score, payload: payload}
	return true
}

// Len reports how many entries are currently held.
func (l *ScoresList[T]) Len() int { return len(l.items) }

// Finish returns the held payloads sorted best-score-first.
func (l *ScoresList[T]) Finish() []T {
	sorted := make([]scoredItem[T], len(l.items))
	copy(sorted, l.items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].score > sorted[j].score })
	out := make([]T, len(sorted))
	for i, it := range sorted {
		out[i] = it.payload
	}
	return out
}
