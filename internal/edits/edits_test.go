package edits

import (
	"testing"

	"github.com/az-ai-labs/hunspell/internal/model"
	"github.com/stretchr/testify/assert"
)

func collect(t *testing.T, run func(Visit) bool) []string {
	t.Helper()
	var out []string
	run(func(c Candidate) bool {
		out = append(out, c.Text)
		return true
	})
	return out
}

func TestReplChars(t *testing.T) {
	reps := []model.ReplRule{{Search: "ph", Replace: "f"}}
	got := collect(t, func(v Visit) bool { return ReplChars("phone", reps, v) })
	assert.Contains(t, got, "fone")
}

func TestReplCharsTwoWordSplit(t *testing.T) {
	reps := []model.ReplRule{{Search: "x", Replace: " "}}
	got := collect(t, func(v Visit) bool { return ReplChars("foxbar", reps, v) })
	assert.Contains(t, got, "fo bar")
}

func TestMapChars(t *testing.T) {
	groups := [][]rune{{'a', 'á', 'à'}}
	got := collect(t, func(v Visit) bool { return MapChars("cat", groups, v) })
	assert.Contains(t, got, "cát")
	assert.Contains(t, got, "càt")
}

func TestSwapChar(t *testing.T) {
	got := collect(t, func(v Visit) bool { return SwapChar("ab", v) })
	assert.Equal(t, []string{"ba"}, got)
}

func TestSwapCharFourLetterFullSwap(t *testing.T) {
	got := collect(t, func(v Visit) bool { return SwapChar("abcd", v) })
	assert.Contains(t, got, "bacd") // adjacent swap at 0
	assert.Contains(t, got, "badc") // full two-swap
}

func TestLongSwapChar(t *testing.T) {
	got := collect(t, func(v Visit) bool { return LongSwapChar("abcd", v) })
	assert.Contains(t, got, "cbad") // swap index 0 and 2
}

func TestBadChar(t *testing.T) {
	got := collect(t, func(v Visit) bool { return BadChar("cat", []rune("xb"), v) })
	assert.Contains(t, got, "xat")
	assert.Contains(t, got, "bat")
}

func TestBadCharKey(t *testing.T) {
	rows := []string{"qwerty", "asdfgh"}
	got := collect(t, func(v Visit) bool { return BadCharKey("cat", rows, v) })
	// 't' neighbors 'r' and 'y' on row 1.
	assert.Contains(t, got, "car")
	assert.Contains(t, got, "cay")
}

func TestExtraChar(t *testing.T) {
	got := collect(t, func(v Visit) bool { return ExtraChar("cats", v) })
	assert.Contains(t, got, "ats")
	assert.Contains(t, got, "cat")
}

func TestForgotChar(t *testing.T) {
	got := collect(t, func(v Visit) bool { return ForgotChar("at", []rune("c"), v) })
	assert.Contains(t, got, "cat")
	assert.Contains(t, got, "act")
	assert.Contains(t, got, "atc")
}

func TestMoveChar(t *testing.T) {
	got := collect(t, func(v Visit) bool { return MoveChar("ab", v) })
	assert.Contains(t, got, "ba")
}

func TestDoubleTwoChars(t *testing.T) {
	got := collect(t, func(v Visit) bool { return DoubleTwoChars("foofoo", v) })
	assert.Equal(t, []string{"foo"}, got)

	none := collect(t, func(v Visit) bool { return DoubleTwoChars("foobar", v) })
	assert.Empty(t, none)
}

func TestTwoWords(t *testing.T) {
	got := collect(t, func(v Visit) bool { return TwoWords("abc", v) })
	assert.Equal(t, []string{"a bc", "ab c"}, got)
}

func TestVisitStopsEarly(t *testing.T) {
	var calls int
	ExtraChar("abcdef", func(c Candidate) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}
