// Package casing classifies and manipulates capitalization the way
// Hunspell does (§4.B): guessing a word's CapType, producing lookup
// variants to try against the dictionary, and coercing a suggestion
// back to the original's case pattern. Two locale-specific modes layer
// on top of the default rules: German (ß/SS case-folding) and Turkic
// (dotted/dotless I).
package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/hunspell/internal/model"
)

// Casing is implemented by Default, German, and Turkic.
type Casing interface {
	// Lower returns the casing-aware lowercase form of r.
	Lower(r rune) rune
	// Upper returns the casing-aware uppercase form of r.
	Upper(r rune) rune
	// SharpSFold returns s with any case-insensitive-equivalence the
	// locale defines applied for comparison purposes. Only German mode
	// (CHECKSHARPS) does anything here, folding "ß" to "ss".
	SharpSFold(s string) string
}

// Guess classifies s's capitalization pattern by inspecting its first
// rune and every other letter rune.
func Guess(c Casing, s string) model.CapType {
	if s == "" {
		return model.CapNo
	}
	first, size := utf8.DecodeRuneInString(s)
	firstUpper := isUpper(c, first)

	hasUpper := firstUpper
	hasLower := !firstUpper && isLower(c, first)
	allUpperSoFar := firstUpper || !unicode.IsLetter(first)
	upperAfterFirst := false

	for _, r := range s[size:] {
		if !unicode.IsLetter(r) {
			continue
		}
		if isUpper(c, r) {
			hasUpper = true
			upperAfterFirst = true
		} else {
			hasLower = true
			allUpperSoFar = false
		}
	}

	switch {
	case !hasUpper:
		return model.CapNo
	case firstUpper && !upperAfterFirst:
		// The first rune is the only uppercase letter (this includes a
		// lone uppercase letter with no further letters): INIT.
		return model.CapInit
	case !hasLower:
		// Only uppercase letters seen, more than one of them.
		if allUpperSoFar {
			return model.CapAll
		}
		return model.CapInit
	case firstUpper:
		return model.CapHuhInit
	default:
		return model.CapHuh
	}
}

func isUpper(c Casing, r rune) bool { return c.Upper(r) == r && c.Lower(r) != r }
func isLower(c Casing, r rune) bool { return c.Lower(r) == r && c.Upper(r) != r }

// ToLower applies c's lowering rule to every rune of s.
func ToLower(c Casing, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(c.Lower(r))
	}
	return b.String()
}

// ToUpper applies c's uppering rule to every rune of s.
func ToUpper(c Casing, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(c.Upper(r))
	}
	return b.String()
}

// UpperFirst upper-cases only the first rune of s.
func UpperFirst(c Casing, s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(c.Upper(r))
	b.WriteString(s[size:])
	return b.String()
}

// Variants returns the CapType of s plus the forms that should be
// tried as dictionary lookup keys: the original and, unless s has no
// uppercase letters, its lowercase form; an all-uppercase word of more
// than one rune additionally gets its title-cased form. Mixed-case
// words (HUH/HUHINIT) get only the original and the all-lower form.
func Variants(c Casing, s string) (model.CapType, []string) {
	cap := Guess(c, s)
	lower := ToLower(c, s)

	switch cap {
	case model.CapNo:
		return cap, []string{s}
	case model.CapInit:
		return cap, []string{s, lower}
	case model.CapAll:
		out := []string{s, lower}
		if utf8.RuneCountInString(s) > 1 {
			out = append(out, UpperFirst(c, lower))
		}
		return cap, out
	case model.CapHuhInit:
		return cap, []string{s, lower}
	default: // CapHuh
		return cap, []string{s, lower}
	}
}

// Corrections is like Variants but used when searching for suggestion
// candidates: it additionally includes the title-case form so that,
// e.g., an all-lowercase misspelling of a proper noun can still match
// a KEEPCASE dictionary entry.
func Corrections(c Casing, s string) (model.CapType, []string) {
	cap, variants := Variants(c, s)
	if cap == model.CapNo {
		title := UpperFirst(c, s)
		if title != s {
			variants = append(variants, title)
		}
	}
	return cap, variants
}

// Coerce reshapes candidate to match target's CapType.
func Coerce(c Casing, candidate string, target model.CapType) string {
	if candidate == "" {
		return candidate
	}
	switch target {
	case model.CapAll:
		return ToUpper(c, candidate)
	case model.CapInit, model.CapHuhInit:
		return UpperFirst(c, candidate)
	default:
		return candidate
	}
}

// IsAllUpper reports whether every letter in s is uppercase under c.
func IsAllUpper(c Casing, s string) bool {
	seen := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		seen = true
		if !isUpper(c, r) {
			return false
		}
	}
	return seen
}
