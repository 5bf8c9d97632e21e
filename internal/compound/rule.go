package compound

import "github.com/az-ai-labs/hunspell/internal/model"

// CompileRule parses one COMPOUNDRULE entry into a Rule: a sequence of
// class-flag tokens, each optionally starred for zero-or-more
// repetitions. Hunspell restricts COMPOUNDRULE to the "short"/UTF-8
// single-scalar flag style regardless of the affix file's own FLAG
// encoding, so each rune is one token; a following '*' stars the token
// that precedes it.
func CompileRule(s string) Rule {
	var rule Rule
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '*' {
			continue
		}
		tok := RuleToken{Flag: model.Flag(string(r))}
		if i+1 < len(runes) && runes[i+1] == '*' {
			tok.Star = true
		}
		rule = append(rule, tok)
	}
	return rule
}

// RuleToken is one element of a compiled CompoundRule: a class flag,
// optionally starred (zero-or-more repetitions), matching Hunspell's
// small regex-over-flags dialect (e.g. "A B*C").
type RuleToken struct {
	Flag model.Flag
	Star bool
}

// Rule is a compiled COMPOUNDRULE entry.
type Rule []RuleToken

// FullMatch reports whether parts, a sequence of per-segment flag
// sets, matches the rule start to finish.
func (r Rule) FullMatch(parts []model.FlagSet) bool { return r.match(parts, false) }

// PartialMatch reports whether parts is a valid prefix of some
// sequence the rule would fully match — used to prune segmentations
// during compound-rule recursion before the final piece is known.
func (r Rule) PartialMatch(parts []model.FlagSet) bool { return r.match(parts, true) }

func (r Rule) match(parts []model.FlagSet, partial bool) bool {
	var rec func(ti, pi int) bool
	rec = func(ti, pi int) bool {
		if pi == len(parts) {
			if partial {
				return true
			}
			for ; ti < len(r); ti++ {
				if !r[ti].Star {
					return false
				}
			}
			return true
		}
		if ti == len(r) {
			return false
		}
		tok := r[ti]
		tokMatches := parts[pi].Has(tok.Flag)
		if tok.Star {
			if tokMatches && rec(ti, pi+1) {
				return true
			}
			return rec(ti+1, pi)
		}
		if !tokMatches {
			return false
		}
		return rec(ti+1, pi+1)
	}
	return rec(0, 0)
}
