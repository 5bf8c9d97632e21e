// Package compound implements the compound engine (§4.H): two
// independent generation regimes (flag-based and rule-based
// segmentation) and the isBadCompound rejection pipeline every
// generated CompoundForm must clear.
package compound

import (
	"strings"
	"unicode"

	"github.com/az-ai-labs/hunspell/internal/formcheck"
	"github.com/az-ai-labs/hunspell/internal/model"
)

// Engine generates and filters compound forms for a surface word.
type Engine struct {
	Checker    *formcheck.Checker
	Directives *model.Directives
	Rules      []Rule
}

// CompoundForms yields every CompoundForm for word that is both
// generatable (by either regime) and not rejected by isBadCompound.
func (e *Engine) CompoundForms(word model.LKWord) []model.CompoundForm {
	var candidates []model.CompoundForm
	candidates = append(candidates, e.compoundsByFlags(word, 0)...)
	candidates = append(candidates, e.compoundsByRules(word)...)

	var out []model.CompoundForm
	for _, c := range candidates {
		if !e.isBadCompound(c, word.CapType) {
			out = append(out, c)
		}
	}
	return out
}

// compoundsByFlags implements the flag-based regime.
func (e *Engine) compoundsByFlags(word model.LKWord, depth int) []model.CompoundForm {
	d := e.Directives
	runes := []rune(word.Surface)
	n := len(runes)
	var out []model.CompoundForm

	forbidden := model.FlagSet{}
	if d.CompoundForbidFlag.Has() {
		forbidden = model.NewFlagSet(d.CompoundForbidFlag)
	}

	// Try the whole remaining surface as an END segment.
	endWord := word.Shift(model.PosEnd)
	for _, f := range e.Checker.Check(endWord, model.LKFlags{Forbidden: forbidden}) {
		if f.OuterPrefix != nil && d.CompoundPermitFlag.Has() && !f.OuterPrefix.Flags.Has(d.CompoundPermitFlag) {
			continue
		}
		out = append(out, model.CompoundForm{f})
	}

	if n < 2*d.CompoundMin {
		return out
	}
	if d.CompoundWordMax > 0 && depth > d.CompoundWordMax {
		return out
	}

	for split := d.CompoundMin; split <= n-d.CompoundMin; split++ {
		left := string(runes[:split])
		right := string(runes[split:])

		pos := model.PosBegin
		permit := model.FlagSet{}
		if d.CompoundPermitFlag.Has() {
			permit = model.NewFlagSet(d.CompoundPermitFlag)
		}
		leftFlags := model.LKFlags{Suffix: permit, Forbidden: forbidden}
		if depth >= 1 {
			pos = model.PosMiddle
			leftFlags.Prefix = permit
		}

		leftWord := model.LKWord{Affix: word.Affix, Dict: word.Dict, Surface: left, CapType: word.CapType, Position: pos}
		leftForms := e.Checker.Check(leftWord, leftFlags)

		originalLeftText := left
		if len(leftForms) == 0 && d.SimplifiedTriple && split < n && runes[split-1] == runes[split] {
			extended := left + string(runes[split])
			extWord := leftWord
			extWord.Surface = extended
			leftForms = e.Checker.Check(extWord, leftFlags)
			for i := range leftForms {
				leftForms[i].Text = originalLeftText // record the original, shorter text
			}
		}
		if len(leftForms) == 0 {
			continue
		}

		rightWord := model.LKWord{Affix: word.Affix, Dict: word.Dict, Surface: right, CapType: word.CapType}
		rightForms := e.compoundsByFlags(rightWord, depth+1)
		for _, lf := range leftForms {
			for _, rf := range rightForms {
				combined := make(model.CompoundForm, 0, 1+len(rf))
				combined = append(combined, lf)
				combined = append(combined, rf...)
				out = append(out, combined)
			}
		}
	}
	return out
}

// compoundsByRules implements the rule-based regime.
func (e *Engine) compoundsByRules(word model.LKWord) []model.CompoundForm {
	if len(e.Rules) == 0 {
		return nil
	}
	return e.rulesRecurse(word, e.Rules, nil)
}

func (e *Engine) rulesRecurse(word model.LKWord, rules []Rule, prefixFlags []model.FlagSet) []model.CompoundForm {
	runes := []rune(word.Surface)
	var out []model.CompoundForm

	// Base case: the whole remaining surface as the final piece.
	for _, w := range e.Checker.Dict.Homonyms(word.Surface, false) {
		seq := append(append([]model.FlagSet{}, prefixFlags...), w.Flags)
		for _, r := range rules {
			if r.FullMatch(seq) {
				out = append(out, model.CompoundForm{{Text: word.Surface, Stem: word.Surface, Word: w}})
				break
			}
		}
	}

	for split := 1; split < len(runes); split++ {
		left := string(runes[:split])
		right := string(runes[split:])

		homonyms := e.Checker.Dict.Homonyms(left, false)
		if len(homonyms) == 0 {
			continue
		}
		for _, w := range homonyms {
			seq := append(append([]model.FlagSet{}, prefixFlags...), w.Flags)
			var kept []Rule
			for _, r := range rules {
				if r.PartialMatch(seq) {
					kept = append(kept, r)
				}
			}
			if len(kept) == 0 {
				continue
			}
			rightWord := model.LKWord{Affix: word.Affix, Dict: word.Dict, Surface: right, CapType: word.CapType}
			for _, sub := range e.rulesRecurse(rightWord, kept, seq) {
				full := make(model.CompoundForm, 0, 1+len(sub))
				full = append(full, model.AffixForm{Text: left, Stem: left, Word: w})
				full = append(full, sub...)
				out = append(out, full)
			}
		}
	}
	return out
}

// isBadCompound implements the rejection pipeline.
func (e *Engine) isBadCompound(c model.CompoundForm, captype model.CapType) bool {
	d := e.Directives

	if d.ForceUCase.Has() && captype != model.CapAll && captype != model.CapInit {
		last := c[len(c)-1]
		if last.Word != nil && last.Word.HasFlag(d.ForceUCase) {
			return true
		}
	}

	for i := 0; i+1 < len(c); i++ {
		left, right := c[i], c[i+1]

		if d.CompoundForbidFlag.Has() && left.Flags().Has(d.CompoundForbidFlag) {
			return true
		}

		if e.spellsAsSingleWord(left.Text + right.Text) {
			return true
		}

		if d.CheckCompoundRep && e.repHitsBoundary(left.Text, right.Text) {
			return true
		}

		if d.CheckCompoundTriple && hasTripleAtBoundary(left.Text, right.Text) {
			return true
		}

		if d.CheckCompoundCase && caseClashAtBoundary(left.Text, right.Text) {
			return true
		}

		for _, p := range d.CompoundPatterns {
			if strings.HasSuffix(left.Text, p.EndChars) && strings.HasPrefix(right.Text, p.BeginChars) {
				return true
			}
		}

		if d.CheckCompoundDup && i+1 == len(c)-1 && left.Text == right.Text {
			return true
		}
	}
	return false
}

func (e *Engine) spellsAsSingleWord(combined string) bool {
	lw := model.LKWord{Surface: combined}
	forms := e.Checker.Check(lw, model.LKFlags{})
	return len(forms) > 0
}

func (e *Engine) repHitsBoundary(left, right string) bool {
	d := e.Directives
	boundary := left + right
	for _, rule := range d.Rep {
		if rule.Search == "" {
			continue
		}
		idx := strings.Index(boundary, rule.Search)
		for idx >= 0 {
			matchEnd := idx + len(rule.Search)
			// Only consider occurrences straddling the original boundary.
			if idx < len(left) && matchEnd > len(left) {
				candidate := boundary[:idx] + rule.Replace + boundary[matchEnd:]
				if e.spellsAsSingleWord(candidate) {
					return true
				}
			}
			next := strings.Index(boundary[idx+1:], rule.Search)
			if next < 0 {
				break
			}
			idx = idx + 1 + next
		}
	}
	return false
}

func hasTripleAtBoundary(left, right string) bool {
	lr := []rune(left)
	rr := []rune(right)
	if len(lr) == 0 || len(rr) == 0 {
		return false
	}
	window := make([]rune, 0, 4)
	if len(lr) >= 2 {
		window = append(window, lr[len(lr)-2])
	}
	window = append(window, lr[len(lr)-1])
	window = append(window, rr[0])
	if len(rr) >= 2 {
		window = append(window, rr[1])
	}
	for i := 0; i+2 < len(window); i++ {
		if window[i] == window[i+1] && window[i+1] == window[i+2] {
			return true
		}
	}
	return false
}

func caseClashAtBoundary(left, right string) bool {
	lr := []rune(left)
	rr := []rune(right)
	if len(lr) == 0 || len(rr) == 0 {
		return false
	}
	a, b := lr[len(lr)-1], rr[0]
	if a == '-' || b == '-' {
		return false
	}
	return unicode.IsUpper(a) || unicode.IsUpper(b)
}
