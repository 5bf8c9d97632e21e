// Package suggest implements the Suggester (§4.L): the orchestration
// layer that drives casing variants, edit permutators, compound
// re-checks, the dash-split fallback, and the n-gram/phonetic scorers
// to produce an ordered, de-duplicated suggestion list for a
// misspelled word.
package suggest

import (
	"strings"
	"unicode"

	"github.com/az-ai-labs/hunspell/internal/casing"
	"github.com/az-ai-labs/hunspell/internal/compound"
	"github.com/az-ai-labs/hunspell/internal/dict"
	"github.com/az-ai-labs/hunspell/internal/edits"
	"github.com/az-ai-labs/hunspell/internal/formcheck"
	"github.com/az-ai-labs/hunspell/internal/model"
	"github.com/az-ai-labs/hunspell/internal/ngram"
	"github.com/az-ai-labs/hunspell/internal/phonetic"
)

// phoneticDistanceBudget bounds how far apart two phonetic keys may be
// and still be considered a candidate (spec.md leaves the exact gate
// unspecified beyond "Levenshtein-like distance"; 2 is a fixed choice
// and is not derived from any other constant in the engine).
const phoneticDistanceBudget = 2

// Suggester produces spelling suggestions for a single affix
// description + dictionary. Build once via NewSuggester, reuse across
// queries — it holds no per-query state (§5).
type Suggester struct {
	Checker    *formcheck.Checker
	Compound   *compound.Engine
	Casing     casing.Casing
	Directives *model.Directives
	Dict       *dict.Dictionary
	PhoneTable phonetic.Table

	ngramWords   []string
	phoneticKeys []string
}

// NewSuggester precomputes the dictionary's filtered candidate set for
// n-gram/phonetic scoring (§5: "precomputed at build time, not per
// query") by dropping words that would never be worth suggesting:
// NOSUGGEST, FORBIDDENWORD, and ONLYINCOMPOUND entries.
func NewSuggester(checker *formcheck.Checker, comp *compound.Engine, c casing.Casing, d *model.Directives, dictIdx *dict.Dictionary, phone phonetic.Table) *Suggester {
	s := &Suggester{
		Checker:    checker,
		Compound:   comp,
		Casing:     c,
		Directives: d,
		Dict:       dictIdx,
		PhoneTable: phone,
	}
	for _, w := range dictIdx.All() {
		if d.NoSuggest.Has() && w.HasFlag(d.NoSuggest) {
			continue
		}
		if d.ForbiddenWord.Has() && w.HasFlag(d.ForbiddenWord) {
			continue
		}
		if d.OnlyInCompound.Has() && w.HasFlag(d.OnlyInCompound) {
			continue
		}
		s.ngramWords = append(s.ngramWords, w.Stem)
		if len(phone) > 0 {
			s.phoneticKeys = append(s.phoneticKeys, phone.Key(w.Stem))
		}
	}
	return s
}

// Suggest returns an ordered, de-duplicated list of suggestions for
// original. Never errors; worst case returns an empty slice.
func (s *Suggester) Suggest(original string) []string {
	if original == "" {
		return nil
	}
	handled := make(map[string]struct{})
	var out []string
	d := s.Directives

	capType, variants := casing.Corrections(s.Casing, original)

	// Stage 1: FORCEUCASE short-circuit.
	if d.ForceUCase.Has() && capType == model.CapNo {
		upper := casing.UpperFirst(s.Casing, original)
		if s.spellchecks(upper) {
			s.handle(upper, original, capType, handled, &out)
			return out
		}
	}

	var spaceWord bool
	var sawGoodEdit bool

	for _, variant := range variants {
		if spaceWord {
			break
		}

		if s.checkerAcceptsAffix(variant) {
			s.handle(variant, original, capType, handled, &out)
		}

		suppress := false
		var affixCount int
		s.runAllEdits(variant, func(c edits.Candidate) bool {
			if affixCount >= maxOr(d.MaxSuggestions, 15) {
				return false
			}
			if !s.checkerAcceptsAffix(c.Text) {
				return true
			}
			s.handle(c.Text, original, capType, handled, &out)
			affixCount++
			sawGoodEdit = true
			switch c.Kind {
			case edits.KindMapChars, edits.KindReplChars:
				suppress = true
			}
			if c.Kind == edits.KindTwoWords {
				spaceWord = true
				return false
			}
			return true
		})
		if capType == model.CapAll {
			suppress = true // UPPERCASE variant suppresses the compound pass
		}

		if !suppress && !spaceWord {
			var cpdCount int
			s.runAllEdits(variant, func(c edits.Candidate) bool {
				if cpdCount >= maxOr(d.MaxCpdSugs, 3) {
					return false
				}
				if !s.checkerAcceptsCompound(c.Text) {
					return true
				}
				s.handle(c.Text, original, capType, handled, &out)
				cpdCount++
				return true
			})
		}
	}

	// Stage 4: dash-split fallback.
	if !sawGoodEdit {
		s.trySplitDash(original, capType, handled, &out)
	}

	// Stage 5: n-gram and phonetic scoring.
	s.ngramAndPhonetic(original, capType, handled, &out)

	return out
}

func maxOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func (s *Suggester) runAllEdits(text string, visit edits.Visit) {
	d := s.Directives
	if !edits.ReplChars(text, d.Rep, visit) {
		return
	}
	if !edits.MapChars(text, d.MapGroups, visit) {
		return
	}
	if !edits.SwapChar(text, visit) {
		return
	}
	if !edits.LongSwapChar(text, visit) {
		return
	}
	try := []rune(d.Try)
	if !edits.BadChar(text, try, visit) {
		return
	}
	if !edits.BadCharKey(text, d.Key, visit) {
		return
	}
	if !edits.ExtraChar(text, visit) {
		return
	}
	if !edits.ForgotChar(text, try, visit) {
		return
	}
	if !edits.MoveChar(text, visit) {
		return
	}
	if !edits.DoubleTwoChars(text, visit) {
		return
	}
	if !d.NoSplitSugs {
		edits.TwoWords(text, visit)
	}
}

func (s *Suggester) checkerAcceptsAffix(text string) bool {
	lw := model.LKWord{Affix: nil, Surface: text, CapType: casing.Guess(s.Casing, text)}
	return len(s.Checker.Check(lw, model.LKFlags{})) > 0
}

func (s *Suggester) checkerAcceptsCompound(text string) bool {
	lw := model.LKWord{Surface: text, CapType: casing.Guess(s.Casing, text)}
	return len(s.Compound.CompoundForms(lw)) > 0
}

func (s *Suggester) spellchecks(text string) bool {
	return s.checkerAcceptsAffix(text) || s.checkerAcceptsCompound(text)
}

func (s *Suggester) isForbidden(text string) bool {
	for _, w := range s.Dict.Homonyms(text, false) {
		if s.Checker.Validator.IsForbidden(w) {
			return true
		}
	}
	return false
}

// trySplitDash implements stage 4 (§4.L).
func (s *Suggester) trySplitDash(original string, capType model.CapType, handled map[string]struct{}, out *[]string) {
	if !strings.Contains(original, "-") {
		return
	}
	parts := strings.Split(original, "-")
	changed := false
	for i, p := range parts {
		if p == "" || s.spellchecks(p) {
			continue
		}
		fixes := s.Suggest(p)
		if len(fixes) > 0 {
			parts[i] = fixes[0]
			changed = true
		}
	}
	if !changed {
		return
	}
	whole := strings.Join(parts, "-")
	if s.spellchecks(whole) {
		s.handle(whole, original, capType, handled, out)
	}
}

// ngramAndPhonetic implements stage 5 (§4.L): iterate the
// precomputed filtered dictionary once, feeding both scorers.
func (s *Suggester) ngramAndPhonetic(original string, capType model.CapType, handled map[string]struct{}, out *[]string) {
	d := s.Directives
	lower := casing.ToLower(s.Casing, original)
	threshold := ngram.ScoreThreshold(lower)

	ngList := ngram.NewScoresList[string](maxOr(d.MaxNGramSugs, 6))
	var missKey string
	hasPhone := len(s.PhoneTable) > 0
	if hasPhone {
		missKey = s.PhoneTable.Key(original)
	}

	phoneMax := maxOr(d.MaxPhoneticSuggestions, 2)
	var phoneMatches []string

	for i, w := range s.ngramWords {
		score := ngram.RootScore(lower, w)
		if score >= threshold {
			ngList.Add(score, w)
		}
		if hasPhone && len(phoneMatches) < phoneMax {
			if phonetic.Distance(missKey, s.phoneticKeys[i]) <= phoneticDistanceBudget {
				phoneMatches = append(phoneMatches, w)
			}
		}
	}

	for _, cand := range ngList.Finish() {
		s.handle(cand, original, capType, handled, out)
	}
	for _, cand := range phoneMatches {
		s.handle(cand, original, capType, handled, out)
	}
}

// handle implements the handler contract (§4.L): coerce case (revert
// if the coercion lands on a forbidden word), preserve a
// space-preceded character for HUH/HUHINIT originals, apply OCONV,
// reject duplicates, and record the final form.
func (s *Suggester) handle(candidate, original string, capType model.CapType, handled map[string]struct{}, out *[]string) {
	if candidate == "" {
		return
	}
	coerced := casing.Coerce(s.Casing, candidate, capType)
	if s.isForbidden(coerced) {
		coerced = candidate
		if s.isForbidden(coerced) {
			return
		}
	}
	if capType == model.CapHuh || capType == model.CapHuhInit {
		coerced = preserveSpacePrecededChar(coerced, original)
	}
	final := model.ApplyConv(s.Directives.Oconv, coerced)
	if _, dup := handled[final]; dup {
		return
	}
	handled[final] = struct{}{}
	*out = append(*out, final)
}

// preserveSpacePrecededChar copies back any letter from original that
// immediately follows a non-letter boundary and was uppercase there,
// onto the same rune position of candidate — the HUH/HUHINIT case
// that keeps e.g. an internal capital a suggestion's case-coercion
// would otherwise have flattened. No-op if the two differ in length.
func preserveSpacePrecededChar(candidate, original string) string {
	cr := []rune(candidate)
	or := []rune(original)
	if len(cr) != len(or) {
		return candidate
	}
	changed := false
	for i := 1; i < len(or); i++ {
		if unicode.IsUpper(or[i]) && !unicode.IsLetter(or[i-1]) && !unicode.IsUpper(cr[i]) {
			cr[i] = or[i]
			changed = true
		}
	}
	if !changed {
		return candidate
	}
	return string(cr)
}
