// Package hunspell is a Hunspell-compatible spellchecking engine: an
// affix description plus one or more word lists, built once and
// queried many times for correctness, suggestions, stems, and
// morphological data (spec.md §1, §6).
//
// The facade wires together the engine's subsystems in construction
// order: affreader/dicreader parse the source files into the
// internal/model tables, affixtab indexes the affix entries, dict
// indexes the word list, and formcheck/decompose/compound/suggest
// layer the query-time pipeline on top. Nothing here is clever; it is
// the one place all of those pieces meet.
package hunspell

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/az-ai-labs/hunspell/internal/affixtab"
	"github.com/az-ai-labs/hunspell/internal/affreader"
	"github.com/az-ai-labs/hunspell/internal/casing"
	"github.com/az-ai-labs/hunspell/internal/compound"
	"github.com/az-ai-labs/hunspell/internal/decompose"
	"github.com/az-ai-labs/hunspell/internal/dicreader"
	"github.com/az-ai-labs/hunspell/internal/dict"
	"github.com/az-ai-labs/hunspell/internal/formcheck"
	"github.com/az-ai-labs/hunspell/internal/model"
	"github.com/az-ai-labs/hunspell/internal/suggest"
)

// Dictionary is a built, ready-to-query spellchecking engine for one
// affix description plus one or more word lists. It is immutable after
// Load returns and safe for concurrent use.
type Dictionary struct {
	directives *model.Directives
	casing     casing.Casing
	affix      *affixtab.Table
	dict       *dict.Dictionary

	check   *formcheck.Checker // lenient: NOSUGGEST words are still correct
	compEng *compound.Engine
	sugg    *suggest.Suggester

	breakPatterns []*regexp.Regexp
}

// CheckResult is the outcome of Check: correct and forbidden are
// independent (a word can be both, e.g. a FORBIDDENWORD entry that
// also matches a productive affix rule elsewhere in the dictionary).
type CheckResult struct {
	Correct   bool
	Forbidden bool
	Warn      bool
}

// Load builds a Dictionary from an affix description file and one or
// more word-list files. The first dicPath is the primary word list;
// any further paths are merged into the same dictionary index (e.g.
// regional or technical supplements).
func Load(affPath string, dicPaths ...string) (*Dictionary, error) {
	if len(dicPaths) == 0 {
		return nil, fmt.Errorf("hunspell: Load requires at least one word-list path")
	}

	affFile, err := os.Open(affPath)
	if err != nil {
		return nil, fmt.Errorf("hunspell: %w", err)
	}
	defer affFile.Close()

	aff, err := affreader.Parse(affFile)
	if err != nil {
		return nil, fmt.Errorf("hunspell: parsing %s: %w", affPath, err)
	}
	d := &aff.Directives

	cs := selectCasing(d)
	lowerFn := func(s string) string { return casing.ToLower(cs, s) }

	table := affixtab.New(aff.Prefixes, aff.Suffixes)

	dictIdx := dict.New(lowerFn)
	for _, p := range dicPaths {
		if err := loadDicFile(dictIdx, p, d, cs, table); err != nil {
			return nil, err
		}
	}

	breakPatterns := compileBreakPatterns(d.Break)

	decomp := &decompose.Decomposer{
		Affix:           table,
		ComplexPrefixes: d.ComplexPrefixes,
		Break:           breakPatterns,
	}

	lenientValidator := &formcheck.Validator{Directives: d, Casing: cs, AllowNoSuggest: true}
	strictValidator := &formcheck.Validator{Directives: d, Casing: cs, AllowNoSuggest: false}
	lenientChecker := &formcheck.Checker{Decomp: decomp, Dict: dictIdx, Validator: lenientValidator}
	strictChecker := &formcheck.Checker{Decomp: decomp, Dict: dictIdx, Validator: strictValidator}

	rules := make([]compound.Rule, 0, len(d.CompoundRules))
	for _, r := range d.CompoundRules {
		rules = append(rules, compound.CompileRule(r))
	}
	compEng := &compound.Engine{Checker: lenientChecker, Directives: d, Rules: rules}

	sugg := suggest.NewSuggester(strictChecker, compEng, cs, d, dictIdx, aff.PhoneTable)

	return &Dictionary{
		directives:    d,
		casing:        cs,
		affix:         table,
		dict:          dictIdx,
		check:         lenientChecker,
		compEng:       compEng,
		sugg:          sugg,
		breakPatterns: breakPatterns,
	}, nil
}

func loadDicFile(dictIdx *dict.Dictionary, path string, d *model.Directives, cs casing.Casing, table *affixtab.Table) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("hunspell: %w", err)
	}
	defer f.Close()

	words, err := dicreader.Parse(f, d.Encoding, d.Aliases, cs)
	if err != nil {
		return fmt.Errorf("hunspell: parsing %s: %w", path, err)
	}
	for _, w := range words {
		precomputeRelevantAffixes(w, table)
		dictIdx.Add(w)
	}
	return nil
}

// precomputeRelevantAffixes fills Word.RelevantPrefixes/RelevantSuffixes
// with the subset of table whose class flag is in w.Flags and whose
// condition matches w.Stem — the build-time tradeoff spec.md's design
// notes describe. Nothing in this engine currently consults the
// populated fields (decompose.Decomposer walks the affix table's own
// tries instead), but the invariant is cheap to keep and the fields
// exist for a future lookup-by-word fast path.
func precomputeRelevantAffixes(w *model.Word, table *affixtab.Table) {
	for _, f := range w.Flags.Slice() {
		for _, p := range table.PrefixesWithFlag(f) {
			if p.Condition.Match(w.Stem) {
				w.RelevantPrefixes = append(w.RelevantPrefixes, p)
			}
		}
		for _, s := range table.SuffixesWithFlag(f) {
			if s.Condition.Match(w.Stem) {
				w.RelevantSuffixes = append(w.RelevantSuffixes, s)
			}
		}
	}
}

// selectCasing picks the active casing mode from the affix file's
// directives (§4.B): CHECKSHARPS selects German, certain LANG prefixes
// select Turkic, otherwise Default.
func selectCasing(d *model.Directives) casing.Casing {
	if d.CheckSharps {
		return casing.German{}
	}
	lang := strings.ToLower(d.Lang)
	if idx := strings.IndexAny(lang, "_-"); idx >= 0 {
		lang = lang[:idx]
	}
	switch lang {
	case "az", "tr", "crh", "tt", "ba", "kk", "ky", "uz":
		return casing.Turkic{}
	}
	return casing.Default{}
}

func compileBreakPatterns(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue // malformed BREAK pattern: ignored, same posture as an unrecognized directive
		}
		out = append(out, re)
	}
	return out
}

// lookupWord builds the LKWord used to drive the checker/compound
// pipeline for one casing variant of a query.
func (dc *Dictionary) lookupWord(surface string) model.LKWord {
	return model.LKWord{
		Affix:   dc.affix,
		Dict:    dc.dict,
		Surface: surface,
		CapType: casing.Guess(dc.casing, surface),
	}
}

// Check reports whether word is correct, forbidden, or warned-about
// (spec.md §6). Pre-check applies ICONV and strips IGNORE characters;
// pure-numeric tokens (allowing '.', ',' and '-' anywhere among the
// digits) are always correct.
func (dc *Dictionary) Check(word string) CheckResult {
	word = dc.normalize(word)
	if word == "" {
		return CheckResult{Correct: true}
	}
	if isNumeric(word) {
		return CheckResult{Correct: true}
	}

	var res CheckResult
	_, variants := casing.Variants(dc.casing, word)

	for _, v := range variants {
		lw := dc.lookupWord(v)

		if forms := dc.check.Check(lw, model.LKFlags{}); len(forms) > 0 {
			res.Correct = true
			dc.scanFormFlags(forms, &res)
		}

		if !res.Correct {
			if cfs := dc.compEng.CompoundForms(lw); len(cfs) > 0 {
				res.Correct = true
				for _, cf := range cfs {
					dc.scanFormFlags(cf, &res)
				}
			}
		}

		if !res.Correct {
			if dc.checkBreak(v) {
				res.Correct = true
			}
		}

		if res.Correct {
			break
		}
	}
	return res
}

func (dc *Dictionary) scanFormFlags(forms []model.AffixForm, res *CheckResult) {
	for _, f := range forms {
		if f.Word == nil {
			continue
		}
		if dc.check.Validator.IsForbidden(f.Word) {
			res.Forbidden = true
		}
		if dc.check.Validator.IsWarn(f.Word) {
			res.Warn = true
		}
	}
}

// checkBreak tries every BREAK split of surface, accepting it as
// correct if some split's non-empty pieces all spellcheck on their
// own (affix or compound, not recursively broken again).
func (dc *Dictionary) checkBreak(surface string) bool {
	if len(dc.breakPatterns) == 0 {
		return false
	}
	for _, parts := range decompose.BreakWord(dc.breakPatterns, surface) {
		if len(parts) <= 1 {
			continue
		}
		ok := true
		for _, part := range parts {
			if part == "" {
				continue
			}
			if !dc.spellchecksPart(part) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func (dc *Dictionary) spellchecksPart(part string) bool {
	lw := dc.lookupWord(part)
	if len(dc.check.Check(lw, model.LKFlags{})) > 0 {
		return true
	}
	return len(dc.compEng.CompoundForms(lw)) > 0
}

// normalize applies ICONV and strips IGNORE characters, the pre-check
// normalization spec.md §6 requires before any other processing.
func (dc *Dictionary) normalize(word string) string {
	word = model.ApplyConv(dc.directives.Iconv, word)
	if len(dc.directives.Ignore) == 0 {
		return word
	}
	var b strings.Builder
	b.Grow(len(word))
	ignore := make(map[rune]struct{}, len(dc.directives.Ignore))
	for _, r := range dc.directives.Ignore {
		ignore[r] = struct{}{}
	}
	for _, r := range word {
		if _, skip := ignore[r]; skip {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isNumeric reports whether s is a token made entirely of digits, the
// grouping/decimal separators '.' and ',', and '-', with at least one
// digit (spec.md §6: "pure numeric tokens are correct").
func isNumeric(s string) bool {
	seenDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.' || r == ',' || r == '-':
			// separator or sign: allowed anywhere, doesn't count as a digit
		default:
			return false
		}
	}
	return seenDigit
}

// Suggest returns an ordered, bounded list of spelling suggestions for
// word (spec.md §4.L, §6). An already-correct word may still yield
// suggestions (e.g. case variants); callers that only want
// suggestions for misspellings should check Check(word).Correct first.
func (dc *Dictionary) Suggest(word string) []string {
	word = dc.normalize(word)
	if word == "" {
		return nil
	}
	return dc.sugg.Suggest(word)
}

// Stems returns the stem of every accepted form (affix or compound)
// explaining word, de-duplicated, in discovery order.
func (dc *Dictionary) Stems(word string) []string {
	word = dc.normalize(word)
	if word == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(stem string) {
		if _, ok := seen[stem]; ok {
			return
		}
		seen[stem] = struct{}{}
		out = append(out, stem)
	}

	_, variants := casing.Variants(dc.casing, word)
	for _, v := range variants {
		lw := dc.lookupWord(v)
		for _, f := range dc.check.Check(lw, model.LKFlags{}) {
			add(f.Stem)
		}
		for _, cf := range dc.compEng.CompoundForms(lw) {
			for _, f := range cf {
				add(f.Stem)
			}
		}
	}
	return out
}

// Data returns the morphological tag maps ("k:v" pairs from the word
// list, with AM aliases already resolved) of every homonym of stem.
// caseInsensitive widens the lookup the way Dictionary.Homonyms does.
func (dc *Dictionary) Data(stem string, caseInsensitive bool) []map[string][]string {
	var out []map[string][]string
	for _, w := range dc.dict.Homonyms(stem, caseInsensitive) {
		if len(w.Morph) > 0 {
			out = append(out, w.Morph)
		}
	}
	return out
}
