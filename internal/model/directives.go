package model

import "strings"

// Directives holds the affix description's global configuration: the
// special-purpose flags (NOSUGGEST, KEEPCASE, ...), booleans, and
// numeric limits that spec.md §6 lists as "recognized fields (subset
// relevant to core behavior)". A zero Flag ("") means the directive
// was not set in the affix file, and any flag-gated check involving it
// is vacuously false (no word can carry the empty flag, since
// ParseFlags never produces one).
type Directives struct {
	Encoding FlagEncoding

	// Lang carries the affix file's LANG value verbatim (e.g. "az",
	// "tr", "de_DE"); engine construction uses it together with
	// CheckSharps to select the active casing.Casing mode (§4.B).
	Lang string

	// Suggestion/membership gates.
	NoSuggest      Flag
	KeepCase       Flag
	NeedAffix      Flag
	Circumfix      Flag
	ForbiddenWord  Flag
	Warn           Flag
	OnlyInCompound Flag

	// Compounding.
	CompoundFlag        Flag
	CompoundBegin       Flag
	CompoundMiddle      Flag
	CompoundEnd         Flag
	CompoundPermitFlag  Flag
	CompoundForbidFlag  Flag
	CompoundMin         int
	CompoundWordMax     int // 0 means unlimited
	CheckCompoundCase   bool
	CheckCompoundUp     bool
	CheckCompoundRep    bool
	CheckCompoundTriple bool
	CheckCompoundDup    bool
	SimplifiedTriple    bool

	ForceUCase Flag

	// Behavioral booleans.
	ComplexPrefixes bool
	FullStrip       bool
	NoSplitSugs     bool
	CheckSharps     bool
	OnlyMaxDiff     bool
	ForbidWarn      bool

	// Suggestion limits.
	MaxCpdSugs    int
	MaxNGramSugs  int
	MaxDiff       int
	MaxSuggestions int
	MaxPhoneticSuggestions int

	// Tables.
	Try      string
	Key      []string // KEY rows, already split on '|'
	Rep      []ReplRule
	MapGroups [][]rune // each group is a MAP equivalence class of runes
	Break    []string // BREAK patterns, as source regex text
	CompoundRules []string
	CompoundPatterns []CompoundPattern
	Iconv    []ReplRule
	Oconv    []ReplRule
	Ignore   []rune

	Aliases AliasTable
}

// ReplRule is one REP/ICONV/OCONV substitution: replace Search with
// Replace. REP additionally allows '_' in Search/Replace to stand for
// a literal space, per Hunspell convention; that substitution happens
// at parse time, not here.
type ReplRule struct {
	Search  string
	Replace string
}

// CompoundPattern is one CHECKCOMPOUNDPATTERN entry: reject a compound
// boundary where the left part ends with EndChars and the right part
// begins with BeginChars. The compound engine rejects on every such
// match; it does not consult EndFlag, BeginFlag or Replacement, which
// are recorded as parsed.
type CompoundPattern struct {
	EndChars    string
	EndFlag     Flag
	BeginChars  string
	BeginFlag   Flag
	Replacement string
}

// Has reports whether f is a configured (non-empty) directive flag.
func (f Flag) Has() bool { return f != "" }

// ApplyConv applies each ReplRule in rules to s, in order, replacing
// every occurrence of Search with Replace. Used for both ICONV
// (pre-lookup normalization) and OCONV (output normalization).
func ApplyConv(rules []ReplRule, s string) string {
	for _, r := range rules {
		if r.Search == "" {
			continue
		}
		s = strings.ReplaceAll(s, r.Search, r.Replace)
	}
	return s
}
