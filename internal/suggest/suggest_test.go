package suggest

import (
	"testing"

	"github.com/az-ai-labs/hunspell/internal/affixtab"
	"github.com/az-ai-labs/hunspell/internal/casing"
	"github.com/az-ai-labs/hunspell/internal/compound"
	"github.com/az-ai-labs/hunspell/internal/decompose"
	"github.com/az-ai-labs/hunspell/internal/dict"
	"github.com/az-ai-labs/hunspell/internal/formcheck"
	"github.com/az-ai-labs/hunspell/internal/model"
	"github.com/stretchr/testify/require"
)

func newTestSuggester(t *testing.T, words ...string) *Suggester {
	t.Helper()
	d := &model.Directives{
		Try:            "abcdefghijklmnopqrstuvwxyz",
		MaxSuggestions: 15,
		MaxNGramSugs:   6,
	}
	dictIdx := dict.New(nil)
	for _, w := range words {
		dictIdx.Add(&model.Word{Stem: w})
	}
	table := affixtab.New(nil, nil)
	checker := &formcheck.Checker{
		Decomp:    &decompose.Decomposer{Affix: table},
		Dict:      dictIdx,
		Validator: &formcheck.Validator{Directives: d},
	}
	eng := &compound.Engine{Checker: checker, Directives: d}
	return NewSuggester(checker, eng, casing.Default{}, d, dictIdx, nil)
}

func TestSuggestExtraCharFix(t *testing.T) {
	s := newTestSuggester(t, "hello")
	out := s.Suggest("helllo")
	require.Contains(t, out, "hello")
}

func TestSuggestEmptyInput(t *testing.T) {
	s := newTestSuggester(t, "hello")
	require.Nil(t, s.Suggest(""))
}

func TestSuggestDeduplicates(t *testing.T) {
	s := newTestSuggester(t, "abc")
	out := s.Suggest("abcx")
	seen := make(map[string]bool)
	for _, o := range out {
		require.False(t, seen[o], "duplicate suggestion %q", o)
		seen[o] = true
	}
}

func TestSuggestCaseCoercion(t *testing.T) {
	s := newTestSuggester(t, "hello")
	out := s.Suggest("Helllo")
	require.Contains(t, out, "Hello")
}

func TestSuggestNGramFallback(t *testing.T) {
	s := newTestSuggester(t, "wonderful")
	out := s.Suggest("wunderfull")
	require.NotEmpty(t, out)
}
