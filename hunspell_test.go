package hunspell_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/hunspell"
)

// load is a small test helper: every scenario's fixture lives under
// testdata/<name>/test.{aff,dic}.
func load(t *testing.T, name string) *hunspell.Dictionary {
	t.Helper()
	dir := filepath.Join("testdata", name)
	d, err := hunspell.Load(filepath.Join(dir, "test.aff"), filepath.Join(dir, "test.dic"))
	require.NoError(t, err)
	return d
}

func TestS1BasicSuffix(t *testing.T) {
	d := load(t, "s1")
	assert.True(t, d.Check("hello").Correct)
	assert.True(t, d.Check("hellos").Correct)
	assert.False(t, d.Check("hellox").Correct)
	assert.Equal(t, []string{"hello"}, d.Stems("hellos"))
}

func TestS2CrossProduct(t *testing.T) {
	d := load(t, "s2")
	assert.True(t, d.Check("rewalking").Correct)
}

func TestS3KeepCase(t *testing.T) {
	d := load(t, "s3")
	assert.False(t, d.Check("iphone").Correct)
	assert.True(t, d.Check("iPhone").Correct)
}

func TestS4CompoundFlag(t *testing.T) {
	d := load(t, "s4")
	assert.True(t, d.Check("foobar").Correct)
	assert.False(t, d.Check("fo").Correct)
}

func TestS5CompoundRule(t *testing.T) {
	d := load(t, "s5")
	assert.True(t, d.Check("redgreen").Correct)
	assert.True(t, d.Check("redbluebluegreen").Correct)
	assert.False(t, d.Check("redred").Correct)
}

func TestS6RepSuggestion(t *testing.T) {
	d := load(t, "s6")
	suggestions := d.Suggest("alot")
	require.NotEmpty(t, suggestions)
	assert.Contains(t, suggestions[:1], "a lot")
}

// TestIdempotence pins invariant 1 (§8): repeated Check calls against
// the same Dictionary never change result or mutate shared state.
func TestIdempotence(t *testing.T) {
	d := load(t, "s1")
	first := d.Check("hellos")
	second := d.Check("hellos")
	assert.Equal(t, first, second)
}

// TestForbiddenExclusion pins invariant 5 (§8): no suggestion carries
// the FORBIDDENWORD flag.
func TestForbiddenExclusion(t *testing.T) {
	d := load(t, "s1")
	for _, s := range d.Suggest("helo") {
		res := d.Check(s)
		assert.False(t, res.Forbidden, "suggestion %q must not be forbidden", s)
	}
}

// TestNumericTokensAlwaysCorrect pins §6's "pure-numeric tokens are
// correct" pre-check rule.
func TestNumericTokensAlwaysCorrect(t *testing.T) {
	d := load(t, "s1")
	assert.True(t, d.Check("1234").Correct)
	assert.True(t, d.Check("12.34").Correct)
	assert.True(t, d.Check("1,234").Correct)
}

func TestDataReturnsMorphologicalTags(t *testing.T) {
	dir := filepath.Join("testdata", "morph")
	d, err := hunspell.Load(filepath.Join(dir, "test.aff"), filepath.Join(dir, "test.dic"))
	require.NoError(t, err)
	data := d.Data("run", false)
	require.Len(t, data, 1)
	assert.Equal(t, []string{"verb"}, data[0]["po"])
}
