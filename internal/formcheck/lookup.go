package formcheck

import (
	"github.com/az-ai-labs/hunspell/internal/decompose"
	"github.com/az-ai-labs/hunspell/internal/dict"
	"github.com/az-ai-labs/hunspell/internal/model"
)

// Checker ties the decomposer, dictionary, and validator together into
// the single lookup path spec.md's data-flow diagram calls "Decomposer
// → Form validator": every AffixForm hypothesis the decomposer offers
// is bound to each dictionary homonym of its stem and run through the
// validator, yielding only the accepted forms. It is the one place
// this wiring happens, shared by the top-level check/suggest facade
// and the compound engine's per-segment checks.
type Checker struct {
	Decomp    *decompose.Decomposer
	Dict      *dict.Dictionary
	Validator *Validator
}

// Check returns every accepted AffixForm explaining lw under flags.
func (c *Checker) Check(lw model.LKWord, flags model.LKFlags) []model.AffixForm {
	var out []model.AffixForm
	c.Decomp.Enumerate(lw, flags, func(form model.AffixForm) bool {
		for _, w := range c.Dict.Homonyms(form.Stem, false) {
			bound := form
			bound.Word = w
			if c.Validator.Accept(bound, lw) {
				out = append(out, bound)
			}
		}
		return true
	})
	return out
}
