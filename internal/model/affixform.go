package model

// LKFlags is the triple of flag-set constraints threaded through
// decomposition while compounding: flags a decomposition's outer
// prefix/suffix must carry, and flags that must appear nowhere in it.
type LKFlags struct {
	Prefix    FlagSet
	Suffix    FlagSet
	Forbidden FlagSet
}

// AffixForm is one decomposition hypothesis for a surface word: a
// candidate stem plus up to two prefixes and two suffixes (Hunspell
// never stacks more than two of either side), and the matched
// dictionary Word, once the hypothesis has been checked against the
// dictionary.
type AffixForm struct {
	Text   string // the original surface text this form explains
	Stem   string

	OuterPrefix *Prefix
	InnerPrefix *Prefix
	OuterSuffix *Suffix
	InnerSuffix *Suffix

	Word *Word // bound once a dictionary homonym has been matched
}

// HasAffix reports whether the form has any prefix or suffix applied.
func (f AffixForm) HasAffix() bool {
	return f.OuterPrefix != nil || f.InnerPrefix != nil || f.OuterSuffix != nil || f.InnerSuffix != nil
}

// Flags returns the form's outward-visible flag set: the dictionary
// word's flags unioned with ONLY the outer affixes' flags. Per
// spec.md's explicit resolution of the source ambiguity (§9), inner
// affixes never contribute here — they exist solely so the outer
// affix's condition can be checked against the correct (twice-
// stripped) stem, and so Round-trip (invariant 2) has something to
// reapply.
func (f AffixForm) Flags() FlagSet {
	var out FlagSet
	if f.Word != nil {
		out = f.Word.Flags.Union(nil)
	} else {
		out = FlagSet{}
	}
	if f.OuterPrefix != nil {
		out = out.Union(f.OuterPrefix.Flags)
	}
	if f.OuterSuffix != nil {
		out = out.Union(f.OuterSuffix.Flags)
	}
	return out
}

// Rebuild reconstructs the surface text by applying, in order, the
// inner suffix, inner prefix, outer suffix, and outer prefix to Stem.
// This is the Round-trip invariant (spec.md §8 invariant 2): for every
// AffixForm accepted by the form validator, Rebuild() == Text.
func (f AffixForm) Rebuild() string {
	s := f.Stem
	if f.InnerSuffix != nil {
		s = f.InnerSuffix.Unapply(s)
	}
	if f.InnerPrefix != nil {
		s = f.InnerPrefix.Unapply(s)
	}
	if f.OuterSuffix != nil {
		s = f.OuterSuffix.Unapply(s)
	}
	if f.OuterPrefix != nil {
		s = f.OuterPrefix.Unapply(s)
	}
	return s
}

// CompoundForm is an ordered sequence of AffixForms whose concatenated
// Text fields reconstruct the original compound surface.
type CompoundForm []AffixForm

// Concat returns the concatenation of every part's Text.
func (c CompoundForm) Concat() string {
	var total int
	for _, p := range c {
		total += len(p.Text)
	}
	buf := make([]byte, 0, total)
	for _, p := range c {
		buf = append(buf, p.Text...)
	}
	return string(buf)
}
