package model

// Word is a single dictionary entry: a stem plus the flags and
// morphological data carried by the word-list line it was parsed from.
// Multiple Words may share a stem (homonyms): e.g. "wind" the noun and
// "wind" the verb, with different flag sets.
type Word struct {
	Stem    string
	CapType CapType
	Flags   FlagSet
	Morph   map[string][]string // morphological key -> values, from "k:v" pairs
	Ph      []string            // alternate spellings from ph: morphological tags

	// RelevantPrefixes/RelevantSuffixes are optionally precomputed at
	// engine build time: the subset of the engine's affix tables whose
	// class flag is in Flags AND whose condition matches this stem.
	// Nil when the engine was built without precomputation (a valid,
	// just slower, configuration per spec.md's design notes).
	RelevantPrefixes []*Prefix
	RelevantSuffixes []*Suffix
}

// HasFlag reports whether w carries f.
func (w *Word) HasFlag(f Flag) bool { return w.Flags.Has(f) }
