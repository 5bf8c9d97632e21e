// Package dicreader parses Hunspell-format word-list files (.dic)
// into []model.Word records (spec.md §6): a count line followed by
// that many "stem[/flags]  key:value …" rows, with `\/` recognized as
// an escaped literal slash in the stem.
package dicreader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/az-ai-labs/hunspell/internal/casing"
	"github.com/az-ai-labs/hunspell/internal/model"
)

// ParseError reports a malformed word-list line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dicreader: line %d: %s", e.Line, e.Msg)
}

// escapedSlashPlaceholder stands in for a literal "\/" while the stem
// is split into its slash-delimited parts, then is restored; a real
// slash can't be used as the placeholder since that's exactly the
// character being escaped.
const escapedSlashPlaceholder = "\x00"

// Parse reads a complete word-list from r. enc and aliases resolve the
// per-word flag string (AF alias indices are common for large word
// lists); c classifies each stem's CapType for LKWord comparisons
// during form validation.
func Parse(r io.Reader, enc model.FlagEncoding, aliases model.AliasTable, c casing.Casing) ([]*model.Word, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	line := 0
	advance := func() bool {
		for sc.Scan() {
			line++
			if strings.TrimSpace(sc.Text()) != "" {
				return true
			}
		}
		return false
	}

	if !advance() {
		return nil, nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, &ParseError{Line: line, Msg: fmt.Sprintf("invalid word count %q", sc.Text())}
	}

	words := make([]*model.Word, 0, count)
	for i := 0; i < count; i++ {
		if !advance() {
			return nil, &ParseError{Line: line, Msg: "unexpected end of file in word list"}
		}
		w, err := parseLine(sc.Text(), enc, aliases, c)
		if err != nil {
			return nil, &ParseError{Line: line, Msg: err.Error()}
		}
		words = append(words, w)
	}
	return words, nil
}

func parseLine(raw string, enc model.FlagEncoding, aliases model.AliasTable, c casing.Casing) (*model.Word, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty entry")
	}

	// The stem itself may contain internal spaces (a dictionary entry
	// for a fixed multi-word phrase, e.g. a REP suggestion target);
	// everything up to the first "key:value" token belongs to it.
	splitIdx := len(fields)
	for i := 1; i < len(fields); i++ {
		if strings.Contains(fields[i], ":") {
			splitIdx = i
			break
		}
	}
	head := strings.Join(fields[:splitIdx], " ")
	morphTokens := fields[splitIdx:]

	escaped := strings.ReplaceAll(head, `\/`, escapedSlashPlaceholder)
	stem, flagStr, hasFlags := strings.Cut(escaped, "/")
	stem = strings.ReplaceAll(stem, escapedSlashPlaceholder, "/")

	var flags model.FlagSet
	if hasFlags {
		flagStr = strings.ReplaceAll(flagStr, escapedSlashPlaceholder, "/")
		fs, err := model.ParseFlags(flagStr, enc, aliases)
		if err != nil {
			return nil, err
		}
		flags = fs
	}

	w := &model.Word{
		Stem:    stem,
		CapType: casing.Guess(c, stem),
		Flags:   flags,
	}

	for _, tok := range morphTokens {
		key, value, ok := strings.Cut(tok, ":")
		if !ok {
			continue
		}
		if key == "ph" {
			w.Ph = append(w.Ph, value)
			continue
		}
		if w.Morph == nil {
			w.Morph = make(map[string][]string)
		}
		if n, err := strconv.Atoi(value); err == nil {
			if tags, ok := aliases.ResolveAM(n); ok {
				w.Morph[key] = append(w.Morph[key], tags...)
				continue
			}
		}
		w.Morph[key] = append(w.Morph[key], value)
	}

	return w, nil
}
