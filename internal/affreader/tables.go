package affreader

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/hunspell/internal/condition"
	"github.com/az-ai-labs/hunspell/internal/model"
	"github.com/az-ai-labs/hunspell/internal/phonetic"
)

// tableCount parses the row count that follows a tabular directive's
// keyword, e.g. the "2" in "REP 2".
func (p *parser) tableCount(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, p.errf("%s: missing row count", fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, p.errf("%s: invalid row count %q", fields[0], fields[1])
	}
	return n, nil
}

// readRepTable parses a REP/ICONV/OCONV table: a count line followed
// by that many "KEYWORD search replace" rows. underscoreIsSpace is set
// for REP, which uses '_' as a literal-space escape (spec.md §4.I).
func (p *parser) readRepTable(into *[]model.ReplRule, underscoreIsSpace bool) error {
	n, err := p.tableCountCurrent()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if !p.advance() {
			return p.errf("unexpected end of file in table")
		}
		fields := strings.Fields(p.sc.Text())
		if len(fields) < 3 {
			return p.errf("%s: expected 2 fields, got %d", fields[0], len(fields)-1)
		}
		search, replace := fields[1], fields[2]
		if underscoreIsSpace {
			search = strings.ReplaceAll(search, "_", " ")
			replace = strings.ReplaceAll(replace, "_", " ")
		}
		*into = append(*into, model.ReplRule{Search: search, Replace: replace})
	}
	return nil
}

// readStringTable parses a table whose rows are a keyword plus one
// bare string argument (BREAK, COMPOUNDRULE).
func (p *parser) readStringTable(into *[]string) error {
	n, err := p.tableCountCurrent()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if !p.advance() {
			return p.errf("unexpected end of file in table")
		}
		fields := strings.Fields(p.sc.Text())
		if len(fields) < 2 {
			return p.errf("%s: missing value", fields[0])
		}
		*into = append(*into, fields[1])
	}
	return nil
}

// readMapTable parses MAP rows into rune equivalence classes. A
// parenthesized group inside a row stands for one multi-rune unit;
// since Directives.MapGroups models only rune-level classes, the
// group's first rune represents the whole unit (Hunspell's real MAP
// can equate multi-character sequences, which this engine narrows to
// their leading rune).
func (p *parser) readMapTable() error {
	n, err := p.tableCountCurrent()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if !p.advance() {
			return p.errf("unexpected end of file in table")
		}
		fields := strings.Fields(p.sc.Text())
		if len(fields) < 2 {
			return p.errf("%s: missing value", fields[0])
		}
		p.res.Directives.MapGroups = append(p.res.Directives.MapGroups, parseMapGroup(fields[1]))
	}
	return nil
}

func parseMapGroup(s string) []rune {
	var out []rune
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '(' {
			end := i + 1
			for end < len(runes) && runes[end] != ')' {
				end++
			}
			if end < len(runes) && end > i+1 {
				out = append(out, runes[i+1])
			}
			i = end
			continue
		}
		out = append(out, runes[i])
	}
	return out
}

// readCompoundPatternTable parses CHECKCOMPOUNDPATTERN rows:
// "endchars[/flag] beginchars[/flag] [replacement]".
func (p *parser) readCompoundPatternTable() error {
	n, err := p.tableCountCurrent()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if !p.advance() {
			return p.errf("unexpected end of file in table")
		}
		fields := strings.Fields(p.sc.Text())
		if len(fields) < 3 {
			return p.errf("%s: expected at least 2 fields", fields[0])
		}
		endChars, endFlag, err := p.splitSlashFlag(fields[1])
		if err != nil {
			return err
		}
		beginChars, beginFlag, err := p.splitSlashFlag(fields[2])
		if err != nil {
			return err
		}
		pat := model.CompoundPattern{
			EndChars:   endChars,
			EndFlag:    endFlag,
			BeginChars: beginChars,
			BeginFlag:  beginFlag,
		}
		if len(fields) >= 4 {
			pat.Replacement = fields[3]
		}
		p.res.Directives.CompoundPatterns = append(p.res.Directives.CompoundPatterns, pat)
	}
	return nil
}

// splitSlashFlag splits "text/FLAG" into text and FLAG; FLAG is the
// zero Flag if s has no slash.
func (p *parser) splitSlashFlag(s string) (string, model.Flag, error) {
	idx := strings.IndexByte(s, '/')
	if idx < 0 {
		return s, "", nil
	}
	f, err := p.flag(s[idx+1:])
	if err != nil {
		return "", "", err
	}
	return s[:idx], f, nil
}

// readPhoneTable parses PHONE rows into the compiled phonetic.Table
// the suggester uses; no uncompiled copy of the rows is kept.
func (p *parser) readPhoneTable() error {
	n, err := p.tableCountCurrent()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if !p.advance() {
			return p.errf("unexpected end of file in table")
		}
		fields := strings.Fields(p.sc.Text())
		if len(fields) < 3 {
			return p.errf("%s: expected 2 fields, got %d", fields[0], len(fields)-1)
		}
		rule := compilePhoneRule(fields[1], fields[2])
		p.res.PhoneTable = append(p.res.PhoneTable, rule)
	}
	return nil
}

// compilePhoneRule parses one PHONE search pattern into a
// phonetic.Rule: a leading '^' anchors the match to the word start, a
// trailing '$' anchors it to the word end, and a trailing parenthesized
// group constrains the rune immediately following the match (optionally
// negated with a leading '^' inside the parens). A replacement of "_"
// means "delete" (Hunspell's silent-letter convention).
func compilePhoneRule(search, replace string) phonetic.Rule {
	r := phonetic.Rule{}
	s := search

	if strings.HasPrefix(s, "^") {
		r.StartAnchor = true
		s = s[1:]
	}
	if strings.HasSuffix(s, "$") {
		r.EndAnchor = true
		s = s[:len(s)-1]
	}
	if open := strings.IndexByte(s, '('); open >= 0 && strings.HasSuffix(s, ")") {
		body := s[open+1 : len(s)-1]
		s = s[:open]
		negate := strings.HasPrefix(body, "^")
		if negate {
			body = body[1:]
		}
		set := make(map[rune]struct{}, len(body))
		for _, br := range body {
			set[br] = struct{}{}
		}
		r.Condition = func(next rune, ok bool) bool {
			if !ok {
				return false
			}
			_, in := set[next]
			if negate {
				return !in
			}
			return in
		}
	}

	r.Search = s
	if replace == "_" {
		r.Replace = ""
	} else {
		r.Replace = replace
	}
	return r
}

// readAFTable parses AF rows into Directives.Aliases.AF (1-indexed,
// index 0 of the slice corresponds to alias 1).
func (p *parser) readAFTable() error {
	n, err := p.tableCountCurrent()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if !p.advance() {
			return p.errf("unexpected end of file in table")
		}
		fields := strings.Fields(p.sc.Text())
		if len(fields) < 2 {
			return p.errf("%s: missing flag string", fields[0])
		}
		fs, err := model.ParseFlags(fields[1], p.res.Directives.Encoding, model.AliasTable{})
		if err != nil {
			return p.errf("%v", err)
		}
		p.res.Directives.Aliases.AF = append(p.res.Directives.Aliases.AF, fs)
	}
	return nil
}

// readAMTable parses AM rows into Directives.Aliases.AM.
func (p *parser) readAMTable() error {
	n, err := p.tableCountCurrent()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if !p.advance() {
			return p.errf("unexpected end of file in table")
		}
		fields := strings.Fields(p.sc.Text())
		if len(fields) < 2 {
			return p.errf("%s: missing morphological tags", fields[0])
		}
		p.res.Directives.Aliases.AM = append(p.res.Directives.Aliases.AM, fields[1:])
	}
	return nil
}

// readAffixTable parses a PFX or SFX table: a header line
// "PFX class crossproduct count" followed by count rows of
// "PFX class strip add[/flags] condition [morph...]".
func (p *parser) readAffixTable(header []string, isPrefix bool) error {
	if len(header) < 4 {
		return p.errf("%s: expected class, cross-product flag, and row count", header[0])
	}
	class, err := p.flag(header[1])
	if err != nil {
		return err
	}
	crossProduct := header[2] == "Y" || header[2] == "y"
	n, err := strconv.Atoi(header[3])
	if err != nil {
		return p.errf("%s: invalid row count %q", header[0], header[3])
	}

	side := condition.AtEnd
	if !isPrefix {
		side = condition.AtStart
	}

	for i := 0; i < n; i++ {
		if !p.advance() {
			return p.errf("unexpected end of file in affix table")
		}
		fields := strings.Fields(p.sc.Text())
		if len(fields) < 5 {
			return p.errf("%s %s: expected strip, add, condition", fields[0], string(class))
		}
		strip := fields[2]
		if strip == "0" {
			strip = ""
		}
		add, flagStr, _ := strings.Cut(fields[3], "/")
		if add == "0" {
			add = ""
		}
		var flags model.FlagSet
		if flagStr != "" {
			flags, err = p.flags(flagStr)
			if err != nil {
				return err
			}
		}
		cond, err := condition.Compile(fields[4], side)
		if err != nil {
			return p.errf("%v", err)
		}

		if isPrefix {
			p.res.Prefixes = append(p.res.Prefixes, &model.Prefix{
				Class:        class,
				Strip:        strip,
				Add:          add,
				Condition:    cond,
				CrossProduct: crossProduct,
				Flags:        flags,
			})
		} else {
			p.res.Suffixes = append(p.res.Suffixes, &model.Suffix{
				Class:        class,
				Strip:        strip,
				Add:          add,
				Condition:    cond,
				CrossProduct: crossProduct,
				Flags:        flags,
			})
		}
	}
	return nil
}

// tableCountCurrent parses the row count from the directive line
// currently loaded in the scanner (the header line that dispatch()
// matched on).
func (p *parser) tableCountCurrent() (int, error) {
	return p.tableCount(strings.Fields(p.sc.Text()))
}
