// Package affreader parses Hunspell-format affix description files
// into the internal/model tables the core engine operates on:
// Directives plus the raw Prefix/Suffix entries that internal/affixtab
// indexes (spec.md §6's "recognized fields" list).
//
// The format is line-oriented. Most directives are a single line of
// whitespace-separated fields. A handful are "tabular": a header line
// giving a row count, followed by that many data rows (PFX, SFX, REP,
// MAP, BREAK, COMPOUNDRULE, CHECKCOMPOUNDPATTERN, ICONV, OCONV, PHONE,
// AF, AM). Unrecognized keywords are ignored rather than rejected,
// matching spec.md §7e's "unknown flags are inert" posture extended to
// the description level: a newer affix file using a directive this
// engine doesn't model should still load.
package affreader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/az-ai-labs/hunspell/internal/model"
	"github.com/az-ai-labs/hunspell/internal/phonetic"
)

// ParseError reports a malformed affix description line, with the
// line number so a caller can point a user at the offending input
// (spec.md §7a).
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("affreader: line %d: %s", e.Line, e.Msg)
}

// Result is everything a parsed affix description contributes to
// engine construction.
type Result struct {
	Directives model.Directives
	Prefixes   []*model.Prefix
	Suffixes   []*model.Suffix
	PhoneTable phonetic.Table
}

type parser struct {
	sc   *bufio.Scanner
	line int
	res  Result
}

// Parse reads a complete affix description from r.
func Parse(r io.Reader) (*Result, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	p.sc.Buffer(make([]byte, 64*1024), 1<<20)
	p.res.Directives.Encoding = model.EncodingShort

	for p.advance() {
		fields := strings.Fields(p.sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := p.dispatch(fields); err != nil {
			return nil, err
		}
	}
	if err := p.sc.Err(); err != nil {
		return nil, err
	}

	if len(p.res.Directives.Break) == 0 {
		p.res.Directives.Break = []string{"^-", "-$", "-"}
	}
	if p.res.Directives.CompoundMin == 0 {
		p.res.Directives.CompoundMin = 3 // Hunspell's own default; no real affix file sets it to 0
	}
	return &p.res, nil
}

// advance reads the next non-blank line, counting line numbers.
func (p *parser) advance() bool {
	for p.sc.Scan() {
		p.line++
		if strings.TrimSpace(p.sc.Text()) != "" {
			return true
		}
	}
	return false
}

func (p *parser) errf(format string, args ...any) error {
	return &ParseError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) flag(s string) (model.Flag, error) {
	f, err := model.ParseFlag(s, p.res.Directives.Encoding)
	if err != nil {
		return "", p.errf("%v", err)
	}
	return f, nil
}

func (p *parser) flags(s string) (model.FlagSet, error) {
	fs, err := model.ParseFlags(s, p.res.Directives.Encoding, p.res.Directives.Aliases)
	if err != nil {
		return nil, p.errf("%v", err)
	}
	return fs, nil
}

func (p *parser) dispatch(fields []string) error {
	d := &p.res.Directives
	kw := fields[0]

	needArg := func() (string, error) {
		if len(fields) < 2 {
			return "", p.errf("%s: missing argument", kw)
		}
		return fields[1], nil
	}
	needFlag := func() (model.Flag, error) {
		arg, err := needArg()
		if err != nil {
			return "", err
		}
		return p.flag(arg)
	}
	needInt := func() (int, error) {
		arg, err := needArg()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return 0, p.errf("%s: invalid integer %q", kw, arg)
		}
		return n, nil
	}
	needBool := func() (bool, error) { return true, nil }

	var err error
	switch kw {
	case "FLAG":
		arg, e := needArg()
		if e != nil {
			return e
		}
		switch arg {
		case "long":
			d.Encoding = model.EncodingLong
		case "num":
			d.Encoding = model.EncodingNumeric
		case "UTF-8":
			d.Encoding = model.EncodingUTF8
		default:
			return p.errf("FLAG: unknown encoding %q", arg)
		}
	case "LANG":
		d.Lang, err = needArg()
	case "KEY":
		arg, e := needArg()
		if e != nil {
			return e
		}
		d.Key = strings.Split(arg, "|")
	case "TRY":
		d.Try, err = needArg()
	case "IGNORE":
		arg, e := needArg()
		if e != nil {
			return e
		}
		d.Ignore = []rune(arg)

	case "NOSUGGEST":
		d.NoSuggest, err = needFlag()
	case "KEEPCASE":
		d.KeepCase, err = needFlag()
	case "NEEDAFFIX", "PSEUDOROOT":
		d.NeedAffix, err = needFlag()
	case "CIRCUMFIX":
		d.Circumfix, err = needFlag()
	case "FORBIDDENWORD":
		d.ForbiddenWord, err = needFlag()
	case "WARN":
		d.Warn, err = needFlag()
	case "ONLYINCOMPOUND":
		d.OnlyInCompound, err = needFlag()

	case "COMPOUNDFLAG":
		d.CompoundFlag, err = needFlag()
	case "COMPOUNDBEGIN":
		d.CompoundBegin, err = needFlag()
	case "COMPOUNDMIDDLE":
		d.CompoundMiddle, err = needFlag()
	case "COMPOUNDEND":
		d.CompoundEnd, err = needFlag()
	case "COMPOUNDPERMITFLAG":
		d.CompoundPermitFlag, err = needFlag()
	case "COMPOUNDFORBIDFLAG":
		d.CompoundForbidFlag, err = needFlag()
	case "COMPOUNDMIN":
		d.CompoundMin, err = needInt()
	case "COMPOUNDWORDMAX":
		d.CompoundWordMax, err = needInt()
	case "CHECKCOMPOUNDCASE":
		d.CheckCompoundCase, err = needBool()
	case "CHECKCOMPOUNDUP":
		d.CheckCompoundUp, err = needBool()
	case "CHECKCOMPOUNDREP":
		d.CheckCompoundRep, err = needBool()
	case "CHECKCOMPOUNDTRIPLE":
		d.CheckCompoundTriple, err = needBool()
	case "CHECKCOMPOUNDDUP":
		d.CheckCompoundDup, err = needBool()
	case "SIMPLIFIEDTRIPLE":
		d.SimplifiedTriple, err = needBool()
	case "FORCEUCASE":
		d.ForceUCase, err = needFlag()

	case "COMPLEXPREFIXES":
		d.ComplexPrefixes, err = needBool()
	case "FULLSTRIP":
		d.FullStrip, err = needBool()
	case "NOSPLITSUGS":
		d.NoSplitSugs, err = needBool()
	case "CHECKSHARPS":
		d.CheckSharps, err = needBool()
	case "ONLYMAXDIFF":
		d.OnlyMaxDiff, err = needBool()
	case "FORBIDWARN":
		d.ForbidWarn, err = needBool()

	case "MAXCPDSUGS":
		d.MaxCpdSugs, err = needInt()
	case "MAXNGRAMSUGS":
		d.MaxNGramSugs, err = needInt()
	case "MAXDIFF":
		d.MaxDiff, err = needInt()

	case "REP":
		err = p.readRepTable(&d.Rep, true)
	case "ICONV":
		err = p.readRepTable(&d.Iconv, false)
	case "OCONV":
		err = p.readRepTable(&d.Oconv, false)
	case "MAP":
		err = p.readMapTable()
	case "BREAK":
		err = p.readStringTable(&d.Break)
	case "COMPOUNDRULE":
		err = p.readStringTable(&d.CompoundRules)
	case "CHECKCOMPOUNDPATTERN":
		err = p.readCompoundPatternTable()
	case "PHONE":
		err = p.readPhoneTable()
	case "AF":
		err = p.readAFTable()
	case "AM":
		err = p.readAMTable()

	case "PFX":
		err = p.readAffixTable(fields, true)
	case "SFX":
		err = p.readAffixTable(fields, false)

	default:
		// Unrecognized directive: ignored, not an error (§7e).
	}
	return err
}
