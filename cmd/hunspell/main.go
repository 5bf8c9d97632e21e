// Command hunspell is a spellchecking CLI over the hunspell engine:
// check, suggest, stems, and data subcommands mirroring the package's
// four entry points. A language is resolved either from a TOML
// language-pack registry (--config/--lang) or from explicit
// --aff/--dic flag paths.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/hunspell"
	"github.com/az-ai-labs/hunspell/internal/config"
	"github.com/az-ai-labs/hunspell/tokenizer"
)

var (
	configPath string
	langName   string
	affPath    string
	dicPaths   []string
	ci         bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hunspell: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hunspell",
		Short:         "Hunspell-compatible spellchecking from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML language-pack registry")
	root.PersistentFlags().StringVar(&langName, "lang", "", "language name to look up in --config")
	root.PersistentFlags().StringVar(&affPath, "aff", "", "affix description file (.aff)")
	root.PersistentFlags().StringArrayVar(&dicPaths, "dic", nil, "word-list file (.dic); repeatable, first is primary")
	root.PersistentFlags().BoolVar(&ci, "ci", false, "case-insensitive stem lookup for the data subcommand")

	root.AddCommand(newCheckCmd(), newSuggestCmd(), newStemsCmd(), newDataCmd())
	return root
}

// loadDictionary resolves the engine from either a config/lang pair or
// explicit --aff/--dic paths, config taking priority.
func loadDictionary() (*hunspell.Dictionary, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if langName == "" {
			return nil, fmt.Errorf("--lang is required with --config")
		}
		lang, err := cfg.Lookup(langName)
		if err != nil {
			return nil, err
		}
		return hunspell.Load(lang.Aff, append([]string{lang.Dic}, lang.ExtraDic...)...)
	}
	if affPath == "" || len(dicPaths) == 0 {
		return nil, fmt.Errorf("either --config and --lang, or --aff and at least one --dic, is required")
	}
	return hunspell.Load(affPath, dicPaths...)
}

func newCheckCmd() *cobra.Command {
	var batch bool
	cmd := &cobra.Command{
		Use:   "check [words...]",
		Short: "report correctness for each word, or (with --batch) every word read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary()
			if err != nil {
				return err
			}
			if batch {
				return checkBatch(dict, os.Stdin, os.Stdout)
			}
			for _, w := range args {
				res := dict.Check(w)
				fmt.Fprintf(os.Stdout, "%s\tcorrect=%t\tforbidden=%t\twarn=%t\n", w, res.Correct, res.Forbidden, res.Warn)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&batch, "batch", false, "read a whole document from stdin, line by line, and list misspelled words")
	return cmd
}

// checkBatch tokenizes stdin a line at a time and reports every word
// token that doesn't check out, reusing the tokenizer's own word
// classification instead of a naive whitespace split (so URLs, emails,
// and punctuation are never misreported as misspellings).
func checkBatch(dict *hunspell.Dictionary, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		for _, w := range tokenizer.Misspelled(sc.Text(), func(word string) bool {
			return dict.Check(word).Correct
		}) {
			fmt.Fprintln(out, w)
		}
	}
	return sc.Err()
}

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [words...]",
		Short: "list ordered spelling suggestions for each word",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary()
			if err != nil {
				return err
			}
			for _, w := range args {
				sugg := dict.Suggest(w)
				fmt.Fprintf(os.Stdout, "%s:", w)
				for _, s := range sugg {
					fmt.Fprintf(os.Stdout, " %s", s)
				}
				fmt.Fprintln(os.Stdout)
			}
			return nil
		},
	}
}

func newStemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stems [words...]",
		Short: "list the stem of every accepted decomposition of each word",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary()
			if err != nil {
				return err
			}
			for _, w := range args {
				stems := dict.Stems(w)
				fmt.Fprintf(os.Stdout, "%s:", w)
				for _, s := range stems {
					fmt.Fprintf(os.Stdout, " %s", s)
				}
				fmt.Fprintln(os.Stdout)
			}
			return nil
		},
	}
}

func newDataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "data [stems...]",
		Short: "print the morphological tag data recorded against each stem",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary()
			if err != nil {
				return err
			}
			for _, stem := range args {
				for _, morph := range dict.Data(stem, ci) {
					fmt.Fprintf(os.Stdout, "%s:", stem)
					for k, values := range morph {
						for _, v := range values {
							fmt.Fprintf(os.Stdout, " %s:%s", k, v)
						}
					}
					fmt.Fprintln(os.Stdout)
				}
			}
			return nil
		},
	}
}
