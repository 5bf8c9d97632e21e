// Package config reads the optional TOML language-pack registry the
// CLI uses to resolve a language name to a set of affix/word-list
// files, following the same toml.DecodeFile pattern the retrieval
// pack's config-driven tools use for their own settings files.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Language names one entry of the registry: the affix description and
// primary word list for a language, plus any supplementary word lists
// (regional variants, technical glossaries) to load into the same
// dictionary.
type Language struct {
	Aff     string   `toml:"aff"`
	Dic     string   `toml:"dic"`
	ExtraDic []string `toml:"extra_dic"`
}

// Config is the top-level TOML document: a table of language packs
// keyed by name (e.g. "en_US", "az_AZ").
type Config struct {
	Languages map[string]Language `toml:"languages"`
}

// Load decodes a TOML config file at path.
func Load(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return &c, nil
}

// Lookup returns the Language registered under name, or an error
// naming the lang and giving the number of configured languages if it
// isn't found.
func (c *Config) Lookup(name string) (Language, error) {
	if c == nil {
		return Language{}, fmt.Errorf("config: no config loaded, requested language %q", name)
	}
	lang, ok := c.Languages[name]
	if !ok {
		return Language{}, fmt.Errorf("config: unknown language %q (configured: %d)", name, len(c.Languages))
	}
	return lang, nil
}
