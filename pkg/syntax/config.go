package syntax

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/sirosfoundation/go-edifact/pkg/edifact"
)

// registryFile is the root structure of a YAML profile file.
type registryFile struct {
	Profiles []ProfileConfig `yaml:"profiles"`
}

// ProfileConfig is one profile entry in a YAML profile file.
type ProfileConfig struct {
	ID         string           `yaml:"id"`
	Syntax     string           `yaml:"syntax"`
	Version    string           `yaml:"version"`
	Repertoire string           `yaml:"repertoire"`
	Delimiters *DelimiterConfig `yaml:"delimiters"`
}

// DelimiterConfig overrides individual delimiter characters. Each value
// must be a single character; omitted ones keep the service character.
type DelimiterConfig struct {
	Component  string `yaml:"component"`
	Data       string `yaml:"data"`
	Decimal    string `yaml:"decimal"`
	Release    string `yaml:"release"`
	Repetition string `yaml:"repetition"`
	Terminator string `yaml:"terminator"`
}

// Load reads a profile registry from a YAML file
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}
	return Parse(data)
}

// Parse reads a profile registry from YAML bytes. Environment variables
// (${VAR} or $VAR syntax) are expanded before parsing, so partner IDs
// and delimiter overrides can be injected at runtime.
func Parse(data []byte) (*Registry, error) {
	expanded := os.ExpandEnv(string(data))

	var f registryFile
	if err := yaml.Unmarshal([]byte(expanded), &f); err != nil {
		return nil, fmt.Errorf("parsing profile file: %w", err)
	}

	reg := NewRegistry()
	for i := range f.Profiles {
		p, err := f.Profiles[i].toProfile()
		if err != nil {
			return nil, fmt.Errorf("validating profile file: %w", err)
		}
		if err := reg.Add(p); err != nil {
			return nil, fmt.Errorf("validating profile file: %w", err)
		}
	}
	return reg, nil
}

func (c *ProfileConfig) toProfile() (*Profile, error) {
	p := &Profile{
		ID:            c.ID,
		SyntaxID:      c.Syntax,
		SyntaxVersion: c.Version,
		Repertoire:    Repertoire(c.Repertoire),
	}
	if c.Delimiters != nil {
		d := edifact.DefaultDelimiters()
		for _, override := range []struct {
			field *rune
			value string
			name  string
		}{
			{&d.Component, c.Delimiters.Component, "component"},
			{&d.Data, c.Delimiters.Data, "data"},
			{&d.Decimal, c.Delimiters.Decimal, "decimal"},
			{&d.Release, c.Delimiters.Release, "release"},
			{&d.Repetition, c.Delimiters.Repetition, "repetition"},
			{&d.Terminator, c.Delimiters.Terminator, "terminator"},
		} {
			if override.value == "" {
				continue
			}
			r, size := utf8.DecodeRuneInString(override.value)
			if r == utf8.RuneError || size != len(override.value) {
				return nil, fmt.Errorf("profile %s: %s delimiter %q must be a single character",
					c.ID, override.name, override.value)
			}
			*override.field = r
		}
		p.Delimiters = d
	}
	p.applyDefaults()
	return p, nil
}
