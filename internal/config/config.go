// Package config holds the conversion options and loads them from YAML.
package config

import (
	"bytes"
	"io"
	"os"
	"slices"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// MemberSections are the sectiondef kinds that can be listed in a member
// filter.
var MemberSections = []string{
	"public-attrib",
	"public-func",
	"protected-attrib",
	"protected-func",
	"private-attrib",
	"private-func",
	"friend",
}

// CompoundKinds are the compound kinds that can be listed in a compound filter.
var CompoundKinds = []string{"namespace", "class", "struct", "union", "typedef"}

// Config is the complete set of conversion options.
type Config struct {
	// Language tags fenced code blocks.
	Language string `yaml:"language"`
	// Anchors adds {#refid} anchors to headings.
	Anchors bool `yaml:"anchors"`
	// Templates is a directory of *.md templates replacing the built-in ones.
	Templates string `yaml:"templates,omitempty"`
	// Output is the file the Markdown is written to; empty means stdout.
	Output   string   `yaml:"output,omitempty"`
	Compound Compound `yaml:"compound"`
}

type Compound struct {
	Members   Filter `yaml:"members"`
	Compounds Filter `yaml:"compounds"`
}

// Filter lists the groups to keep, in output order.
type Filter struct {
	Filter []string `yaml:"filter"`
}

// Default returns the options used when nothing is configured.
func Default() *Config {
	return &Config{
		Language: "cpp",
		Anchors:  true,
		Compound: Compound{
			Members: Filter{Filter: []string{
				"public-attrib", "public-func", "protected-attrib", "protected-func",
			}},
			Compounds: Filter{Filter: []string{
				"namespace", "class", "struct", "union", "typedef",
			}},
		},
	}
}

// Load reads the YAML file at path on top of Default. Unknown keys are an
// error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects empty filters and names that are not sections or kinds.
func (c *Config) Validate() error {
	if len(c.Compound.Members.Filter) == 0 {
		return errors.New("compound.members.filter is empty")
	}
	for _, s := range c.Compound.Members.Filter {
		if !slices.Contains(MemberSections, s) {
			return errors.Errorf("compound.members.filter: unknown member section %q", s)
		}
	}
	if len(c.Compound.Compounds.Filter) == 0 {
		return errors.New("compound.compounds.filter is empty")
	}
	for _, k := range c.Compound.Compounds.Filter {
		if !slices.Contains(CompoundKinds, k) {
			return errors.Errorf("compound.compounds.filter: unknown compound kind %q", k)
		}
	}
	return nil
}
