package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/pagetoc"
	"gopkg.in/yaml.v3"
)

// Config is the YAML config file format.
//
//	top_level: 2
//	depth: 3
//	allowed_tags: "<b><i><code>"
//	main: true
type Config struct {
	TopLevel    *int    `yaml:"top_level"`
	Depth       *int    `yaml:"depth"`
	AllowedTags *string `yaml:"allowed_tags"`
	Main        bool    `yaml:"main"`
}

// LoadConfig reads and decodes the config file at path.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, pagetoc.Errorf(pagetoc.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, pagetoc.Errorf(pagetoc.EINVALID, "invalid config file %q: %v", path, err)
	}
	return &cfg, nil
}

// Apply overrides opts with the values set in the config file.
func (c *Config) Apply(opts *pagetoc.Options) {
	if c.TopLevel != nil {
		opts.TopLevel = *c.TopLevel
	}
	if c.Depth != nil {
		opts.Depth = *c.Depth
	}
	if c.AllowedTags != nil {
		opts.AllowedTags = pagetoc.ParseTagSet(*c.AllowedTags)
	}
}
