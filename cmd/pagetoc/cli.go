package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagetoc"
	"github.com/fwojciec/pagetoc/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Parser    pagetoc.Parser
	Converter pagetoc.Converter

	// Files loads local paths and stdin; Web loads http(s) URLs.
	Files pagetoc.Fetcher
	Web   pagetoc.Fetcher

	// NewExtractor returns the main-content extractor for a source.
	// Nil disables main-content extraction.
	NewExtractor func(source string) pagetoc.Extractor
}

// CLI defines the command-line interface structure for Kong.
//
// TopLevel, Depth and AllowedTags have no Kong defaults so that values from
// the config file apply unless a flag is given; zero means unset.
type CLI struct {
	Sources     []string      `arg:"" required:"" help:"HTML files, '-' for stdin, or http(s) URLs"`
	TopLevel    int           `short:"t" name:"top-level" help:"Highest heading level to include, 1-6 (default: 1)"`
	Depth       int           `short:"d" help:"Number of heading levels to include (default: 6)"`
	AllowedTags string        `short:"a" name:"allowed-tags" help:"Tags kept in labels, e.g. '<b><i>' or 'b,i' (default: inline formatting tags)"`
	Format      string        `short:"f" enum:"json,text" default:"json" help:"Output format (json, text)"`
	Main        bool          `short:"m" help:"Extract the main article before locating headings"`
	Config      string        `short:"C" type:"path" help:"YAML config file"`
	Concurrency int           `short:"c" default:"4" help:"Number of sources processed at once"`
	Timeout     time.Duration `default:"10s" help:"HTTP fetch timeout per page"`
	RPS         float64       `name:"rps" default:"0" help:"Maximum HTTP requests per second per host, 0 for unlimited"`
	Verbose     bool          `short:"v" help:"Log debug output to stderr"`
}

// Validate rejects arguments that cannot be satisfied. Stdin can only be
// read once, so "-" may appear at most once.
func (c *CLI) Validate() error {
	n := 0
	for _, source := range c.Sources {
		if source == fs.StdinSource {
			n++
		}
	}
	if n > 1 {
		return pagetoc.Errorf(pagetoc.EINVALID, "stdin source %q given more than once", fs.StdinSource)
	}
	return nil
}

// Options resolves the TOC options: defaults, then the config file, then
// flags.
func (c *CLI) Options() (pagetoc.Options, error) {
	opts := pagetoc.DefaultOptions()

	if c.Config != "" {
		cfg, err := LoadConfig(c.Config)
		if err != nil {
			return opts, err
		}
		cfg.Apply(&opts)
		if cfg.Main {
			c.Main = true
		}
	}

	if c.TopLevel != 0 {
		opts.TopLevel = c.TopLevel
	}
	if c.Depth != 0 {
		opts.Depth = c.Depth
	}
	if c.AllowedTags != "" {
		opts.AllowedTags = pagetoc.ParseTagSet(c.AllowedTags)
	}

	return opts, nil
}
