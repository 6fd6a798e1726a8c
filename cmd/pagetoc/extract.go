package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/pagetoc"
	"golang.org/x/sync/errgroup"
)

// Result is the TOC of one source.
type Result struct {
	Source  string           `json:"source"`
	Title   string           `json:"title,omitempty"`
	Entries []*pagetoc.Entry `json:"entries"`
}

// ExtractCmd loads every source, builds its TOC and prints the results in
// source order.
type ExtractCmd struct {
	Sources     []string
	Options     pagetoc.Options
	Format      string
	Concurrency int
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	results, err := c.extractAll(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	switch c.Format {
	case "text":
		return writeText(deps.Stdout, deps.Converter, results)
	default:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
}

func (c *ExtractCmd) extractAll(deps *Dependencies) ([]Result, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]Result, len(c.Sources))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for i, source := range c.Sources {
		g.Go(func() error {
			fetcher := deps.Files
			if isURL(source) {
				fetcher = deps.Web
			}

			html, err := fetcher.Fetch(gctx, source)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}

			result := Result{Source: source}
			if deps.NewExtractor != nil {
				extracted, err := deps.NewExtractor(source).Extract(html)
				if err != nil {
					return fmt.Errorf("%s: %w", source, err)
				}
				html = extracted.ContentHTML
				result.Title = extracted.Title
			}

			result.Entries = pagetoc.Generate(deps.Parser, html, c.Options)
			if result.Entries == nil {
				result.Entries = []*pagetoc.Entry{}
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// errorMessage returns the user-facing message of an application error, or
// the full error text when the cause is not an application error.
func errorMessage(err error) string {
	if pagetoc.ErrorCode(err) == pagetoc.EINTERNAL {
		return err.Error()
	}
	return pagetoc.ErrorMessage(err)
}

// writeText prints each result as an indented outline with labels
// converted to Markdown.
func writeText(w io.Writer, conv pagetoc.Converter, results []Result) error {
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s\n", result.Source)

		if len(result.Entries) == 0 {
			fmt.Fprintln(w, "(no headings)")
			continue
		}

		var walk func(entries []*pagetoc.Entry, depth int) error
		walk = func(entries []*pagetoc.Entry, depth int) error {
			for _, e := range entries {
				label, err := conv.Convert(e.Label)
				if err != nil {
					return fmt.Errorf("%s: %w", result.Source, err)
				}
				fmt.Fprintf(w, "%s- %s (#%s)\n", strings.Repeat("  ", depth), label, e.ID)
				if err := walk(e.Children, depth+1); err != nil {
					return err
				}
			}
			return nil
		}
		if err := walk(result.Entries, 0); err != nil {
			return err
		}
	}
	return nil
}
