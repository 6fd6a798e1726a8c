// Package slog provides log/slog decorators for pagetoc services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagetoc"
)

// Ensure the decorators implement their pagetoc interfaces.
var (
	_ pagetoc.Parser   = (*LoggingParser)(nil)
	_ pagetoc.Document = (*loggingDocument)(nil)
)

// LoggingParser wraps a Parser with debug logging of parse and heading
// lookup.
type LoggingParser struct {
	next   pagetoc.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next pagetoc.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the input size.
// The returned Document logs each FindHeadings call.
func (p *LoggingParser) Parse(markup string) pagetoc.Document {
	begin := time.Now()
	doc := p.next.Parse(markup)
	p.logger.Debug("parse",
		"bytes", len(markup),
		"duration", time.Since(begin),
	)
	return &loggingDocument{next: doc, logger: p.logger}
}

type loggingDocument struct {
	next   pagetoc.Document
	logger *slog.Logger
}

func (d *loggingDocument) FindHeadings(topLevel, depth int) []pagetoc.Heading {
	begin := time.Now()
	headings := d.next.FindHeadings(topLevel, depth)
	d.logger.Debug("find headings",
		"tags", pagetoc.HeadingTags(topLevel, depth),
		"count", len(headings),
		"duration", time.Since(begin),
	)
	return headings
}
