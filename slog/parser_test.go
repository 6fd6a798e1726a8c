package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagetoc"
	"github.com/fwojciec/pagetoc/mock"
	tocslog "github.com/fwojciec/pagetoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("logs parse and heading lookup at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Parser{
			ParseFn: func(markup string) pagetoc.Document {
				return &mock.Document{
					FindHeadingsFn: func(topLevel, depth int) []pagetoc.Heading {
						return []pagetoc.Heading{mock.NewHeading(2, "A"), mock.NewHeading(3, "B")}
					},
				}
			},
		}

		parser := tocslog.NewLoggingParser(inner, logger)
		headings := parser.Parse("<h2>A</h2><h3>B</h3>").FindHeadings(2, 2)

		require.Len(t, headings, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=parse")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, `msg="find headings"`)
		assert.Contains(t, output, "tags=\"[h2 h3]\"")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("stays quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Parser{
			ParseFn: func(markup string) pagetoc.Document {
				return &mock.Document{
					FindHeadingsFn: func(int, int) []pagetoc.Heading { return nil },
				}
			},
		}

		parser := tocslog.NewLoggingParser(inner, logger)
		parser.Parse("<p>x</p>").FindHeadings(1, 6)

		assert.Empty(t, buf.String())
	})
}
