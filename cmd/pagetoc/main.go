package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagetoc"
	"github.com/fwojciec/pagetoc/fs"
	"github.com/fwojciec/pagetoc/goquery"
	"github.com/fwojciec/pagetoc/htmltomarkdown"
	tochttp "github.com/fwojciec/pagetoc/http"
	"github.com/fwojciec/pagetoc/readability"
	tocslog "github.com/fwojciec/pagetoc/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetchers for end-to-end testing. When nil, Run wires the fs and
	// http implementations.
	Files pagetoc.Fetcher
	Web   pagetoc.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagetoc"),
		kong.Description("Extract a table of contents from HTML headings"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no sources provided. Run 'pagetoc --help' to see usage")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	opts, err := cli.Options()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Parser:    tocslog.NewLoggingParser(goquery.NewParser(), logger),
		Converter: htmltomarkdown.NewConverter(),
	}

	files := m.Files
	if files == nil {
		files = fs.NewReader(stdin)
	}
	web := m.Web
	if web == nil {
		web = tochttp.NewFetcher(
			tochttp.WithTimeout(cli.Timeout),
			tochttp.WithRateLimit(cli.RPS),
		)
	}
	deps.Files = tocslog.NewLoggingFetcher(files, logger)
	deps.Web = tocslog.NewLoggingFetcher(web, logger)
	defer deps.Files.Close()
	defer deps.Web.Close()

	if cli.Main {
		deps.NewExtractor = func(source string) pagetoc.Extractor {
			var pageURL *url.URL
			if isURL(source) {
				pageURL, _ = url.Parse(source)
			}
			return readability.NewExtractor(pageURL)
		}
	}

	cmd := &ExtractCmd{
		Sources:     cli.Sources,
		Options:     opts,
		Format:      cli.Format,
		Concurrency: cli.Concurrency,
	}

	return cmd.Run(deps)
}

// isURL reports whether source should be loaded over HTTP.
func isURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
