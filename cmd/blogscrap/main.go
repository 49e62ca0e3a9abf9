package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jtorra/blogscrap/crawl"
	"github.com/jtorra/blogscrap/fs"
	"github.com/jtorra/blogscrap/goquery"
	"github.com/jtorra/blogscrap/htmltomarkdown"
	bshttp "github.com/jtorra/blogscrap/http"
	bsslog "github.com/jtorra/blogscrap/slog"

	"github.com/jtorra/blogscrap"
)

// Politeness defaults: at most one request per pauseBase to a host, plus a
// random jitter of up to pauseJitter on top.
const (
	pauseBase   = 1 * time.Second
	pauseJitter = 3 * time.Second
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("blogscrap"),
		kong.Description("Archive blogs as cleaned HTML and Markdown."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'blogscrap --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire core services into dependencies.
	deps.Logger = logger
	deps.Store = fs.NewStore(cli.CacheDir, cli.MdDir)
	deps.Ledger = fs.NewLedger(cli.Ledger)
	deps.Converter = htmltomarkdown.NewConverter()

	// The crawl commands share one fully wired crawler.
	if cmd == "scrap" || cmd == "refresh" {
		selectors := goquery.NewRegistry()
		registerPlatformSelectors(selectors)

		deps.Crawler = &crawl.Crawler{
			Fetcher: bsslog.NewLoggingFetcher(
				bshttp.NewFetcher(bshttp.WithLogger(logger)), logger),
			Detector:  bsslog.NewLoggingDetector(goquery.NewDetector(), logger),
			Selectors: selectors,
			Store:     deps.Store,
			Converter: deps.Converter,
			Pauser:    crawl.NewPauser(1.0/pauseBase.Seconds(), pauseJitter),
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

// registerPlatformSelectors registers both supported platform layouts with
// the registry.
func registerPlatformSelectors(registry blogscrap.SelectorRegistry) {
	registry.Register(blogscrap.PlatformBlogspot, goquery.NewBlogspotSelector())
	registry.Register(blogscrap.PlatformWordpress, goquery.NewWordpressSelector())
}
