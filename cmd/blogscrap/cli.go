package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/jtorra/blogscrap"
	"github.com/jtorra/blogscrap/crawl"
	"github.com/jtorra/blogscrap/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Crawler   *crawl.Crawler
	Ledger    blogscrap.LedgerStore
	Store     *fs.Store
	Converter blogscrap.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrap   ScrapCmd   `cmd:"" help:"Archive one blog from its front-page URL"`
	Refresh RefreshCmd `cmd:"" help:"Re-crawl every ledgered site"`
	Mdfy    MdfyCmd    `cmd:"" help:"Convert cached articles to Markdown"`
	Clean   CleanCmd   `cmd:"" help:"Re-strip noise from cached articles"`

	CacheDir string `default:"cache" help:"Base directory for cached article HTML"`
	MdDir    string `default:"md" help:"Base directory for converted Markdown"`
	Ledger   string `default:".urls" help:"Path of the crawled-sites ledger file"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`
}

// ScrapCmd is the "scrap" subcommand.
type ScrapCmd struct {
	URL   string `arg:"" help:"Blog front-page URL"`
	Full  bool   `help:"Follow pagination past the first page"`
	Force bool   `short:"f" help:"Re-fetch and overwrite cached articles"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	From  string `arg:"" optional:"" help:"Lexicographic start cursor over ledgered sites (inclusive)"`
	Force bool   `short:"f" help:"Re-fetch and overwrite cached articles"`
}

// MdfyCmd is the "mdfy" subcommand.
type MdfyCmd struct {
	Dir   string `arg:"" optional:"" help:"Cache subdirectory filter (hostname glob)"`
	Force bool   `short:"f" help:"Overwrite existing Markdown outputs"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Dir string `arg:"" optional:"" help:"Cache subdirectory filter (hostname glob)"`
}
