package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/spy"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    spy.Config
	Builder   spy.EntryBuilder
	Renderer  spy.EntryRenderer
	Bookmarks spy.BookmarkService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Config file path" env:"SPY_CONFIG" type:"path"`
	DB      string `name:"db" help:"Bookmark database path" env:"SPY_DB" type:"path"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Fetch  FetchCmd  `cmd:"" default:"withargs" help:"Fetch pages and print their metadata (default)"`
	Save   SaveCmd   `cmd:"" help:"Fetch a page and store it as a bookmark"`
	List   ListCmd   `cmd:"" help:"List stored bookmarks"`
	Show   ShowCmd   `cmd:"" help:"Print a stored bookmark"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored bookmark"`
}

// ExtractFlags control how pages are fetched and extracted.
type ExtractFlags struct {
	Extractor   string        `help:"Content extractor: readability or trafilatura" env:"SPY_EXTRACTOR"`
	Markdown    bool          `help:"Render full text as Markdown" env:"SPY_MARKDOWN"`
	Browser     bool          `help:"Fetch the page with a headless browser" env:"SPY_BROWSER"`
	Timeout     time.Duration `help:"Per-request timeout" env:"SPY_TIMEOUT"`
	UserAgent   string        `name:"user-agent" help:"User-Agent header" env:"SPY_USER_AGENT"`
	Concurrency int           `short:"c" help:"Concurrent page limit" env:"SPY_CONCURRENCY"`
	Rate        float64       `help:"Requests per second per host, 0 for unlimited" env:"SPY_RATE"`
	Retries     int           `help:"Retries for the page fetch" env:"SPY_RETRIES"`
}

// apply overlays the flags that were set onto cfg.
func (f *ExtractFlags) apply(cfg *spy.Config) {
	if f.Extractor != "" {
		cfg.Extractor = f.Extractor
	}
	if f.Markdown {
		cfg.Markdown = true
	}
	if f.Browser {
		cfg.Browser = true
	}
	if f.Timeout != 0 {
		cfg.Timeout = f.Timeout
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
	if f.Concurrency != 0 {
		cfg.Concurrency = f.Concurrency
	}
	if f.Rate != 0 {
		cfg.RateLimit = f.Rate
	}
	if f.Retries != 0 {
		cfg.Retries = f.Retries
	}
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs     []string `arg:"" name:"url" help:"Page URLs"`
	Template string   `short:"t" help:"Output Jinja template; JSON when empty" env:"SPY_TEMPLATE"`
	Title    string   `help:"Title override; requires a single URL"`
	Out      string   `help:"Write one file per entry into this directory" type:"path"`

	ExtractFlags `embed:""`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URL   string   `arg:"" help:"Page URL"`
	Title string   `help:"Title override"`
	Tags  []string `name:"tag" help:"Tag the bookmark (repeatable)"`
	Force bool     `short:"f" help:"Replace an existing bookmark for the URL"`

	ExtractFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Tag      string `help:"Only bookmarks with this tag"`
	URL      string `name:"url" help:"Only the bookmark for this URL"`
	Limit    int    `help:"Maximum number of bookmarks"`
	Offset   int    `help:"Number of bookmarks to skip"`
	Template string `short:"t" help:"Output Jinja template" env:"SPY_TEMPLATE"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID       string `arg:"" help:"Bookmark ID"`
	Template string `short:"t" help:"Output Jinja template; JSON when empty" env:"SPY_TEMPLATE"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Bookmark ID"`
}
