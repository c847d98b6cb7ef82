package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/spy"
	"github.com/fwojciec/spy/assemble"
	"github.com/fwojciec/spy/batch"
	"github.com/fwojciec/spy/goquery"
	"github.com/fwojciec/spy/htmltomarkdown"
	spyhttp "github.com/fwojciec/spy/http"
	"github.com/fwojciec/spy/readability"
	"github.com/fwojciec/spy/rod"
	spyslog "github.com/fwojciec/spy/slog"
	"github.com/fwojciec/spy/sqlite"
	"github.com/fwojciec/spy/template"
	"github.com/fwojciec/spy/trafilatura"
	"github.com/fwojciec/spy/yaml"
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
type Main struct {
	// Default paths. Set before calling Run(); flags and the config file
	// take precedence.
	DBPath     string
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: yaml.DefaultPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var errs []error
	for _, c := range m.closers {
		errs = append(errs, c.Close())
	}
	m.closers = nil
	if m.DB != nil {
		errs = append(errs, m.DB.Close())
		m.DB = nil
	}
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("spy"),
		kong.Description("Fetch information on a webpage on the command line"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL specified. Run 'spy --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := m.loadConfig(cli, cmd)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", spy.ErrorMessage(err))
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Config: cfg,
	}

	if cfg.Template != "" {
		r, err := template.NewRenderer(cfg.Template)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", spy.ErrorMessage(err))
			return err
		}
		deps.Renderer = r
	}

	defer m.Close()

	if cmd == "fetch" || cmd == "save" {
		builder, err := m.newBuilder(cfg, logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: --browser needs Chrome or Chromium installed")
			fmt.Fprintf(stderr, "error: %s\n", spy.ErrorMessage(err))
			return err
		}
		deps.Builder = builder
	}

	if cmd != "fetch" {
		m.DB = sqlite.NewDB(cfg.DBPath)
		if err := m.DB.Open(); err != nil {
			m.DB = nil
			fmt.Fprintf(stderr, "Hint: Set SPY_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
		}
		deps.Bookmarks = spyslog.NewLoggingBookmarkService(sqlite.NewBookmarkService(m.DB), logger)
	}

	return kongCtx.Run(deps)
}

// loadConfig layers defaults, the config file, then environment and flags.
func (m *Main) loadConfig(cli *CLI, cmd string) (spy.Config, error) {
	cfg := spy.DefaultConfig()
	cfg.DBPath = m.DBPath

	path := cli.Config
	if path == "" {
		path = m.ConfigPath
	}
	if path != "" {
		fc, err := yaml.LoadConfig(path)
		switch {
		case err == nil:
			fc.Apply(&cfg)
		case spy.ErrorCode(err) == spy.ENOTFOUND && cli.Config == "":
			// The default config file is optional.
		default:
			return spy.Config{}, err
		}
	}

	if cli.DB != "" {
		cfg.DBPath = cli.DB
	}

	switch cmd {
	case "fetch":
		cli.Fetch.ExtractFlags.apply(&cfg)
		if cli.Fetch.Template != "" {
			cfg.Template = cli.Fetch.Template
		}
	case "save":
		cli.Save.ExtractFlags.apply(&cfg)
	case "list":
		if cli.List.Template != "" {
			cfg.Template = cli.List.Template
		}
	case "show":
		if cli.Show.Template != "" {
			cfg.Template = cli.Show.Template
		}
	}

	if err := cfg.Validate(); err != nil {
		return spy.Config{}, err
	}
	return cfg, nil
}

// newBuilder wires fetchers, extractor and resolver into an EntryBuilder.
// Only the page fetch is retried; manifest and oEmbed fetches are not.
func (m *Main) newBuilder(cfg spy.Config, logger *slog.Logger) (spy.EntryBuilder, error) {
	var secondary spy.Fetcher = spyhttp.NewFetcher(
		spyhttp.WithTimeout(cfg.Timeout),
		spyhttp.WithUserAgent(cfg.UserAgent),
	)

	primary := secondary
	if cfg.Browser {
		browser, err := rod.NewFetcher(
			rod.WithFetchTimeout(cfg.Timeout),
			rod.WithUserAgent(cfg.UserAgent),
		)
		if err != nil {
			return nil, err
		}
		m.closers = append(m.closers, browser)
		primary = browser
	}

	if cfg.RateLimit > 0 {
		limiter := batch.NewHostLimiter(cfg.RateLimit)
		primary = batch.NewLimitedFetcher(primary, limiter)
		secondary = batch.NewLimitedFetcher(secondary, limiter)
	}

	if cfg.Retries > 0 {
		primary = &batch.RetryFetcher{
			Fetcher: primary,
			Delays:  batch.RetryDelays(cfg.Retries),
			Logger:  logger,
		}
	}

	var extractor spy.Extractor
	switch cfg.Extractor {
	case spy.ExtractorTrafilatura:
		extractor = trafilatura.NewExtractor()
	default:
		extractor = readability.NewExtractor()
	}

	resolver := spyslog.NewLoggingResolver(
		goquery.NewResolver(spyslog.NewLoggingFetcher(secondary, logger)),
		logger,
	)

	a := assemble.NewAssembler(spyslog.NewLoggingFetcher(primary, logger), extractor, resolver)
	if cfg.Markdown {
		a.Converter = htmltomarkdown.NewConverter()
	}

	return spyslog.NewLoggingEntryBuilder(a, logger), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "spy.db"
	}
	dir := filepath.Join(home, ".spy")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "spy.db")
}
