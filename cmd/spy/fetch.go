package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/spy"
	"github.com/fwojciec/spy/batch"
	"github.com/fwojciec/spy/fs"
	"github.com/fwojciec/spy/template"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if c.Title != "" && len(c.URLs) != 1 {
		err := spy.Errorf(spy.EINVALID, "--title requires exactly one URL")
		fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
		return err
	}

	renderer := deps.Renderer
	ext := "txt"
	if renderer == nil {
		renderer = template.JSONRenderer{}
		ext = "json"
	}

	var store spy.EntryStore
	if c.Out != "" {
		dir := filepath.Clean(c.Out)
		store = fs.NewEntryStore(filepath.Dir(dir), filepath.Base(dir), ext)
	}

	progress := func(event batch.ProgressEvent) {
		if event.Type == batch.ProgressSkipped {
			deps.Logger.Warn("skip duplicate URL", "url", event.URL)
		}
	}

	runner := batch.NewRunner(deps.Builder, deps.Config.Concurrency)
	results := runner.Run(deps.Ctx, c.URLs, spy.BuildOptions{Title: c.Title}, progress)

	var firstErr error
	for _, res := range results {
		if res.Skipped {
			continue
		}
		if res.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(res.Err))
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}

		out, err := renderer.Render(res.Entry)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
			if store != nil {
				_ = store.Abort()
			}
			return err
		}

		if store == nil {
			fmt.Fprintln(deps.Stdout, out)
			continue
		}
		if err := store.Save(deps.Ctx, res.Entry, out); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
			_ = store.Abort()
			return err
		}
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
			return err
		}
	}

	return firstErr
}
