package main

import (
	"fmt"

	"github.com/fwojciec/spy"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	tags, err := spy.ParseTags(c.Tags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
		return err
	}

	entry, err := deps.Builder.BuildEntry(deps.Ctx, c.URL, spy.BuildOptions{Title: c.Title})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
		return err
	}

	bookmark := &spy.Bookmark{Entry: entry, Tags: tags}
	store := deps.Bookmarks.CreateBookmark
	if c.Force {
		store = deps.Bookmarks.ReplaceBookmark
	}
	if err := store(deps.Ctx, bookmark); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
		if spy.ErrorCode(err) == spy.ECONFLICT {
			fmt.Fprintln(deps.Stderr, "Hint: use --force to replace the existing bookmark")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s (%s)\n", entry.URL(), entry.ID())
	return nil
}
