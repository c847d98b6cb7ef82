package main

import (
	"fmt"

	"github.com/fwojciec/spy"
	"github.com/fwojciec/spy/template"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	bookmark, err := deps.Bookmarks.FindBookmarkByID(deps.Ctx, c.ID)
	if err != nil {
		if spy.ErrorCode(err) == spy.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: bookmark %q not found. Use 'spy list' to see saved bookmarks.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
		return err
	}

	renderer := deps.Renderer
	if renderer == nil {
		renderer = template.JSONRenderer{}
	}

	out, err := renderer.Render(bookmark.Entry)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
