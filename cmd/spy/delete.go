package main

import (
	"fmt"

	"github.com/fwojciec/spy"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Bookmarks.DeleteBookmark(deps.Ctx, c.ID); err != nil {
		if spy.ErrorCode(err) == spy.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: bookmark %q not found. Use 'spy list' to see saved bookmarks.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted bookmark %s\n", c.ID)
	return nil
}
