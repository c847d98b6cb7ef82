package main

import (
	"fmt"

	"github.com/fwojciec/spy"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := spy.BookmarkFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Tag != "" {
		tag, err := spy.ParseTag(c.Tag)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
			return err
		}
		filter.Tag = &tag
	}
	if c.URL != "" {
		u, err := spy.ParsePageURL(c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
			return err
		}
		s := u.String()
		filter.URL = &s
	}

	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
		return err
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks found. Use 'spy save' to add one.")
		return nil
	}

	if deps.Renderer == nil {
		fmt.Fprintln(deps.Stdout, spy.FormatBookmarks(bookmarks))
		return nil
	}

	for _, b := range bookmarks {
		out, err := deps.Renderer.Render(b.Entry)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", spy.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, out)
	}
	return nil
}
