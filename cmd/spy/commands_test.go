package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/fwojciec/spy"
	main "github.com/fwojciec/spy/cmd/spy"
	"github.com/fwojciec/spy/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: spy.DefaultConfig(),
	}
}

func testEntry(t *testing.T, rawURL, title string) *spy.Entry {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return spy.NewEntry(spy.EntryParams{URL: u, Metadata: spy.Metadata{Title: title}})
}

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints entries in input order and reports failures", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Builder = &mock.EntryBuilder{
			BuildEntryFn: func(ctx context.Context, rawURL string, opts spy.BuildOptions) (*spy.Entry, error) {
				if rawURL == "https://example.com/bad" {
					return nil, spy.Errorf(spy.EFETCH, "failed to fetch URL %s", rawURL)
				}
				return testEntry(t, rawURL, "Page "+rawURL[len(rawURL)-1:]), nil
			},
		}
		deps.Renderer = &mock.EntryRenderer{
			RenderFn: func(entry *spy.Entry) (string, error) { return entry.PageTitle(), nil },
		}

		cmd := &main.FetchCmd{URLs: []string{
			"https://example.com/1", "https://example.com/bad", "https://example.com/2",
		}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, spy.EFETCH, spy.ErrorCode(err))
		assert.Equal(t, "Page 1\nPage 2\n", stdout.String())
		assert.Contains(t, stderr.String(), "error: failed to fetch URL https://example.com/bad")
	})

	t.Run("passes title override to the builder", func(t *testing.T) {
		t.Parallel()

		var got spy.BuildOptions
		deps := newDeps(&bytes.Buffer{}, &bytes.Buffer{})
		deps.Builder = &mock.EntryBuilder{
			BuildEntryFn: func(ctx context.Context, rawURL string, opts spy.BuildOptions) (*spy.Entry, error) {
				got = opts
				return testEntry(t, rawURL, opts.Title), nil
			},
		}

		cmd := &main.FetchCmd{URLs: []string{"https://example.com/"}, Title: "Mine"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "Mine", got.Title)
	})
}

func TestSaveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates bookmark with parsed tags", func(t *testing.T) {
		t.Parallel()

		var created *spy.Bookmark
		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Builder = &mock.EntryBuilder{
			BuildEntryFn: func(ctx context.Context, rawURL string, opts spy.BuildOptions) (*spy.Entry, error) {
				return testEntry(t, rawURL, "Saved page"), nil
			},
		}
		deps.Bookmarks = &mock.BookmarkService{
			CreateBookmarkFn: func(ctx context.Context, b *spy.Bookmark) error {
				created = b
				return nil
			},
		}

		cmd := &main.SaveCmd{URL: "https://example.com/", Tags: []string{"Go", "go", "web"}}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, created)
		assert.Equal(t, []spy.Tag{"go", "web"}, created.Tags)
		assert.Contains(t, stdout.String(), "Saved https://example.com/")
	})

	t.Run("rejects invalid tag before fetching", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := newDeps(&bytes.Buffer{}, stderr)
		deps.Builder = &mock.EntryBuilder{
			BuildEntryFn: func(ctx context.Context, rawURL string, opts spy.BuildOptions) (*spy.Entry, error) {
				t.Fatal("builder should not be called")
				return nil, nil
			},
		}

		cmd := &main.SaveCmd{URL: "https://example.com/", Tags: []string{"not a tag"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, spy.EINVALID, spy.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("force replaces the bookmark for the URL", func(t *testing.T) {
		t.Parallel()

		var replaced *spy.Bookmark
		deps := newDeps(&bytes.Buffer{}, &bytes.Buffer{})
		deps.Builder = &mock.EntryBuilder{
			BuildEntryFn: func(ctx context.Context, rawURL string, opts spy.BuildOptions) (*spy.Entry, error) {
				return testEntry(t, rawURL, "New"), nil
			},
		}
		deps.Bookmarks = &mock.BookmarkService{
			ReplaceBookmarkFn: func(ctx context.Context, b *spy.Bookmark) error {
				replaced = b
				return nil
			},
			CreateBookmarkFn: func(ctx context.Context, b *spy.Bookmark) error {
				t.Fatal("create should not be called with force")
				return nil
			},
		}

		cmd := &main.SaveCmd{URL: "https://example.com/", Force: true}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, replaced)
		assert.Equal(t, "https://example.com/", replaced.Entry.URL())
	})

	t.Run("force reports replace failure", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := newDeps(&bytes.Buffer{}, stderr)
		deps.Builder = &mock.EntryBuilder{
			BuildEntryFn: func(ctx context.Context, rawURL string, opts spy.BuildOptions) (*spy.Entry, error) {
				return testEntry(t, rawURL, "New"), nil
			},
		}
		deps.Bookmarks = &mock.BookmarkService{
			ReplaceBookmarkFn: func(ctx context.Context, b *spy.Bookmark) error {
				return spy.Errorf(spy.EINTERNAL, "disk full")
			},
		}

		err := (&main.SaveCmd{URL: "https://example.com/", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("hints at force on conflict", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := newDeps(&bytes.Buffer{}, stderr)
		deps.Builder = &mock.EntryBuilder{
			BuildEntryFn: func(ctx context.Context, rawURL string, opts spy.BuildOptions) (*spy.Entry, error) {
				return testEntry(t, rawURL, "Page"), nil
			},
		}
		deps.Bookmarks = &mock.BookmarkService{
			CreateBookmarkFn: func(ctx context.Context, b *spy.Bookmark) error {
				return spy.Errorf(spy.ECONFLICT, "bookmark for %s already exists", b.Entry.URL())
			},
		}

		err := (&main.SaveCmd{URL: "https://example.com/"}).Run(deps)

		assert.Equal(t, spy.ECONFLICT, spy.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes tag and URL filters", func(t *testing.T) {
		t.Parallel()

		var got spy.BookmarkFilter
		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Bookmarks = &mock.BookmarkService{
			FindBookmarksFn: func(ctx context.Context, filter spy.BookmarkFilter) ([]*spy.Bookmark, error) {
				got = filter
				return []*spy.Bookmark{{Entry: testEntry(t, "https://example.com/", "Home"), Tags: []spy.Tag{"go"}}}, nil
			},
		}

		cmd := &main.ListCmd{Tag: "Go", URL: "https://example.com/", Limit: 5}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, got.Tag)
		assert.Equal(t, spy.Tag("go"), *got.Tag)
		require.NotNil(t, got.URL)
		assert.Equal(t, "https://example.com/", *got.URL)
		assert.Equal(t, 5, got.Limit)
		assert.Contains(t, stdout.String(), "Home")
		assert.Contains(t, stdout.String(), "[go]")
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Bookmarks = &mock.BookmarkService{
			FindBookmarksFn: func(ctx context.Context, filter spy.BookmarkFilter) ([]*spy.Bookmark, error) {
				return nil, nil
			},
		}

		require.NoError(t, (&main.ListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No bookmarks")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints JSON view without template", func(t *testing.T) {
		t.Parallel()

		entry := testEntry(t, "https://example.com/", "Home")
		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Bookmarks = &mock.BookmarkService{
			FindBookmarkByIDFn: func(ctx context.Context, id string) (*spy.Bookmark, error) {
				assert.Equal(t, entry.ID(), id)
				return &spy.Bookmark{Entry: entry}, nil
			},
		}

		require.NoError(t, (&main.ShowCmd{ID: entry.ID()}).Run(deps))
		assert.Contains(t, stdout.String(), `"title":"Home"`)
	})

	t.Run("reports missing bookmark", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := newDeps(&bytes.Buffer{}, stderr)
		deps.Bookmarks = &mock.BookmarkService{
			FindBookmarkByIDFn: func(ctx context.Context, id string) (*spy.Bookmark, error) {
				return nil, spy.Errorf(spy.ENOTFOUND, "bookmark not found")
			},
		}

		err := (&main.ShowCmd{ID: "abc"}).Run(deps)

		assert.Equal(t, spy.ENOTFOUND, spy.ErrorCode(err))
		assert.Contains(t, stderr.String(), "spy list")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes bookmark by id", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Bookmarks = &mock.BookmarkService{
			DeleteBookmarkFn: func(ctx context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		require.NoError(t, (&main.DeleteCmd{ID: "abc"}).Run(deps))
		assert.Equal(t, "abc", deletedID)
		assert.Contains(t, stdout.String(), "Deleted")
	})

	t.Run("returns error from service", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := newDeps(&bytes.Buffer{}, stderr)
		deps.Bookmarks = &mock.BookmarkService{
			DeleteBookmarkFn: func(ctx context.Context, id string) error {
				return spy.Errorf(spy.EINTERNAL, "disk full")
			},
		}

		err := (&main.DeleteCmd{ID: "abc"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: disk full")
	})
}
