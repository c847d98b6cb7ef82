package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"testing"

	"github.com/fwojciec/spy"
	"github.com/fwojciec/spy/mock"
	spyslog "github.com/fwojciec/spy/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("logs which fields were found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.MetadataResolver{
			ResolveFn: func(_ context.Context, _ spy.MetadataRequest) *spy.Metadata {
				return &spy.Metadata{Title: "T", SiteName: "Site", Authors: spy.NewAuthorSet("A", "B")}
			},
		}
		u, err := url.Parse("https://example.com/post")
		require.NoError(t, err)

		resolver := spyslog.NewLoggingResolver(inner, logger)
		md := resolver.Resolve(context.Background(), spy.MetadataRequest{URL: u})

		assert.Equal(t, "T", md.Title)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "msg=resolve")
		assert.Contains(t, output, "url=https://example.com/post")
		assert.Contains(t, output, "title=true")
		assert.Contains(t, output, "site=Site")
		assert.Contains(t, output, "authors=2")
		assert.Contains(t, output, "description=false")
		assert.Contains(t, output, "thumbnail=false")
	})

	t.Run("passes the request through", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		u, err := url.Parse("https://example.com/post")
		require.NoError(t, err)
		var got spy.MetadataRequest
		inner := &mock.MetadataResolver{
			ResolveFn: func(_ context.Context, req spy.MetadataRequest) *spy.Metadata {
				got = req
				return &spy.Metadata{}
			},
		}

		spyslog.NewLoggingResolver(inner, logger).Resolve(context.Background(), spy.MetadataRequest{URL: u})

		assert.Same(t, u, got.URL)
	})

	t.Run("handles a request without URL", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.MetadataResolver{
			ResolveFn: func(_ context.Context, _ spy.MetadataRequest) *spy.Metadata {
				return &spy.Metadata{}
			},
		}

		md := spyslog.NewLoggingResolver(inner, logger).Resolve(context.Background(), spy.MetadataRequest{})

		require.NotNil(t, md)
		assert.Contains(t, buf.String(), "url=\"\"")
	})

	t.Run("is silent above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
		inner := &mock.MetadataResolver{
			ResolveFn: func(_ context.Context, _ spy.MetadataRequest) *spy.Metadata {
				return &spy.Metadata{Title: "T"}
			},
		}

		spyslog.NewLoggingResolver(inner, logger).Resolve(context.Background(), spy.MetadataRequest{})

		assert.Empty(t, buf.String())
	})
}
