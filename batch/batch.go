// Package batch builds entries for many URLs concurrently.
// Each URL is still extracted sequentially; only separate URLs overlap.
package batch

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/spy"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// Runner builds entries for a list of URLs.
type Runner struct {
	Builder     spy.EntryBuilder
	Concurrency int
}

// NewRunner creates a Runner with the given concurrency limit.
func NewRunner(builder spy.EntryBuilder, concurrency int) *Runner {
	return &Runner{Builder: builder, Concurrency: concurrency}
}

// Result holds the outcome for one input URL.
type Result struct {
	URL     string
	Entry   *spy.Entry
	Err     error
	Skipped bool
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

// Run builds an entry for every URL and returns one Result per input, in
// input order. A failing URL does not cancel the others. Repeated URLs,
// ignoring fragments, are marked Skipped and not fetched again. Repeats are
// tracked in a Bloom filter sized for len(urls) with a 0.001 false-positive
// rate, so roughly one distinct URL in a thousand may be skipped as a repeat.
func (r *Runner) Run(ctx context.Context, urls []string, opts spy.BuildOptions, progress ProgressFunc) []Result {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(urls))
	seen := newSeenFilter(uint(len(urls)))
	var pending []int
	for i, u := range urls {
		results[i].URL = u
		if !seen.Add(dedupeKey(u)) {
			results[i].Skipped = true
			continue
		}
		pending = append(pending, i)
	}

	total := len(pending)
	notify := func(event ProgressEvent) {
		if progress != nil {
			event.Total = total
			progress(event)
		}
	}
	notify(ProgressEvent{Type: ProgressStarted})
	for _, res := range results {
		if res.Skipped {
			notify(ProgressEvent{Type: ProgressSkipped, URL: res.URL})
		}
	}

	type outcome struct {
		index int
		entry *spy.Entry
		err   error
	}
	outcomes := make(chan outcome, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, i := range pending {
			g.Go(func() error {
				entry, err := r.Builder.BuildEntry(gctx, urls[i], opts)
				outcomes <- outcome{index: i, entry: entry, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	var completed atomic.Int64
	for o := range outcomes {
		n := int(completed.Add(1))
		results[o.index].Entry = o.entry
		results[o.index].Err = o.err
		if o.err != nil {
			notify(ProgressEvent{Type: ProgressFailed, Completed: n, URL: urls[o.index], Error: o.err})
			continue
		}
		notify(ProgressEvent{Type: ProgressCompleted, Completed: n, URL: urls[o.index]})
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: int(completed.Load())})
	return results
}

// dedupeKey strips the fragment and surrounding whitespace.
func dedupeKey(rawURL string) string {
	key := strings.TrimSpace(rawURL)
	if idx := strings.Index(key, "#"); idx != -1 {
		key = key[:idx]
	}
	return key
}
