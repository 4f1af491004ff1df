package overview

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/pkordes/trip-planner/internal/domain"
)

// PageSize is the number of activities the overview loads at a time.
const PageSize = 9

// Fetcher loads one page of activities across every trip, ordered by sort.
// A sort with a leading "-" is descending.
type Fetcher interface {
	FetchActivities(ctx context.Context, sort string, page, size int) ([]domain.Activity, error)
}

// Feed accumulates activities page by page for the overview. It is safe for
// concurrent use; a load that finishes after SetSort changed the order is
// discarded.
type Feed struct {
	fetch Fetcher
	size  int
	log   *slog.Logger

	mu        sync.Mutex
	sort      string
	items     []domain.Activity
	page      int // last page loaded
	exhausted bool
	loading   bool // a page is in flight for gen
	gen       int
}

// FeedOption configures a Feed.
type FeedOption func(*Feed)

// WithPageSize overrides PageSize.
func WithPageSize(n int) FeedOption {
	return func(f *Feed) {
		if n > 0 {
			f.size = n
		}
	}
}

// WithLogger sets the logger used for fetch failures.
func WithLogger(l *slog.Logger) FeedOption {
	return func(f *Feed) { f.log = l }
}

// NewFeed returns an empty Feed ordered by sort.
func NewFeed(fetch Fetcher, sort string, opts ...FeedOption) *Feed {
	f := &Feed{fetch: fetch, size: PageSize, sort: sort, log: slog.Default()}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Items returns a copy of everything loaded so far.
func (f *Feed) Items() []domain.Activity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items)
}

// HasMore reports whether another LoadMore may return rows.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.exhausted
}

// Sort returns the current order.
func (f *Feed) Sort() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sort
}

// LoadMore fetches the next page and appends it. Once a page comes back
// shorter than the page size the feed is exhausted and LoadMore does nothing.
// While a page is in flight further calls return immediately, so overlapping
// triggers never load the same page twice.
// A failed fetch keeps what was loaded and returns a *domain.FetchError.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.exhausted || f.loading {
		f.mu.Unlock()
		return nil
	}
	f.loading = true
	sort, next, gen := f.sort, f.page+1, f.gen
	f.mu.Unlock()

	batch, err := f.fetch.FetchActivities(ctx, sort, next, f.size)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		// SetSort ran meanwhile and already cleared loading.
		return nil
	}
	f.loading = false
	if err != nil {
		f.log.ErrorContext(ctx, "overview fetch failed", "sort", sort, "page", next, "error", err)
		return &domain.FetchError{Resource: "activities", Err: err}
	}
	f.items = append(f.items, batch...)
	f.page = next
	f.exhausted = len(batch) < f.size
	return nil
}

// SetSort clears the accumulated items and loads the first page in the new
// order.
func (f *Feed) SetSort(ctx context.Context, sort string) error {
	f.mu.Lock()
	f.sort = sort
	f.items = nil
	f.page = 0
	f.exhausted = false
	f.loading = false
	f.gen++
	f.mu.Unlock()

	if err := f.LoadMore(ctx); err != nil {
		return fmt.Errorf("overview.Feed.SetSort: %w", err)
	}
	return nil
}
