package overview_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/overview"
)

// mockFetcher serves pages out of a fixed collection, or whatever
// FetchFn returns when set.
type mockFetcher struct {
	rows    []domain.Activity
	calls   []string
	FetchFn func(ctx context.Context, sort string, page, size int) ([]domain.Activity, error)
}

func (m *mockFetcher) FetchActivities(ctx context.Context, sort string, page, size int) ([]domain.Activity, error) {
	m.calls = append(m.calls, fmt.Sprintf("%s/%d/%d", sort, page, size))
	if m.FetchFn != nil {
		return m.FetchFn(ctx, sort, page, size)
	}
	start := (page - 1) * size
	if start >= len(m.rows) {
		return []domain.Activity{}, nil
	}
	return m.rows[start:min(start+size, len(m.rows))], nil
}

func rows(n int) []domain.Activity {
	out := make([]domain.Activity, n)
	for i := range out {
		out[i] = domain.Activity{Title: fmt.Sprintf("a%02d", i)}
	}
	return out
}

func TestFeed_LoadMoreUntilPartialPage(t *testing.T) {
	f := &mockFetcher{rows: rows(20)}
	feed := overview.NewFeed(f, "date")

	for feed.HasMore() {
		require.NoError(t, feed.LoadMore(context.Background()))
	}

	assert.Len(t, feed.Items(), 20)
	assert.Equal(t, []string{"date/1/9", "date/2/9", "date/3/9"}, f.calls)

	// Exhausted feeds do not fetch again.
	require.NoError(t, feed.LoadMore(context.Background()))
	assert.Len(t, f.calls, 3)
}

func TestFeed_ExactMultipleStopsOnEmptyPage(t *testing.T) {
	f := &mockFetcher{rows: rows(18)}
	feed := overview.NewFeed(f, "date")

	require.NoError(t, feed.LoadMore(context.Background()))
	require.NoError(t, feed.LoadMore(context.Background()))
	assert.True(t, feed.HasMore(), "a full page does not prove exhaustion")

	require.NoError(t, feed.LoadMore(context.Background()))
	assert.False(t, feed.HasMore())
	assert.Len(t, feed.Items(), 18)
}

func TestFeed_FailureKeepsItems(t *testing.T) {
	f := &mockFetcher{rows: rows(12)}
	feed := overview.NewFeed(f, "date")
	require.NoError(t, feed.LoadMore(context.Background()))

	f.FetchFn = func(context.Context, string, int, int) ([]domain.Activity, error) {
		return nil, errors.New("connection reset")
	}
	err := feed.LoadMore(context.Background())

	var ferr *domain.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Len(t, feed.Items(), 9)
	assert.True(t, feed.HasMore())

	// The same page is requested again once the fetcher recovers.
	f.FetchFn = nil
	require.NoError(t, feed.LoadMore(context.Background()))
	assert.Len(t, feed.Items(), 12)
	assert.Equal(t, "date/2/9", f.calls[len(f.calls)-1])
}

func TestFeed_SetSortResets(t *testing.T) {
	f := &mockFetcher{rows: rows(20)}
	feed := overview.NewFeed(f, "date", overview.WithPageSize(5))
	require.NoError(t, feed.LoadMore(context.Background()))
	require.NoError(t, feed.LoadMore(context.Background()))

	require.NoError(t, feed.SetSort(context.Background(), "-price"))

	assert.Equal(t, "-price", feed.Sort())
	assert.Len(t, feed.Items(), 5)
	assert.Equal(t, "-price/1/5", f.calls[len(f.calls)-1])
}

func TestFeed_StaleLoadIsDiscarded(t *testing.T) {
	f := &mockFetcher{rows: rows(20)}
	feed := overview.NewFeed(f, "date")

	f.FetchFn = func(ctx context.Context, sort string, page, size int) ([]domain.Activity, error) {
		if sort == "date" {
			// The user changes the order while this page is in flight.
			f.FetchFn = nil
			require.NoError(t, feed.SetSort(ctx, "title"))
		}
		return rows(9), nil
	}
	require.NoError(t, feed.LoadMore(context.Background()))

	assert.Equal(t, "title", feed.Sort())
	assert.Len(t, feed.Items(), 9, "only the page loaded for the new order is kept")
}

func TestFeed_OverlappingLoadsFetchOnce(t *testing.T) {
	f := &mockFetcher{rows: rows(20)}
	feed := overview.NewFeed(f, "date")

	started := make(chan struct{})
	release := make(chan struct{})
	f.FetchFn = func(_ context.Context, _ string, page, size int) ([]domain.Activity, error) {
		close(started)
		<-release
		return f.rows[:size], nil
	}

	done := make(chan error, 1)
	go func() { done <- feed.LoadMore(context.Background()) }()
	<-started

	// The scroll trigger fires while the button's load is still in flight.
	require.NoError(t, feed.LoadMore(context.Background()))
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, []string{"date/1/9"}, f.calls)
	assert.Len(t, feed.Items(), 9)

	f.FetchFn = nil
	require.NoError(t, feed.LoadMore(context.Background()))
	assert.Equal(t, []string{"date/1/9", "date/2/9"}, f.calls)
	assert.Len(t, feed.Items(), 18)
}
