package listview_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/exebone56/ecom-pulse2/listview"
	"github.com/exebone56/ecom-pulse2/models"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

// Rapid filter typing collapses into one fetch carrying the final value.
func TestSetFilter_DebounceCoalesces(t *testing.T) {
	var calls int32
	var mu sync.Mutex
	var lastFilters map[string]string

	fetch := func(ctx context.Context, filters map[string]string, page int) (*models.Page[int], error) {
		atomic.AddInt32(&calls, 1)
		mu.Lock()
		lastFilters = filters
		mu.Unlock()
		return &models.Page[int]{Count: 1, Results: []int{page}}, nil
	}

	l := listview.New(context.Background(), fetch, listview.WithDebounce(30*time.Millisecond))
	l.SetFilter("search", "b")
	l.SetFilter("search", "bo")
	l.SetFilter("search", "bolt")

	waitFor(t, "debounced fetch", func() bool { return atomic.LoadInt32(&calls) == 1 })
	time.Sleep(60 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("fetch calls = %d, want 1", n)
	}
	mu.Lock()
	defer mu.Unlock()
	if lastFilters["search"] != "bolt" {
		t.Errorf("fetched filter = %q, want %q", lastFilters["search"], "bolt")
	}
}

// Page changes skip the debounce window entirely.
func TestSetPage_FetchesImmediately(t *testing.T) {
	var calls int32
	fetch := func(ctx context.Context, filters map[string]string, page int) (*models.Page[int], error) {
		atomic.AddInt32(&calls, 1)
		return &models.Page[int]{Count: 10, Results: []int{page}}, nil
	}

	l := listview.New(context.Background(), fetch, listview.WithDebounce(time.Hour))
	l.SetPage(3)

	waitFor(t, "immediate fetch", func() bool { return atomic.LoadInt32(&calls) == 1 })
	waitFor(t, "state update", func() bool { return !l.Snapshot().Loading })
	state := l.Snapshot()
	if len(state.Items) != 1 || state.Items[0] != 3 {
		t.Errorf("items = %v, want [3]", state.Items)
	}
	if state.Pagination.CurrentPage != 3 {
		t.Errorf("current page = %d, want 3", state.Pagination.CurrentPage)
	}
}

// A slow response from an earlier request must not overwrite the result of a
// later one.
func TestStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	fetch := func(ctx context.Context, filters map[string]string, page int) (*models.Page[int], error) {
		if page == 1 {
			<-release
		}
		return &models.Page[int]{Count: 10, Results: []int{page}}, nil
	}

	l := listview.New(context.Background(), fetch, listview.WithDebounce(time.Hour))
	l.SetPage(1) // blocks inside fetch
	l.SetPage(2) // completes first

	waitFor(t, "page 2 result", func() bool {
		s := l.Snapshot()
		return len(s.Items) == 1 && s.Items[0] == 2
	})

	close(release) // page 1 response arrives late
	time.Sleep(50 * time.Millisecond)
	state := l.Snapshot()
	if len(state.Items) != 1 || state.Items[0] != 2 {
		t.Errorf("items = %v, want [2] (stale response applied)", state.Items)
	}
}

// A failed fetch surfaces its message and clears the list rather than
// showing rows that no longer match the filters.
func TestFetchError_ClearsItems(t *testing.T) {
	var fail atomic.Bool
	fetch := func(ctx context.Context, filters map[string]string, page int) (*models.Page[int], error) {
		if fail.Load() {
			return nil, errors.New("could not reach the server")
		}
		return &models.Page[int]{Count: 2, Results: []int{1, 2}}, nil
	}

	l := listview.New(context.Background(), fetch, listview.WithDebounce(time.Millisecond))
	l.Refresh()
	waitFor(t, "initial load", func() bool { return len(l.Snapshot().Items) == 2 })

	fail.Store(true)
	l.Refresh()
	waitFor(t, "error state", func() bool { return l.Snapshot().Err != "" })

	state := l.Snapshot()
	if state.Err != "could not reach the server" {
		t.Errorf("err = %q", state.Err)
	}
	if len(state.Items) != 0 {
		t.Errorf("items = %v, want empty after error", state.Items)
	}
}

// Changing a filter resets to page 1.
func TestSetFilter_ResetsPage(t *testing.T) {
	var mu sync.Mutex
	var pages []int
	fetch := func(ctx context.Context, filters map[string]string, page int) (*models.Page[int], error) {
		mu.Lock()
		pages = append(pages, page)
		mu.Unlock()
		return &models.Page[int]{Count: 100, Results: []int{page}}, nil
	}

	l := listview.New(context.Background(), fetch, listview.WithDebounce(time.Millisecond))
	l.SetPage(4)
	waitFor(t, "page 4 fetch", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(pages) == 1
	})

	l.SetFilter("status", "pending")
	waitFor(t, "filtered fetch", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(pages) == 2
	})
	mu.Lock()
	defer mu.Unlock()
	if pages[1] != 1 {
		t.Errorf("page after filter change = %d, want 1", pages[1])
	}
}

func TestFilters_ReturnsCopy(t *testing.T) {
	fetch := func(ctx context.Context, filters map[string]string, page int) (*models.Page[int], error) {
		return &models.Page[int]{}, nil
	}
	l := listview.New(context.Background(), fetch, listview.WithDebounce(time.Hour))
	l.SetFilter("search", "bolt")

	filters := l.Filters()
	filters["search"] = "mutated"
	if got := l.Filters()["search"]; got != "bolt" {
		t.Errorf("filters = %q, want %q (external mutation leaked)", got, "bolt")
	}
}

func ExampleListView() {
	fetch := func(ctx context.Context, filters map[string]string, page int) (*models.Page[int], error) {
		return &models.Page[int]{Count: 1, Results: []int{41 + page}}, nil
	}
	l := listview.New(context.Background(), fetch, listview.WithDebounce(time.Millisecond))
	l.SetPage(1)
	for l.Snapshot().Loading || len(l.Snapshot().Items) == 0 {
		time.Sleep(time.Millisecond)
	}
	fmt.Println(l.Snapshot().Items)
	// Output: [42]
}
