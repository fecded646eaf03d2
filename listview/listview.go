// Package listview manages {items, loading, error, pagination} for one
// paginated, server-filtered collection. It is the library form of the
// dashboard's per-resource list hooks, instantiated per resource with a
// Fetcher closing over a gateway client.
package listview

import (
	"context"
	"sync"
	"time"

	"github.com/exebone56/ecom-pulse2/config"
	"github.com/exebone56/ecom-pulse2/models"
	"github.com/sirupsen/logrus"
)

// Fetcher loads one page of the collection for the given filter set.
type Fetcher[T any] func(ctx context.Context, filters map[string]string, page int) (*models.Page[T], error)

type Pagination struct {
	Count       int
	Next        *string
	Previous    *string
	CurrentPage int
}

// State is an atomic snapshot of the list.
type State[T any] struct {
	Items      []T
	Loading    bool
	Err        string
	Pagination Pagination
}

type ListView[T any] struct {
	ctx      context.Context
	fetch    Fetcher[T]
	debounce time.Duration
	logger   *logrus.Logger

	mu         sync.Mutex
	timer      *time.Timer
	filters    map[string]string
	page       int
	generation uint64
	state      State[T]
}

type Option func(*options)

type options struct {
	debounce time.Duration
	logger   *logrus.Logger
}

// WithDebounce overrides the filter coalescing window.
func WithDebounce(d time.Duration) Option {
	return func(o *options) { o.debounce = d }
}

func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

func New[T any](ctx context.Context, fetch Fetcher[T], opts ...Option) *ListView[T] {
	o := options{debounce: config.Load().ListDebounce, logger: config.GetLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return &ListView[T]{
		ctx:      ctx,
		fetch:    fetch,
		debounce: o.debounce,
		logger:   o.logger,
		filters:  map[string]string{},
		page:     1,
		state:    State[T]{Pagination: Pagination{CurrentPage: 1}},
	}
}

// SetFilter records a filter change and re-fetches page 1 after the debounce
// window. Changes landing inside the window collapse into a single fetch
// carrying the latest values.
func (l *ListView[T]) SetFilter(key, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if value == "" {
		delete(l.filters, key)
	} else {
		l.filters[key] = value
	}
	l.page = 1

	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.debounce, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.startFetchLocked()
	})
}

// SetPage fetches the given page immediately, bypassing the debounce.
func (l *ListView[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.page = page
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.startFetchLocked()
}

// Refresh re-fetches the current page with the current filters.
func (l *ListView[T]) Refresh() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.startFetchLocked()
}

// startFetchLocked launches a fetch for the current filters/page. Each fetch
// gets a generation number; a response belonging to a superseded generation
// is discarded, so the last *issued* request wins even when responses arrive
// out of order.
func (l *ListView[T]) startFetchLocked() {
	l.generation++
	gen := l.generation
	l.state.Loading = true
	l.state.Err = ""

	filters := make(map[string]string, len(l.filters))
	for k, v := range l.filters {
		filters[k] = v
	}
	page := l.page

	go func() {
		result, err := l.fetch(l.ctx, filters, page)

		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.generation {
			return // superseded
		}
		l.state.Loading = false
		if err != nil {
			l.logger.WithFields(logrus.Fields{"module": "listview", "page": page}).Warn(err.Error())
			l.state.Err = err.Error()
			l.state.Items = nil
			return
		}
		l.state.Items = result.Results
		l.state.Err = ""
		l.state.Pagination = Pagination{
			Count:       result.Count,
			Next:        result.Next,
			Previous:    result.Previous,
			CurrentPage: page,
		}
	}()
}

// Snapshot returns the current state; Items is shared, callers must not
// mutate it.
func (l *ListView[T]) Snapshot() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Filters returns a copy of the active filter set.
func (l *ListView[T]) Filters() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]string, len(l.filters))
	for k, v := range l.filters {
		out[k] = v
	}
	return out
}

// ResetFilters clears every filter and re-fetches immediately.
func (l *ListView[T]) ResetFilters() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filters = map[string]string{}
	l.page = 1
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.startFetchLocked()
}
