package resource

import (
	"net/url"
	"strconv"
	"sync"
	"time"
)

const (
	maxLimit = 100

	// DefaultDebounce is how long rapid filter updates are held back
	// before they propagate into a query key.
	DefaultDebounce = 500 * time.Millisecond
)

// Filters is the filter state of one list view: declared fields plus page
// and limit. It is the single source of truth behind a list query key and
// round-trips through the URL query string.
type Filters struct {
	desc   Descriptor
	values map[string]string
	page   int
	limit  int
}

// NewFilters returns the default filter state for a descriptor: page 1,
// the descriptor's default limit, every field at its default.
func NewFilters(d Descriptor) *Filters {
	return &Filters{
		desc:   d,
		values: make(map[string]string),
		page:   1,
		limit:  d.DefaultLimit,
	}
}

// Set updates one declared filter field and resets the page to 1 — any
// filter change invalidates the current page position. Unknown fields and
// out-of-enum values are ignored; setting a field to its default (or to
// the "all" sentinel for enums) clears it.
func (f *Filters) Set(name, value string) {
	field, ok := f.desc.Field(name)
	if !ok {
		return
	}

	f.page = 1

	if value == "" || value == field.Default || (field.Kind == FilterEnum && value == "all") {
		delete(f.values, name)
		return
	}
	if field.Kind == FilterEnum && !contains(field.Values, value) {
		delete(f.values, name)
		return
	}
	if field.Kind == FilterInt {
		if _, err := strconv.Atoi(value); err != nil {
			delete(f.values, name)
			return
		}
	}

	f.values[name] = value
}

// SetPage moves to the given page. Values below 1 clamp to 1.
func (f *Filters) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	f.page = page
}

// SetLimit changes the page size and resets to page 1. Out-of-range values
// fall back to the descriptor default.
func (f *Filters) SetLimit(limit int) {
	if limit < 1 || limit > maxLimit {
		limit = f.desc.DefaultLimit
	}
	f.limit = limit
	f.page = 1
}

// Get returns the effective value of a field, falling back to its default.
func (f *Filters) Get(name string) string {
	if v, ok := f.values[name]; ok {
		return v
	}
	if field, ok := f.desc.Field(name); ok {
		return field.Default
	}
	return ""
}

func (f *Filters) Page() int  { return f.page }
func (f *Filters) Limit() int { return f.limit }

// Encode serializes the state to URL query parameters. Defaults are
// omitted rather than encoded explicitly, so a pristine view has an
// empty query string.
func (f *Filters) Encode() url.Values {
	q := url.Values{}
	for name, value := range f.values {
		q.Set(name, value)
	}
	if f.page > 1 {
		q.Set("page", strconv.Itoa(f.page))
	}
	if f.limit != f.desc.DefaultLimit {
		q.Set("limit", strconv.Itoa(f.limit))
	}
	return q
}

// Key is the stable serialization used in cache keys.
func (f *Filters) Key() string {
	return f.Encode().Encode()
}

// DecodeFilters rebuilds filter state from a URL query string. Junk values
// fall back to defaults; page is applied last so restoring a deep link
// keeps its page position.
func DecodeFilters(d Descriptor, q url.Values) *Filters {
	f := NewFilters(d)

	if raw := q.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			f.SetLimit(limit)
		}
	}
	for _, field := range d.Filters {
		if raw := q.Get(field.Name); raw != "" {
			f.Set(field.Name, raw)
		}
	}
	if raw := q.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			f.SetPage(page)
		}
	}

	return f
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// Debouncer holds back rapid successive updates (one per keystroke) so
// only the last one within the window fires. Used to keep text filters
// from producing a request per keystroke.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given window; zero or negative
// delays fall back to DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Do schedules fn after the window, superseding any pending call.
func (b *Debouncer) Do(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.delay, fn)
}

// Stop cancels any pending call.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
