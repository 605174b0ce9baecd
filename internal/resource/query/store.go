// Package query is the cache-aware read/write layer between the HTTP
// delivery and the server actions. The Store is injected, never a package
// singleton, so lifecycle and test isolation stay explicit.
package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"consulate-console/internal/resource"
	"consulate-console/pkg/log"
)

// Config sizes the cache and sets the staleness windows.
type Config struct {
	Capacity int
	ListTTL  time.Duration
	StatsTTL time.Duration
}

// Store is the process-wide cache shared by every resource's queries.
// Entries are keyed "resource|operation|params". Concurrent identical-key
// fetches are collapsed to one in-flight request; there are no
// application-level locks beyond that.
type Store struct {
	entries *expirable.LRU[string, any]
	stats   *expirable.LRU[string, any]

	group singleflight.Group

	mu        sync.Mutex
	subs      []func(resourceName string)
	debounced map[string]*resource.Debouncer

	l log.Logger
}

// NewStore builds the cache store from config. Zero TTLs fall back to
// 5 minutes, the window the console has always used.
func NewStore(cfg Config, l log.Logger) *Store {
	if cfg.Capacity <= 0 {
		cfg.Capacity = 512
	}
	if cfg.ListTTL <= 0 {
		cfg.ListTTL = 5 * time.Minute
	}
	if cfg.StatsTTL <= 0 {
		cfg.StatsTTL = 5 * time.Minute
	}

	return &Store{
		entries:   expirable.NewLRU[string, any](cfg.Capacity, nil, cfg.ListTTL),
		stats:     expirable.NewLRU[string, any](cfg.Capacity, nil, cfg.StatsTTL),
		debounced: make(map[string]*resource.Debouncer),
		l:         l,
	}
}

func listKey(name, params string) string { return name + "|list|" + params }
func detailKey(name, id string) string   { return name + "|detail|" + id }
func statsKey(name string) string        { return name + "|stats" }

// Subscribe registers a callback fired (debounced) after a resource's
// cache entries were invalidated by a mutation.
func (s *Store) Subscribe(fn func(resourceName string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// InvalidateList drops every cached list page of the resource.
func (s *Store) InvalidateList(name string) {
	prefix := name + "|list|"
	for _, key := range s.entries.Keys() {
		if strings.HasPrefix(key, prefix) {
			s.entries.Remove(key)
		}
	}
}

// InvalidateStats drops the cached stats of the resource.
func (s *Store) InvalidateStats(name string) {
	s.stats.Remove(statsKey(name))
}

// InvalidateDetail drops one cached detail record.
func (s *Store) InvalidateDetail(name, id string) {
	s.entries.Remove(detailKey(name, id))
}

// InvalidateAll drops everything cached for the resource.
func (s *Store) InvalidateAll(name string) {
	s.InvalidateList(name)
	s.InvalidateStats(name)
	prefix := name + "|detail|"
	for _, key := range s.entries.Keys() {
		if strings.HasPrefix(key, prefix) {
			s.entries.Remove(key)
		}
	}
}

// Clear empties the whole cache.
func (s *Store) Clear() {
	s.entries.Purge()
	s.stats.Purge()
}

// notifyInvalidated fires subscribers for the resource, debounced so a
// burst of mutations produces a single notification.
func (s *Store) notifyInvalidated(name string) {
	s.mu.Lock()
	d, ok := s.debounced[name]
	if !ok {
		d = resource.NewDebouncer(resource.DefaultDebounce)
		s.debounced[name] = d
	}
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	d.Do(func() {
		s.l.Debugf(context.Background(), "cache: invalidation notification for %q", name)
		for _, fn := range subs {
			fn(name)
		}
	})
}
