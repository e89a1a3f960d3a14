// Package cache is a keyed, in-memory cache of query results.
//
// Each key moves through absent → pending → fresh → stale → (removed | pending).
// At most one loader runs per key at any time: concurrent requests for a pending
// key join the in-flight load, and a key invalidated while its load is still in
// flight waits for that load before starting the next one. The same holds for a
// key removed or cleared mid-load. Failures are never cached; the key reverts to
// absent and subscribers receive the error.
//
// Stale entries that nobody subscribes to are garbage collected once their value
// is older than the gc time (see WithGCTime).
package cache

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Status is the state of a cache key.
type Status int

const (
	StatusAbsent Status = iota
	StatusPending
	StatusFresh
	StatusStale
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusFresh:
		return "fresh"
	case StatusStale:
		return "stale"
	default:
		return "absent"
	}
}

// Event is delivered to subscribers when a key changes.
type Event struct {
	Key    string
	Status Status
	Value  any
	Err    error
}

// Listener receives change events for one key.
type Listener func(Event)

// Loader produces the value of a key.
type Loader func(ctx context.Context) (any, error)

type flight struct {
	done  chan struct{}
	value any
	err   error
}

type entry struct {
	status    Status
	value     any
	fetchedAt time.Time
	flight    *flight
	listeners map[uint64]Listener
}

// Cache is safe for concurrent use. One Cache serves one signed-in client.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	nextID  uint64

	staleTime time.Duration
	gcTime    time.Duration
	lastSweep time.Time
	now       func() time.Time
	metrics   *metrics
	logger    *slog.Logger
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]*entry),
		gcTime:  DefaultGCTime,
		now:     time.Now,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = newMetrics(nil)
	}

	return c
}

// Status reports the state of key. Keys never requested are absent.
func (c *Cache) Status(key string) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return StatusAbsent
	}

	return c.statusLocked(e)
}

// Peek returns the last value stored for key regardless of freshness.
func (c *Cache) Peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.fetchedAt.IsZero() {
		return nil, false
	}

	return e.value, true
}

// Request returns the value of key, invoking loader only when the key is absent
// or stale. The loader is detached from ctx cancellation: a caller that gives up
// gets ctx.Err() while the load still completes and updates the cache.
func (c *Cache) Request(ctx context.Context, key string, loader Loader) (any, error) {
	for {
		c.mu.Lock()
		c.sweepLocked()
		e := c.entryLocked(key)

		switch status := c.statusLocked(e); {
		case status == StatusFresh:
			value := e.value
			c.mu.Unlock()
			c.metrics.requests.WithLabelValues(resultHit).Inc()

			return value, nil

		case status == StatusPending:
			f := e.flight
			c.mu.Unlock()
			c.metrics.requests.WithLabelValues(resultJoin).Inc()

			return wait(ctx, f)

		case e.flight != nil:
			// Invalidated or removed while loading: the in-flight result
			// predates that, so let it settle and load again.
			f := e.flight
			c.mu.Unlock()
			if _, err := wait(ctx, f); err != nil && ctx.Err() != nil {
				return nil, err
			}

			continue

		default:
			f := &flight{done: make(chan struct{})}
			e.flight = f
			e.status = StatusPending
			c.mu.Unlock()
			c.metrics.requests.WithLabelValues(resultMiss).Inc()

			go c.load(context.WithoutCancel(ctx), key, e, f, loader)

			return wait(ctx, f)
		}
	}
}

// Fetch is Request with a typed result.
func Fetch[T any](ctx context.Context, c *Cache, key string, loader func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	v, err := c.Request(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, errors.Errorf("cache key %q holds %T, not %T", key, v, zero)
	}

	return typed, nil
}

func (c *Cache) load(ctx context.Context, key string, e *entry, f *flight, loader Loader) {
	c.logger.Debug("Loading cache key", slog.String("key", key))

	value, err := loader(ctx)

	c.mu.Lock()
	f.value, f.err = value, err

	var (
		listeners []Listener
		event     Event
	)
	if c.entries[key] == e && e.flight == f {
		e.flight = nil
		switch {
		case e.status != StatusPending && e.status != StatusStale:
			// Removed or overwritten by SetData while loading.
			if e.status == StatusAbsent && len(e.listeners) == 0 {
				delete(c.entries, key)
			}
		case err != nil:
			e.status = StatusAbsent
			e.value = nil
			e.fetchedAt = time.Time{}
			event = Event{Key: key, Status: StatusAbsent, Err: err}
			if len(e.listeners) == 0 {
				delete(c.entries, key)
			}
			listeners = snapshot(e)
		default:
			if e.status != StatusStale {
				e.status = StatusFresh
			}
			e.value = value
			e.fetchedAt = c.now()
			event = Event{Key: key, Status: e.status, Value: value}
			listeners = snapshot(e)
		}
	}
	c.mu.Unlock()

	if err != nil {
		c.metrics.loadFailures.Inc()
		c.logger.Debug("Cache load failed", slog.String("key", key), slog.Any("error", err))
	}
	notify(listeners, event)

	// Waiters are released only after subscribers have seen the result.
	close(f.done)
}

// Invalidate marks key stale. The next Request reloads it.
func (c *Cache) Invalidate(key string) {
	c.InvalidateFunc(func(k string) bool { return k == key })
}

// InvalidatePrefix marks every key starting with prefix stale.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.InvalidateFunc(func(k string) bool { return strings.HasPrefix(k, prefix) })
}

// InvalidateFunc marks every fresh or pending key matching match stale and
// returns how many keys changed.
func (c *Cache) InvalidateFunc(match func(key string) bool) int {
	type pending struct {
		listeners []Listener
		event     Event
	}

	c.mu.Lock()
	var notices []pending
	for key, e := range c.entries {
		if !match(key) {
			continue
		}
		status := c.statusLocked(e)
		if status != StatusFresh && status != StatusPending {
			continue
		}
		e.status = StatusStale
		notices = append(notices, pending{
			listeners: snapshot(e),
			event:     Event{Key: key, Status: StatusStale, Value: e.value},
		})
	}
	c.mu.Unlock()

	c.metrics.invalidations.Add(float64(len(notices)))
	for _, n := range notices {
		notify(n.listeners, n.event)
	}

	return len(notices)
}

// SetData stores value under key as fresh, e.g. after an optimistic update.
func (c *Cache) SetData(key string, value any) {
	c.mu.Lock()
	e := c.entryLocked(key)
	e.status = StatusFresh
	e.value = value
	e.fetchedAt = c.now()
	listeners := snapshot(e)
	c.mu.Unlock()

	notify(listeners, Event{Key: key, Status: StatusFresh, Value: value})
}

// Remove drops the value of key. Subscribers stay registered and the key reads as absent.
// A load in flight for key still resolves its waiters but no longer updates the cache,
// and the next Request waits for it before loading again.
func (c *Cache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(key)
}

// Clear removes every key, with the same in-flight handling as Remove.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		c.removeLocked(key)
	}
}

// Subscribe registers fn for changes of key and returns the function that
// removes it. When the last subscriber leaves and no load is in flight, the
// entry is discarded.
func (c *Cache) Subscribe(key string, fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	e := c.entryLocked(key)
	c.nextID++
	id := c.nextID
	e.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()

			delete(e.listeners, id)
			if len(e.listeners) == 0 && e.flight == nil && c.entries[key] == e {
				delete(c.entries, key)
			}
		})
	}
}

// Len returns the number of entries held, including absent entries kept alive by subscribers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Cache) entryLocked(key string) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{listeners: make(map[uint64]Listener)}
		c.entries[key] = e
	}

	return e
}

func (c *Cache) removeLocked(key string) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	if len(e.listeners) == 0 && e.flight == nil {
		delete(c.entries, key)

		return
	}
	e.status = StatusAbsent
	e.value = nil
	e.fetchedAt = time.Time{}
}

// sweepLocked drops unsubscribed stale entries older than gcTime. It runs at
// most once per gcTime.
func (c *Cache) sweepLocked() {
	if c.gcTime <= 0 {
		return
	}
	now := c.now()
	if now.Sub(c.lastSweep) < c.gcTime {
		return
	}
	c.lastSweep = now

	var swept int
	for key, e := range c.entries {
		if len(e.listeners) > 0 || e.flight != nil {
			continue
		}
		if status := c.statusLocked(e); status != StatusStale && status != StatusAbsent {
			continue
		}
		if now.Sub(e.fetchedAt) < c.gcTime {
			continue
		}
		delete(c.entries, key)
		swept++
	}
	if swept > 0 {
		c.metrics.evictions.Add(float64(swept))
		c.logger.Debug("Swept cache entries", slog.Int("count", swept))
	}
}

func (c *Cache) statusLocked(e *entry) Status {
	if e.status == StatusFresh && c.staleTime > 0 && c.now().Sub(e.fetchedAt) >= c.staleTime {
		return StatusStale
	}

	return e.status
}

func wait(ctx context.Context, f *flight) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	}
}

func snapshot(e *entry) []Listener {
	if len(e.listeners) == 0 {
		return nil
	}
	out := make([]Listener, 0, len(e.listeners))
	for _, l := range e.listeners {
		out = append(out, l)
	}

	return out
}

func notify(listeners []Listener, event Event) {
	for _, l := range listeners {
		l(event)
	}
}
