package answercache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/leofalp/answerkit/providers/observability"
)

// DefaultBuffer is the channel capacity given to each subscriber.
const DefaultBuffer = 16

// Cache maps keys to values of type V. The zero value is not usable; create
// one with [New].
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	clone   func(V) V

	subMu       sync.Mutex
	subscribers map[<-chan Event]chan Event
	buffer      int
}

// Option configures a Cache.
type Option[V any] func(*Cache[V])

// WithClone sets the function used to copy values on the way in and out, so
// callers never share mutable state with the cache. Without it values are
// copied by assignment.
func WithClone[V any](clone func(V) V) Option[V] {
	return func(c *Cache[V]) {
		c.clone = clone
	}
}

// WithBuffer sets the channel capacity of later subscriptions.
func WithBuffer[V any](n int) Option[V] {
	return func(c *Cache[V]) {
		if n >= 0 {
			c.buffer = n
		}
	}
}

// New returns an empty Cache.
func New[V any](opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		entries:     make(map[string]V),
		subscribers: make(map[<-chan Event]chan Event),
		buffer:      DefaultBuffer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the hex-encoded SHA-256 digest of raw.
func Key(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Get returns a copy of the value stored under key.
func (c *Cache[V]) Get(_ context.Context, key string) (V, bool) {
	c.mu.RLock()
	value, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		var zero V
		return zero, false
	}
	return c.copy(value), true
}

// Put stores a copy of value under key, replacing any previous value, and
// publishes EventPut.
func (c *Cache[V]) Put(ctx context.Context, key string, value V) {
	value = c.copy(value)

	c.mu.Lock()
	c.entries[key] = value
	size := len(c.entries)
	c.mu.Unlock()

	observability.AddSpanEvent(ctx, observability.EventCachePut,
		observability.String(observability.AttrCacheKey, key),
		observability.Int(observability.AttrCacheSize, size),
	)
	c.publish(Event{Kind: EventPut, Key: key})
}

// Invalidate removes key and publishes EventInvalidate. It reports whether
// the key was present; nothing is published otherwise.
func (c *Cache[V]) Invalidate(ctx context.Context, key string) bool {
	c.mu.Lock()
	_, ok := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()
	if !ok {
		return false
	}

	observability.AddSpanEvent(ctx, observability.EventCacheInvalidate,
		observability.String(observability.AttrCacheKey, key),
	)
	c.publish(Event{Kind: EventInvalidate, Key: key})
	return true
}

// Clear removes every entry and publishes EventClear.
func (c *Cache[V]) Clear(ctx context.Context) {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()

	observability.AddSpanEvent(ctx, observability.EventCacheClear)
	c.publish(Event{Kind: EventClear})
}

// Len returns the number of entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Subscribe returns a channel receiving every later change. Delivery never
// blocks writers: when the channel is full the event is dropped for that
// subscriber.
func (c *Cache[V]) Subscribe() <-chan Event {
	ch := make(chan Event, c.buffer)
	c.subMu.Lock()
	c.subscribers[ch] = ch
	c.subMu.Unlock()
	return ch
}

// Unsubscribe stops delivery to ch and closes it. Unknown channels are
// ignored.
func (c *Cache[V]) Unsubscribe(ch <-chan Event) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	if sub, ok := c.subscribers[ch]; ok {
		delete(c.subscribers, ch)
		close(sub)
	}
}

func (c *Cache[V]) publish(event Event) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for _, sub := range c.subscribers {
		select {
		case sub <- event:
		default:
		}
	}
}

func (c *Cache[V]) copy(value V) V {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
