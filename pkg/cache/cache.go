// Package cache provides a small typed in-process cache backed by ristretto.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache stores values of type V by string key.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
	Delete(keys ...string)
	Close()
}

// Config sizes the cache. Every entry costs 1, so MaxCost is the entry limit.
type Config struct {
	NumCounters int64
	MaxCost     int64
}

type ristrettoCache[V any] struct {
	c *ristretto.Cache[string, V]
}

// New creates a ristretto-backed cache.
func New[V any](cfg Config) (Cache[V], error) {
	if cfg.MaxCost <= 0 {
		cfg.MaxCost = 10_000
	}
	if cfg.NumCounters <= 0 {
		cfg.NumCounters = cfg.MaxCost * 10
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: 64,
		// Costs count entries, not bytes.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &ristrettoCache[V]{c: c}, nil
}

func (r *ristrettoCache[V]) Get(key string) (V, bool) {
	return r.c.Get(key)
}

// Set stores value and waits for the write buffer to drain so a following Get observes it.
func (r *ristrettoCache[V]) Set(key string, value V, ttl time.Duration) {
	r.c.SetWithTTL(key, value, 1, ttl)
	r.c.Wait()
}

func (r *ristrettoCache[V]) Delete(keys ...string) {
	for _, k := range keys {
		r.c.Del(k)
	}
}

func (r *ristrettoCache[V]) Close() {
	r.c.Close()
}

type nopCache[V any] struct{}

// NewNop returns a cache that never stores anything.
func NewNop[V any]() Cache[V] {
	return nopCache[V]{}
}

func (nopCache[V]) Get(string) (V, bool) {
	var zero V
	return zero, false
}

func (nopCache[V]) Set(string, V, time.Duration) {}
func (nopCache[V]) Delete(...string)             {}
func (nopCache[V]) Close()                       {}
