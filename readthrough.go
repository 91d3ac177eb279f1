package cache

import (
	"context"
	"time"

	"github.com/krisalay/tagged-lru-cache/types"
	"golang.org/x/sync/singleflight"
)

// Store is the subset of cache operations a ReadThrough needs. Both
// TaggedLRUCache and ShardedCache satisfy it.
type Store interface {
	Get(key string) (any, bool)
	Put(key string, value any, tags ...string)
	PutWithTTL(key string, value any, ttl time.Duration, tags ...string)
}

/*
ReadThrough wraps a cache and a Loader so callers get one call that
either hits the cache or loads, stores and returns the value.

The caching is explicit at the composition site: nothing is wrapped by
decorators and no global state is involved. Construct one ReadThrough
per data source and hand it to whoever needs it.

Concurrent misses for the same key are collapsed with singleflight: if
a hundred goroutines ask for the same absent key, only one of them
calls the Loader and the rest wait for its result.
*/
type ReadThrough struct {
	store  Store
	loader types.Loader

	// ttl and tags apply to every entry this adapter stores.
	// A zero ttl stores entries without time-based expiry.
	ttl  time.Duration
	tags []string

	sf singleflight.Group
}

func NewReadThrough(store Store, loader types.Loader, ttl time.Duration, tags ...string) *ReadThrough {
	return &ReadThrough{
		store:  store,
		loader: loader,
		ttl:    ttl,
		tags:   tags,
	}
}

/*
Get returns the cached value for key, loading it on a miss.

A Loader result of (nil, nil) means the key has no value; nothing is
cached and (nil, nil) is returned so the caller can treat it as a
normal absence. Loader errors are returned as-is and are never cached.
*/
func (r *ReadThrough) Get(ctx context.Context, key string) (any, error) {
	if v, ok := r.store.Get(key); ok {
		return v, nil
	}

	v, err, _ := r.sf.Do(key, func() (any, error) {
		return r.loader.Load(ctx, key)
	})
	if err != nil || v == nil {
		return nil, err
	}

	if r.ttl > 0 {
		r.store.PutWithTTL(key, v, r.ttl, r.tags...)
	} else {
		r.store.Put(key, v, r.tags...)
	}
	return v, nil
}
