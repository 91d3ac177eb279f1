package cache_test

import (
	cache "github.com/krisalay/tagged-lru-cache"
	api "github.com/krisalay/tagged-lru-cache/api"
)

// Both cache shapes must satisfy the public contract.
var (
	_ api.Cache = (*cache.TaggedLRUCache)(nil)
	_ api.Cache = (*cache.ShardedCache)(nil)
)
