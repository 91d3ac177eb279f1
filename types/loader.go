package types

import "context"

// Loader is the contract between a read-through adapter and the place
// values actually come from (a database, an API, a computation).
type Loader interface {

	/*
		Load is called on a cache miss. The key was not found in memory,
		so the adapter asks the Loader to produce it.

		Returning (nil, nil) means the key genuinely has no value; the
		adapter will not cache anything in that case.
	*/
	Load(ctx context.Context, key string) (any, error)
}

// LoadFunc adapts an ordinary function to the Loader interface.
type LoadFunc func(ctx context.Context, key string) (any, error)

func (f LoadFunc) Load(ctx context.Context, key string) (any, error) {
	return f(ctx, key)
}
