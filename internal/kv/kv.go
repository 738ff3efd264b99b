// Package kv abstracts the local string-keyed blob store the
// collections live in. Each collection is one opaque value under one
// key; the repository layer owns the array semantics above this.
package kv

import "context"

// Store is the minimal blob-store contract. Get returns (nil, nil)
// when the key is absent, which callers treat as an empty collection.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
