// Package kv implements the string-keyed persistence boundary every other
// component stores its state behind. Values are opaque byte slices; callers
// encode JSON themselves. The layout intentionally mirrors a browser
// localStorage profile: flat keys, last write wins, no cross-process
// coordination.
package kv

import "context"

type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteByPrefix removes every key starting with prefix.
	DeleteByPrefix(ctx context.Context, prefix string) error

	// List returns all keys with the given prefix and their values.
	List(ctx context.Context, prefix string) (map[string][]byte, error)

	// Clear removes everything. Used by full account wipe only.
	Clear(ctx context.Context) error
}
