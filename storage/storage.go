package storage

import "context"

// KVStore is the device key-value persistence boundary. Values are opaque
// strings; callers serialize structured data themselves.
type KVStore interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes or overwrites the value for key.
	Set(ctx context.Context, key, value string) error
	// Remove deletes the entry for key, a no-op when absent.
	Remove(ctx context.Context, key string) error
	// MultiRemove deletes every listed key in one call.
	MultiRemove(ctx context.Context, keys []string) error
	// Keys lists every stored key.
	Keys(ctx context.Context) ([]string, error)
	// Close releases the underlying storage handle.
	Close() error
}
