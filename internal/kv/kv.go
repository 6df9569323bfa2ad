package kv

import "context"

// Store is one key-value scope. The session layer holds two of these:
// a durable scope that survives restarts and an ephemeral scope that
// does not. Get reports absence through the bool, not an error; errors
// are reserved for the backing store actually failing.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
