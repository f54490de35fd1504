// Package cache provides the durable key-value content cache used by the
// fetch layer. Keys are opaque strings (request URLs); values are JSON
// documents stored verbatim with insert-or-replace semantics.
package cache

import (
	"context"
	"encoding/json"
)

// Store is the persistence contract for cached fetch results. At most one
// live entry exists per key; Set replaces any previous value. Implementations
// must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Close() error
}
