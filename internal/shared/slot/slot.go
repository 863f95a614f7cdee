// Package slot provides a durable string-keyed store with single-value
// get/set semantics. The schedule store serializes its whole collection into
// one slot, so any backend that can hold a string per key qualifies.
package slot

import "context"

type Slot interface {
	// Get returns the stored value and whether the key exists. A missing
	// key is ("", false, nil), not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
