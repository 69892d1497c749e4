// Package kvstore defines the storage port shared by every user-data
// store. Values are JSON text addressed by the string keys in keys.go.
//
// Adapters provide no cross-key transactions; callers that read-modify-
// write must serialize themselves (see platform/keylock).
package kvstore

import "context"

type Store interface {
	// Get returns the stored value; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes or overwrites a key.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
