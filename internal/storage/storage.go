// internal/storage/storage.go
package storage

import "errors"

// KV is the key-value port the portfolio persists through. Values are opaque
// byte blobs, written whole.
type KV interface {
	// Get returns the value under key and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Set replaces the value under key.
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// ErrInvalidKey is returned for keys that cannot name a file.
var ErrInvalidKey = errors.New("invalid storage key")
