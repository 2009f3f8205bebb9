// Package storage defines the key/value blob store that snapshots persist
// through. Backends live in the subpackages.
package storage

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when no blob is stored under a key.
var ErrNotFound = errors.New("snapshot not found")

// ErrEmptyKey is returned for a blank key.
var ErrEmptyKey = errors.New("snapshot key must not be empty")

// Store persists opaque blobs under string keys.
type Store interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores data under key, replacing any previous blob.
	Set(ctx context.Context, key string, data []byte) error
	// Delete removes key, or returns ErrNotFound.
	Delete(ctx context.Context, key string) error
}

// CheckKey returns ErrEmptyKey when key is blank.
func CheckKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}
