package domain

import (
	"context"
	"errors"
)

// ErrSlotNotFound is returned by SlotStore.Read when no value is stored under a key.
var ErrSlotNotFound = errors.New("persistence slot not found")

// SlotStore is the durable key/value persistence slot both state containers
// save their snapshots into. Each key holds one opaque payload which the
// codec encodes as JSON.
type SlotStore interface {
	// Read returns the payload stored under key or ErrSlotNotFound.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write replaces the payload stored under key.
	Write(ctx context.Context, key string, payload []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}
