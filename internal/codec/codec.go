// Package codec saves and restores state snapshots in a persistence slot.
//
// Read and Write report failures explicitly. Load and Save wrap them for the
// state containers, which must never fail: a missing or corrupt payload loads
// as the fallback and a failed write is logged and dropped.
package codec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/pkg/domain"
)

// ErrNotObject marks a payload that decoded to something other than a JSON object.
var ErrNotObject = errors.New("codec: payload is not a JSON object")

// ErrNoSlots is returned when no SlotStore is configured.
var ErrNoSlots = errors.New("codec: no slot store configured")

// Mergeable is implemented by snapshot types that accept a shallow field-by-field
// merge of stored data over themselves. MergeJSON must not modify the receiver.
type Mergeable[T any] interface {
	MergeJSON(fields map[string]json.RawMessage) (T, error)
}

// Logger is the subset of core.Logger the codec reports through.
type Logger interface {
	Warn(msg string, kv ...any)
}

// Read loads the payload under key and merges it over fallback.
func Read[T Mergeable[T]](ctx context.Context, slots domain.SlotStore, key string, fallback T) (T, error) {
	if slots == nil {
		return fallback, ErrNoSlots
	}
	payload, err := slots.Read(ctx, key)
	if err != nil {
		return fallback, fmt.Errorf("read slot %s: %w", key, err)
	}
	return Decode(payload, fallback)
}

// Decode merges a JSON object payload over fallback.
func Decode[T Mergeable[T]](payload []byte, fallback T) (T, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return fallback, fmt.Errorf("decode payload: %w", err)
	}
	if fields == nil {
		return fallback, ErrNotObject
	}
	merged, err := fallback.MergeJSON(fields)
	if err != nil {
		return fallback, err
	}
	return merged, nil
}

// Write encodes value and writes it under key.
func Write[T any](ctx context.Context, slots domain.SlotStore, key string, value T) error {
	if slots == nil {
		return ErrNoSlots
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := slots.Write(ctx, key, payload); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

// Load returns the stored snapshot merged over fallback, or fallback itself
// when the slot is empty or unreadable. It never fails.
func Load[T Mergeable[T]](ctx context.Context, slots domain.SlotStore, key string, fallback T, log Logger) T {
	value, err := Read(ctx, slots, key, fallback)
	if err != nil {
		if !errors.Is(err, domain.ErrSlotNotFound) && log != nil {
			log.Warn("persisted state unreadable, using defaults", "key", key, "error", err)
		}
		return fallback
	}
	return value
}

// Save writes value under key and drops any failure after logging it.
func Save[T any](ctx context.Context, slots domain.SlotStore, key string, value T, log Logger) {
	if err := Write(ctx, slots, key, value); err != nil && log != nil {
		log.Warn("persist state failed", "key", key, "error", err)
	}
}

// MergeField decodes fields[key] into a fresh V and stores it in dst. Missing
// keys and JSON null leave dst untouched.
func MergeField[V any](fields map[string]json.RawMessage, key string, dst *V) error {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil
	}
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decode field %s: %w", key, err)
	}
	*dst = v
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
