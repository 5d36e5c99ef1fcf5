// Package objectstore persists slots as JSON objects on a blob store, one
// object per slot under the slots/ prefix.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"storefront/internal/blob"
	"storefront/pkg/domain"
)

var _ domain.SlotStore = (*Store)(nil)

// Prefix is prepended to every slot key.
const Prefix = "slots/"

const contentType = "application/json"

// Store adapts a blob.Store to domain.SlotStore.
type Store struct {
	objects blob.Store
}

// New wraps objects.
func New(objects blob.Store) (*Store, error) {
	if objects == nil {
		return nil, fmt.Errorf("objectstore: nil blob store")
	}
	return &Store{objects: objects}, nil
}

// ObjectKey maps a slot key to its object key.
func ObjectKey(key string) string { return Prefix + key + ".json" }

// Read loads the object for key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	_, rc, err := s.objects.Get(ctx, ObjectKey(key))
	if errors.Is(err, blob.ErrNotFound) {
		return nil, domain.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	defer func() { _ = rc.Close() }()
	payload, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return payload, nil
}

// Write replaces the object for key.
func (s *Store) Write(ctx context.Context, key string, payload []byte) error {
	opts := blob.PutOptions{ContentType: contentType, Metadata: map[string]string{"slot": key}}
	if _, err := s.objects.Put(ctx, ObjectKey(key), bytes.NewReader(payload), opts); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Delete removes the object for key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.objects.Delete(ctx, ObjectKey(key)); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the slot keys currently stored.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	infos, err := s.objects.List(ctx, Prefix)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	keys := make([]string, 0, len(infos))
	for _, info := range infos {
		if k, ok := strings.CutSuffix(strings.TrimPrefix(info.Key, Prefix), ".json"); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Driver reports the underlying blob driver.
func (s *Store) Driver() blob.Driver { return s.objects.Driver() }

// Close is a no-op; blob stores hold no long-lived handles.
func (s *Store) Close() error { return nil }
