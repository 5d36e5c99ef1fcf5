package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront/pkg/domain"
)

func TestStoreRoundTripAndCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	if _, err := store.Read(ctx, "k"); !errors.Is(err, domain.ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
	payload := []byte(`{"a":1}`)
	if err := store.Write(ctx, "k", payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	payload[2] = 'X'
	got, err := store.Read(ctx, "k")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("write did not copy input: %s", got)
	}
	got[0] = '['
	again, _ := store.Read(ctx, "k")
	if string(again) != `{"a":1}` {
		t.Fatalf("read did not return a copy: %s", again)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Read(ctx, "k"); !errors.Is(err, domain.ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound after delete, got %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestStoreKeysSortedUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	var wg sync.WaitGroup
	for _, key := range []string{"c", "a", "b"} {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			_ = store.Write(ctx, k, []byte(`{}`))
		}(key)
	}
	wg.Wait()
	keys := store.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Fatalf("unexpected keys %v", keys)
	}
}
