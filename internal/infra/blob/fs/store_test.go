package fs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/blob/core"
)

func newTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return store
}

func TestStore_PutGetHeadListDelete(t *testing.T) { //nolint:cyclop
	ctx := context.Background()
	store := newTempStore(t)
	info, err := store.Put(ctx, "alpha/test.txt", bytes.NewReader([]byte("hello")), core.PutOptions{ContentType: "text/plain", Metadata: map[string]string{"k": "v"}})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Key != "alpha/test.txt" || info.Size != 5 || info.ETag == "" {
		t.Fatalf("unexpected info %+v", info)
	}
	h, err := store.Head(ctx, "alpha/test.txt")
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	g, rc, err := store.Get(ctx, "alpha/test.txt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	b, _ := io.ReadAll(rc)
	if err := rc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if string(b) != "hello" || g.ETag != h.ETag || g.ContentType != "text/plain" || g.Metadata["k"] != "v" {
		t.Fatalf("unexpected get artifacts %+v", g)
	}
	list, err := store.List(ctx, "alpha/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Key != "alpha/test.txt" {
		t.Fatalf("unexpected list %+v", list)
	}
	ok, err := store.Delete(ctx, "alpha/test.txt")
	if err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	ok, err = store.Delete(ctx, "alpha/test.txt")
	if err != nil || ok {
		t.Fatalf("second delete should be false")
	}
	if _, err := os.Stat(filepath.Join(store.Root(), "alpha", "test.txt.meta")); !os.IsNotExist(err) {
		t.Fatalf("expected sidecar removed, got %v", err)
	}
}

func TestStore_OverwriteKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)
	first := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	store.now = func() time.Time { return first }
	one, err := store.Put(ctx, "slots/admin.json", bytes.NewReader([]byte(`{}`)), core.PutOptions{})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	store.now = func() time.Time { return second }
	two, err := store.Put(ctx, "slots/admin.json", bytes.NewReader([]byte(`{"a":1}`)), core.PutOptions{})
	if err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if one.ETag == two.ETag || !two.LastModified.Equal(second) {
		t.Fatalf("expected new etag and timestamp, got %+v then %+v", one, two)
	}
	mf, err := readMeta(filepath.Join(store.Root(), "slots", "admin.json.meta"))
	if err != nil {
		t.Fatalf("readMeta: %v", err)
	}
	if !mf.CreatedAt.Equal(first) {
		t.Fatalf("expected created_at preserved, got %s", mf.CreatedAt)
	}
}

func TestStore_InvalidKeysAndMissing(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)
	for _, key := range []string{"", "../escape.txt", "/abs", "x.meta"} {
		if _, err := store.Put(ctx, key, bytes.NewReader([]byte("x")), core.PutOptions{}); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
	if _, _, err := store.Get(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from get, got %v", err)
	}
	if _, err := store.Head(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from head, got %v", err)
	}
}

func TestStore_CorruptSidecar(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)
	if _, err := store.Put(ctx, "k", bytes.NewReader([]byte("x")), core.PutOptions{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := os.WriteFile(filepath.Join(store.Root(), "k.meta"), []byte("{"), 0o600); err != nil {
		t.Fatalf("corrupt: %v", err)
	}
	if _, err := store.Head(ctx, "k"); err == nil || errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if _, _, err := store.Get(ctx, "k"); err == nil {
		t.Fatalf("expected get to fail on corrupt sidecar")
	}
	if _, err := store.List(ctx, ""); err == nil {
		t.Fatalf("expected list to fail on corrupt sidecar")
	}
}

func TestNewDefaultsRootAndDriver(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	store, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if store.Root() != DefaultRoot || store.Driver() != core.DriverFilesystem {
		t.Fatalf("unexpected store %s %s", store.Root(), store.Driver())
	}
}
