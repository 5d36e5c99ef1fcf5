package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
)

func TestOpenSelectsDriver(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		cfg  Config
		want Driver
	}{
		{Config{Driver: DriverMemory}, DriverMemory},
		{Config{FSRoot: t.TempDir()}, DriverFilesystem},
		{Config{Driver: DriverFilesystem, FSRoot: t.TempDir()}, DriverFilesystem},
	}
	for _, tc := range cases {
		store, err := Open(ctx, tc.cfg)
		if err != nil {
			t.Fatalf("Open(%+v): %v", tc.cfg, err)
		}
		if store.Driver() != tc.want {
			t.Fatalf("Open(%+v) driver = %s, want %s", tc.cfg, store.Driver(), tc.want)
		}
	}
}

func TestOpenRejectsUnknownDriverAndMissingBucket(t *testing.T) {
	ctx := context.Background()
	if _, err := Open(ctx, Config{Driver: "gcs"}); err == nil {
		t.Fatalf("expected unknown driver error")
	}
	if _, err := Open(ctx, Config{Driver: DriverS3}); err == nil {
		t.Fatalf("expected missing bucket error")
	}
}

func TestStoresShareOverwriteAndNotFoundSemantics(t *testing.T) {
	ctx := context.Background()
	fsStore, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystem: %v", err)
	}
	for _, store := range []Store{NewMemory(), fsStore, NewMockS3ForTests()} {
		if _, err := store.Head(ctx, "slots/a.json"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s: expected ErrNotFound, got %v", store.Driver(), err)
		}
		for _, body := range []string{`{"v":1}`, `{"v":2}`} {
			if _, err := store.Put(ctx, "slots/a.json", bytes.NewReader([]byte(body)), PutOptions{ContentType: "application/json"}); err != nil {
				t.Fatalf("%s: Put: %v", store.Driver(), err)
			}
		}
		_, rc, err := store.Get(ctx, "slots/a.json")
		if err != nil {
			t.Fatalf("%s: Get: %v", store.Driver(), err)
		}
		got, _ := io.ReadAll(rc)
		_ = rc.Close()
		if string(got) != `{"v":2}` {
			t.Fatalf("%s: expected overwritten body, got %s", store.Driver(), got)
		}
	}
}
