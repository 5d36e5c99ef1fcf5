package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"storefront/internal/blob/core"
)

func TestMockStoreRoundTrip(t *testing.T) { //nolint:cyclop
	ctx := context.Background()
	store := NewMockForTests()
	if store.Driver() != core.DriverS3 || store.Bucket() != "mock-bucket" {
		t.Fatalf("unexpected store identity %s %s", store.Driver(), store.Bucket())
	}

	if _, err := store.Head(ctx, "slots/a.json"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from head, got %v", err)
	}
	if _, _, err := store.Get(ctx, "slots/a.json"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from get, got %v", err)
	}

	info, err := store.Put(ctx, "slots/a.json", bytes.NewReader([]byte(`{"v":1}`)), core.PutOptions{ContentType: "application/json"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.ETag != "etag123" || info.ContentType != "application/json" {
		t.Fatalf("unexpected info %+v", info)
	}
	if _, err := store.Put(ctx, "slots/a.json", bytes.NewReader([]byte(`{"v":2}`)), core.PutOptions{ContentType: "application/json"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	_, rc, err := store.Get(ctx, "slots/a.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(body) != `{"v":2}` {
		t.Fatalf("expected overwritten body, got %s", body)
	}

	if _, err := store.Put(ctx, "other.json", bytes.NewReader([]byte(`{}`)), core.PutOptions{}); err != nil {
		t.Fatalf("put other: %v", err)
	}
	list, err := store.List(ctx, "slots/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Key != "slots/a.json" || list[0].Size != int64(len(`{"v":2}`)) {
		t.Fatalf("unexpected list %+v", list)
	}

	ok, err := store.Delete(ctx, "slots/a.json")
	if err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	ok, err = store.Delete(ctx, "slots/a.json")
	if err != nil || ok {
		t.Fatalf("expected second delete to report missing, got %v %v", ok, err)
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatalf("expected bucket error")
	}
}

func TestNewWithStaticCredentials(t *testing.T) {
	store, err := New(context.Background(), Config{
		Bucket:          "storefront",
		Endpoint:        "http://localhost:9000",
		PathStyle:       true,
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if store.Bucket() != "storefront" {
		t.Fatalf("unexpected bucket %s", store.Bucket())
	}
}

func TestDecodeChunked(t *testing.T) {
	got, ok := decodeChunked([]byte("7\r\n{\"v\":1}\r\n0\r\nx-amz-checksum-crc32:AAAA\r\n\r\n"))
	if !ok || string(got) != `{"v":1}` {
		t.Fatalf("decodeChunked = %q %v", got, ok)
	}
	if _, ok := decodeChunked([]byte(`{"v":1}`)); ok {
		t.Fatalf("expected plain body to be left alone")
	}
}
