package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/objectstore"
	"storefront/internal/infra/persistence/postgres"
	pgtestutil "storefront/internal/infra/persistence/postgres/testutil"
	"storefront/internal/infra/persistence/sqlite"
	"storefront/pkg/domain"
)

func roundTrip(t *testing.T, store domain.SlotStore) {
	t.Helper()
	ctx := context.Background()
	if _, err := store.Read(ctx, "storefront.session"); !errors.Is(err, domain.ErrSlotNotFound) {
		t.Fatalf("%T: expected ErrSlotNotFound, got %v", store, err)
	}
	if err := store.Write(ctx, "storefront.session", []byte(`{"language":"fr"}`)); err != nil {
		t.Fatalf("%T: Write: %v", store, err)
	}
	got, err := store.Read(ctx, "storefront.session")
	if err != nil || string(got) != `{"language":"fr"}` {
		t.Fatalf("%T: Read = %s, %v", store, got, err)
	}
}

func TestOpenMemory(t *testing.T) {
	store, err := Open(context.Background(), Config{Driver: DriverMemory})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := store.(*memory.Store); !ok {
		t.Fatalf("expected *memory.Store, got %T", store)
	}
	roundTrip(t, store)
}

func TestOpenDefaultsToSQLite(t *testing.T) {
	store, err := Open(context.Background(), Config{SQLitePath: filepath.Join(t.TempDir(), "state.db")})
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if _, ok := store.(*sqlite.Store); !ok {
		t.Fatalf("expected *sqlite.Store, got %T", store)
	}
	roundTrip(t, store)
}

func TestOpenPostgresUsesDriverSeam(t *testing.T) {
	db, _ := pgtestutil.NewStubDB()
	defer postgres.OverrideSQLOpen(func(string, string) (*sql.DB, error) { return db, nil })()
	store, err := Open(context.Background(), Config{Driver: DriverPostgres, PostgresDSN: "postgres://stub"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := store.(*postgres.Store); !ok {
		t.Fatalf("expected *postgres.Store, got %T", store)
	}
	roundTrip(t, store)
}

func TestOpenFilesystemObjects(t *testing.T) {
	store, err := Open(context.Background(), Config{Driver: DriverFS, FSRoot: t.TempDir()})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := store.(*objectstore.Store); !ok {
		t.Fatalf("expected *objectstore.Store, got %T", store)
	}
	roundTrip(t, store)
}

func TestOpenMemoryObjects(t *testing.T) {
	store, err := Open(context.Background(), Config{Driver: DriverMemoryObjects})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := store.(*objectstore.Store); !ok {
		t.Fatalf("expected *objectstore.Store, got %T", store)
	}
	roundTrip(t, store)
}

func TestOpenErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := Open(ctx, Config{Driver: "redis"}); err == nil {
		t.Fatalf("expected unknown driver error")
	}
	if _, err := Open(ctx, Config{Driver: DriverS3}); err == nil {
		t.Fatalf("expected missing bucket error")
	}
	restore := postgres.OverrideSQLOpen(func(string, string) (*sql.DB, error) { return nil, errors.New("refused") })
	defer restore()
	store, err := Open(ctx, Config{Driver: DriverPostgres})
	if err == nil || store != nil {
		t.Fatalf("expected nil store and error, got %v %v", store, err)
	}
}
