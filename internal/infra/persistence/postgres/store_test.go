package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"storefront/internal/infra/persistence/postgres/testutil"
	"storefront/pkg/domain"
)

func openStub(t *testing.T) (*Store, *testutil.StubConn) {
	t.Helper()
	db, conn := testutil.NewStubDB()
	restore := OverrideSQLOpen(func(driverName, _ string) (*sql.DB, error) {
		if driverName != "pgx" {
			t.Fatalf("unexpected driver %q", driverName)
		}
		return db, nil
	})
	t.Cleanup(restore)
	store, err := NewStore(context.Background(), "")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store, conn
}

func TestNewStoreEnsuresStateTable(t *testing.T) {
	_, conn := openStub(t)
	var sawDDL bool
	for _, stmt := range conn.Execs {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS state") && strings.Contains(stmt, "BYTEA") {
			sawDDL = true
		}
	}
	if !sawDDL {
		t.Fatalf("expected state table DDL, got execs: %v", conn.Execs)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, conn := openStub(t)

	if _, err := store.Read(ctx, "storefront.session"); !errors.Is(err, domain.ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
	if err := store.Write(ctx, "storefront.session", []byte(`{"theme":"dark"}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := store.Write(ctx, "storefront.session", []byte(`{"theme":"light"}`)); err != nil {
		t.Fatalf("Write overwrite: %v", err)
	}
	if got := len(conn.Rows("state")); got != 1 {
		t.Fatalf("expected one row after upsert, got %d", got)
	}
	got, err := store.Read(ctx, "storefront.session")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != `{"theme":"light"}` {
		t.Fatalf("unexpected payload %s", got)
	}
	if err := store.Delete(ctx, "storefront.session"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Read(ctx, "storefront.session"); !errors.Is(err, domain.ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound after delete, got %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNewStorePropagatesOpenAndPingErrors(t *testing.T) {
	restore := OverrideSQLOpen(func(string, string) (*sql.DB, error) {
		return nil, errors.New("dial refused")
	})
	if _, err := NewStore(context.Background(), "postgres://example"); err == nil || !strings.Contains(err.Error(), "open postgres") {
		t.Fatalf("expected open error, got %v", err)
	}
	restore()

	db, conn := testutil.NewStubDB()
	conn.FailPing = true
	defer OverrideSQLOpen(func(string, string) (*sql.DB, error) { return db, nil })()
	if _, err := NewStore(context.Background(), ""); err == nil || !strings.Contains(err.Error(), "ping postgres") {
		t.Fatalf("expected ping error, got %v", err)
	}
}

func TestNewStorePropagatesDDLError(t *testing.T) {
	db, conn := testutil.NewStubDB()
	conn.FailExec = true
	defer OverrideSQLOpen(func(string, string) (*sql.DB, error) { return db, nil })()
	if _, err := NewStore(context.Background(), ""); err == nil || !strings.Contains(err.Error(), "ensure state table") {
		t.Fatalf("expected ddl error, got %v", err)
	}
}

func TestWriteFailures(t *testing.T) {
	ctx := context.Background()
	store, conn := openStub(t)

	conn.FailBegin = true
	if err := store.Write(ctx, "k", []byte(`{}`)); err == nil || !strings.Contains(err.Error(), "begin tx") {
		t.Fatalf("expected begin error, got %v", err)
	}
	conn.FailBegin = false

	conn.FailCommit = true
	if err := store.Write(ctx, "k", []byte(`{}`)); err == nil || !strings.Contains(err.Error(), "commit") {
		t.Fatalf("expected commit error, got %v", err)
	}
	conn.FailCommit = false

	conn.FailExec = true
	if err := store.Write(ctx, "k", []byte(`{}`)); err == nil || !strings.Contains(err.Error(), "upsert k") {
		t.Fatalf("expected upsert error, got %v", err)
	}
	if err := store.Delete(ctx, "k"); err == nil {
		t.Fatalf("expected delete error")
	}
}

func TestReadQueryFailure(t *testing.T) {
	store, conn := openStub(t)
	conn.FailQuery = true
	if _, err := store.Read(context.Background(), "k"); err == nil || errors.Is(err, domain.ErrSlotNotFound) {
		t.Fatalf("expected query error distinct from not found, got %v", err)
	}
}
