package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *KVRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewKVRepo(db)
}

func TestKVGetMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t)
	v, err := repo.Get(context.Background(), "progression")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != nil {
		t.Fatalf("value=%q, want nil", v)
	}
}

func TestKVSetManyUpserts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SetMany(ctx, []Entry{
		{Key: "mood", Value: []byte("5")},
		{Key: "lastResetDate", Value: []byte(`"2026-01-05"`)},
	}); err != nil {
		t.Fatalf("set many: %v", err)
	}
	if err := repo.SetMany(ctx, []Entry{{Key: "mood", Value: []byte("8")}}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, err := repo.Get(ctx, "mood")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(v) != "8" {
		t.Fatalf("mood=%q, want 8", v)
	}

	v, err = repo.Get(ctx, "lastResetDate")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(v) != `"2026-01-05"` {
		t.Fatalf("lastResetDate=%q", v)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	if err := Migrate(context.Background(), repo.db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestResolveDBPathPrefersOverride(t *testing.T) {
	got, err := ResolveDBPath("  /tmp/x.db ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "/tmp/x.db" {
		t.Fatalf("path=%q", got)
	}
}
