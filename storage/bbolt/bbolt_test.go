package bbolt

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmcleod/argonpass/storage"
	"go.etcd.io/bbolt"
)

func newTestDB(t *testing.T) (*bbolt.DB, func()) {
	t.Helper()
	f, err := os.CreateTemp("", "sites-test-*.db")
	if err != nil {
		t.Fatalf("could not create temp file: %v", err)
	}
	path := f.Name()
	f.Close()

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		os.Remove(path)
		t.Fatalf("could not open db: %v", err)
	}
	return db, func() {
		db.Close()
		os.Remove(path)
	}
}

func TestBBoltStorage(t *testing.T) {
	db, cleanup := newTestDB(t)
	defer cleanup()

	s := NewRepository(db)
	symbols := true
	profile := &storage.SiteProfile{
		Site:      "example.com",
		Variant:   "extended",
		Length:    32,
		Symbols:   &symbols,
		Mode:      "balanced",
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("GetMissingBucket", func(t *testing.T) {
		_, err := s.Get("example.com")
		if err == nil {
			t.Fatal("expected error before any write")
		}
	})

	t.Run("PutGet", func(t *testing.T) {
		if err := s.Put(profile); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := s.Get("example.com")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Length != 32 || got.Mode != "balanced" || got.Variant != "extended" {
			t.Errorf("unexpected profile %+v", got)
		}
		if got.Symbols == nil || !*got.Symbols {
			t.Error("expected symbols to round-trip as true")
		}
		if got.NFKD != nil {
			t.Error("unset NFKD should stay nil")
		}
		if !got.UpdatedAt.Equal(profile.UpdatedAt) {
			t.Errorf("expected UpdatedAt %v, got %v", profile.UpdatedAt, got.UpdatedAt)
		}
	})

	t.Run("List", func(t *testing.T) {
		s.Put(&storage.SiteProfile{Site: "a.example"})
		sites, err := s.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(sites) != 2 || sites[0] != "a.example" || sites[1] != "example.com" {
			t.Errorf("unexpected sites %v", sites)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := s.Delete("a.example"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := s.Get("a.example"); err == nil {
			t.Error("expected ErrNotFound after delete")
		}
		if err := s.Delete("a.example"); err == nil {
			t.Error("expected error deleting a missing site")
		}
	})

	t.Run("RejectEmptySite", func(t *testing.T) {
		if err := s.Put(&storage.SiteProfile{}); err == nil {
			t.Error("expected error for empty site")
		}
	})
}

func TestNewRepositoryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.db")
	s, err := NewRepositoryFromFile(path, nil)
	if err != nil {
		t.Fatalf("NewRepositoryFromFile failed: %v", err)
	}
	if err := s.Put(&storage.SiteProfile{Site: "example.com", Length: 20}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewRepositoryFromFile(path, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get("example.com")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got.Length != 20 {
		t.Errorf("expected length 20, got %d", got.Length)
	}
}
