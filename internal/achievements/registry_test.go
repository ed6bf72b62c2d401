package achievements

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/carlamendes/bloom/internal/storage"
)

func setupTestRegistry(t *testing.T) *Registry {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "bloom.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}

	return NewRegistry(store)
}

func TestList_DefaultCatalog(t *testing.T) {
	r := setupTestRegistry(t)

	catalog := r.List()
	if len(catalog) != 6 {
		t.Fatalf("catalog has %d entries, want 6", len(catalog))
	}
	for _, a := range catalog {
		if a.Unlocked() {
			t.Errorf("achievement %q starts unlocked", a.ID)
		}
	}
}

func TestUnlock_Idempotent(t *testing.T) {
	r := setupTestRegistry(t)
	first := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	second := time.Date(2025, 3, 5, 18, 30, 0, 0, time.UTC)

	unlocked, err := r.Unlock(IDHydrated, first)
	if err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if !unlocked {
		t.Fatal("first Unlock returned false, want true")
	}

	a, ok := r.Find(IDHydrated)
	if !ok || !a.Unlocked() {
		t.Fatal("achievement not unlocked after first call")
	}
	firstStamp := *a.UnlockedAt

	// Second unlock is a no-op and must not touch the timestamp.
	unlocked, err = r.Unlock(IDHydrated, second)
	if err != nil {
		t.Fatalf("second Unlock failed: %v", err)
	}
	if unlocked {
		t.Error("second Unlock returned true, want false")
	}

	a, _ = r.Find(IDHydrated)
	if *a.UnlockedAt != firstStamp {
		t.Errorf("timestamp changed from %s to %s on repeat unlock", firstStamp, *a.UnlockedAt)
	}
}

func TestUnlock_UnknownID(t *testing.T) {
	r := setupTestRegistry(t)

	unlocked, err := r.Unlock("999", time.Now())
	if err != nil {
		t.Fatalf("Unlock returned error for unknown id: %v", err)
	}
	if unlocked {
		t.Error("Unlock of unknown id returned true, want false")
	}
}

func TestUnlock_OtherEntriesUntouched(t *testing.T) {
	r := setupTestRegistry(t)

	if _, err := r.Unlock(IDFirstStep, time.Now()); err != nil {
		t.Fatal(err)
	}

	for _, a := range r.List() {
		if a.ID == IDFirstStep {
			continue
		}
		if a.Unlocked() {
			t.Errorf("achievement %q unlocked as a side effect", a.ID)
		}
	}
}
