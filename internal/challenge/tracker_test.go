package challenge

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/carlamendes/bloom/internal/models"
	"github.com/carlamendes/bloom/internal/storage"
)

func setupTestTracker(t *testing.T) *Tracker {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "bloom.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}

	return NewTracker(store)
}

func TestList_DefaultSequence(t *testing.T) {
	tr := setupTestTracker(t)

	sequence := tr.List()
	if len(sequence) != 30 {
		t.Fatalf("sequence has %d entries, want 30", len(sequence))
	}
	for i, d := range sequence {
		if d.Day != i+1 {
			t.Errorf("entry %d has day number %d, want %d", i, d.Day, i+1)
		}
		if d.Completed {
			t.Errorf("day %d starts completed", d.Day)
		}
	}
}

func TestToggle_Involution(t *testing.T) {
	tr := setupTestTracker(t)

	// Put some unrelated days into a completed state first.
	if _, err := tr.Toggle(3); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Toggle(12); err != nil {
		t.Fatal(err)
	}

	before := tr.List()

	updated, err := tr.Toggle(7)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !dayCompleted(updated, 7) {
		t.Error("day 7 not completed after first toggle")
	}

	updated, err = tr.Toggle(7)
	if err != nil {
		t.Fatalf("second Toggle failed: %v", err)
	}

	// Two toggles must restore the original state, all days included.
	for i, d := range updated {
		if d.Completed != before[i].Completed {
			t.Errorf("day %d completed = %v after double toggle, want %v", d.Day, d.Completed, before[i].Completed)
		}
	}
}

func TestToggle_UnknownDay(t *testing.T) {
	tr := setupTestTracker(t)

	if _, err := tr.Toggle(31); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("Toggle(31) error = %v, want ErrUnknownDay", err)
	}
	if _, err := tr.Toggle(0); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("Toggle(0) error = %v, want ErrUnknownDay", err)
	}
}

func TestCompletedCount_AnySevenDays(t *testing.T) {
	tr := setupTestTracker(t)

	// Completion count is order-independent: any seven days count as seven.
	for _, day := range []int{2, 5, 9, 14, 21, 28, 30} {
		if _, err := tr.Toggle(day); err != nil {
			t.Fatal(err)
		}
	}

	if got := CompletedCount(tr.List()); got != 7 {
		t.Errorf("CompletedCount = %d, want 7", got)
	}
}

func dayCompleted(sequence []models.ChallengeDay, day int) bool {
	for _, d := range sequence {
		if d.Day == day {
			return d.Completed
		}
	}
	return false
}

func TestMotivation_DrawsFromCatalog(t *testing.T) {
	known := make(map[string]bool)
	for _, msg := range motivations {
		if msg == "" {
			t.Fatal("empty motivation message in catalog")
		}
		known[msg] = true
	}

	for i := 0; i < 50; i++ {
		if msg := Motivation(); !known[msg] {
			t.Fatalf("Motivation() returned %q, not in the catalog", msg)
		}
	}
}
