package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/carlamendes/bloom/internal/achievements"
	"github.com/carlamendes/bloom/internal/constants"
	"github.com/carlamendes/bloom/internal/storage"
)

func setupTestApp(t *testing.T) *App {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "bloom.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}

	a := New(store)
	if _, err := a.Ledger.Create("Ana", "More energy", testNow()); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return a
}

func testNow() time.Time {
	return time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
}

func TestAddWater(t *testing.T) {
	t.Run("accumulates and awards", func(t *testing.T) {
		a := setupTestApp(t)

		res, daily, err := a.AddWater(200, testNow())
		if err != nil {
			t.Fatalf("AddWater failed: %v", err)
		}
		if daily.WaterML != 200 {
			t.Errorf("water = %d, want 200", daily.WaterML)
		}
		if !res.Awarded || res.Award.Amount != constants.XPWater {
			t.Errorf("award = %+v, want %d XP", res.Award, constants.XPWater)
		}
		if res.Unlocked != nil {
			t.Errorf("unlocked %q below the goal", res.Unlocked.ID)
		}
	})

	t.Run("reaching goal unlocks hydration once", func(t *testing.T) {
		a := setupTestApp(t)

		for i := 0; i < 3; i++ {
			if _, _, err := a.AddWater(500, testNow()); err != nil {
				t.Fatal(err)
			}
		}

		res, daily, err := a.AddWater(500, testNow())
		if err != nil {
			t.Fatal(err)
		}
		if daily.WaterML != 2000 {
			t.Fatalf("water = %d, want 2000", daily.WaterML)
		}
		if res.Unlocked == nil || res.Unlocked.ID != achievements.IDHydrated {
			t.Errorf("crossing goal unlocked %v, want hydration", res.Unlocked)
		}

		// Further water keeps the counter growing but celebrates nothing.
		res, _, err = a.AddWater(200, testNow())
		if err != nil {
			t.Fatal(err)
		}
		if res.Unlocked != nil {
			t.Errorf("repeat goal crossing unlocked %q again", res.Unlocked.ID)
		}
	})
}

func TestToggleWorkout(t *testing.T) {
	t.Run("completing awards and mirrors count", func(t *testing.T) {
		a := setupTestApp(t)

		res, workouts, err := a.ToggleWorkout("1", testNow())
		if err != nil {
			t.Fatalf("ToggleWorkout failed: %v", err)
		}
		if !workouts[0].Completed {
			t.Error("workout 1 not completed after toggle")
		}
		if !res.Awarded || res.Award.Amount != constants.XPWorkout {
			t.Errorf("award = %+v, want %d XP", res.Award, constants.XPWorkout)
		}

		if got := a.Stats.Stats(testNow()).WorkoutsCompleted; got != 1 {
			t.Errorf("workoutsCompleted = %d, want 1", got)
		}
	})

	t.Run("unchecking awards nothing and keeps experience", func(t *testing.T) {
		a := setupTestApp(t)

		if _, _, err := a.ToggleWorkout("1", testNow()); err != nil {
			t.Fatal(err)
		}
		xpAfterComplete, err := a.Ledger.Get()
		if err != nil {
			t.Fatal(err)
		}

		res, _, err := a.ToggleWorkout("1", testNow())
		if err != nil {
			t.Fatal(err)
		}
		if res.Awarded {
			t.Error("unchecking a workout awarded experience")
		}

		user, err := a.Ledger.Get()
		if err != nil {
			t.Fatal(err)
		}
		if user.XP != xpAfterComplete.XP {
			t.Errorf("xp changed from %d to %d on uncheck", xpAfterComplete.XP, user.XP)
		}
		if got := a.Stats.Stats(testNow()).WorkoutsCompleted; got != 0 {
			t.Errorf("workoutsCompleted = %d, want 0", got)
		}
	})

	t.Run("completing every workout unlocks first step", func(t *testing.T) {
		a := setupTestApp(t)

		var last Result
		for _, id := range []string{"1", "2", "3", "4"} {
			res, _, err := a.ToggleWorkout(id, testNow())
			if err != nil {
				t.Fatal(err)
			}
			last = res
		}

		if last.Unlocked == nil || last.Unlocked.ID != achievements.IDFirstStep {
			t.Errorf("completing all workouts unlocked %v, want first step", last.Unlocked)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		a := setupTestApp(t)

		res, _, err := a.ToggleWorkout("missing", testNow())
		if err != nil {
			t.Fatalf("ToggleWorkout returned error for unknown id: %v", err)
		}
		if res.Awarded {
			t.Error("unknown workout id awarded experience")
		}
	})
}

func TestToggleChallenge(t *testing.T) {
	t.Run("completing awards challenge experience", func(t *testing.T) {
		a := setupTestApp(t)

		res, _, err := a.ToggleChallenge(1, testNow())
		if err != nil {
			t.Fatalf("ToggleChallenge failed: %v", err)
		}
		if !res.Awarded || res.Award.Amount != constants.XPChallenge {
			t.Errorf("award = %+v, want %d XP", res.Award, constants.XPChallenge)
		}
	})

	t.Run("toggling off never revokes", func(t *testing.T) {
		a := setupTestApp(t)

		if _, _, err := a.ToggleChallenge(1, testNow()); err != nil {
			t.Fatal(err)
		}
		before, err := a.Ledger.Get()
		if err != nil {
			t.Fatal(err)
		}

		res, _, err := a.ToggleChallenge(1, testNow())
		if err != nil {
			t.Fatal(err)
		}
		if res.Awarded {
			t.Error("toggling a day off awarded experience")
		}

		after, err := a.Ledger.Get()
		if err != nil {
			t.Fatal(err)
		}
		if after.XP != before.XP {
			t.Errorf("xp changed from %d to %d on toggle off", before.XP, after.XP)
		}
	})

	t.Run("seventh completed day fires golden week, any seven days", func(t *testing.T) {
		a := setupTestApp(t)

		days := []int{3, 8, 11, 17, 22, 26}
		for _, d := range days {
			res, _, err := a.ToggleChallenge(d, testNow())
			if err != nil {
				t.Fatal(err)
			}
			if res.Unlocked != nil {
				t.Errorf("milestone fired at %d completed days", d)
			}
		}

		res, _, err := a.ToggleChallenge(30, testNow())
		if err != nil {
			t.Fatal(err)
		}
		if res.Unlocked == nil || res.Unlocked.ID != achievements.IDWeekOne {
			t.Errorf("seventh day unlocked %v, want golden week", res.Unlocked)
		}
	})

	t.Run("milestone does not refire after dipping below", func(t *testing.T) {
		a := setupTestApp(t)

		for _, d := range []int{1, 2, 3, 4, 5, 6, 7} {
			if _, _, err := a.ToggleChallenge(d, testNow()); err != nil {
				t.Fatal(err)
			}
		}

		// Drop to six and come back to seven.
		if _, _, err := a.ToggleChallenge(7, testNow()); err != nil {
			t.Fatal(err)
		}
		res, _, err := a.ToggleChallenge(7, testNow())
		if err != nil {
			t.Fatal(err)
		}
		if res.Unlocked != nil {
			t.Errorf("returning to seven days unlocked %q again", res.Unlocked.ID)
		}
	})
}

func TestLogMood(t *testing.T) {
	a := setupTestApp(t)

	res, err := a.LogMood("😌", "calm", "", testNow())
	if err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}
	if !res.Awarded || res.Award.Amount != constants.XPMood {
		t.Errorf("award = %+v, want %d XP", res.Award, constants.XPMood)
	}
	if res.Unlocked == nil || res.Unlocked.ID != achievements.IDMindful {
		t.Errorf("first mood unlocked %v, want mindful", res.Unlocked)
	}

	if got := a.Stats.Stats(testNow()).Mood; got != "calm" {
		t.Errorf("today's mood = %q, want calm", got)
	}
	if got := len(a.Journal.Moods()); got != 1 {
		t.Errorf("mood log has %d entries, want 1", got)
	}

	// Latest mood label wins for the day; the log keeps both.
	if _, err := a.LogMood("😴", "tired", "", testNow()); err != nil {
		t.Fatal(err)
	}
	if got := a.Stats.Stats(testNow()).Mood; got != "tired" {
		t.Errorf("today's mood = %q, want tired", got)
	}
	if got := len(a.Journal.Moods()); got != 2 {
		t.Errorf("mood log has %d entries, want 2", got)
	}
}

func TestAddMeal(t *testing.T) {
	a := setupTestApp(t)

	res, err := a.AddMeal("snack", "Mixed nuts", testNow())
	if err != nil {
		t.Fatalf("AddMeal failed: %v", err)
	}
	if !res.Awarded || res.Award.Amount != constants.XPMeal {
		t.Errorf("award = %+v, want %d XP", res.Award, constants.XPMeal)
	}
	if got := a.Stats.Stats(testNow()).MealsLogged; got != 1 {
		t.Errorf("mealsLogged = %d, want 1", got)
	}
}

func TestSavePhoto(t *testing.T) {
	a := setupTestApp(t)

	res, err := a.SavePhoto("ZmFrZS1pbWFnZQ==", testNow())
	if err != nil {
		t.Fatalf("SavePhoto failed: %v", err)
	}
	if !res.Awarded || res.Award.Amount != constants.XPPhoto {
		t.Errorf("award = %+v, want %d XP", res.Award, constants.XPPhoto)
	}
	if got := len(a.Journal.Progress()); got != 1 {
		t.Errorf("progress log has %d entries, want 1", got)
	}
}

func TestQuietMinute(t *testing.T) {
	a := setupTestApp(t)

	res, err := a.QuietMinute(testNow())
	if err != nil {
		t.Fatalf("QuietMinute failed: %v", err)
	}
	if !res.Awarded || res.Award.Amount != constants.XPRitual {
		t.Errorf("award = %+v, want %d XP", res.Award, constants.XPRitual)
	}
	if a.Stats.Stats(testNow()).LastRitual == nil {
		t.Error("last ritual timestamp not recorded")
	}
}
