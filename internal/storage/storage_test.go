package storage

import (
	"testing"
	"time"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPreferencesRoundTrip(t *testing.T) {
	store := openTestStorage(t)

	prefs, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if prefs.LastScene != "sudoku" {
		t.Errorf("default scene = %q, want sudoku", prefs.LastScene)
	}

	prefs.Seed = 42
	prefs.LastScene = "loops"
	prefs.AutoStep = false
	if err := store.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}

	loaded, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if loaded.Seed != 42 || loaded.LastScene != "loops" || loaded.AutoStep {
		t.Errorf("loaded preferences %+v do not match saved", loaded)
	}
}

func TestRecordRun(t *testing.T) {
	store := openTestStorage(t)

	runs := []RunResult{
		{Scene: "sudoku", Solved: true, Steps: 12, Duration: time.Second},
		{Scene: "loops", Solved: true, Steps: 40, Duration: 2 * time.Second},
		{Scene: "sudoku", Solved: false, Steps: 7, Duration: time.Second},
	}
	for _, run := range runs {
		if err := store.RecordRun(run); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	stats, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.Runs != 3 || stats.Solved != 2 || stats.Unsolved != 1 {
		t.Errorf("counters = %d/%d/%d, want 3/2/1", stats.Runs, stats.Solved, stats.Unsolved)
	}
	if stats.RunsByScene["sudoku"] != 2 || stats.SolvedByScene["sudoku"] != 1 {
		t.Errorf("sudoku counters = %d/%d, want 2/1", stats.RunsByScene["sudoku"], stats.SolvedByScene["sudoku"])
	}
	if stats.TotalTime != 4*time.Second {
		t.Errorf("total time = %v, want 4s", stats.TotalTime)
	}
	if stats.TotalSteps != 59 {
		t.Errorf("total steps = %d, want 59", stats.TotalSteps)
	}
	if stats.LongestStreak != 2 || stats.CurrentStreak != 0 {
		t.Errorf("streaks = %d/%d, want 2/0", stats.LongestStreak, stats.CurrentStreak)
	}
	if rate := stats.SolveRate(); rate < 66 || rate > 67 {
		t.Errorf("solve rate = %f, want ~66.7", rate)
	}
}

func TestLoadStatsEmpty(t *testing.T) {
	store := openTestStorage(t)

	stats, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.Runs != 0 || stats.SolveRate() != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}
