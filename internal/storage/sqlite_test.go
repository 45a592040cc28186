package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	scores := []struct{ score, wave int }{
		{100, 2},
		{350, 4},
		{50, 1},
		{200, 3},
	}
	for _, s := range scores {
		if _, err := store.SaveScore(s.score, s.wave); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	top, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("TopScores returned %d entries, expected 3", len(top))
	}
	if top[0].Score != 350 || top[1].Score != 200 || top[2].Score != 100 {
		t.Errorf("Scores not ordered descending: %d, %d, %d",
			top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].Wave != 4 {
		t.Errorf("Wave = %d, expected 4", top[0].Wave)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty store has no high score
	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Empty store high score = %d, expected 0", hs)
	}

	store.SaveScore(120, 2)
	store.SaveScore(80, 1)

	hs, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if hs != 120 {
		t.Errorf("High score = %d, expected 120", hs)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, 1)
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}

	top, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Cleared store should be empty, got %d entries", len(top))
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, 2)
	store.SaveScore(300, 5)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.BestWave != 5 {
		t.Errorf("BestWave = %d, expected 5", stats.BestWave)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open should create parent directories: %v", err)
	}
	store.Close()
}
