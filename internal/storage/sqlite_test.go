package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int64{100, 50, 200} {
		if _, err := store.SaveScore(score, ""); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", score, err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(int64((i+1)*100), "")
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreSeedRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(42, "deadbeef"); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(7, ""); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[0].Seed != "deadbeef" {
		t.Errorf("Expected seed 'deadbeef', got %q", scores[0].Seed)
	}
	if scores[1].Seed != "" {
		t.Errorf("Expected empty seed, got %q", scores[1].Seed)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveScore(100, "")
	store.SaveScore(300, "")
	store.SaveScore(200, "")

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBestToday(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestToday()
	if err != nil {
		t.Fatalf("BestToday() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected today's best of 0 for empty table, got %d", best)
	}

	// Freshly inserted rows are stamped now, so they count as today.
	store.SaveScore(150, "")
	store.SaveScore(90, "")

	best, err = store.BestToday()
	if err != nil {
		t.Fatalf("BestToday() failed: %v", err)
	}
	if best != 150 {
		t.Errorf("Expected today's best of 150, got %d", best)
	}

	// Backdate a higher score to yesterday; it must not count.
	if _, err := store.db.Exec(
		"INSERT INTO scores (score, seed, created_at) VALUES (?, '', datetime('now', '-2 days'))",
		999,
	); err != nil {
		t.Fatalf("cannot insert backdated score: %v", err)
	}

	best, err = store.BestToday()
	if err != nil {
		t.Fatalf("BestToday() failed: %v", err)
	}
	if best != 150 {
		t.Errorf("Backdated score leaked into today's best: got %d", best)
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 999 {
		t.Errorf("All-time high should include backdated score, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, "")
	store.SaveScore(200, "")

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}
