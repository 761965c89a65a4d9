package storage

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "skyflap.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "skyflap.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open should create missing parent directories: %v", err)
	}
	store.Close()
}

func TestBestScoreEmpty(t *testing.T) {
	store := testStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore on empty store failed: %v", err)
	}
	if best != 0 {
		t.Errorf("best on empty store = %d, want 0", best)
	}
}

func TestSaveRunAndBestScore(t *testing.T) {
	store := testStore(t)

	for _, score := range []int{3, 17, 9} {
		if _, err := store.SaveRun(score); err != nil {
			t.Fatalf("SaveRun(%d) failed: %v", score, err)
		}
	}

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore failed: %v", err)
	}
	if best != 17 {
		t.Errorf("best = %d, want 17", best)
	}
}

func TestRecordRun(t *testing.T) {
	store := testStore(t)

	// The ScoreRecorder entry point writes through to the same table.
	if err := store.RecordRun(21); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	best, err := store.BestScore()
	if err != nil {
		t.Fatal(err)
	}
	if best != 21 {
		t.Errorf("best after RecordRun = %d, want 21", best)
	}
}

func TestTopRuns(t *testing.T) {
	store := testStore(t)

	for _, score := range []int{5, 30, 12, 30, 1} {
		if _, err := store.SaveRun(score); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("TopRuns(3) returned %d entries", len(runs))
	}
	wantScores := []int{30, 30, 12}
	for i, e := range runs {
		if e.Score != wantScores[i] {
			t.Errorf("runs[%d].Score = %d, want %d", i, e.Score, wantScores[i])
		}
		if e.ID == 0 {
			t.Errorf("runs[%d] has no ID", i)
		}
	}
}

func TestTopRunsDefaultLimit(t *testing.T) {
	store := testStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun(i); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.TopRuns(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 10 {
		t.Errorf("TopRuns(0) should fall back to 10 entries, got %d", len(runs))
	}
}

func TestStats(t *testing.T) {
	store := testStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats on empty store failed: %v", err)
	}
	if empty.RunCount != 0 || empty.BestScore != 0 || empty.TotalScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, score := range []int{4, 8, 12} {
		if _, err := store.SaveRun(score); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.RunCount != 3 {
		t.Errorf("run count = %d, want 3", stats.RunCount)
	}
	if stats.BestScore != 12 {
		t.Errorf("best = %d, want 12", stats.BestScore)
	}
	if stats.AvgScore != 8 {
		t.Errorf("avg = %g, want 8", stats.AvgScore)
	}
	if stats.TotalScore != 24 {
		t.Errorf("total = %d, want 24", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be set after a run")
	}
}

func TestClearRuns(t *testing.T) {
	store := testStore(t)

	if _, err := store.SaveRun(10); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns failed: %v", err)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.RunCount != 0 {
		t.Errorf("run count after clear = %d, want 0", stats.RunCount)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyflap.db")

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(42); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	best, err := reopened.BestScore()
	if err != nil {
		t.Fatal(err)
	}
	if best != 42 {
		t.Errorf("best after reopen = %d, want 42", best)
	}
}
