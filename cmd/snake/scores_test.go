package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRuns(t *testing.T, store *storage.Store, gameID string, scores ...int) []storage.ScoreEntry {
	t.Helper()
	var entries []storage.ScoreEntry
	for _, score := range scores {
		entry, err := store.SaveRun(storage.Run{GameID: gameID, Player: "alice", Score: score, Length: score + 3})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestPrintScoresLimit(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store, "snake", 5, 40, 12, 7)

	tests := []struct {
		name  string
		limit int
		rows  int
	}{
		{"top two", 2, 2},
		{"limit above count", 10, 4},
		{"all", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printScores(&buf, store, "snake", tt.limit); err != nil {
				t.Fatalf("printScores() failed: %v", err)
			}
			out := buf.String()
			if got := strings.Count(out, "alice"); got != tt.rows {
				t.Errorf("rows = %d, want %d\n%s", got, tt.rows, out)
			}
			if !strings.Contains(out, "  1     alice         40") {
				t.Errorf("best run should rank first:\n%s", out)
			}
			if !strings.Contains(out, "Runs: 4") {
				t.Errorf("stats line missing:\n%s", out)
			}
		})
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := printScores(&buf, store, "snake_sampled", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestPrintRun(t *testing.T) {
	store := openTestStore(t)
	entries := saveRuns(t, store, "snake_sampled", 9)

	var buf bytes.Buffer
	if err := printRun(&buf, store, entries[0].RunID); err != nil {
		t.Fatalf("printRun() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{entries[0].RunID, "snake_sampled", "alice", "Score   9", "Length  12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if err := printRun(&buf, store, "no-such-run"); err == nil {
		t.Error("printRun() should fail for an unknown run id")
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store, "snake", 1, 2)
	saveRuns(t, store, "snake_sampled", 3)

	var buf bytes.Buffer
	if err := clearScores(&buf, store, "snake"); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Cleared all scores for snake") {
		t.Errorf("unexpected output: %q", buf.String())
	}

	if left, _ := store.AllScores("snake"); len(left) != 0 {
		t.Errorf("snake scores left = %d, want 0", len(left))
	}
	if other, _ := store.AllScores("snake_sampled"); len(other) != 1 {
		t.Errorf("snake_sampled scores = %d, want 1", len(other))
	}
}
