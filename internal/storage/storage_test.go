package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adires/htma-shows/internal/show"
)

func testShow(t *testing.T, title string) show.Show {
	t.Helper()
	date, err := show.NewDate(2025, time.March, 1)
	if err != nil {
		t.Fatalf("NewDate failed: %v", err)
	}
	return show.Show{
		Title:    title,
		Date:     date,
		Time:     show.TimeOfDay{Hour: 19},
		Category: show.CategoryComedy,
	}
}

func TestLoadMissingSnapshotReturnsEmpty(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	snap, err := store.LoadSnapshot("comedy")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(snap.Shows) != 0 {
		t.Errorf("expected empty snapshot, got %d shows", len(snap.Shows))
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	a := testShow(t, "Show A")
	b := testShow(t, "Show B")

	if err := store.SaveShows([]show.Show{a, b}, "comedy"); err != nil {
		t.Fatalf("SaveShows failed: %v", err)
	}

	snap, err := store.LoadSnapshot("comedy")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if len(snap.Shows) != 2 {
		t.Fatalf("expected 2 shows, got %d", len(snap.Shows))
	}
	if got, ok := snap.Shows[a.Key()]; !ok || got != a {
		t.Errorf("Show A did not survive the round trip: %+v", got)
	}
	if snap.UpdatedAt == "" {
		t.Error("expected UpdatedAt to be stamped")
	}
}

func TestSnapshotScopes(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := store.SaveShows([]show.Show{testShow(t, "A")}, "comedy"); err != nil {
		t.Fatalf("SaveShows failed: %v", err)
	}
	if err := store.SaveShows([]show.Show{testShow(t, "B")}, ScopeAll); err != nil {
		t.Fatalf("SaveShows failed: %v", err)
	}

	for _, name := range []string{"snapshot_comedy.json", "snapshot.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestLoadCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "snapshot_music.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	if _, err := store.LoadSnapshot("music"); err == nil {
		t.Error("expected error for corrupt snapshot")
	}
}
