package show

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, year int, month time.Month, day int) Date {
	t.Helper()
	d, err := NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate failed: %v", err)
	}
	return d
}

func TestDiffFindsNewShows(t *testing.T) {
	existing := Show{
		Title:    "Show A",
		Date:     mustDate(t, 2025, time.March, 1),
		Time:     TimeOfDay{Hour: 19},
		Category: CategoryComedy,
	}
	added := Show{
		Title:    "Show B",
		Date:     mustDate(t, 2025, time.March, 2),
		Time:     TimeOfDay{Hour: 21},
		Category: CategoryComedy,
	}

	previous := CreateSnapshot([]Show{existing}, "2025-01-01T00:00:00Z")
	result := Diff(previous, []Show{existing, added})

	if len(result.NewShows) != 1 {
		t.Fatalf("expected 1 new show, got %d", len(result.NewShows))
	}
	if result.NewShows[0].Title != "Show B" {
		t.Errorf("expected Show B, got %s", result.NewShows[0].Title)
	}
	if len(result.ByCategory[CategoryComedy]) != 1 {
		t.Errorf("expected 1 new comedy show, got %d", len(result.ByCategory[CategoryComedy]))
	}
}

func TestDiffNilPreviousReportsEverything(t *testing.T) {
	shows := []Show{
		{Title: "B", Date: mustDate(t, 2025, time.May, 2), Category: CategoryMusic},
		{Title: "A", Date: mustDate(t, 2025, time.May, 1), Category: CategoryMusic},
	}

	result := Diff(nil, shows)

	if len(result.NewShows) != 2 {
		t.Fatalf("expected 2 new shows, got %d", len(result.NewShows))
	}
	// Sorted by date.
	if result.NewShows[0].Title != "A" || result.NewShows[1].Title != "B" {
		t.Errorf("expected date order A, B; got %s, %s", result.NewShows[0].Title, result.NewShows[1].Title)
	}
}

func TestDiffNoChanges(t *testing.T) {
	s := Show{Title: "A", Date: mustDate(t, 2025, time.May, 1), Category: CategoryTheater}
	previous := CreateSnapshot([]Show{s}, "2025-01-01T00:00:00Z")

	result := Diff(previous, []Show{s})

	if len(result.NewShows) != 0 {
		t.Errorf("expected no new shows, got %d", len(result.NewShows))
	}
}
