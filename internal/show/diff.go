package show

import "sort"

// Snapshot is the set of shows seen at a point in time, keyed by Show.Key.
type Snapshot struct {
	Shows     map[string]Show `json:"shows"`
	UpdatedAt string          `json:"updated_at"` // RFC3339
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Shows: make(map[string]Show)}
}

// CreateSnapshot builds a snapshot from a list of shows.
func CreateSnapshot(shows []Show, updatedAt string) *Snapshot {
	snap := NewSnapshot()
	snap.UpdatedAt = updatedAt
	for _, s := range shows {
		snap.Shows[s.Key()] = s
	}
	return snap
}

// DiffResult contains the shows that were not present in a previous snapshot.
type DiffResult struct {
	NewShows   []Show
	ByCategory map[Category][]Show
}

// Diff compares the currently scraped shows against a previous snapshot and
// returns the newly listed ones, sorted by date then title.
func Diff(previous *Snapshot, current []Show) *DiffResult {
	result := &DiffResult{
		NewShows:   make([]Show, 0),
		ByCategory: make(map[Category][]Show),
	}

	if previous == nil {
		previous = NewSnapshot()
	}

	for _, s := range current {
		if _, exists := previous.Shows[s.Key()]; exists {
			continue
		}
		result.NewShows = append(result.NewShows, s)
		result.ByCategory[s.Category] = append(result.ByCategory[s.Category], s)
	}

	sortByDate(result.NewShows)
	for cat := range result.ByCategory {
		sortByDate(result.ByCategory[cat])
	}

	return result
}

func sortByDate(shows []Show) {
	sort.Slice(shows, func(i, j int) bool {
		if shows[i].Date != shows[j].Date {
			return shows[i].Date.Before(shows[j].Date)
		}
		if shows[i].Time != shows[j].Time {
			return shows[i].Time.Hour*60+shows[i].Time.Minute < shows[j].Time.Hour*60+shows[j].Time.Minute
		}
		return shows[i].Title < shows[j].Title
	})
}
