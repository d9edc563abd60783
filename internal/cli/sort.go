package cli

import (
	"sort"
	"strings"

	"github.com/adires/htma-shows/internal/show"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDate  SortOrder = "date"
	SortByTitle SortOrder = "title"
)

// sortShows sorts a slice of shows based on the specified sort order
func sortShows(shows []show.Show, sortOrder SortOrder) {
	switch sortOrder {
	case SortByDate:
		sort.SliceStable(shows, func(i, j int) bool {
			return compareByDate(shows[i], shows[j])
		})
	case SortByTitle:
		sort.SliceStable(shows, func(i, j int) bool {
			a := strings.ToLower(shows[i].Title)
			b := strings.ToLower(shows[j].Title)
			if a != b {
				return a < b
			}
			return compareByDate(shows[i], shows[j])
		})
	}
}

// compareByDate orders shows by date, then time of day, then title.
func compareByDate(a, b show.Show) bool {
	if a.Date != b.Date {
		return a.Date.Before(b.Date)
	}
	if a.Time != b.Time {
		return a.Time.Hour*60+a.Time.Minute < b.Time.Hour*60+b.Time.Minute
	}
	return strings.ToLower(a.Title) < strings.ToLower(b.Title)
}
