package show

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"strings"
)

// Category classifies a show by the listing page it came from.
type Category int

const (
	// CategoryOther is the fallback for shows that don't belong to a
	// dedicated listing section.
	CategoryOther Category = iota
	CategoryComedy
	CategoryMusic
	CategoryTheater
	CategoryKids
)

// Categories returns the categories that have their own listing page,
// in the order they should be fetched.
func Categories() []Category {
	return []Category{CategoryComedy, CategoryMusic, CategoryTheater, CategoryKids}
}

func (c Category) String() string {
	switch c {
	case CategoryComedy:
		return "comedy"
	case CategoryMusic:
		return "music"
	case CategoryTheater:
		return "theater"
	case CategoryKids:
		return "kids"
	default:
		return "other"
	}
}

// ParseCategory maps a category name (case-insensitive) to its Category value.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "comedy":
		return CategoryComedy, nil
	case "music":
		return CategoryMusic, nil
	case "theater", "theatre":
		return CategoryTheater, nil
	case "kids":
		return CategoryKids, nil
	case "other":
		return CategoryOther, nil
	default:
		return CategoryOther, fmt.Errorf("unknown category: %q", s)
	}
}

// MarshalJSON encodes the category as its lowercase name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a category from its lowercase name.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseCategory(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Show is one extracted listing. A Show is only constructed once all four
// fields have been extracted and normalized; it is never mutated afterwards.
type Show struct {
	Title    string    `json:"title"`
	Date     Date      `json:"date"`
	Time     TimeOfDay `json:"time"`
	Category Category  `json:"category"`
}

// Key returns a deterministic identifier derived from the show's fields,
// used to match shows across snapshots.
func (s Show) Key() string {
	h := sha1.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", strings.ToLower(strings.TrimSpace(s.Title)), s.Date, s.Time, s.Category)
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (s Show) String() string {
	return fmt.Sprintf("%s — %s %s (%s)", s.Title, s.Date, s.Time, s.Category)
}
