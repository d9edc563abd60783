package scraper

import "github.com/adires/htma-shows/internal/show"

// DefaultBaseURL is the venue's ticketing site.
const DefaultBaseURL = "https://htma.smarticket.co.il"

// categoryPaths maps each category to its listing page path. The segments are
// percent-encoded Hebrew section names, tied to the site's current routing.
var categoryPaths = map[show.Category]string{
	show.CategoryComedy:  "/%D7%91%D7%99%D7%93%D7%95%D7%A8",         // בידור
	show.CategoryMusic:   "/%D7%9E%D7%95%D7%A1%D7%99%D7%A7%D7%94",   // מוסיקה
	show.CategoryTheater: "/%D7%AA%D7%99%D7%90%D7%98%D7%A8%D7%95%D7%9F", // תיאטרון
	show.CategoryKids:    "/%D7%99%D7%9C%D7%93%D7%99%D7%9D",         // ילדים
}

// CategoryPath returns the listing page path for a category. Total over the
// enumeration: categories without a dedicated section resolve to the root
// listing.
func CategoryPath(cat show.Category) string {
	if path, ok := categoryPaths[cat]; ok {
		return path
	}
	return "/"
}

// CategoryURL returns the full listing page URL for a category on the
// default site.
func CategoryURL(cat show.Category) string {
	return DefaultBaseURL + CategoryPath(cat)
}
