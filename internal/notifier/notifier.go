package notifier

import (
	"fmt"

	"github.com/adires/htma-shows/internal/scraper"
	"github.com/adires/htma-shows/internal/show"
)

// Notifier defines the interface for posting show announcements.
type Notifier interface {
	// Notify posts announcements for the given shows.
	Notify(shows []show.Show) error
}

// maxPostLength is Twitter's character limit.
const maxPostLength = 280

// formatPost formats a show announcement.
func formatPost(s show.Show) string {
	post := "🎭 New show at HTMA!\n\n"
	post += fmt.Sprintf("%s\n", s.Title)
	post += fmt.Sprintf("📅 %s at %s\n", s.Date, s.Time)
	post += fmt.Sprintf("\n🎟 Tickets: %s\n", scraper.CategoryURL(s.Category))
	post += "\n#HTMA #" + s.Category.String()

	// Truncate on rune boundaries so Hebrew titles are never cut mid-character.
	runes := []rune(post)
	if len(runes) > maxPostLength {
		post = string(runes[:maxPostLength-3]) + "..."
	}

	return post
}
