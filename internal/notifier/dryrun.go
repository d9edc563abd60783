package notifier

import (
	"fmt"

	"github.com/adires/htma-shows/internal/show"
)

// DryRunNotifier prints what would be posted without actually posting.
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier.
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the posts that would be published.
func (n *DryRunNotifier) Notify(shows []show.Show) error {
	for i, s := range shows {
		post := formatPost(s)
		fmt.Printf("--- Post %d/%d ---\n", i+1, len(shows))
		fmt.Println(post)
		fmt.Printf("\n(Length: %d characters)\n\n", len([]rune(post)))
	}
	return nil
}
