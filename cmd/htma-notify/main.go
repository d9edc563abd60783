// Command htma-notify fetches the HTMA listings, diffs them against the last
// snapshot and announces newly listed shows. Intended to run on a schedule.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adires/htma-shows/internal/config"
	"github.com/adires/htma-shows/internal/logger"
	"github.com/adires/htma-shows/internal/notifier"
	"github.com/adires/htma-shows/internal/scraper"
	"github.com/adires/htma-shows/internal/show"
	"github.com/adires/htma-shows/internal/storage"
)

var (
	configPath = flag.String("config", "", "Path to YAML config file")
	dryRun     = flag.Bool("dry-run", false, "Print posts without publishing")
	maxPosts   = flag.Int("max-posts", 10, "Maximum number of posts to publish")
	category   = flag.String("category", "all", "Only announce shows in this category")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	opts, err := cfg.ScraperOptions()
	if err != nil {
		return err
	}
	sc := scraper.New(opts...)

	ctx := context.Background()
	extractions, err := sc.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetching listings: %w", err)
	}

	shows := make([]show.Show, 0)
	for _, ext := range extractions {
		shows = append(shows, ext.Shows...)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	previous, err := store.LoadSnapshot(storage.ScopeAll)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	diff := show.Diff(previous, shows)
	if err := store.SaveShows(shows, storage.ScopeAll); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	newShows := diff.NewShows
	if *category != "all" {
		cat, err := show.ParseCategory(*category)
		if err != nil {
			return err
		}
		newShows = diff.ByCategory[cat]
	}

	if len(newShows) > *maxPosts {
		newShows = newShows[:*maxPosts]
	}

	if len(newShows) == 0 {
		fmt.Println("No new shows to announce")
		return nil
	}

	var n notifier.Notifier
	if *dryRun {
		n = notifier.NewDryRunNotifier()
		fmt.Printf("DRY RUN MODE - Would announce %d shows:\n\n", len(newShows))
	} else {
		tw, err := notifier.NewTwitterNotifier()
		if err != nil {
			return fmt.Errorf("initializing Twitter client: %w", err)
		}
		n = tw
	}

	if err := n.Notify(newShows); err != nil {
		return fmt.Errorf("posting announcements: %w", err)
	}

	logger.Info("announced new shows", logger.Fields{"count": len(newShows), "dry_run": *dryRun})
	return nil
}
