package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/adires/htma-shows/internal/calendar"
	"github.com/adires/htma-shows/internal/config"
	"github.com/adires/htma-shows/internal/logger"
	"github.com/adires/htma-shows/internal/scraper"
	"github.com/adires/htma-shows/internal/show"
	"github.com/adires/htma-shows/internal/storage"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNewShows = 2
)

var (
	flagCategory string
	flagConfig   string
	flagDataDir  string
	flagFormat   string
	flagSort     string
	flagNewOnly  bool
	flagICSFile  string
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "htma-shows",
		Short: "List shows from the HTMA venue",
		Long: `A CLI tool that scrapes the HTMA venue's listing pages and prints the
upcoming shows per category. With --new-only it tracks shows across runs
and reports only the ones added since the last check.`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&flagCategory, "category", "all", "Category name (comedy, music, theater, kids) or 'all'")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Data directory for snapshots (overrides config)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json or table")
	cmd.Flags().StringVar(&flagSort, "sort", "date", "Sort order: date or title")
	cmd.Flags().BoolVar(&flagNewOnly, "new-only", false, "Only report shows added since the last run")
	cmd.Flags().StringVar(&flagICSFile, "ics", "", "Write the shows to an iCalendar file")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runList is the main command logic
func runList(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON && format != FormatTable {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'table')", flagFormat)
	}

	sortOrder := SortOrder(strings.ToLower(flagSort))
	if sortOrder != SortByDate && sortOrder != SortByTitle {
		return fmt.Errorf("invalid sort order: %s (must be 'date' or 'title')", flagSort)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	opts, err := cfg.ScraperOptions()
	if err != nil {
		return err
	}
	sc := scraper.New(opts...)

	scope := strings.ToLower(strings.TrimSpace(flagCategory))
	extractions, err := fetch(cmd, sc, scope)
	if err != nil {
		return err
	}

	shows := make([]show.Show, 0)
	skipped := 0
	categories := make([]string, 0, len(extractions))
	for _, ext := range extractions {
		shows = append(shows, ext.Shows...)
		skipped += len(ext.Skips)
		categories = append(categories, ext.Category.String())
		for _, skip := range ext.Skips {
			logger.Warn("skipped show card", logger.Fields{
				"category": ext.Category.String(),
				"card":     skip.Index,
				"field":    skip.Field,
				"reason":   skip.Reason,
			})
		}
	}

	result := &OutputResult{
		FetchedAt:  time.Now().UTC(),
		Categories: categories,
		Shows:      shows,
		ShowCount:  len(shows),
		Skipped:    skipped,
		NewOnly:    flagNewOnly,
	}

	if flagNewOnly {
		store, err := storage.New(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}
		previous, err := store.LoadSnapshot(scope)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		diff := show.Diff(previous, shows)
		if err := store.SaveShows(shows, scope); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		logger.Debug("snapshot diff", logger.Fields{
			"previous": len(previous.Shows),
			"current":  len(shows),
			"new":      len(diff.NewShows),
		})
		result.Shows = diff.NewShows
		result.ShowCount = len(diff.NewShows)
	}

	sortShows(result.Shows, sortOrder)

	if flagICSFile != "" {
		ics := calendar.GenerateICS(result.Shows)
		if err := os.WriteFile(flagICSFile, []byte(ics), 0644); err != nil {
			return fmt.Errorf("writing ICS file: %w", err)
		}
		logger.Info("wrote calendar", logger.Fields{"path": flagICSFile, "shows": result.ShowCount})
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagNewOnly && result.ShowCount > 0 {
		os.Exit(ExitNewShows)
	}
	return nil
}

// fetch resolves the category flag and fetches one or all listing pages.
func fetch(cmd *cobra.Command, sc *scraper.Scraper, scope string) ([]*scraper.Extraction, error) {
	ctx := cmd.Context()

	if scope == "" || scope == storage.ScopeAll {
		logger.Debug("fetching all categories", nil)
		return sc.FetchAll(ctx)
	}

	cat, err := show.ParseCategory(scope)
	if err != nil {
		return nil, err
	}
	logger.Debug("fetching category", logger.Fields{"category": cat.String(), "url": sc.URL(cat)})
	ext, err := sc.FetchShows(ctx, cat)
	if err != nil {
		return nil, err
	}
	return []*scraper.Extraction{ext}, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
