package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/adires/htma-shows/internal/show"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
)

// OutputResult contains data to be output
type OutputResult struct {
	FetchedAt  time.Time   `json:"fetched_at"`
	Categories []string    `json:"categories"`
	Shows      []show.Show `json:"shows"`
	ShowCount  int         `json:"show_count"`
	Skipped    int         `json:"skipped,omitempty"`
	NewOnly    bool        `json:"new_only,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatTable:
		return writeTable(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	label := "shows"
	if result.NewOnly {
		label = "new shows"
	}

	if result.ShowCount == 0 {
		fmt.Fprintf(w, "No %s found.\n", label)
		return nil
	}

	for _, s := range result.Shows {
		fmt.Fprintf(w, "%s | %s %s | %s\n", s.Title, s.Date, s.Time, s.Category)
	}
	fmt.Fprintf(w, "\nTotal: %d %s", result.ShowCount, label)
	if result.Skipped > 0 {
		fmt.Fprintf(w, " (%d cards skipped)", result.Skipped)
	}
	fmt.Fprintln(w)

	return nil
}

// writeTable outputs results as a rendered table
func writeTable(w io.Writer, result *OutputResult) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Title", "Date", "Time", "Category"})

	for _, s := range result.Shows {
		t.AppendRow(table.Row{s.Title, s.Date.String(), s.Time.String(), s.Category.String()})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	if result.Skipped > 0 {
		fmt.Fprintf(w, "%d cards skipped\n", result.Skipped)
	}
	return nil
}
