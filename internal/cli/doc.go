// Package cli implements the command-line interface for htma-shows.
//
// The cli package provides the Cobra-based CLI for fetching a category's
// listing (or all of them), formatting output (text/JSON/table), sorting,
// exporting an ICS file, and reporting only newly listed shows via snapshot
// diffing.
package cli
