// Package show provides the domain types for HTMA venue listings.
//
// The show package defines the closed Category enumeration, the Show record,
// and the normalizer that turns the site's Hebrew-locale date and time strings
// into calendar dates and times of day. It also provides snapshot-based
// diffing so callers can detect shows that appeared since a previous run.
package show
