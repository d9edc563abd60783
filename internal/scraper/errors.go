package scraper

import "fmt"

// TransportError reports a failed HTTP fetch: a network error or a non-2xx
// status. It aborts extraction for the whole category.
type TransportError struct {
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status code %d", e.URL, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a fetched body that could not be parsed as HTML.
// It aborts extraction for the whole category.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing document from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Skip records a single show card that failed extraction. Skips are collected
// for observability and never abort the batch.
type Skip struct {
	Index  int    `json:"index"`  // card position in document order
	Field  string `json:"field"`  // which field failed: title, date or time
	Reason string `json:"reason"`
}

func (s Skip) String() string {
	return fmt.Sprintf("card %d: %s: %s", s.Index, s.Field, s.Reason)
}
