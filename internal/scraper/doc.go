// Package scraper provides HTTP fetching and HTML parsing for HTMA show listings.
//
// The scraper package resolves a show category to its listing page on
// htma.smarticket.co.il, fetches the page, and extracts show cards into
// structured records. Extraction is best-effort per card: a malformed card is
// skipped and reported, never aborting the rest of the page. Transport and
// document-level parse failures abort the whole category and surface as typed
// errors.
package scraper
