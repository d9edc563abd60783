package scraper

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/adires/htma-shows/internal/show"
)

const (
	UserAgent = "htma-shows/1.0 (github.com/adires/htma-shows)"
	Timeout   = 30 * time.Second
)

// Selectors for the site's show card markup. These are a contract with the
// source site's current HTML and break if the site changes.
const (
	selectorCards = "div.category_shows div.details-container"
	selectorTitle = "h2"
	selectorDate  = "div.date_container"
	selectorTime  = "div.time_container"
)

// Extraction is the result of scraping one category page: the successfully
// assembled shows in document order, plus a record per skipped card.
type Extraction struct {
	Category show.Category `json:"category"`
	Shows    []show.Show   `json:"shows"`
	Skips    []Skip        `json:"skips,omitempty"`
}

// Scraper fetches and parses HTMA listing pages.
type Scraper struct {
	client  *resty.Client
	baseURL string
	paths   map[show.Category]string
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithBaseURL overrides the listing site base URL. Used for tests and for
// pointing at an archived copy of the site.
func WithBaseURL(u string) Option {
	return func(s *Scraper) {
		s.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithCategoryPath overrides the listing page path for one category, for
// when the site reshuffles its section routes.
func WithCategoryPath(cat show.Category, path string) Option {
	return func(s *Scraper) {
		s.paths[cat] = path
	}
}

// WithTimeout overrides the fixed request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.client.SetTimeout(d)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *Scraper) {
		s.client.SetHeader("User-Agent", ua)
	}
}

// New creates a Scraper with a fixed timeout and identifying User-Agent.
func New(opts ...Option) *Scraper {
	client := resty.New()
	client.SetTimeout(Timeout)
	client.SetHeader("User-Agent", UserAgent)

	s := &Scraper{
		client:  client,
		baseURL: DefaultBaseURL,
		paths:   make(map[show.Category]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the listing page URL the scraper will fetch for a category.
func (s *Scraper) URL(cat show.Category) string {
	if path, ok := s.paths[cat]; ok {
		return s.baseURL + path
	}
	return s.baseURL + CategoryPath(cat)
}

// FetchShows fetches one category's listing page and extracts its shows.
// A failed fetch returns a *TransportError, an unparseable body a
// *ParseError; both abort the category with no partial results.
func (s *Scraper) FetchShows(ctx context.Context, cat show.Category) (*Extraction, error) {
	url := s.URL(cat)

	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &TransportError{URL: url, Status: resp.StatusCode()}
	}

	return s.extract(bytes.NewReader(resp.Body()), cat, url)
}

// FetchAll fetches every category with a dedicated listing page, in enum
// order. The first fatal error aborts the run; categories are independent so
// results for already-fetched categories would be identical on a retry.
func (s *Scraper) FetchAll(ctx context.Context) ([]*Extraction, error) {
	extractions := make([]*Extraction, 0, len(show.Categories()))
	for _, cat := range show.Categories() {
		ext, err := s.FetchShows(ctx, cat)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, ext)
	}
	return extractions, nil
}

// extract parses the page body and walks the show cards in document order.
// The category is threaded through because it is not re-derivable from the
// card markup itself.
func (s *Scraper) extract(r io.Reader, cat show.Category, sourceURL string) (*Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{URL: sourceURL, Err: err}
	}

	ext := &Extraction{
		Category: cat,
		Shows:    make([]show.Show, 0),
	}

	doc.Find(selectorCards).Each(func(i int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find(selectorTitle).First().Text())
		if title == "" {
			ext.skip(i, "title", "missing or empty title")
			return
		}

		dateText := strings.TrimSpace(card.Find(selectorDate).First().Text())
		if dateText == "" {
			ext.skip(i, "date", "missing date container")
			return
		}
		date, err := show.ParseDate(dateText)
		if err != nil {
			ext.skip(i, "date", err.Error())
			return
		}

		timeText := strings.TrimSpace(card.Find(selectorTime).First().Text())
		if timeText == "" {
			ext.skip(i, "time", "missing time container")
			return
		}
		tod, err := show.ParseTime(timeText)
		if err != nil {
			ext.skip(i, "time", err.Error())
			return
		}

		ext.Shows = append(ext.Shows, show.Show{
			Title:    title,
			Date:     date,
			Time:     tod,
			Category: cat,
		})
	})

	return ext, nil
}

func (e *Extraction) skip(index int, field, reason string) {
	e.Skips = append(e.Skips, Skip{Index: index, Field: field, Reason: reason})
}
