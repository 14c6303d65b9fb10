package scraper

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// BaseURL is the front page of the CSE dividend announcements blog.
	BaseURL = "https://cse-dividend-announcements.blogspot.com/"

	// UserAgent mimics a desktop browser; Blogspot serves the classic
	// post layout to browser user agents.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	Timeout = 30 * time.Second
)

// Fetcher retrieves blog pages and parses them into goquery documents.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a default timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// Fetch retrieves url and returns the parsed document. Transport
// errors and non-200 responses are returned as errors; a page that
// simply has no posts is not an error.
func (f *Fetcher) Fetch(url string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}
