// Package scraper fetches and extracts dividend announcements from the
// CSE dividends Blogspot blog.
//
// The Fetcher retrieves a page and parses it with goquery. Extract
// recovers a structured record from a single post fragment using a set
// of independent label patterns with fallbacks for the blog's
// inconsistent formatting. The Crawler ties the two together, walking
// the "older posts" pagination chain until records fall outside the
// requested look-back window or a safety page ceiling is reached.
package scraper
