// Package cli implements the command-line interface for cse-dividends.
//
// The cli package provides the Cobra-based CLI with interactive
// prompts for the look-back window and filter month, output formatting
// (table/JSON), and optional CSV export. It coordinates the scraper,
// filter, and export packages to crawl the blog and report matching
// dividend announcements.
package cli
