// Package filter selects and orders dividend announcements for display.
//
// Filtering is by announcement month; sorting is newest-first by
// announcement date. Both operations skip records with unparseable
// dates instead of reporting errors, matching the best-effort posture
// of the scraper.
package filter
