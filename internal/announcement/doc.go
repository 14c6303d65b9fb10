// Package announcement provides the dividend announcement record type
// and date handling for the CSE dividends scraper.
//
// Records carry their date fields as the raw DD-Mon-YYYY text found on
// the blog; ParseDate converts them on demand and returns the zero time
// for anything malformed, so downstream filtering and sorting can skip
// bad dates without treating them as errors.
package announcement
