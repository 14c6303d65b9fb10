// Package export persists filtered announcement sets as CSV files.
//
// Files are named by convention (cse_dividends_<month>_<years>years.csv)
// and carry the same columns, in the same order, as the displayed
// result table.
package export
