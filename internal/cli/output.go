package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rwickrama/cse-dividends/internal/announcement"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// WriteOutput writes announcements in the specified format.
func WriteOutput(w io.Writer, anns []*announcement.Announcement, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, anns)
	case FormatTable:
		return writeTable(w, anns)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs announcements as JSON
func writeJSON(w io.Writer, anns []*announcement.Announcement) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(anns)
}

// writeTable renders announcements as a bordered table, with a count
// banner above it.
func writeTable(w io.Writer, anns []*announcement.Announcement) error {
	if len(anns) == 0 {
		fmt.Fprintln(w, "No announcements found for the selected month.")
		return nil
	}

	fmt.Fprintf(w, "\nFound %d dividend announcements\n\n", len(anns))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Company Name", "Code", "Announced", "XD", "Financial Year", "Rate"})

	for _, ann := range anns {
		t.AppendRow(table.Row{
			ann.CompanyName,
			ann.CompanyCode,
			ann.AnnouncementDate,
			ann.ExDividendDate,
			ann.FinancialYear,
			ann.DividendRate,
		})
	}

	t.Render()

	return nil
}
