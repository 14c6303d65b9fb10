package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rwickrama/cse-dividends/internal/announcement"
)

// Header is the CSV column order, matching the displayed table.
var Header = []string{
	"Company_Name",
	"Company_Code",
	"Date_of_Announcement",
	"XD_Date",
	"Financial_Year",
	"Dividend_Rate",
}

// Filename returns the conventional export name for a month/look-back
// combination, e.g. "cse_dividends_june_5years.csv".
func Filename(month, yearsBack int) string {
	return fmt.Sprintf("cse_dividends_%s_%dyears.csv",
		strings.ToLower(announcement.MonthName(month)), yearsBack)
}

// Write writes announcements as CSV, header first, in the order given.
func Write(w io.Writer, anns []*announcement.Announcement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, ann := range anns {
		row := []string{
			ann.CompanyName,
			ann.CompanyCode,
			ann.AnnouncementDate,
			ann.ExDividendDate,
			ann.FinancialYear,
			ann.DividendRate,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

// WriteFile writes announcements to the named CSV file, creating or
// truncating it.
func WriteFile(path string, anns []*announcement.Announcement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := Write(f, anns); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
