package announcement

import "time"

// DateFormat is the day-month abbreviation-year layout used throughout
// the blog, e.g. "05-Jun-2024".
const DateFormat = "02-Jan-2006"

// ParseDate parses a DD-Mon-YYYY date string.
// Returns time.Time{} (zero value) if parsing fails, so callers treat
// absent and malformed dates identically.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}
	}

	return t
}

// Date returns the parsed announcement date, or the zero time if the
// record has no parseable one.
func (a *Announcement) Date() time.Time {
	return ParseDate(a.AnnouncementDate)
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English month name for month numbers 1-12,
// or an empty string for anything out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}
