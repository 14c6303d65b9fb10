package filter

import (
	"sort"
	"strings"

	"github.com/rwickrama/cse-dividends/internal/announcement"
)

// ByMonth returns the announcements whose announcement date falls in the
// given month (1-12), preserving the original relative order. Records
// whose announcement date cannot be parsed are skipped silently rather
// than failing the whole batch.
func ByMonth(anns []*announcement.Announcement, month int) []*announcement.Announcement {
	filtered := make([]*announcement.Announcement, 0)

	for _, ann := range anns {
		d := ann.Date()
		if d.IsZero() {
			continue
		}
		if int(d.Month()) == month {
			filtered = append(filtered, ann)
		}
	}

	return filtered
}

// SortByDateDesc sorts announcements in place, newest announcement date
// first. Records with unparseable dates sort last, ordered by company
// name so the output stays deterministic.
func SortByDateDesc(anns []*announcement.Announcement) {
	sort.SliceStable(anns, func(i, j int) bool {
		di := anns[i].Date()
		dj := anns[j].Date()

		if !di.IsZero() && !dj.IsZero() {
			return di.After(dj)
		}
		if !di.IsZero() {
			return true
		}
		if !dj.IsZero() {
			return false
		}

		return strings.ToLower(anns[i].CompanyName) < strings.ToLower(anns[j].CompanyName)
	})
}
