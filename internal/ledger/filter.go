package ledger

import (
	"sort"
	"time"

	"github.com/ledgerbook/backend/internal/models"
)

// DateRange bounds entry_date on both ends, inclusive. A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(models.DateLayout, s, time.UTC)
}

// Contains reports whether the calendar day of d lies within the range.
func (r DateRange) Contains(d time.Time) bool {
	day := Day(d)
	if r.Start != nil && day.Before(Day(*r.Start)) {
		return false
	}
	if r.End != nil && day.After(Day(*r.End)) {
		return false
	}
	return true
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FilterByDate keeps entries whose entry_date lies within r.
func FilterByDate(entries []models.LedgerEntry, r DateRange) []models.LedgerEntry {
	out := make([]models.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.EntryDate) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByType keeps entries of the given type.
func FilterByType(entries []models.LedgerEntry, t models.EntryType) []models.LedgerEntry {
	out := make([]models.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// SortNewestFirst orders entries by entry_date, then created_at, then id, all descending.
func SortNewestFirst(entries []models.LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.After(b.EntryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}
