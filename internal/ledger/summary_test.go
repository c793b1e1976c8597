package ledger

import (
	"testing"
	"time"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func entry(id int64, t models.EntryType, amount string) models.LedgerEntry {
	return models.LedgerEntry{ID: id, CustomerID: 1, Type: t, Amount: models.MustParseMoney(amount)}
}

func TestSummarize(t *testing.T) {
	t.Run("credits and debits", func(t *testing.T) {
		s := Summarize([]models.LedgerEntry{
			entry(1, models.EntryTypeCredit, "5000"),
			entry(2, models.EntryTypeCredit, "3000"),
			entry(3, models.EntryTypeDebit, "2000"),
		})

		assert.Equal(t, "8000.00", s.TotalCredit.String())
		assert.Equal(t, "2000.00", s.TotalDebit.String())
		assert.Equal(t, "6000.00", s.Balance.String())
		assert.Equal(t, int64(3), s.EntriesCount)
	})

	t.Run("no entries", func(t *testing.T) {
		s := Summarize(nil)

		assert.True(t, s.TotalCredit.IsZero())
		assert.True(t, s.TotalDebit.IsZero())
		assert.True(t, s.Balance.IsZero())
		assert.Equal(t, int64(0), s.EntriesCount)
		assert.Equal(t, "0.00", s.Balance.String())
	})

	t.Run("decimal amounts stay exact", func(t *testing.T) {
		var entries []models.LedgerEntry
		for i := 0; i < 10; i++ {
			entries = append(entries, entry(int64(i), models.EntryTypeCredit, "0.10"))
		}
		entries = append(entries, entry(99, models.EntryTypeDebit, "0.30"))

		s := Summarize(entries)

		assert.Equal(t, "1.00", s.TotalCredit.String())
		assert.Equal(t, "0.70", s.Balance.String())
	})

	t.Run("balance can go negative", func(t *testing.T) {
		s := Summarize([]models.LedgerEntry{
			entry(1, models.EntryTypeCredit, "100.25"),
			entry(2, models.EntryTypeDebit, "300.50"),
		})

		assert.Equal(t, "-200.25", s.Balance.String())
		assert.True(t, s.Balance.Equal(s.TotalCredit.Sub(s.TotalDebit)))
	})
}

func TestAggregate(t *testing.T) {
	t.Run("two customers", func(t *testing.T) {
		first := Summarize([]models.LedgerEntry{
			entry(1, models.EntryTypeCredit, "5000"),
			entry(2, models.EntryTypeDebit, "2000"),
		})
		second := Summarize([]models.LedgerEntry{
			entry(3, models.EntryTypeCredit, "3000"),
		})

		stats := Aggregate([]models.CustomerTotals{
			{CustomerID: 1, TotalCredit: first.TotalCredit, TotalDebit: first.TotalDebit, EntriesCount: first.EntriesCount},
			{CustomerID: 2, TotalCredit: second.TotalCredit, TotalDebit: second.TotalDebit, EntriesCount: second.EntriesCount},
		})

		assert.Equal(t, int64(2), stats.TotalCustomers)
		assert.Equal(t, "8000.00", stats.TotalCredit.String())
		assert.Equal(t, "2000.00", stats.TotalDebit.String())
		assert.Equal(t, "6000.00", stats.TotalBalance.String())
		assert.Equal(t, int64(3), stats.TotalEntries)
		assert.True(t, stats.TotalBalance.Equal(first.Balance.Add(second.Balance)))
	})

	t.Run("customer without entries still counts", func(t *testing.T) {
		stats := Aggregate([]models.CustomerTotals{
			{CustomerID: 1, TotalCredit: models.ZeroMoney, TotalDebit: models.ZeroMoney},
		})

		assert.Equal(t, int64(1), stats.TotalCustomers)
		assert.Equal(t, "0.00", stats.TotalBalance.String())
		assert.Equal(t, int64(0), stats.TotalEntries)
	})

	t.Run("no customers", func(t *testing.T) {
		stats := Aggregate(nil)

		assert.Equal(t, int64(0), stats.TotalCustomers)
		assert.Equal(t, "0.00", stats.TotalCredit.String())
	})
}

func TestTotal(t *testing.T) {
	total := Total([]models.LedgerEntry{
		entry(1, models.EntryTypeDebit, "10.05"),
		entry(2, models.EntryTypeDebit, "20.10"),
	})
	assert.Equal(t, "30.15", total.String())
}

func TestDateRange_Contains(t *testing.T) {
	d := func(s string) time.Time {
		v, err := ParseDate(s)
		assert.NoError(t, err)
		return v
	}
	start, end := d("2024-01-10"), d("2024-01-20")
	r := DateRange{Start: &start, End: &end}

	assert.True(t, r.Contains(d("2024-01-10")))
	assert.True(t, r.Contains(d("2024-01-15")))
	assert.True(t, r.Contains(d("2024-01-20")))
	assert.True(t, r.Contains(time.Date(2024, 1, 20, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(d("2024-01-09")))
	assert.False(t, r.Contains(d("2024-01-21")))

	assert.True(t, DateRange{}.Contains(d("1999-12-31")))
	assert.True(t, DateRange{Start: &start}.Contains(d("2030-01-01")))
	assert.False(t, DateRange{End: &end}.Contains(d("2030-01-01")))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2024-13-01")
	assert.Error(t, err)
	_, err = ParseDate("01/02/2024")
	assert.Error(t, err)
	_, err = ParseDate("2024-02-29")
	assert.NoError(t, err)
}

func TestFilterAndSort(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	entries := []models.LedgerEntry{
		{ID: 1, Type: models.EntryTypeCredit, EntryDate: day1, CreatedAt: base},
		{ID: 2, Type: models.EntryTypeDebit, EntryDate: day2, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Type: models.EntryTypeCredit, EntryDate: day2, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, Type: models.EntryTypeCredit, EntryDate: day2, CreatedAt: base.Add(2 * time.Hour)},
	}

	SortNewestFirst(entries)
	var ids []int64
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int64{4, 3, 2, 1}, ids)

	credits := FilterByType(entries, models.EntryTypeCredit)
	assert.Len(t, credits, 3)

	onlyDay1 := FilterByDate(entries, DateRange{End: &day1})
	assert.Len(t, onlyDay1, 1)
	assert.Equal(t, int64(1), onlyDay1[0].ID)
}
