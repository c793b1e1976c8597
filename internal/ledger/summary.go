// Package ledger holds the bookkeeping rules: how entries fold into a
// customer summary and how summaries fold into account statistics.
package ledger

import (
	"github.com/ledgerbook/backend/internal/models"
)

// Summarize computes the summary of one customer's entries.
func Summarize(entries []models.LedgerEntry) models.Summary {
	credit, debit := models.ZeroMoney, models.ZeroMoney
	for _, e := range entries {
		switch e.Type {
		case models.EntryTypeCredit:
			credit = credit.Add(e.Amount)
		case models.EntryTypeDebit:
			debit = debit.Add(e.Amount)
		}
	}
	return NewSummary(credit, debit, int64(len(entries)))
}

// NewSummary builds a summary from already aggregated totals.
func NewSummary(credit, debit models.Money, count int64) models.Summary {
	return models.Summary{
		TotalCredit:  credit,
		TotalDebit:   debit,
		Balance:      credit.Sub(debit),
		EntriesCount: count,
	}
}

// SummaryOf converts store totals into a summary.
func SummaryOf(t models.CustomerTotals) models.Summary {
	return NewSummary(t.TotalCredit, t.TotalDebit, t.EntriesCount)
}

// Total sums the amounts of entries regardless of type.
func Total(entries []models.LedgerEntry) models.Money {
	total := models.ZeroMoney
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// Aggregate folds per-customer totals into statistics. Every element counts
// as one customer, including those with no entries.
func Aggregate(totals []models.CustomerTotals) models.Statistics {
	stats := models.Statistics{
		TotalCredit:  models.ZeroMoney,
		TotalDebit:   models.ZeroMoney,
		TotalBalance: models.ZeroMoney,
	}
	for _, t := range totals {
		s := SummaryOf(t)
		stats.TotalCustomers++
		stats.TotalCredit = stats.TotalCredit.Add(s.TotalCredit)
		stats.TotalDebit = stats.TotalDebit.Add(s.TotalDebit)
		stats.TotalBalance = stats.TotalBalance.Add(s.Balance)
		stats.TotalEntries += s.EntriesCount
	}
	return stats
}
