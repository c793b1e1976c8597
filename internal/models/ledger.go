package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire format for entry dates and date filters.
const DateLayout = "2006-01-02"

type EntryType string

const (
	EntryTypeCredit EntryType = "CREDIT"
	EntryTypeDebit  EntryType = "DEBIT"
)

func (t EntryType) Valid() bool {
	return t == EntryTypeCredit || t == EntryTypeDebit
}

// Display is the human readable label returned as type_display.
func (t EntryType) Display() string {
	switch t {
	case EntryTypeCredit:
		return "Credit"
	case EntryTypeDebit:
		return "Debit"
	}
	return string(t)
}

// LedgerEntry is a single CREDIT or DEBIT recorded against a customer.
// EntryDate is assigned by the store on insert and never changes.
type LedgerEntry struct {
	ID         int64     `json:"id" db:"id"`
	CustomerID int64     `json:"customer" db:"customer_id"`
	Type       EntryType `json:"type" db:"type"`
	Amount     Money     `json:"amount" db:"amount"`
	Note       *string   `json:"note" db:"note"`
	EntryDate  time.Time `json:"entry_date" db:"entry_date"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

func (e LedgerEntry) MarshalJSON() ([]byte, error) {
	type entry LedgerEntry
	return json.Marshal(struct {
		entry
		TypeDisplay string `json:"type_display"`
		EntryDate   string `json:"entry_date"`
	}{
		entry:       entry(e),
		TypeDisplay: e.Type.Display(),
		EntryDate:   e.EntryDate.Format(DateLayout),
	})
}

// Summary is derived from a customer's entries on every request.
type Summary struct {
	TotalCredit  Money `json:"total_credit"`
	TotalDebit   Money `json:"total_debit"`
	Balance      Money `json:"balance"`
	EntriesCount int64 `json:"entries_count"`
}

// CustomerTotals is the per-customer aggregate returned by the store.
type CustomerTotals struct {
	CustomerID   int64 `db:"customer_id"`
	TotalCredit  Money `db:"total_credit"`
	TotalDebit   Money `db:"total_debit"`
	EntriesCount int64 `db:"entries_count"`
}

// Statistics rolls every customer of one user into a single summary.
type Statistics struct {
	TotalCustomers int64 `json:"total_customers"`
	TotalCredit    Money `json:"total_credit"`
	TotalDebit     Money `json:"total_debit"`
	TotalBalance   Money `json:"total_balance"`
	TotalEntries   int64 `json:"total_entries"`
}
