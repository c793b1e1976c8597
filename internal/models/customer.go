package models

import "time"

// Customer belongs to exactly one user. Only the owner may see it or its entries.
type Customer struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"-" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Phone     *string   `json:"phone" db:"phone"`
	Address   *string   `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CustomerRef is the short form echoed by the ledger filter endpoints.
type CustomerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c *Customer) Ref() CustomerRef {
	return CustomerRef{ID: c.ID, Name: c.Name}
}

// CustomerSummary is a customer together with its ledger summary.
type CustomerSummary struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	TotalCredit  Money     `json:"total_credit"`
	TotalDebit   Money     `json:"total_debit"`
	Balance      Money     `json:"balance"`
	EntriesCount int64     `json:"entries_count"`
	CreatedAt    time.Time `json:"created_at"`
}
