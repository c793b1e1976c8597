package storage

import (
	"context"
	"errors"

	"github.com/ledgerbook/backend/internal/ledger"
	"github.com/ledgerbook/backend/internal/models"
)

var (
	// ErrNotFound is returned when a row does not exist or is not owned by the caller.
	ErrNotFound = errors.New("storage: not found")
	// ErrDuplicateUsername is returned when registering an existing username.
	ErrDuplicateUsername = errors.New("storage: username already exists")
)

type UserStore interface {
	// CreateUser inserts u and fills in ID and DateJoined.
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// CustomerStore methods are all scoped to the owning user.
type CustomerStore interface {
	// CreateCustomer inserts c and fills in ID, CreatedAt and UpdatedAt.
	CreateCustomer(ctx context.Context, c *models.Customer) error
	GetCustomer(ctx context.Context, userID, id int64) (*models.Customer, error)
	ListCustomers(ctx context.Context, userID int64) ([]models.Customer, error)
	// SearchCustomers matches query case-insensitively against name or phone.
	SearchCustomers(ctx context.Context, userID int64, query string) ([]models.Customer, error)
	// UpdateCustomer replaces name, phone and address of c.ID owned by c.UserID.
	UpdateCustomer(ctx context.Context, c *models.Customer) error
	// DeleteCustomer removes the customer and every entry recorded against it.
	DeleteCustomer(ctx context.Context, userID, id int64) error
	// CustomerTotals aggregates the entries of one customer. Ownership is not checked.
	CustomerTotals(ctx context.Context, customerID int64) (models.CustomerTotals, error)
	// ListCustomerTotals returns one row per customer of userID, zeros included.
	ListCustomerTotals(ctx context.Context, userID int64) ([]models.CustomerTotals, error)
}

// EntryFilter narrows a customer's entries. Zero value matches everything.
type EntryFilter struct {
	Type  models.EntryType
	Dates ledger.DateRange
}

// LedgerStore methods are all scoped to the user owning the entry's customer.
type LedgerStore interface {
	// CreateEntry inserts e if e.CustomerID is owned by userID and fills in
	// ID, EntryDate, CreatedAt and UpdatedAt. ErrNotFound otherwise.
	CreateEntry(ctx context.Context, userID int64, e *models.LedgerEntry) error
	GetEntry(ctx context.Context, userID, id int64) (*models.LedgerEntry, error)
	// ListEntries returns one page of userID's entries newest first and the total count.
	ListEntries(ctx context.Context, userID int64, limit, offset int) ([]models.LedgerEntry, int64, error)
	ListCustomerEntries(ctx context.Context, userID, customerID int64, filter EntryFilter) ([]models.LedgerEntry, error)
	// UpdateEntry replaces customer, type, amount and note and refreshes UpdatedAt.
	UpdateEntry(ctx context.Context, userID int64, e *models.LedgerEntry) error
	DeleteEntry(ctx context.Context, userID, id int64) error
}

type Store interface {
	UserStore
	CustomerStore
	LedgerStore
}
