package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ledgerbook/backend/internal/ledger"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/storage"
)

// MemoryStore is an in-memory implementation of storage.Store, safe for
// concurrent use. It backs handler tests and database-less local runs.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[int64]models.User
	customers map[int64]models.Customer
	entries   map[int64]models.LedgerEntry
	lastID    int64
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[int64]models.User),
		customers: make(map[int64]models.Customer),
		entries:   make(map[int64]models.LedgerEntry),
		now:       time.Now,
	}
}

// WithClock replaces the time source. Tests use it to pin entry dates.
func (m *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
	return m
}

func (m *MemoryStore) nextID() int64 {
	m.lastID++
	return m.lastID
}

// ---- users ----

func (m *MemoryStore) CreateUser(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == u.Username {
			return storage.ErrDuplicateUsername
		}
	}
	u.ID = m.nextID()
	u.DateJoined = m.now()
	m.users[u.ID] = *u
	return nil
}

func (m *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *MemoryStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

// ---- customers ----

func (m *MemoryStore) CreateCustomer(ctx context.Context, c *models.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.nextID()
	c.CreatedAt = m.now()
	c.UpdatedAt = c.CreatedAt
	m.customers[c.ID] = *c
	return nil
}

func (m *MemoryStore) GetCustomer(ctx context.Context, userID, id int64) (*models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.ownedCustomer(userID, id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (m *MemoryStore) ListCustomers(ctx context.Context, userID int64) ([]models.Customer, error) {
	return m.filterCustomers(userID, func(models.Customer) bool { return true }), nil
}

func (m *MemoryStore) SearchCustomers(ctx context.Context, userID int64, query string) ([]models.Customer, error) {
	q := strings.ToLower(query)
	return m.filterCustomers(userID, func(c models.Customer) bool {
		if strings.Contains(strings.ToLower(c.Name), q) {
			return true
		}
		return c.Phone != nil && strings.Contains(strings.ToLower(*c.Phone), q)
	}), nil
}

func (m *MemoryStore) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.ownedCustomer(c.UserID, c.ID)
	if !ok {
		return storage.ErrNotFound
	}
	existing.Name = c.Name
	existing.Phone = c.Phone
	existing.Address = c.Address
	existing.UpdatedAt = m.now()
	m.customers[c.ID] = existing

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = existing.UpdatedAt
	return nil
}

func (m *MemoryStore) DeleteCustomer(ctx context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ownedCustomer(userID, id); !ok {
		return storage.ErrNotFound
	}
	delete(m.customers, id)
	for entryID, e := range m.entries {
		if e.CustomerID == id {
			delete(m.entries, entryID)
		}
	}
	return nil
}

func (m *MemoryStore) CustomerTotals(ctx context.Context, customerID int64) (models.CustomerTotals, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.totals(customerID), nil
}

func (m *MemoryStore) ListCustomerTotals(ctx context.Context, userID int64) ([]models.CustomerTotals, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	totals := []models.CustomerTotals{}
	for _, c := range m.customers {
		if c.UserID == userID {
			totals = append(totals, m.totals(c.ID))
		}
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].CustomerID < totals[j].CustomerID })
	return totals, nil
}

// ---- ledger entries ----

func (m *MemoryStore) CreateEntry(ctx context.Context, userID int64, e *models.LedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ownedCustomer(userID, e.CustomerID); !ok {
		return storage.ErrNotFound
	}
	now := m.now()
	e.ID = m.nextID()
	e.EntryDate = ledger.Day(now)
	e.CreatedAt = now
	e.UpdatedAt = now
	m.entries[e.ID] = *e
	return nil
}

func (m *MemoryStore) GetEntry(ctx context.Context, userID, id int64) (*models.LedgerEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.ownedEntry(userID, id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &e, nil
}

func (m *MemoryStore) ListEntries(ctx context.Context, userID int64, limit, offset int) ([]models.LedgerEntry, int64, error) {
	m.mu.RLock()
	all := []models.LedgerEntry{}
	for _, e := range m.entries {
		if _, ok := m.ownedCustomer(userID, e.CustomerID); ok {
			all = append(all, e)
		}
	}
	m.mu.RUnlock()

	ledger.SortNewestFirst(all)
	count := int64(len(all))
	if offset >= len(all) {
		return []models.LedgerEntry{}, count, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], count, nil
}

func (m *MemoryStore) ListCustomerEntries(ctx context.Context, userID, customerID int64, filter storage.EntryFilter) ([]models.LedgerEntry, error) {
	m.mu.RLock()
	_, owned := m.ownedCustomer(userID, customerID)
	entries := []models.LedgerEntry{}
	if owned {
		entries = m.customerEntries(customerID)
	}
	m.mu.RUnlock()

	if filter.Type != "" {
		entries = ledger.FilterByType(entries, filter.Type)
	}
	entries = ledger.FilterByDate(entries, filter.Dates)
	ledger.SortNewestFirst(entries)
	return entries, nil
}

func (m *MemoryStore) UpdateEntry(ctx context.Context, userID int64, e *models.LedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.ownedEntry(userID, e.ID)
	if !ok {
		return storage.ErrNotFound
	}
	existing.CustomerID = e.CustomerID
	existing.Type = e.Type
	existing.Amount = e.Amount
	existing.Note = e.Note
	existing.UpdatedAt = m.now()
	m.entries[e.ID] = existing
	*e = existing
	return nil
}

func (m *MemoryStore) DeleteEntry(ctx context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ownedEntry(userID, id); !ok {
		return storage.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

// ---- helpers, callers hold the lock ----

func (m *MemoryStore) ownedCustomer(userID, id int64) (models.Customer, bool) {
	c, ok := m.customers[id]
	if !ok || c.UserID != userID {
		return models.Customer{}, false
	}
	return c, true
}

func (m *MemoryStore) ownedEntry(userID, id int64) (models.LedgerEntry, bool) {
	e, ok := m.entries[id]
	if !ok {
		return models.LedgerEntry{}, false
	}
	if _, owned := m.ownedCustomer(userID, e.CustomerID); !owned {
		return models.LedgerEntry{}, false
	}
	return e, true
}

func (m *MemoryStore) customerEntries(customerID int64) []models.LedgerEntry {
	entries := []models.LedgerEntry{}
	for _, e := range m.entries {
		if e.CustomerID == customerID {
			entries = append(entries, e)
		}
	}
	return entries
}

func (m *MemoryStore) totals(customerID int64) models.CustomerTotals {
	s := ledger.Summarize(m.customerEntries(customerID))
	return models.CustomerTotals{
		CustomerID:   customerID,
		TotalCredit:  s.TotalCredit,
		TotalDebit:   s.TotalDebit,
		EntriesCount: s.EntriesCount,
	}
}

func (m *MemoryStore) filterCustomers(userID int64, keep func(models.Customer) bool) []models.Customer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	customers := []models.Customer{}
	for _, c := range m.customers {
		if c.UserID == userID && keep(c) {
			customers = append(customers, c)
		}
	}
	sort.Slice(customers, func(i, j int) bool {
		if !customers[i].CreatedAt.Equal(customers[j].CreatedAt) {
			return customers[i].CreatedAt.After(customers[j].CreatedAt)
		}
		return customers[i].ID > customers[j].ID
	})
	return customers
}

// Compile-time check: ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)
