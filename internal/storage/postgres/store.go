package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/storage"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ---- users ----

func (p *PostgresStore) CreateUser(ctx context.Context, u *models.User) error {
	const query = `
		INSERT INTO users (username, email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date_joined`

	err := p.db.QueryRowContext(ctx, query, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName).
		Scan(&u.ID, &u.DateJoined)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return storage.ErrDuplicateUsername
	}
	return err
}

func (p *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, username, email, password_hash, first_name, last_name, date_joined
		FROM users WHERE username = $1`
	return p.scanUser(p.db.QueryRowContext(ctx, query, username))
}

func (p *PostgresStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, username, email, password_hash, first_name, last_name, date_joined
		FROM users WHERE id = $1`
	return p.scanUser(p.db.QueryRowContext(ctx, query, id))
}

func (p *PostgresStore) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.DateJoined)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ---- customers ----

const customerColumns = `id, user_id, name, phone, address, created_at, updated_at`

func (p *PostgresStore) CreateCustomer(ctx context.Context, c *models.Customer) error {
	const query = `
		INSERT INTO customers (user_id, name, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return p.db.QueryRowContext(ctx, query, c.UserID, c.Name, c.Phone, c.Address).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (p *PostgresStore) GetCustomer(ctx context.Context, userID, id int64) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND user_id = $2`

	var c models.Customer
	err := p.db.QueryRowContext(ctx, query, id, userID).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (p *PostgresStore) ListCustomers(ctx context.Context, userID int64) ([]models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := p.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanCustomers(rows)
}

func (p *PostgresStore) SearchCustomers(ctx context.Context, userID int64, q string) ([]models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers
		WHERE user_id = $1 AND (name ILIKE $2 OR phone ILIKE $2)
		ORDER BY created_at DESC, id DESC`

	rows, err := p.db.QueryContext(ctx, query, userID, "%"+escapeLike(q)+"%")
	if err != nil {
		return nil, err
	}
	return scanCustomers(rows)
}

func (p *PostgresStore) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	const query = `
		UPDATE customers
		SET name = $1, phone = $2, address = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING created_at, updated_at`

	err := p.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.Address, c.ID, c.UserID).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return storage.ErrNotFound
	}
	return err
}

// DeleteCustomer relies on ON DELETE CASCADE for the customer's entries.
func (p *PostgresStore) DeleteCustomer(ctx context.Context, userID, id int64) error {
	result, err := p.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (p *PostgresStore) CustomerTotals(ctx context.Context, customerID int64) (models.CustomerTotals, error) {
	const query = `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'CREDIT'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'DEBIT'), 0),
			COUNT(*)
		FROM ledger_entries
		WHERE customer_id = $1`

	t := models.CustomerTotals{CustomerID: customerID}
	err := p.db.QueryRowContext(ctx, query, customerID).Scan(&t.TotalCredit, &t.TotalDebit, &t.EntriesCount)
	return t, err
}

func (p *PostgresStore) ListCustomerTotals(ctx context.Context, userID int64) ([]models.CustomerTotals, error) {
	const query = `
		SELECT
			c.id,
			COALESCE(SUM(e.amount) FILTER (WHERE e.type = 'CREDIT'), 0),
			COALESCE(SUM(e.amount) FILTER (WHERE e.type = 'DEBIT'), 0),
			COUNT(e.id)
		FROM customers c
		LEFT JOIN ledger_entries e ON e.customer_id = c.id
		WHERE c.user_id = $1
		GROUP BY c.id
		ORDER BY c.id`

	rows, err := p.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []models.CustomerTotals{}
	for rows.Next() {
		var t models.CustomerTotals
		if err := rows.Scan(&t.CustomerID, &t.TotalCredit, &t.TotalDebit, &t.EntriesCount); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// ---- ledger entries ----

const (
	entryColumns = `e.id, e.customer_id, e.type, e.amount, e.note, e.entry_date, e.created_at, e.updated_at`
	entryOrder   = `ORDER BY e.entry_date DESC, e.created_at DESC, e.id DESC`
	ownedBy      = `e.customer_id IN (SELECT id FROM customers WHERE user_id = $1)`
)

func (p *PostgresStore) CreateEntry(ctx context.Context, userID int64, e *models.LedgerEntry) error {
	const query = `
		INSERT INTO ledger_entries (customer_id, type, amount, note)
		SELECT c.id, $3, $4, $5 FROM customers c
		WHERE c.id = $1 AND c.user_id = $2
		RETURNING id, entry_date, created_at, updated_at`

	err := p.db.QueryRowContext(ctx, query, e.CustomerID, userID, string(e.Type), e.Amount, e.Note).
		Scan(&e.ID, &e.EntryDate, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return storage.ErrNotFound
	}
	return err
}

func (p *PostgresStore) GetEntry(ctx context.Context, userID, id int64) (*models.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries e WHERE ` + ownedBy + ` AND e.id = $2`

	rows, err := p.db.QueryContext(ctx, query, userID, id)
	if err != nil {
		return nil, err
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, storage.ErrNotFound
	}
	return &entries[0], nil
}

func (p *PostgresStore) ListEntries(ctx context.Context, userID int64, limit, offset int) ([]models.LedgerEntry, int64, error) {
	var count int64
	countQuery := `SELECT COUNT(*) FROM ledger_entries e WHERE ` + ownedBy
	if err := p.db.QueryRowContext(ctx, countQuery, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + entryColumns + ` FROM ledger_entries e WHERE ` + ownedBy + ` ` + entryOrder + ` LIMIT $2 OFFSET $3`
	rows, err := p.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, count, nil
}

func (p *PostgresStore) ListCustomerEntries(ctx context.Context, userID, customerID int64, filter storage.EntryFilter) ([]models.LedgerEntry, error) {
	conds := []string{ownedBy, "e.customer_id = $2"}
	args := []any{userID, customerID}

	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conds = append(conds, fmt.Sprintf("e.type = $%d", len(args)))
	}
	if filter.Dates.Start != nil {
		args = append(args, filter.Dates.Start.Format(models.DateLayout))
		conds = append(conds, fmt.Sprintf("e.entry_date >= $%d", len(args)))
	}
	if filter.Dates.End != nil {
		args = append(args, filter.Dates.End.Format(models.DateLayout))
		conds = append(conds, fmt.Sprintf("e.entry_date <= $%d", len(args)))
	}

	query := `SELECT ` + entryColumns + ` FROM ledger_entries e WHERE ` + strings.Join(conds, " AND ") + ` ` + entryOrder
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

func (p *PostgresStore) UpdateEntry(ctx context.Context, userID int64, e *models.LedgerEntry) error {
	const query = `
		UPDATE ledger_entries e
		SET customer_id = $2, type = $3, amount = $4, note = $5, updated_at = NOW()
		WHERE e.customer_id IN (SELECT id FROM customers WHERE user_id = $1)
			AND e.id = $6
		RETURNING e.entry_date, e.created_at, e.updated_at`

	err := p.db.QueryRowContext(ctx, query, userID, e.CustomerID, string(e.Type), e.Amount, e.Note, e.ID).
		Scan(&e.EntryDate, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return storage.ErrNotFound
	}
	return err
}

func (p *PostgresStore) DeleteEntry(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM ledger_entries e WHERE ` + ownedBy + ` AND e.id = $2`
	result, err := p.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// ---- helpers ----

func scanCustomers(rows *sql.Rows) ([]models.Customer, error) {
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func scanEntries(rows *sql.Rows) ([]models.LedgerEntry, error) {
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		var e models.LedgerEntry
		var entryType string
		if err := rows.Scan(&e.ID, &e.CustomerID, &entryType, &e.Amount, &e.Note, &e.EntryDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.Type = models.EntryType(entryType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// escapeLike quotes the ILIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var _ storage.Store = (*PostgresStore)(nil)
