package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ledgerbook/backend/internal/events"
	"github.com/ledgerbook/backend/internal/ledger"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/storage"
	"go.uber.org/zap"
)

// DefaultPageSize is used when the configured page size is not positive.
const DefaultPageSize = 10

// ErrInvalidPage is returned for a malformed or out-of-range page number.
var ErrInvalidPage = errors.New("invalid page")

// LedgerEntryRequest represents a ledger entry create or replace payload.
// Customer is required on create and optional on replace.
// @Description Ledger entry request structure
type LedgerEntryRequest struct {
	Customer *int64           `json:"customer" example:"1"`                                 // Owning customer ID
	Type     models.EntryType `json:"type" validate:"required,oneof=CREDIT DEBIT" example:"CREDIT"` // CREDIT or DEBIT
	Amount   *models.Money    `json:"amount" validate:"required" swaggertype:"string" example:"5000.00"`
	Note     *string          `json:"note" example:"Opening balance"`
}

// EntryPage is one page of the caller's entries.
type EntryPage struct {
	Count    int64
	Page     int
	NumPages int
	Results  []models.LedgerEntry
}

func (p *EntryPage) HasNext() bool     { return p.Page < p.NumPages }
func (p *EntryPage) HasPrevious() bool { return p.Page > 1 }

// CustomerEntries is the by_customer response.
type CustomerEntries struct {
	Customer models.CustomerRef   `json:"customer"`
	Entries  []models.LedgerEntry `json:"entries"`
	Summary  models.Summary       `json:"summary"`
}

// DateRangeEcho repeats the requested bounds as given.
type DateRangeEcho struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// DateFilterResult is the filter_by_date response.
type DateFilterResult struct {
	Customer     models.CustomerRef   `json:"customer"`
	DateRange    DateRangeEcho        `json:"date_range"`
	Entries      []models.LedgerEntry `json:"entries"`
	TotalEntries int                  `json:"total_entries"`
}

// TypeFilterResult is the filter_by_type response.
type TypeFilterResult struct {
	Customer     models.CustomerRef   `json:"customer"`
	Type         models.EntryType     `json:"type"`
	Entries      []models.LedgerEntry `json:"entries"`
	TotalAmount  models.Money         `json:"total_amount"`
	EntriesCount int                  `json:"entries_count"`
}

type LedgerService struct {
	store     storage.Store
	events    events.Publisher
	validator *ValidationHelper
	pageSize  int
	logger    *zap.Logger
}

func NewLedgerService(store storage.Store, publisher events.Publisher, pageSize int, logger *zap.Logger) *LedgerService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &LedgerService{
		store:     store,
		events:    publisher,
		validator: NewValidationHelper(),
		pageSize:  pageSize,
		logger:    logger.Named("ledger"),
	}
}

func (s *LedgerService) PageSize() int { return s.pageSize }

// List returns one page of the caller's entries, newest first. page is the
// raw query value: empty means 1, "last" means the final page.
func (s *LedgerService) List(ctx context.Context, userID int64, page string) (*EntryPage, error) {
	number := 1
	last := false
	switch page = strings.TrimSpace(page); page {
	case "":
	case "last":
		last = true
	default:
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return nil, ErrInvalidPage
		}
		number = n
	}

	if last {
		_, count, err := s.store.ListEntries(ctx, userID, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("count entries: %w", err)
		}
		number = numPages(count, s.pageSize)
	}

	entries, count, err := s.store.ListEntries(ctx, userID, s.pageSize, (number-1)*s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	pages := numPages(count, s.pageSize)
	if number > pages {
		return nil, ErrInvalidPage
	}
	return &EntryPage{Count: count, Page: number, NumPages: pages, Results: entries}, nil
}

// numPages is never below one, so an empty first page is valid.
func numPages(count int64, size int) int {
	if count == 0 {
		return 1
	}
	return int((count + int64(size) - 1) / int64(size))
}

func (s *LedgerService) Create(ctx context.Context, userID int64, req LedgerEntryRequest) (*models.LedgerEntry, error) {
	if err := s.checkEntry(&req); err != nil {
		return nil, err
	}
	if req.Customer == nil {
		return nil, NewValidationError("Validation failed", "customer", "This field is required.")
	}

	e := &models.LedgerEntry{
		CustomerID: *req.Customer,
		Type:       req.Type,
		Amount:     *req.Amount,
		Note:       req.Note,
	}
	if err := s.store.CreateEntry(ctx, userID, e); err != nil {
		return nil, customerErr(err, *req.Customer)
	}

	s.logger.Info("ledger entry created",
		zap.Int64("user_id", userID),
		zap.Int64("entry_id", e.ID),
		zap.String("type", string(e.Type)),
		zap.String("amount", e.Amount.String()))
	publish(ctx, s.events, s.logger, events.New(events.LedgerEntryCreated, userID, e))
	return e, nil
}

func (s *LedgerService) Get(ctx context.Context, userID, id int64) (*models.LedgerEntry, error) {
	e, err := s.store.GetEntry(ctx, userID, id)
	if err != nil {
		return nil, entryErr(err, id)
	}
	return e, nil
}

// Update replaces type, amount and note. When a customer is given the entry
// moves to it, provided the caller owns it. The entry date never changes.
func (s *LedgerService) Update(ctx context.Context, userID, id int64, req LedgerEntryRequest) (*models.LedgerEntry, error) {
	if err := s.checkEntry(&req); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	customerID := existing.CustomerID
	if req.Customer != nil && *req.Customer != customerID {
		if _, err := s.store.GetCustomer(ctx, userID, *req.Customer); err != nil {
			return nil, customerErr(err, *req.Customer)
		}
		customerID = *req.Customer
	}

	e := &models.LedgerEntry{
		ID:         id,
		CustomerID: customerID,
		Type:       req.Type,
		Amount:     *req.Amount,
		Note:       req.Note,
	}
	if err := s.store.UpdateEntry(ctx, userID, e); err != nil {
		return nil, entryErr(err, id)
	}

	s.logger.Info("ledger entry updated",
		zap.Int64("user_id", userID),
		zap.Int64("entry_id", e.ID),
		zap.Int64("customer_id", e.CustomerID),
		zap.String("type", string(e.Type)),
		zap.String("amount", e.Amount.String()))
	publish(ctx, s.events, s.logger, events.New(events.LedgerEntryUpdated, userID, e))
	return e, nil
}

func (s *LedgerService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.store.DeleteEntry(ctx, userID, id); err != nil {
		return entryErr(err, id)
	}

	s.logger.Info("ledger entry deleted", zap.Int64("user_id", userID), zap.Int64("entry_id", id))
	publish(ctx, s.events, s.logger, events.New(events.LedgerEntryDeleted, userID, map[string]int64{"id": id}))
	return nil
}

// ByCustomer returns every entry of one customer with its summary.
func (s *LedgerService) ByCustomer(ctx context.Context, userID int64, customerID string) (*CustomerEntries, error) {
	id, err := parseCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	customer, entries, err := s.customerEntries(ctx, userID, id, storage.EntryFilter{})
	if err != nil {
		return nil, err
	}

	return &CustomerEntries{
		Customer: customer.Ref(),
		Entries:  entries,
		Summary:  ledger.Summarize(entries),
	}, nil
}

// FilterByDate returns a customer's entries with entry_date inside the
// inclusive range. Either bound may be empty.
func (s *LedgerService) FilterByDate(ctx context.Context, userID int64, customerID, start, end string) (*DateFilterResult, error) {
	id, err := parseCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	var dates ledger.DateRange
	echo := DateRangeEcho{}
	if start != "" {
		d, err := ledger.ParseDate(start)
		if err != nil {
			return nil, NewValidationError("Invalid start date format (YYYY-MM-DD expected)", "start_date", "Date has wrong format. Use YYYY-MM-DD.")
		}
		dates.Start, echo.Start = &d, &start
	}
	if end != "" {
		d, err := ledger.ParseDate(end)
		if err != nil {
			return nil, NewValidationError("Invalid end date format (YYYY-MM-DD expected)", "end_date", "Date has wrong format. Use YYYY-MM-DD.")
		}
		dates.End, echo.End = &d, &end
	}

	customer, entries, err := s.customerEntries(ctx, userID, id, storage.EntryFilter{Dates: dates})
	if err != nil {
		return nil, err
	}

	return &DateFilterResult{
		Customer:     customer.Ref(),
		DateRange:    echo,
		Entries:      entries,
		TotalEntries: len(entries),
	}, nil
}

// FilterByType returns a customer's CREDIT or DEBIT entries and their exact sum.
func (s *LedgerService) FilterByType(ctx context.Context, userID int64, customerID, entryType string) (*TypeFilterResult, error) {
	id, err := parseCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	typ := models.EntryType(entryType)
	if !typ.Valid() {
		return nil, NewValidationError("type must be CREDIT or DEBIT", "type", fmt.Sprintf("%q is not a valid choice.", entryType))
	}

	customer, entries, err := s.customerEntries(ctx, userID, id, storage.EntryFilter{Type: typ})
	if err != nil {
		return nil, err
	}

	return &TypeFilterResult{
		Customer:     customer.Ref(),
		Type:         typ,
		Entries:      entries,
		TotalAmount:  ledger.Total(entries),
		EntriesCount: len(entries),
	}, nil
}

// Statistics folds the summaries of all of the caller's customers.
func (s *LedgerService) Statistics(ctx context.Context, userID int64) (models.Statistics, error) {
	totals, err := s.store.ListCustomerTotals(ctx, userID)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("customer totals: %w", err)
	}
	return ledger.Aggregate(totals), nil
}

func (s *LedgerService) customerEntries(ctx context.Context, userID, customerID int64, filter storage.EntryFilter) (*models.Customer, []models.LedgerEntry, error) {
	customer, err := s.store.GetCustomer(ctx, userID, customerID)
	if err != nil {
		return nil, nil, customerErr(err, customerID)
	}

	entries, err := s.store.ListCustomerEntries(ctx, userID, customerID, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("list entries of customer %d: %w", customerID, err)
	}
	return customer, entries, nil
}

func (s *LedgerService) checkEntry(req *LedgerEntryRequest) error {
	req.Note = trimOptional(req.Note)
	if err := s.validator.Check(req); err != nil {
		return err
	}
	if !req.Amount.FitsColumn() {
		return NewValidationError("Validation failed", "amount",
			"Ensure that there are no more than 12 digits in total and no more than 2 decimal places.")
	}
	return nil
}

func parseCustomerID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, NewValidationError("customer_id Needed", "customer_id", "This field is required.")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewValidationError("customer_id must be an integer", "customer_id", "A valid integer is required.")
	}
	return id, nil
}

func entryErr(err error, id int64) error {
	if errors.Is(err, storage.ErrNotFound) {
		return &NotFoundError{Resource: "ledger entry", ID: id}
	}
	return fmt.Errorf("ledger entry %d: %w", id, err)
}
