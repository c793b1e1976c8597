package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledgerbook/backend/internal/events"
	"github.com/ledgerbook/backend/internal/ledger"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/storage"
	"go.uber.org/zap"
)

// MinSearchLength is the shortest trimmed customer search query accepted.
const MinSearchLength = 2

// CustomerRequest represents a customer create or replace payload
// @Description Customer request structure
type CustomerRequest struct {
	Name    string  `json:"name" validate:"required,max=255" example:"Karim Dokandar"` // Customer name
	Phone   *string `json:"phone" validate:"omitempty,max=20" example:"01700000001"`   // Optional phone number
	Address *string `json:"address" example:"Mirpur, Dhaka"`                          // Optional address
}

func (r *CustomerRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = trimOptional(r.Phone)
	r.Address = trimOptional(r.Address)
}

// trimOptional trims s and maps blank values to nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

type CustomerService struct {
	store     storage.Store
	events    events.Publisher
	validator *ValidationHelper
	logger    *zap.Logger
}

func NewCustomerService(store storage.Store, publisher events.Publisher, logger *zap.Logger) *CustomerService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &CustomerService{
		store:     store,
		events:    publisher,
		validator: NewValidationHelper(),
		logger:    logger.Named("customers"),
	}
}

// List returns the caller's customers, newest first.
func (s *CustomerService) List(ctx context.Context, userID int64) ([]models.Customer, error) {
	customers, err := s.store.ListCustomers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) Create(ctx context.Context, userID int64, req CustomerRequest) (*models.Customer, error) {
	req.normalize()
	if err := s.validator.Check(&req); err != nil {
		return nil, err
	}

	c := &models.Customer{UserID: userID, Name: req.Name, Phone: req.Phone, Address: req.Address}
	if err := s.store.CreateCustomer(ctx, c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.logger.Info("customer created", zap.Int64("user_id", userID), zap.Int64("customer_id", c.ID))
	publish(ctx, s.events, s.logger, events.New(events.CustomerCreated, userID, c))
	return c, nil
}

func (s *CustomerService) Get(ctx context.Context, userID, id int64) (*models.Customer, error) {
	c, err := s.store.GetCustomer(ctx, userID, id)
	if err != nil {
		return nil, customerErr(err, id)
	}
	return c, nil
}

// Update replaces name, phone and address.
func (s *CustomerService) Update(ctx context.Context, userID, id int64, req CustomerRequest) (*models.Customer, error) {
	req.normalize()
	if err := s.validator.Check(&req); err != nil {
		return nil, err
	}

	c := &models.Customer{ID: id, UserID: userID, Name: req.Name, Phone: req.Phone, Address: req.Address}
	if err := s.store.UpdateCustomer(ctx, c); err != nil {
		return nil, customerErr(err, id)
	}

	s.logger.Info("customer updated", zap.Int64("user_id", userID), zap.Int64("customer_id", id))
	publish(ctx, s.events, s.logger, events.New(events.CustomerUpdated, userID, c))
	return c, nil
}

// Delete removes the customer and all of its entries.
func (s *CustomerService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.store.DeleteCustomer(ctx, userID, id); err != nil {
		return customerErr(err, id)
	}

	s.logger.Info("customer deleted", zap.Int64("user_id", userID), zap.Int64("customer_id", id))
	publish(ctx, s.events, s.logger, events.New(events.CustomerDeleted, userID, map[string]int64{"id": id}))
	return nil
}

// Search matches the trimmed query against name or phone, case-insensitively.
func (s *CustomerService) Search(ctx context.Context, userID int64, query string) ([]models.Customer, error) {
	q := strings.TrimSpace(query)
	if len([]rune(q)) < MinSearchLength {
		return nil, NewValidationError(
			fmt.Sprintf("Search query must be at least %d characters", MinSearchLength),
			"q", fmt.Sprintf("Ensure this value has at least %d characters.", MinSearchLength))
	}

	customers, err := s.store.SearchCustomers(ctx, userID, q)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return customers, nil
}

// Summary returns the customer's fields together with its balance summary.
func (s *CustomerService) Summary(ctx context.Context, userID, id int64) (*models.CustomerSummary, error) {
	c, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	totals, err := s.store.CustomerTotals(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("customer totals: %w", err)
	}
	sum := ledger.SummaryOf(totals)

	return &models.CustomerSummary{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Address:      c.Address,
		TotalCredit:  sum.TotalCredit,
		TotalDebit:   sum.TotalDebit,
		Balance:      sum.Balance,
		EntriesCount: sum.EntriesCount,
		CreatedAt:    c.CreatedAt,
	}, nil
}

func customerErr(err error, id int64) error {
	if errors.Is(err, storage.ErrNotFound) {
		return &NotFoundError{Resource: "customer", ID: id}
	}
	return fmt.Errorf("customer %d: %w", id, err)
}

// publish sends an event without failing the caller's operation.
func publish(ctx context.Context, p events.Publisher, logger *zap.Logger, event events.Event) {
	if err := p.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish event", zap.String("type", event.Type), zap.Error(err))
	}
}
