package events

import (
	"context"
	"time"
)

const (
	LedgerEntryCreated = "ledger_entry.created"
	LedgerEntryUpdated = "ledger_entry.updated"
	LedgerEntryDeleted = "ledger_entry.deleted"
	CustomerCreated    = "customer.created"
	CustomerUpdated    = "customer.updated"
	CustomerDeleted    = "customer.deleted"
)

// Event is a domain change notification. Payload is the affected record or its id.
type Event struct {
	Type       string    `json:"type"`
	UserID     int64     `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func New(typ string, userID int64, payload any) Event {
	return Event{Type: typ, UserID: userID, OccurredAt: time.Now().UTC(), Payload: payload}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
