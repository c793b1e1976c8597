package services

import (
	"context"

	"github.com/ledgerbook/backend/internal/events"
	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func eventOfType(typ string) any {
	return mock.MatchedBy(func(e events.Event) bool { return e.Type == typ })
}
