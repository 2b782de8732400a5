package eventlog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/greenlegacy-ng/greenlegacy/internal/event"
	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LogEvent(ctx context.Context, entry *repository.EventLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) ListEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EventLogEntry), args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
