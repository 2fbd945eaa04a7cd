package eventlog

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LogEvent(ctx context.Context, slot, eventType, version string, payload []byte) error {
	args := m.Called(ctx, slot, eventType, version, payload)
	return args.Error(0)
}

func (m *MockRepository) Recent(ctx context.Context, slot string, limit int) ([]Entry, error) {
	args := m.Called(ctx, slot, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
