// Package dbtest provides a testify mock of the workshop store.
package dbtest

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/ukydev/trackpit/internal/models"
)

// MockStore is a mock implementation of db.Backend
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStore) ListServices(ctx context.Context, uid string) ([]models.Service, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockStore) FindService(ctx context.Context, uid, serviceID string) (*models.Service, error) {
	args := m.Called(ctx, uid, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockStore) ListTimeline(ctx context.Context, uid, serviceID string) ([]models.StatusTimelineEntry, error) {
	args := m.Called(ctx, uid, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StatusTimelineEntry), args.Error(1)
}

func (m *MockStore) FindVehicle(ctx context.Context, uid, vehicleID string) (*models.Vehicle, error) {
	args := m.Called(ctx, uid, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockStore) FindInvoicesByService(ctx context.Context, uid, serviceID string, limit int) ([]models.Invoice, error) {
	args := m.Called(ctx, uid, serviceID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}

func (m *MockStore) FindFeedbackByService(ctx context.Context, serviceID string) ([]models.Feedback, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockStore) UpdateTimelineCompletedAt(ctx context.Context, uid, serviceID, statusID string, completedAt *time.Time) error {
	args := m.Called(ctx, uid, serviceID, statusID, completedAt)
	return args.Error(0)
}

func (m *MockStore) CreateInvoice(ctx context.Context, uid string, inv models.NewInvoice) (string, error) {
	args := m.Called(ctx, uid, inv)
	return args.String(0), args.Error(1)
}

func (m *MockStore) SeedUser(ctx context.Context, seed models.SeedUser) error {
	args := m.Called(ctx, seed)
	return args.Error(0)
}

func (m *MockStore) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
