package queries_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/core/ports"
)

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, id location.ID) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) GetAll(ctx context.Context) ([]*location.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*location.Location), args.Error(1)
}

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetAll(ctx context.Context) ([]*vendor.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetByLocation(ctx context.Context, id location.ID) ([]*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vendor.Vendor), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountOpenByVendor(ctx context.Context, vendorID kernel.UUID) (int, error) {
	args := m.Called(ctx, vendorID)
	return args.Int(0), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentRepository) GetAll(ctx context.Context) ([]*agent.Agent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agent.Agent), args.Error(1)
}

type MockPerformanceRepository struct{ mock.Mock }

func (m *MockPerformanceRepository) Save(ctx context.Context, record *agent.PerformanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPerformanceRepository) GetByAgentDay(
	ctx context.Context, agentID kernel.UUID, day time.Time,
) (*agent.PerformanceRecord, error) {
	args := m.Called(ctx, agentID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.PerformanceRecord), args.Error(1)
}

func (m *MockPerformanceRepository) GetByAgent(
	ctx context.Context, agentID kernel.UUID,
) ([]*agent.PerformanceRecord, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agent.PerformanceRecord), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetByAgent(
	ctx context.Context, agentID kernel.UUID,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) DeletePurgeable(ctx context.Context, olderThan time.Time) (int, error) {
	args := m.Called(ctx, olderThan)
	return args.Int(0), args.Error(1)
}
