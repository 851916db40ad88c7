package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its seed ledger entry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing order. Ledger rows are append-only: existing
// (order_id, seq) rows are left untouched and only new entries are inserted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	history := dto.StatusHistory
	dto.StatusHistory = nil

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("StatusHistory").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	if len(history) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&history).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves an order by ID, ledger included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves orders matching the filter, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Order("created_at DESC, id")

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", filter.VendorID.Bytes())
	}
	if filter.LocationID != nil {
		query = query.Where("location_id = ?", filter.LocationID.String())
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// CountOpenByVendor counts the vendor's orders in a non-terminal status.
func (r *GormOrderRepository) CountOpenByVendor(ctx context.Context, vendorID kernel.UUID) (int, error) {
	if err := vendorID.Validate(); err != nil {
		return 0, err
	}

	terminal := []string{
		string(order.StatusDelivered),
		string(order.StatusCancelled),
		string(order.StatusReturned),
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("vendor_id = ? AND status NOT IN ?", vendorID.Bytes(), terminal).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
