package vendorrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVendorRepository implements VendorRepository using GORM.
type GormVendorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormVendorRepository creates a new GORM vendor repository.
func NewGormVendorRepository(db *gorm.DB, tracker aggregateTracker) *GormVendorRepository {
	return &GormVendorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vendor to the database.
func (r *GormVendorRepository) Add(ctx context.Context, aggregate *vendor.Vendor) error {
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

// Update saves an existing vendor to the database.
func (r *GormVendorRepository) Update(ctx context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VendorDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vendorId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Delete removes a vendor by identifier.
func (r *GormVendorRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VendorDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vendorId", id.String())
	}
	return nil
}

// Get retrieves a vendor by ID.
func (r *GormVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendorId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every vendor, oldest joiner first.
func (r *GormVendorRepository) GetAll(ctx context.Context) ([]*vendor.Vendor, error) {
	var dtos []VendorDTO
	if err := r.db.WithContext(ctx).Order("joined_date, id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapToDomain(dtos)
}

// GetByLocation retrieves vendors whose served set contains the given slug.
// The JSON containment operator needs the jsonb column the DTO declares.
func (r *GormVendorRepository) GetByLocation(ctx context.Context, id location.ID) ([]*vendor.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []VendorDTO
	err := r.db.WithContext(ctx).
		Where("location_ids @> ?", `["`+id.String()+`"]`).
		Order("joined_date, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return mapToDomain(dtos)
}

func mapToDomain(dtos []VendorDTO) ([]*vendor.Vendor, error) {
	vendors := make([]*vendor.Vendor, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}
