package locationrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new location node to the database.
func (r *GormLocationRepository) Add(ctx context.Context, aggregate *location.Location) error {
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

// Update saves an existing location node to the database.
// Select("*") forces zeroed stats columns to be written too.
func (r *GormLocationRepository) Update(ctx context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LocationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("locationId", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a location by its slug.
func (r *GormLocationRepository) Get(ctx context.Context, id location.ID) (*location.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locationId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every hierarchy node ordered by slug.
func (r *GormLocationRepository) GetAll(ctx context.Context) ([]*location.Location, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]*location.Location, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, nil
}
