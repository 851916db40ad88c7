// Package locationrepo provides data transfer objects and mapping functions
// for location hierarchy persistence. Locations are keyed by their slug, not
// a surrogate UUID, so parent links stay readable in the database.
package locationrepo

import (
	"marketplace/internal/core/domain/model/location"
)

// LocationDTO represents the database structure for persisting hierarchy nodes.
type LocationDTO struct {
	ID          string  `gorm:"type:varchar(128);primaryKey"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Type        string  `gorm:"type:varchar(32);not null;index"`
	ParentID    *string `gorm:"type:varchar(128);index"`
	VendorCount int     `gorm:"not null"`
	OrdersCount int     `gorm:"not null"`
	Revenue     float64 `gorm:"not null"`
	Active      bool    `gorm:"not null"`
	Lat         *float64
	Lng         *float64
}

// TableName overrides GORM's default naming to use "locations".
func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(l *location.Location) LocationDTO {
	var parentID *string
	if p := l.ParentID(); p != nil {
		s := p.String()
		parentID = &s
	}

	var lat, lng *float64
	if c := l.Coordinates(); c != nil {
		la, ln := c.Lat(), c.Lng()
		lat, lng = &la, &ln
	}

	return LocationDTO{
		ID:          l.ID().String(),
		Name:        l.Name(),
		Type:        string(l.Type()),
		ParentID:    parentID,
		VendorCount: l.VendorCount(),
		OrdersCount: l.OrdersCount(),
		Revenue:     l.Revenue(),
		Active:      l.Active(),
		Lat:         lat,
		Lng:         lng,
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	var parentID *location.ID
	if dto.ParentID != nil {
		id := location.ID(*dto.ParentID)
		parentID = &id
	}

	var coordinates *location.Coordinates
	if dto.Lat != nil && dto.Lng != nil {
		c, err := location.NewCoordinates(*dto.Lat, *dto.Lng)
		if err != nil {
			return nil, err
		}
		coordinates = &c
	}

	return location.RestoreLocation(location.ID(dto.ID), dto.Name,
		location.Type(dto.Type), parentID, dto.VendorCount, dto.OrdersCount,
		dto.Revenue, dto.Active, coordinates)
}
