// Package vendorrepo provides data transfer objects and mapping functions for
// vendor persistence. Served location slugs are stored as a JSON array; the
// command layer validates them against the hierarchy before writes.
package vendorrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendor aggregates.
type VendorDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name           string     `gorm:"type:varchar(255);not null"`
	LocationIDs    []string   `gorm:"serializer:json;type:jsonb;not null"`
	ProductsCount  int        `gorm:"not null"`
	OrdersCount    int        `gorm:"not null"`
	Revenue        float64    `gorm:"not null"`
	Rating         float64    `gorm:"not null"`
	JoinedDate     time.Time  `gorm:"not null"`
	Active         bool       `gorm:"not null"`
	Verified       bool       `gorm:"not null"`
	CommissionRate float64    `gorm:"not null"`
	Contact        ContactDTO `gorm:"embedded;embeddedPrefix:contact_"`
}

// TableName overrides GORM's default naming to use "vendors".
func (VendorDTO) TableName() string {
	return "vendors"
}

// ContactDTO represents the embedded contact block within the vendor table.
type ContactDTO struct {
	Description string `gorm:"type:text"`
	Email       string `gorm:"type:varchar(255)"`
	Phone       string `gorm:"type:varchar(64)"`
	Website     string `gorm:"type:varchar(255)"`
	LogoURL     string `gorm:"type:varchar(255)"`
}

func fromDomain(v *vendor.Vendor) VendorDTO {
	locationIDs := make([]string, 0, len(v.LocationIDs()))
	for _, id := range v.LocationIDs() {
		locationIDs = append(locationIDs, id.String())
	}

	contact := v.Contact()
	return VendorDTO{
		ID:             v.ID().Bytes(),
		Name:           v.Name(),
		LocationIDs:    locationIDs,
		ProductsCount:  v.ProductsCount(),
		OrdersCount:    v.OrdersCount(),
		Revenue:        v.Revenue(),
		Rating:         v.Rating(),
		JoinedDate:     v.JoinedDate(),
		Active:         v.Active(),
		Verified:       v.Verified(),
		CommissionRate: v.CommissionRate(),
		Contact: ContactDTO{
			Description: contact.Description,
			Email:       contact.Email,
			Phone:       contact.Phone,
			Website:     contact.Website,
			LogoURL:     contact.LogoURL,
		},
	}
}

func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	locationIDs := make([]location.ID, 0, len(dto.LocationIDs))
	for _, raw := range dto.LocationIDs {
		locationIDs = append(locationIDs, location.ID(raw))
	}

	return vendor.RestoreVendor(id, dto.Name, locationIDs, dto.ProductsCount,
		dto.OrdersCount, dto.Revenue, dto.Rating, dto.JoinedDate, dto.Active,
		dto.Verified, dto.CommissionRate, vendor.Contact{
			Description: dto.Contact.Description,
			Email:       dto.Contact.Email,
			Phone:       dto.Contact.Phone,
			Website:     dto.Contact.Website,
			LogoURL:     dto.Contact.LogoURL,
		})
}
