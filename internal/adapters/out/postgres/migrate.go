package postgres

import (
	"marketplace/internal/adapters/out/postgres/agentrepo"
	"marketplace/internal/adapters/out/postgres/locationrepo"
	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/vendorrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the marketplace schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&locationrepo.LocationDTO{},
		&vendorrepo.VendorDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.StatusUpdateDTO{},
		&agentrepo.AgentDTO{},
		&agentrepo.PerformanceDTO{},
		&notificationrepo.NotificationDTO{},
	)
}
