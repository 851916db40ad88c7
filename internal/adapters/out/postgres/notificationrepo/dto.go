// Package notificationrepo provides data transfer objects and mapping
// functions for agent notification persistence.
package notificationrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgentID   uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Message   string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"not null;index"`
	Read      bool      `gorm:"column:is_read;not null"`
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID().Bytes(),
		AgentID:   n.AgentID().Bytes(),
		OrderID:   n.OrderID().Bytes(),
		Type:      string(n.Type()),
		Message:   n.Message(),
		Timestamp: n.Timestamp(),
		Read:      n.Read(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, agentID, orderID,
		notification.Type(dto.Type), dto.Message, dto.Timestamp, dto.Read)
}
