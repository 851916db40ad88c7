// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Line items are stored as a JSON array on the order row;
// the status ledger lives in a child table keyed by (order_id, seq) so
// entries stay append-only and ordered.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID         `gorm:"type:uuid;not null"`
	CustomerName    string            `gorm:"type:varchar(255);not null"`
	VendorID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	LocationID      string            `gorm:"type:varchar(128);not null;index"`
	DeliveryAgentID *uuid.UUID        `gorm:"type:uuid;index"`
	LineItems       []LineItemDTO     `gorm:"serializer:json;type:jsonb;not null"`
	TotalAmount     float64           `gorm:"not null"`
	Status          string            `gorm:"type:varchar(32);not null;index"`
	PaymentStatus   string            `gorm:"type:varchar(32);not null"`
	PaymentMethod   string            `gorm:"type:varchar(64);not null"`
	DeliveryAddress string            `gorm:"type:text;not null"`
	CreatedAt       time.Time         `gorm:"not null"`
	UpdatedAt       time.Time         `gorm:"not null"`
	StatusHistory   []StatusUpdateDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is the JSON shape of one purchased product.
type LineItemDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// StatusUpdateDTO represents one row of the append-only status ledger.
type StatusUpdateDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey"`
	Status    string    `gorm:"type:varchar(32);not null"`
	Timestamp time.Time `gorm:"not null"`
	UpdatedBy string    `gorm:"type:varchar(255);not null"`
	Note      string    `gorm:"type:text"`
}

// TableName overrides GORM's default naming to use "order_status_updates".
func (StatusUpdateDTO) TableName() string {
	return "order_status_updates"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var agentID *uuid.UUID
	if id := o.DeliveryAgentID(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	lineItems := make([]LineItemDTO, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		lineItems = append(lineItems, LineItemDTO{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	history := make([]StatusUpdateDTO, 0, len(o.StatusHistory()))
	for seq, update := range o.StatusHistory() {
		history = append(history, StatusUpdateDTO{
			OrderID:   orderID,
			Seq:       seq,
			Status:    string(update.Status()),
			Timestamp: update.Timestamp(),
			UpdatedBy: update.UpdatedBy(),
			Note:      update.Note(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		CustomerID:      o.CustomerID().Bytes(),
		CustomerName:    o.CustomerName(),
		VendorID:        o.VendorID().Bytes(),
		LocationID:      o.LocationID().String(),
		DeliveryAgentID: agentID,
		LineItems:       lineItems,
		TotalAmount:     o.TotalAmount(),
		Status:          string(o.Status()),
		PaymentStatus:   string(o.PaymentStatus()),
		PaymentMethod:   o.PaymentMethod(),
		DeliveryAddress: o.DeliveryAddress(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		StatusHistory:   history,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.DeliveryAgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.DeliveryAgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, item := range dto.LineItems {
		li, itemErr := order.NewLineItem(item.ProductID, item.Name, item.UnitPrice, item.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, li)
	}

	history := make([]order.StatusUpdate, 0, len(dto.StatusHistory))
	for _, row := range dto.StatusHistory {
		update, rowErr := order.NewStatusUpdate(order.Status(row.Status),
			row.Timestamp, row.UpdatedBy, row.Note)
		if rowErr != nil {
			return nil, rowErr
		}
		history = append(history, update)
	}

	return order.RestoreOrder(id, customerID, dto.CustomerName, vendorID,
		location.ID(dto.LocationID), agentID, lineItems, dto.TotalAmount,
		order.Status(dto.Status), order.PaymentStatus(dto.PaymentStatus),
		dto.PaymentMethod, dto.DeliveryAddress, dto.CreatedAt, dto.UpdatedAt, history)
}
