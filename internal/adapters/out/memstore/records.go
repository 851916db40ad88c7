package memstore

import (
	"time"

	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/vendor"
)

// The record types below are value snapshots of the domain aggregates.
// They play the role the database DTOs play in the postgres adapter:
// the store never holds a live aggregate pointer, and reads reconstruct
// fresh aggregates through the Restore constructors.

type locationRecord struct {
	ID          location.ID
	Name        string
	Type        location.Type
	ParentID    *location.ID
	VendorCount int
	OrdersCount int
	Revenue     float64
	Active      bool
	Coordinates *location.Coordinates
}

func locationRecordFromDomain(l *location.Location) locationRecord {
	return locationRecord{
		ID:          l.ID(),
		Name:        l.Name(),
		Type:        l.Type(),
		ParentID:    copyPtr(l.ParentID()),
		VendorCount: l.VendorCount(),
		OrdersCount: l.OrdersCount(),
		Revenue:     l.Revenue(),
		Active:      l.Active(),
		Coordinates: copyPtr(l.Coordinates()),
	}
}

func (r locationRecord) toDomain() (*location.Location, error) {
	return location.RestoreLocation(r.ID, r.Name, r.Type, copyPtr(r.ParentID),
		r.VendorCount, r.OrdersCount, r.Revenue, r.Active, copyPtr(r.Coordinates))
}

type vendorRecord struct {
	ID             kernel.UUID
	Name           string
	LocationIDs    []location.ID
	ProductsCount  int
	OrdersCount    int
	Revenue        float64
	Rating         float64
	JoinedDate     time.Time
	Active         bool
	Verified       bool
	CommissionRate float64
	Contact        vendor.Contact
}

func vendorRecordFromDomain(v *vendor.Vendor) vendorRecord {
	locationIDs := make([]location.ID, len(v.LocationIDs()))
	copy(locationIDs, v.LocationIDs())

	return vendorRecord{
		ID:             v.ID(),
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
		Contact:        v.Contact(),
	}
}

func (r vendorRecord) toDomain() (*vendor.Vendor, error) {
	locationIDs := make([]location.ID, len(r.LocationIDs))
	copy(locationIDs, r.LocationIDs)

	return vendor.RestoreVendor(r.ID, r.Name, locationIDs, r.ProductsCount,
		r.OrdersCount, r.Revenue, r.Rating, r.JoinedDate, r.Active, r.Verified,
		r.CommissionRate, r.Contact)
}

type orderRecord struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CustomerName    string
	VendorID        kernel.UUID
	LocationID      location.ID
	DeliveryAgentID *kernel.UUID
	LineItems       []order.LineItem
	TotalAmount     float64
	Status          order.Status
	PaymentStatus   order.PaymentStatus
	PaymentMethod   string
	DeliveryAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	StatusHistory   []order.StatusUpdate
}

func orderRecordFromDomain(o *order.Order) orderRecord {
	lineItems := make([]order.LineItem, len(o.LineItems()))
	copy(lineItems, o.LineItems())
	history := make([]order.StatusUpdate, len(o.StatusHistory()))
	copy(history, o.StatusHistory())

	return orderRecord{
		ID:              o.ID(),
		CustomerID:      o.CustomerID(),
		CustomerName:    o.CustomerName(),
		VendorID:        o.VendorID(),
		LocationID:      o.LocationID(),
		DeliveryAgentID: copyPtr(o.DeliveryAgentID()),
		LineItems:       lineItems,
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status(),
		PaymentStatus:   o.PaymentStatus(),
		PaymentMethod:   o.PaymentMethod(),
		DeliveryAddress: o.DeliveryAddress(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		StatusHistory:   history,
	}
}

func (r orderRecord) toDomain() (*order.Order, error) {
	lineItems := make([]order.LineItem, len(r.LineItems))
	copy(lineItems, r.LineItems)
	history := make([]order.StatusUpdate, len(r.StatusHistory))
	copy(history, r.StatusHistory)

	return order.RestoreOrder(r.ID, r.CustomerID, r.CustomerName, r.VendorID,
		r.LocationID, copyPtr(r.DeliveryAgentID), lineItems, r.TotalAmount,
		r.Status, r.PaymentStatus, r.PaymentMethod, r.DeliveryAddress,
		r.CreatedAt, r.UpdatedAt, history)
}

type agentRecord struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	AssignedZoneIDs []location.ID
	Active          bool
	Rating          float64
	TotalDeliveries int
	TotalEarnings   float64
	Status          agent.Status
	CurrentOrderID  *kernel.UUID
}

func agentRecordFromDomain(a *agent.Agent) agentRecord {
	zoneIDs := make([]location.ID, len(a.AssignedZoneIDs()))
	copy(zoneIDs, a.AssignedZoneIDs())

	return agentRecord{
		ID:              a.ID(),
		Name:            a.Name(),
		Phone:           a.Phone(),
		AssignedZoneIDs: zoneIDs,
		Active:          a.Active(),
		Rating:          a.Rating(),
		TotalDeliveries: a.TotalDeliveries(),
		TotalEarnings:   a.TotalEarnings(),
		Status:          a.Status(),
		CurrentOrderID:  copyPtr(a.CurrentOrderID()),
	}
}

func (r agentRecord) toDomain() (*agent.Agent, error) {
	zoneIDs := make([]location.ID, len(r.AssignedZoneIDs))
	copy(zoneIDs, r.AssignedZoneIDs)

	return agent.RestoreAgent(r.ID, r.Name, r.Phone, zoneIDs, r.Active,
		r.Rating, r.TotalDeliveries, r.TotalEarnings, r.Status, copyPtr(r.CurrentOrderID))
}

type performanceRecord struct {
	AgentID             kernel.UUID
	Day                 time.Time
	CompletedOrders     int
	Earnings            float64
	Rating              float64
	AverageDeliveryTime float64
}

func performanceRecordFromDomain(record *agent.PerformanceRecord) performanceRecord {
	return performanceRecord{
		AgentID:             record.AgentID(),
		Day:                 record.Day(),
		CompletedOrders:     record.CompletedOrders(),
		Earnings:            record.Earnings(),
		Rating:              record.Rating(),
		AverageDeliveryTime: record.AverageDeliveryTime(),
	}
}

func (r performanceRecord) toDomain() (*agent.PerformanceRecord, error) {
	return agent.RestorePerformanceRecord(r.AgentID, r.Day, r.CompletedOrders,
		r.Earnings, r.Rating, r.AverageDeliveryTime)
}

type notificationRecord struct {
	ID        kernel.UUID
	AgentID   kernel.UUID
	OrderID   kernel.UUID
	Type      notification.Type
	Message   string
	Timestamp time.Time
	Read      bool
}

func notificationRecordFromDomain(n *notification.Notification) notificationRecord {
	return notificationRecord{
		ID:        n.ID(),
		AgentID:   n.AgentID(),
		OrderID:   n.OrderID(),
		Type:      n.Type(),
		Message:   n.Message(),
		Timestamp: n.Timestamp(),
		Read:      n.Read(),
	}
}

func (r notificationRecord) toDomain() (*notification.Notification, error) {
	return notification.RestoreNotification(r.ID, r.AgentID, r.OrderID,
		r.Type, r.Message, r.Timestamp, r.Read)
}

// copyPtr returns a pointer to a copy of the pointee, keeping records free
// of aliases into live aggregates.
func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
