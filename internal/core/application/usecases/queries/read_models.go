// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models mapped from the domain aggregates; handlers run
// against the repository ports so both storage backends serve them.
package queries

import (
	"time"

	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/vendor"
)

// LocationResponse is the read model for a hierarchy node.
type LocationResponse struct {
	ID          location.ID
	Name        string
	Type        location.Type
	TypeLabel   string
	ParentID    *location.ID
	VendorCount int
	OrdersCount int
	Revenue     float64
	Active      bool
}

func locationResponseFromDomain(l *location.Location) LocationResponse {
	return LocationResponse{
		ID:          l.ID(),
		Name:        l.Name(),
		Type:        l.Type(),
		TypeLabel:   l.Type().Label(),
		ParentID:    l.ParentID(),
		VendorCount: l.VendorCount(),
		OrdersCount: l.OrdersCount(),
		Revenue:     l.Revenue(),
		Active:      l.Active(),
	}
}

// VendorResponse is the read model for a vendor profile.
type VendorResponse struct {
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

func vendorResponseFromDomain(v *vendor.Vendor) VendorResponse {
	return VendorResponse{
		ID:             v.ID(),
		Name:           v.Name(),
		LocationIDs:    v.LocationIDs(),
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

// LineItemResponse is the read model for one purchased product.
type LineItemResponse struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
	Subtotal  float64
}

// StatusUpdateResponse is the read model for one ledger entry.
type StatusUpdateResponse struct {
	Status    order.Status
	Timestamp time.Time
	UpdatedBy string
	Note      string
}

// OrderResponse is the read model for an order with its full ledger.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CustomerName    string
	VendorID        kernel.UUID
	LocationID      location.ID
	DeliveryAgentID *kernel.UUID
	LineItems       []LineItemResponse
	TotalAmount     float64
	Status          order.Status
	StatusLabel     string
	PaymentStatus   order.PaymentStatus
	PaymentMethod   string
	DeliveryAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	StatusHistory   []StatusUpdateResponse
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		items = append(items, LineItemResponse{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
			Subtotal:  item.Subtotal(),
		})
	}

	history := make([]StatusUpdateResponse, 0, len(o.StatusHistory()))
	for _, update := range o.StatusHistory() {
		history = append(history, StatusUpdateResponse{
			Status:    update.Status(),
			Timestamp: update.Timestamp(),
			UpdatedBy: update.UpdatedBy(),
			Note:      update.Note(),
		})
	}

	return OrderResponse{
		ID:              o.ID(),
		CustomerID:      o.CustomerID(),
		CustomerName:    o.CustomerName(),
		VendorID:        o.VendorID(),
		LocationID:      o.LocationID(),
		DeliveryAgentID: o.DeliveryAgentID(),
		LineItems:       items,
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status(),
		StatusLabel:     o.Status().Label(),
		PaymentStatus:   o.PaymentStatus(),
		PaymentMethod:   o.PaymentMethod(),
		DeliveryAddress: o.DeliveryAddress(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		StatusHistory:   history,
	}
}

// AgentResponse is the read model for a delivery agent.
type AgentResponse struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	AssignedZoneIDs []location.ID
	Active          bool
	Rating          float64
	TotalDeliveries int
	TotalEarnings   float64
	Status          agent.Status
	StatusLabel     string
	CurrentOrderID  *kernel.UUID
}

func agentResponseFromDomain(a *agent.Agent) AgentResponse {
	return AgentResponse{
		ID:              a.ID(),
		Name:            a.Name(),
		Phone:           a.Phone(),
		AssignedZoneIDs: a.AssignedZoneIDs(),
		Active:          a.Active(),
		Rating:          a.Rating(),
		TotalDeliveries: a.TotalDeliveries(),
		TotalEarnings:   a.TotalEarnings(),
		Status:          a.Status(),
		StatusLabel:     a.Status().Label(),
		CurrentOrderID:  a.CurrentOrderID(),
	}
}

// PerformanceResponse is the read model for one per-day performance row.
type PerformanceResponse struct {
	AgentID             kernel.UUID
	Day                 time.Time
	CompletedOrders     int
	Earnings            float64
	Rating              float64
	AverageDeliveryTime float64
}

func performanceResponseFromDomain(r *agent.PerformanceRecord) PerformanceResponse {
	return PerformanceResponse{
		AgentID:             r.AgentID(),
		Day:                 r.Day(),
		CompletedOrders:     r.CompletedOrders(),
		Earnings:            r.Earnings(),
		Rating:              r.Rating(),
		AverageDeliveryTime: r.AverageDeliveryTime(),
	}
}

// NotificationResponse is the read model for one agent feed entry.
type NotificationResponse struct {
	ID        kernel.UUID
	AgentID   kernel.UUID
	OrderID   kernel.UUID
	Type      notification.Type
	Message   string
	Timestamp time.Time
	Read      bool
}

func notificationResponseFromDomain(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID(),
		AgentID:   n.AgentID(),
		OrderID:   n.OrderID(),
		Type:      n.Type(),
		Message:   n.Message(),
		Timestamp: n.Timestamp(),
		Read:      n.Read(),
	}
}
