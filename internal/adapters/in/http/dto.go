package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse returns the identifier minted for a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type CreateLocationRequest struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	ParentID *string  `json:"parentId,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
}

type ContactRequest struct {
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

type CreateVendorRequest struct {
	Name           string         `json:"name"`
	LocationIDs    []string       `json:"locationIds"`
	CommissionRate float64        `json:"commissionRate"`
	Contact        ContactRequest `json:"contact"`
}

type UpdateVendorRequest struct {
	Name           *string         `json:"name,omitempty"`
	LocationIDs    []string        `json:"locationIds,omitempty"`
	Rating         *float64        `json:"rating,omitempty"`
	CommissionRate *float64        `json:"commissionRate,omitempty"`
	Active         *bool           `json:"active,omitempty"`
	Verified       *bool           `json:"verified,omitempty"`
	Contact        *ContactRequest `json:"contact,omitempty"`
}

type LineItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID      string            `json:"customerId"`
	CustomerName    string            `json:"customerName"`
	VendorID        string            `json:"vendorId"`
	LocationID      string            `json:"locationId"`
	LineItems       []LineItemRequest `json:"lineItems"`
	PaymentMethod   string            `json:"paymentMethod"`
	DeliveryAddress string            `json:"deliveryAddress"`
}

type TransitionRequest struct {
	Status    string `json:"status"`
	UpdatedBy string `json:"updatedBy"`
	Note      string `json:"note,omitempty"`
}

type DeliveryStatusRequest struct {
	Status  string `json:"status"`
	AgentID string `json:"agentId"`
}

type CreateAgentRequest struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	ZoneIDs []string `json:"zoneIds"`
}

type AssignRequest struct {
	OrderID string `json:"orderId"`
}

type LocationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	TypeLabel   string  `json:"typeLabel"`
	ParentID    *string `json:"parentId,omitempty"`
	VendorCount int     `json:"vendorCount"`
	OrdersCount int     `json:"ordersCount"`
	Revenue     float64 `json:"revenue"`
	Active      bool    `json:"active"`
}

func locationResponse(r queries.LocationResponse) LocationResponse {
	var parentID *string
	if r.ParentID != nil {
		s := r.ParentID.String()
		parentID = &s
	}
	return LocationResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Type:        string(r.Type),
		TypeLabel:   r.TypeLabel,
		ParentID:    parentID,
		VendorCount: r.VendorCount,
		OrdersCount: r.OrdersCount,
		Revenue:     r.Revenue,
		Active:      r.Active,
	}
}

func locationResponses(rs []queries.LocationResponse) []LocationResponse {
	out := make([]LocationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, locationResponse(r))
	}
	return out
}

type LocationStatsResponse struct {
	TotalLocations int                `json:"totalLocations"`
	CountByType    map[string]int     `json:"countByType"`
	TopByRevenue   []LocationResponse `json:"topByRevenue"`
}

type VendorResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	LocationIDs    []string       `json:"locationIds"`
	ProductsCount  int            `json:"productsCount"`
	OrdersCount    int            `json:"ordersCount"`
	Revenue        float64        `json:"revenue"`
	Rating         float64        `json:"rating"`
	JoinedDate     time.Time      `json:"joinedDate"`
	Active         bool           `json:"active"`
	Verified       bool           `json:"verified"`
	CommissionRate float64        `json:"commissionRate"`
	Contact        ContactRequest `json:"contact"`
}

func vendorResponse(r queries.VendorResponse) VendorResponse {
	locationIDs := make([]string, 0, len(r.LocationIDs))
	for _, id := range r.LocationIDs {
		locationIDs = append(locationIDs, id.String())
	}
	return VendorResponse{
		ID:             r.ID.String(),
		Name:           r.Name,
		LocationIDs:    locationIDs,
		ProductsCount:  r.ProductsCount,
		OrdersCount:    r.OrdersCount,
		Revenue:        r.Revenue,
		Rating:         r.Rating,
		JoinedDate:     r.JoinedDate,
		Active:         r.Active,
		Verified:       r.Verified,
		CommissionRate: r.CommissionRate,
		Contact: ContactRequest{
			Description: r.Contact.Description,
			Email:       r.Contact.Email,
			Phone:       r.Contact.Phone,
			Website:     r.Contact.Website,
			LogoURL:     r.Contact.LogoURL,
		},
	}
}

func vendorResponses(rs []queries.VendorResponse) []VendorResponse {
	out := make([]VendorResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, vendorResponse(r))
	}
	return out
}

type LineItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type StatusUpdateResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy string    `json:"updatedBy"`
	Note      string    `json:"note,omitempty"`
}

type OrderResponse struct {
	ID              string                 `json:"id"`
	CustomerID      string                 `json:"customerId"`
	CustomerName    string                 `json:"customerName"`
	VendorID        string                 `json:"vendorId"`
	LocationID      string                 `json:"locationId"`
	DeliveryAgentID *string                `json:"deliveryAgentId,omitempty"`
	LineItems       []LineItemResponse     `json:"lineItems"`
	TotalAmount     float64                `json:"totalAmount"`
	Status          string                 `json:"status"`
	StatusLabel     string                 `json:"statusLabel"`
	PaymentStatus   string                 `json:"paymentStatus"`
	PaymentMethod   string                 `json:"paymentMethod"`
	DeliveryAddress string                 `json:"deliveryAddress"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
	StatusHistory   []StatusUpdateResponse `json:"statusHistory"`
}

func orderResponse(r queries.OrderResponse) OrderResponse {
	var agentID *string
	if r.DeliveryAgentID != nil {
		s := r.DeliveryAgentID.String()
		agentID = &s
	}

	lineItems := make([]LineItemResponse, 0, len(r.LineItems))
	for _, item := range r.LineItems {
		lineItems = append(lineItems, LineItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}

	history := make([]StatusUpdateResponse, 0, len(r.StatusHistory))
	for _, update := range r.StatusHistory {
		history = append(history, StatusUpdateResponse{
			Status:    string(update.Status),
			Timestamp: update.Timestamp,
			UpdatedBy: update.UpdatedBy,
			Note:      update.Note,
		})
	}

	return OrderResponse{
		ID:              r.ID.String(),
		CustomerID:      r.CustomerID.String(),
		CustomerName:    r.CustomerName,
		VendorID:        r.VendorID.String(),
		LocationID:      r.LocationID.String(),
		DeliveryAgentID: agentID,
		LineItems:       lineItems,
		TotalAmount:     r.TotalAmount,
		Status:          string(r.Status),
		StatusLabel:     r.StatusLabel,
		PaymentStatus:   string(r.PaymentStatus),
		PaymentMethod:   r.PaymentMethod,
		DeliveryAddress: r.DeliveryAddress,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		StatusHistory:   history,
	}
}

type AgentResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	AssignedZoneIDs []string `json:"assignedZoneIds"`
	Active          bool     `json:"active"`
	Rating          float64  `json:"rating"`
	TotalDeliveries int      `json:"totalDeliveries"`
	TotalEarnings   float64  `json:"totalEarnings"`
	Status          string   `json:"status"`
	StatusLabel     string   `json:"statusLabel"`
	CurrentOrderID  *string  `json:"currentOrderId,omitempty"`
}

func agentResponse(r queries.AgentResponse) AgentResponse {
	zoneIDs := make([]string, 0, len(r.AssignedZoneIDs))
	for _, id := range r.AssignedZoneIDs {
		zoneIDs = append(zoneIDs, id.String())
	}

	var currentOrderID *string
	if r.CurrentOrderID != nil {
		s := r.CurrentOrderID.String()
		currentOrderID = &s
	}

	return AgentResponse{
		ID:              r.ID.String(),
		Name:            r.Name,
		Phone:           r.Phone,
		AssignedZoneIDs: zoneIDs,
		Active:          r.Active,
		Rating:          r.Rating,
		TotalDeliveries: r.TotalDeliveries,
		TotalEarnings:   r.TotalEarnings,
		Status:          string(r.Status),
		StatusLabel:     r.StatusLabel,
		CurrentOrderID:  currentOrderID,
	}
}

type PerformanceResponse struct {
	AgentID             string    `json:"agentId"`
	Day                 time.Time `json:"day"`
	CompletedOrders     int       `json:"completedOrders"`
	Earnings            float64   `json:"earnings"`
	Rating              float64   `json:"rating"`
	AverageDeliveryTime float64   `json:"averageDeliveryTime"`
}

func performanceResponse(r queries.PerformanceResponse) PerformanceResponse {
	return PerformanceResponse{
		AgentID:             r.AgentID.String(),
		Day:                 r.Day,
		CompletedOrders:     r.CompletedOrders,
		Earnings:            r.Earnings,
		Rating:              r.Rating,
		AverageDeliveryTime: r.AverageDeliveryTime,
	}
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	AgentID   string    `json:"agentId"`
	OrderID   string    `json:"orderId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

func notificationResponse(r queries.NotificationResponse) NotificationResponse {
	return NotificationResponse{
		ID:        r.ID.String(),
		AgentID:   r.AgentID.String(),
		OrderID:   r.OrderID.String(),
		Type:      string(r.Type),
		Message:   r.Message,
		Timestamp: r.Timestamp,
		Read:      r.Read,
	}
}
