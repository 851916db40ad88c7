package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// initialActor is recorded on the history entry written at creation time.
const initialActor = "system"

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// ErrOrderAlreadyAssigned is returned when an order that is already carried
// by an agent is offered to another one.
var ErrOrderAlreadyAssigned = errors.New("order is already assigned to an agent")

// Order is the ledger aggregate for a customer purchase.
//
// Invariants:
//   - statusHistory is append-only and never empty; its last entry's status
//     always equals the order's current status
//   - totalAmount equals the sum of quantity * unitPrice over lineItems;
//     the aggregate computes it itself and persistence re-derives it on load
//   - status changes only through TransitionTo, which consults the
//     transition table
//   - orders are never deleted; terminal statuses end the lifecycle
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	customerName    string
	vendorID        kernel.UUID
	locationID      location.ID
	deliveryAgentID *kernel.UUID
	lineItems       []LineItem
	totalAmount     float64
	status          Status
	paymentStatus   PaymentStatus
	paymentMethod   string
	deliveryAddress string
	createdAt       time.Time
	updatedAt       time.Time
	statusHistory   []StatusUpdate

	guard guard.ConstructorGuard
}

// NewOrder creates an order in status "new" with payment pending and a single
// seed history entry. The total amount is computed from the line items.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	vendorID kernel.UUID,
	locationID location.ID,
	lineItems []LineItem,
	paymentMethod string,
	deliveryAddress string,
) (*Order, error) {
	now := time.Now().UTC()

	o := &Order{
		status:        StatusNew,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID, customerName),
		o.setVendorID(vendorID),
		o.setLocationID(locationID),
		o.setLineItems(lineItems),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	o.paymentMethod = paymentMethod

	seed, err := NewStatusUpdate(StatusNew, now, initialActor, "")
	if err != nil {
		return nil, err
	}
	o.statusHistory = []StatusUpdate{seed}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The history must be
// non-empty and its last entry must match the stored status; the total is
// re-derived from the line items and checked against the stored value.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	vendorID kernel.UUID,
	locationID location.ID,
	deliveryAgentID *kernel.UUID,
	lineItems []LineItem,
	totalAmount float64,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod string,
	deliveryAddress string,
	createdAt time.Time,
	updatedAt time.Time,
	statusHistory []StatusUpdate,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID, customerName),
		o.setVendorID(vendorID),
		o.setLocationID(locationID),
		o.setLineItems(lineItems),
		o.setDeliveryAddress(deliveryAddress),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if len(statusHistory) == 0 {
		return nil, errs.NewValueIsRequiredError("statusHistory")
	}
	if last := statusHistory[len(statusHistory)-1].Status(); last != status {
		return nil, errs.NewValueIsInvalidErrorWithCause("statusHistory",
			fmt.Errorf("last history entry is %s but order status is %s", last, status))
	}
	if math.Abs(o.totalAmount-totalAmount) > 0.005 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("stored total %.2f does not match line items total %.2f", totalAmount, o.totalAmount))
	}

	if deliveryAgentID != nil {
		if err := deliveryAgentID.Validate(); err != nil {
			return nil, err
		}
		agentID := *deliveryAgentID
		o.deliveryAgentID = &agentID
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.paymentMethod = paymentMethod
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.statusHistory = make([]StatusUpdate, len(statusHistory))
	copy(o.statusHistory, statusHistory)

	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// CustomerName returns the customer's display name captured at checkout.
func (o *Order) CustomerName() string { return o.customerName }

// VendorID returns the selling vendor's identifier.
func (o *Order) VendorID() kernel.UUID { return o.vendorID }

// LocationID returns the location the order was placed in.
func (o *Order) LocationID() location.ID { return o.locationID }

// DeliveryAgentID returns the assigned agent's identifier, or nil.
func (o *Order) DeliveryAgentID() *kernel.UUID {
	if o.deliveryAgentID == nil {
		return nil
	}
	agentID := *o.deliveryAgentID
	return &agentID
}

// LineItems returns a copy of the purchased items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// TotalAmount returns the order total, derived from the line items.
func (o *Order) TotalAmount() float64 { return o.totalAmount }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the payment side of the order.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// PaymentMethod returns the free-form payment method label.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation time.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// StatusHistory returns a copy of the append-only audit trail, oldest first.
func (o *Order) StatusHistory() []StatusUpdate {
	history := make([]StatusUpdate, len(o.statusHistory))
	copy(history, o.statusHistory)
	return history
}

// TransitionTo moves the order to newStatus, appending a history entry and
// bumping updatedAt. The transition table is authoritative: an edge absent
// from it yields an InvalidTransitionError and leaves the order untouched.
func (o *Order) TransitionTo(newStatus Status, updatedBy, note string) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	update, err := NewStatusUpdate(next, now, updatedBy, note)
	if err != nil {
		return err
	}

	o.statusHistory = append(o.statusHistory, update)
	o.status = next
	o.updatedAt = now
	return nil
}

// AssignAgent records the delivery agent responsible for the order. Agent
// availability is enforced by the dispatcher, not here.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	o.deliveryAgentID = &agentID
	o.updatedAt = time.Now().UTC()
	return nil
}

// SetPaymentStatus updates the payment side of the order.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerID = customerID
	o.customerName = customerName
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setLocationID(locationID location.ID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	o.locationID = locationID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	items := make([]LineItem, len(lineItems))
	copy(items, lineItems)

	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}

	o.lineItems = items
	o.totalAmount = total
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}
