package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The state machine is a strict forward-progress DAG:
//
//	new ──> confirmed ──> processing ──> ready_to_ship ──> out_for_delivery ──> delivered ──> returned
//	 │          │             │               │                    │
//	 └──────────┴─────────────┴───────────────┴──> cancelled       └──> returned
//
// cancelled and returned are absorbing terminal states; delivered can still
// move to returned. No backward transitions exist.
type Status string

const (
	StatusNew            Status = "new"
	StatusConfirmed      Status = "confirmed"
	StatusProcessing     Status = "processing"
	StatusReadyToShip    Status = "ready_to_ship"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
	StatusReturned       Status = "returned"
)

// ErrInvalidTransition is the sentinel wrapped by InvalidTransitionError.
var ErrInvalidTransition = fmt.Errorf("invalid status transition")

// InvalidTransitionError reports a transition absent from the state machine.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// transitions is the single source of truth for status legality.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusNew:            {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusProcessing, StatusCancelled},
		StatusProcessing:     {StatusReadyToShip, StatusCancelled},
		StatusReadyToShip:    {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusReturned},
		StatusDelivered:      {StatusReturned},
		StatusCancelled:      {},
		StatusReturned:       {},
	}
}

func statusLabels() map[Status]string {
	return map[Status]string{
		StatusNew:            "New",
		StatusConfirmed:      "Confirmed",
		StatusProcessing:     "Processing",
		StatusReadyToShip:    "Ready to Ship",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
		StatusReturned:       "Returned",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusNew, StatusConfirmed, StatusProcessing, StatusReadyToShip,
		StatusOutForDelivery, StatusDelivered, StatusCancelled, StatusReturned,
	}
}

// Validate returns an error for statuses outside the known set.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Label returns the display label. It is total: unknown values echo their
// raw string.
func (s Status) Label() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return string(s)
}

// AllowedNext returns the statuses reachable from s in one step. Terminal
// and unknown statuses yield an empty slice.
func (s Status) AllowedNext() []Status {
	next := transitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether the edge s -> next exists in the table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s. Unknown statuses are
// not terminal; they are invalid.
func (s Status) IsTerminal() bool {
	next, ok := transitions()[s]
	return ok && len(next) == 0
}

// TransitionTo validates the edge s -> next and returns next, or an
// InvalidTransitionError when the edge is absent.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(next) {
		return "", &InvalidTransitionError{From: s, To: next}
	}
	return next, nil
}

// PaymentStatus tracks the payment side of an order, independent of the
// fulfillment state machine.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Validate returns an error for payment statuses outside the known set.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%q is not a valid payment status", string(p)))
	}
}
