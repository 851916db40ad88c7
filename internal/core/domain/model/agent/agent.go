package agent

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	ratingMin = 0.0
	ratingMax = 5.0
)

var (
	// ErrAgentIsNotConstructed is returned when an Agent instance was not
	// created through NewAgent or RestoreAgent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent")

	// ErrAgentUnavailable is returned when a delivery is started for an agent
	// that is not in the available status.
	ErrAgentUnavailable = errors.New("delivery agent is not available")

	// ErrAgentNotOnDelivery is returned when a delivery is finished for an
	// agent that is not carrying an order.
	ErrAgentNotOnDelivery = errors.New("delivery agent is not on a delivery")

	// ErrAgentDeleteBlocked is returned when deleting an agent that is
	// currently carrying an order.
	ErrAgentDeleteBlocked = errors.New("delivery agent cannot be deleted while on a delivery")
)

// Agent is the aggregate root for a delivery person.
//
// Invariant: status == on_delivery ⇔ currentOrderID is set. StartDelivery
// and FinishDelivery maintain the pair together; SetStatus only switches
// between available and offline and refuses to touch an active delivery.
type Agent struct {
	id              kernel.UUID
	name            string
	phone           string
	assignedZoneIDs []location.ID
	active          bool
	rating          float64
	totalDeliveries int
	totalEarnings   float64
	status          Status
	currentOrderID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAgent creates a new active agent in the available status with no
// delivery history. A default rating of 5 is assigned until real ratings
// accumulate.
func NewAgent(id kernel.UUID, name, phone string, assignedZoneIDs []location.ID) (*Agent, error) {
	a := &Agent{
		active: true,
		rating: ratingMax,
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setAssignedZoneIDs(assignedZoneIDs),
	); err != nil {
		return nil, err
	}

	a.phone = phone
	return a, nil
}

// RestoreAgent reconstructs an agent from persistence, re-checking the
// status/current-order invariant.
func RestoreAgent(
	id kernel.UUID,
	name string,
	phone string,
	assignedZoneIDs []location.ID,
	active bool,
	rating float64,
	totalDeliveries int,
	totalEarnings float64,
	status Status,
	currentOrderID *kernel.UUID,
) (*Agent, error) {
	a := &Agent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setAssignedZoneIDs(assignedZoneIDs),
		a.setRating(rating),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if totalDeliveries < 0 || totalEarnings < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("agent totals",
			fmt.Errorf("delivery totals must be non-negative"))
	}

	hasOrder := currentOrderID != nil
	if hasOrder {
		if err := currentOrderID.Validate(); err != nil {
			return nil, err
		}
	}
	if hasOrder != (status == StatusOnDelivery) {
		return nil, errs.NewValueIsInvalidErrorWithCause("agent status",
			fmt.Errorf("status %s is inconsistent with current order presence %t", status, hasOrder))
	}

	a.phone = phone
	a.active = active
	a.totalDeliveries = totalDeliveries
	a.totalEarnings = totalEarnings
	a.status = status
	if hasOrder {
		orderID := *currentOrderID
		a.currentOrderID = &orderID
	}
	return a, nil
}

// Validate ensures the agent was built through a constructor.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares agents by identifier.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's identifier.
func (a *Agent) ID() kernel.UUID { return a.id }

// Name returns the agent's display name.
func (a *Agent) Name() string { return a.name }

// Phone returns the contact phone number, possibly empty.
func (a *Agent) Phone() string { return a.phone }

// AssignedZoneIDs returns a copy of the zones the agent covers.
func (a *Agent) AssignedZoneIDs() []location.ID {
	ids := make([]location.ID, len(a.assignedZoneIDs))
	copy(ids, a.assignedZoneIDs)
	return ids
}

// CoversZone reports whether the agent is assigned to the given zone.
func (a *Agent) CoversZone(id location.ID) bool {
	for _, zone := range a.assignedZoneIDs {
		if zone == id {
			return true
		}
	}
	return false
}

// Active reports whether the agent is enabled.
func (a *Agent) Active() bool { return a.active }

// Rating returns the agent's rating in [0, 5].
func (a *Agent) Rating() float64 { return a.rating }

// TotalDeliveries returns the lifetime number of completed deliveries.
func (a *Agent) TotalDeliveries() int { return a.totalDeliveries }

// TotalEarnings returns the lifetime commission earnings.
func (a *Agent) TotalEarnings() float64 { return a.totalEarnings }

// Status returns the availability status.
func (a *Agent) Status() Status { return a.status }

// CurrentOrderID returns the order being carried, or nil.
func (a *Agent) CurrentOrderID() *kernel.UUID {
	if a.currentOrderID == nil {
		return nil
	}
	orderID := *a.currentOrderID
	return &orderID
}

// IsAvailable reports whether the agent can take a new delivery.
func (a *Agent) IsAvailable() bool {
	return a.status == StatusAvailable
}

// StartDelivery flips an available agent to on_delivery carrying orderID.
// Any other starting status yields ErrAgentUnavailable.
func (a *Agent) StartDelivery(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if a.status != StatusAvailable {
		return fmt.Errorf("%w: status is %s", ErrAgentUnavailable, a.status)
	}

	a.status = StatusOnDelivery
	a.currentOrderID = &orderID
	return nil
}

// FinishDelivery completes the active delivery: the agent returns to
// available, the current order is cleared, and the lifetime totals grow by
// one delivery and the given earnings.
func (a *Agent) FinishDelivery(earnings float64) error {
	if a.status != StatusOnDelivery {
		return fmt.Errorf("%w: status is %s", ErrAgentNotOnDelivery, a.status)
	}
	if earnings < 0 {
		return errs.NewValueIsInvalidErrorWithCause("earnings",
			fmt.Errorf("%.2f is negative", earnings))
	}

	a.status = StatusAvailable
	a.currentOrderID = nil
	a.totalDeliveries++
	a.totalEarnings += earnings
	return nil
}

// SetStatus switches between available and offline. Entering or leaving
// on_delivery is reserved for StartDelivery/FinishDelivery.
func (a *Agent) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == StatusOnDelivery || a.status == StatusOnDelivery {
		return fmt.Errorf("%w: use StartDelivery/FinishDelivery", ErrAgentUnavailable)
	}

	a.status = status
	return nil
}

// CanBeDeleted reports whether removal is allowed. Agents carrying an order
// cannot be removed; the caller surfaces ErrAgentDeleteBlocked.
func (a *Agent) CanBeDeleted() bool {
	return a.status != StatusOnDelivery
}

// SetZones replaces the covered zones.
func (a *Agent) SetZones(zoneIDs []location.ID) error {
	return a.setAssignedZoneIDs(zoneIDs)
}

// SetRating replaces the rating, keeping it within bounds.
func (a *Agent) SetRating(rating float64) error {
	return a.setRating(rating)
}

// SetActive enables or disables the agent.
func (a *Agent) SetActive(active bool) { a.active = active }

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Agent) setAssignedZoneIDs(zoneIDs []location.ID) error {
	for _, id := range zoneIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	ids := make([]location.ID, len(zoneIDs))
	copy(ids, zoneIDs)
	a.assignedZoneIDs = ids
	return nil
}

func (a *Agent) setRating(rating float64) error {
	if rating < ratingMin || rating > ratingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}
	a.rating = rating
	return nil
}
