package agent

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the availability state of a delivery agent.
type Status string

const (
	// StatusAvailable means the agent can take a new delivery.
	StatusAvailable Status = "available"
	// StatusOnDelivery means the agent is carrying an order right now.
	StatusOnDelivery Status = "on_delivery"
	// StatusOffline means the agent is off shift.
	StatusOffline Status = "offline"
)

func statusLabels() map[Status]string {
	return map[Status]string{
		StatusAvailable:  "Available",
		StatusOnDelivery: "On Delivery",
		StatusOffline:    "Offline",
	}
}

// AllStatuses lists the valid agent statuses.
func AllStatuses() []Status {
	return []Status{StatusAvailable, StatusOnDelivery, StatusOffline}
}

// Validate returns an error for statuses outside the known set.
func (s Status) Validate() error {
	if _, ok := statusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("agent status",
			fmt.Errorf("%q is not a valid agent status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Label returns the display label; unknown values echo their raw string.
func (s Status) Label() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return string(s)
}
