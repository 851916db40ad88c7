package order

import (
	"time"

	"marketplace/internal/pkg/errs"
)

// StatusUpdate is one immutable entry in an order's audit trail: the status
// the order entered, when, by whom, and an optional free-form note.
type StatusUpdate struct {
	status    Status
	timestamp time.Time
	updatedBy string
	note      string
}

// NewStatusUpdate creates a validated history entry. The note may be empty.
func NewStatusUpdate(status Status, timestamp time.Time, updatedBy, note string) (StatusUpdate, error) {
	if err := status.Validate(); err != nil {
		return StatusUpdate{}, err
	}
	if updatedBy == "" {
		return StatusUpdate{}, errs.NewValueIsRequiredError("updatedBy")
	}
	if timestamp.IsZero() {
		return StatusUpdate{}, errs.NewValueIsRequiredError("timestamp")
	}

	return StatusUpdate{
		status:    status,
		timestamp: timestamp,
		updatedBy: updatedBy,
		note:      note,
	}, nil
}

// Status returns the status the order entered.
func (su StatusUpdate) Status() Status { return su.status }

// Timestamp returns when the update happened.
func (su StatusUpdate) Timestamp() time.Time { return su.timestamp }

// UpdatedBy returns the actor that performed the update.
func (su StatusUpdate) UpdatedBy() string { return su.updatedBy }

// Note returns the optional annotation, empty when none was given.
func (su StatusUpdate) Note() string { return su.note }
