package agent

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Seed values for a fresh performance row. Until real observations feed the
// rating and delivery-time averages, new rows start from these placeholders.
const (
	defaultPerformanceRating       = 5.0
	defaultAverageDeliveryTimeMins = 30.0
)

// ErrPerformanceIsNotConstructed is returned when a PerformanceRecord was
// not created through NewPerformanceRecord or RestorePerformanceRecord.
var ErrPerformanceIsNotConstructed = errors.New(
	"PerformanceRecord must be created via NewPerformanceRecord or RestorePerformanceRecord")

// PerformanceRecord is the per-agent, per-day delivery aggregate. A row is
// upserted each time one of the agent's orders reaches delivered.
type PerformanceRecord struct {
	agentID             kernel.UUID
	day                 time.Time
	completedOrders     int
	earnings            float64
	rating              float64
	averageDeliveryTime float64

	constructed bool
}

// Day truncates a timestamp to its UTC calendar day, the upsert key of
// performance rows.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewPerformanceRecord creates an empty row for the agent and day, seeded
// with the default rating and delivery-time placeholders.
func NewPerformanceRecord(agentID kernel.UUID, day time.Time) (*PerformanceRecord, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}
	if day.IsZero() {
		return nil, errs.NewValueIsRequiredError("day")
	}

	return &PerformanceRecord{
		agentID:             agentID,
		day:                 Day(day),
		rating:              defaultPerformanceRating,
		averageDeliveryTime: defaultAverageDeliveryTimeMins,
		constructed:         true,
	}, nil
}

// RestorePerformanceRecord reconstructs a row from persistence.
func RestorePerformanceRecord(
	agentID kernel.UUID,
	day time.Time,
	completedOrders int,
	earnings float64,
	rating float64,
	averageDeliveryTime float64,
) (*PerformanceRecord, error) {
	record, err := NewPerformanceRecord(agentID, day)
	if err != nil {
		return nil, err
	}
	if completedOrders < 0 || earnings < 0 || averageDeliveryTime < 0 {
		return nil, errs.NewValueIsInvalidError("performance totals")
	}
	if rating < ratingMin || rating > ratingMax {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}

	record.completedOrders = completedOrders
	record.earnings = earnings
	record.rating = rating
	record.averageDeliveryTime = averageDeliveryTime
	return record, nil
}

// Validate ensures the record was built through a constructor.
func (p *PerformanceRecord) Validate() error {
	if p == nil || !p.constructed {
		return ErrPerformanceIsNotConstructed
	}
	return nil
}

// AgentID returns the owning agent's identifier.
func (p *PerformanceRecord) AgentID() kernel.UUID { return p.agentID }

// Day returns the UTC calendar day this row aggregates.
func (p *PerformanceRecord) Day() time.Time { return p.day }

// CompletedOrders returns the number of deliveries completed on the day.
func (p *PerformanceRecord) CompletedOrders() int { return p.completedOrders }

// Earnings returns the commission earned on the day.
func (p *PerformanceRecord) Earnings() float64 { return p.earnings }

// Rating returns the day's rating aggregate.
func (p *PerformanceRecord) Rating() float64 { return p.rating }

// AverageDeliveryTime returns the day's average delivery time in minutes.
func (p *PerformanceRecord) AverageDeliveryTime() float64 { return p.averageDeliveryTime }

// RecordDelivery adds one completed delivery and its earnings to the row.
func (p *PerformanceRecord) RecordDelivery(earnings float64) error {
	if earnings < 0 {
		return errs.NewValueIsInvalidError("earnings")
	}
	p.completedOrders++
	p.earnings += earnings
	return nil
}
