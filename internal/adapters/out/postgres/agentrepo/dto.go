// Package agentrepo provides data transfer objects and mapping functions for
// delivery agent persistence, including the per-day performance rows.
package agentrepo

import (
	"time"

	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
type AgentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Phone           string     `gorm:"type:varchar(64);not null"`
	AssignedZoneIDs []string   `gorm:"serializer:json;type:jsonb;not null"`
	Active          bool       `gorm:"not null"`
	Rating          float64    `gorm:"not null"`
	TotalDeliveries int        `gorm:"not null"`
	TotalEarnings   float64    `gorm:"not null"`
	Status          string     `gorm:"type:varchar(32);not null;index"`
	CurrentOrderID  *uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides GORM's default naming to use "agents".
func (AgentDTO) TableName() string {
	return "agents"
}

// PerformanceDTO represents one per-day performance row, keyed by agent and day.
type PerformanceDTO struct {
	AgentID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Day                 time.Time `gorm:"type:date;primaryKey"`
	CompletedOrders     int       `gorm:"not null"`
	Earnings            float64   `gorm:"not null"`
	Rating              float64   `gorm:"not null"`
	AverageDeliveryTime float64   `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "agent_performance".
func (PerformanceDTO) TableName() string {
	return "agent_performance"
}

func fromDomain(a *agent.Agent) AgentDTO {
	zoneIDs := make([]string, 0, len(a.AssignedZoneIDs()))
	for _, id := range a.AssignedZoneIDs() {
		zoneIDs = append(zoneIDs, id.String())
	}

	var currentOrderID *uuid.UUID
	if id := a.CurrentOrderID(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return AgentDTO{
		ID:              a.ID().Bytes(),
		Name:            a.Name(),
		Phone:           a.Phone(),
		AssignedZoneIDs: zoneIDs,
		Active:          a.Active(),
		Rating:          a.Rating(),
		TotalDeliveries: a.TotalDeliveries(),
		TotalEarnings:   a.TotalEarnings(),
		Status:          string(a.Status()),
		CurrentOrderID:  currentOrderID,
	}
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zoneIDs := make([]location.ID, 0, len(dto.AssignedZoneIDs))
	for _, raw := range dto.AssignedZoneIDs {
		zoneIDs = append(zoneIDs, location.ID(raw))
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &oID
	}

	return agent.RestoreAgent(id, dto.Name, dto.Phone, zoneIDs, dto.Active,
		dto.Rating, dto.TotalDeliveries, dto.TotalEarnings,
		agent.Status(dto.Status), currentOrderID)
}

func performanceFromDomain(record *agent.PerformanceRecord) PerformanceDTO {
	return PerformanceDTO{
		AgentID:             record.AgentID().Bytes(),
		Day:                 record.Day(),
		CompletedOrders:     record.CompletedOrders(),
		Earnings:            record.Earnings(),
		Rating:              record.Rating(),
		AverageDeliveryTime: record.AverageDeliveryTime(),
	}
}

func performanceToDomain(dto PerformanceDTO) (*agent.PerformanceRecord, error) {
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	return agent.RestorePerformanceRecord(agentID, dto.Day, dto.CompletedOrders,
		dto.Earnings, dto.Rating, dto.AverageDeliveryTime)
}
