package agentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAgentRepository implements AgentRepository using GORM.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new agent to the database.
func (r *GormAgentRepository) Add(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing agent to the database. Select("*") makes sure a
// cleared current_order_id is written back as NULL.
func (r *GormAgentRepository) Update(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AgentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("agentId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Delete removes an agent by identifier.
func (r *GormAgentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AgentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("agentId", id.String())
	}
	return nil
}

// Get retrieves an agent by ID.
func (r *GormAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agentId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered agent ordered by name.
func (r *GormAgentRepository) GetAll(ctx context.Context) ([]*agent.Agent, error) {
	var dtos []AgentDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	agents := make([]*agent.Agent, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, nil
}

// GormPerformanceRepository implements PerformanceRepository using GORM.
type GormPerformanceRepository struct {
	db *gorm.DB
}

// NewGormPerformanceRepository creates a new GORM performance repository.
func NewGormPerformanceRepository(db *gorm.DB) *GormPerformanceRepository {
	return &GormPerformanceRepository{db: db}
}

// Save upserts the row keyed by agent and day.
func (r *GormPerformanceRepository) Save(ctx context.Context, record *agent.PerformanceRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := performanceFromDomain(record)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "agent_id"}, {Name: "day"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetByAgentDay retrieves the row for one agent and calendar day.
func (r *GormPerformanceRepository) GetByAgentDay(
	ctx context.Context, agentID kernel.UUID, day time.Time,
) (*agent.PerformanceRecord, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	normalized := agent.Day(day)
	var dto PerformanceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "agent_id = ? AND day = ?", agentID.Bytes(), normalized).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("performanceRecord",
				fmt.Sprintf("%s@%s", agentID, normalized.Format(time.DateOnly)))
		}
		return nil, err
	}

	return performanceToDomain(dto)
}

// GetByAgent retrieves the agent's full history, most recent day first.
func (r *GormPerformanceRepository) GetByAgent(
	ctx context.Context, agentID kernel.UUID,
) ([]*agent.PerformanceRecord, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PerformanceDTO
	err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID.Bytes()).
		Order("day DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*agent.PerformanceRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := performanceToDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}
	return records, nil
}
