package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// txAccess is the shared access mode of every repository. With a unit of
// work the caller already holds the store lock between Begin and
// Commit/Rollback; standalone repositories (the read side) lock per call
// and journal nothing.
type txAccess struct {
	store *Store
	uow   *UnitOfWork
}

func (a txAccess) enter() (func(), error) {
	if a.uow != nil {
		if !a.uow.active {
			return nil, ErrNoActiveTransaction
		}
		return func() {}, nil
	}
	a.store.mu.Lock()
	return a.store.mu.Unlock, nil
}

func (a txAccess) journal(undo func()) {
	if a.uow != nil {
		a.uow.journal(undo)
	}
}

// Locations returns a standalone location repository with per-call locking.
func (s *Store) Locations() ports.LocationRepository {
	return &locationRepository{txAccess{store: s}}
}

// Vendors returns a standalone vendor repository with per-call locking.
func (s *Store) Vendors() ports.VendorRepository {
	return &vendorRepository{txAccess{store: s}}
}

// Orders returns a standalone order repository with per-call locking.
func (s *Store) Orders() ports.OrderRepository {
	return &orderRepository{txAccess{store: s}}
}

// Agents returns a standalone agent repository with per-call locking.
func (s *Store) Agents() ports.AgentRepository {
	return &agentRepository{txAccess{store: s}}
}

// Performance returns a standalone performance repository with per-call locking.
func (s *Store) Performance() ports.PerformanceRepository {
	return &performanceRepository{txAccess{store: s}}
}

// Notifications returns a standalone notification repository with per-call locking.
func (s *Store) Notifications() ports.NotificationRepository {
	return &notificationRepository{txAccess{store: s}}
}

type locationRepository struct {
	txAccess
}

func (r *locationRepository) Add(_ context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	if _, ok := r.store.locations[aggregate.ID()]; ok {
		return fmt.Errorf("%w: %s", location.ErrLocationAlreadyExists, aggregate.ID())
	}

	id := aggregate.ID()
	r.journal(func() { delete(r.store.locations, id) })
	r.store.locations[id] = locationRecordFromDomain(aggregate)
	return nil
}

func (r *locationRepository) Update(_ context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	id := aggregate.ID()
	prev, ok := r.store.locations[id]
	if !ok {
		return errs.NewObjectNotFoundError("locationId", id.String())
	}

	r.journal(func() { r.store.locations[id] = prev })
	r.store.locations[id] = locationRecordFromDomain(aggregate)
	return nil
}

func (r *locationRepository) Get(_ context.Context, id location.ID) (*location.Location, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	record, ok := r.store.locations[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("locationId", id.String())
	}
	return record.toDomain()
}

func (r *locationRepository) GetAll(_ context.Context) ([]*location.Location, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	records := make([]locationRecord, 0, len(r.store.locations))
	for _, record := range r.store.locations {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	return mapRecords(records, locationRecord.toDomain)
}

type vendorRepository struct {
	txAccess
}

func (r *vendorRepository) Add(_ context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	id := aggregate.ID()
	if _, ok := r.store.vendors[id]; ok {
		return errs.NewValueIsInvalidErrorWithCause("vendorId",
			fmt.Errorf("%s already exists", id))
	}

	r.journal(func() { delete(r.store.vendors, id) })
	r.store.vendors[id] = vendorRecordFromDomain(aggregate)
	return nil
}

func (r *vendorRepository) Update(_ context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	id := aggregate.ID()
	prev, ok := r.store.vendors[id]
	if !ok {
		return errs.NewObjectNotFoundError("vendorId", id.String())
	}

	r.journal(func() { r.store.vendors[id] = prev })
	r.store.vendors[id] = vendorRecordFromDomain(aggregate)
	return nil
}

func (r *vendorRepository) Delete(_ context.Context, id kernel.UUID) error {
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	prev, ok := r.store.vendors[id]
	if !ok {
		return errs.NewObjectNotFoundError("vendorId", id.String())
	}

	r.journal(func() { r.store.vendors[id] = prev })
	delete(r.store.vendors, id)
	return nil
}

func (r *vendorRepository) Get(_ context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	record, ok := r.store.vendors[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("vendorId", id.String())
	}
	return record.toDomain()
}

func (r *vendorRepository) GetAll(_ context.Context) ([]*vendor.Vendor, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	return mapRecords(sortedVendorRecords(r.store.vendors), vendorRecord.toDomain)
}

func (r *vendorRepository) GetByLocation(_ context.Context, id location.ID) ([]*vendor.Vendor, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	records := make([]vendorRecord, 0)
	for _, record := range sortedVendorRecords(r.store.vendors) {
		for _, served := range record.LocationIDs {
			if served == id {
				records = append(records, record)
				break
			}
		}
	}
	return mapRecords(records, vendorRecord.toDomain)
}

// sortedVendorRecords lists vendors oldest joiner first.
func sortedVendorRecords(vendors map[kernel.UUID]vendorRecord) []vendorRecord {
	records := make([]vendorRecord, 0, len(vendors))
	for _, record := range vendors {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].JoinedDate.Equal(records[j].JoinedDate) {
			return records[i].JoinedDate.Before(records[j].JoinedDate)
		}
		return records[i].ID.String() < records[j].ID.String()
	})
	return records
}

type orderRepository struct {
	txAccess
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	id := aggregate.ID()
	if _, ok := r.store.orders[id]; ok {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%s already exists", id))
	}

	r.journal(func() { delete(r.store.orders, id) })
	r.store.orders[id] = orderRecordFromDomain(aggregate)
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	id := aggregate.ID()
	prev, ok := r.store.orders[id]
	if !ok {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	r.journal(func() { r.store.orders[id] = prev })
	r.store.orders[id] = orderRecordFromDomain(aggregate)
	return nil
}

func (r *orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	record, ok := r.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return record.toDomain()
}

func (r *orderRepository) GetAll(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	records := make([]orderRecord, 0, len(r.store.orders))
	for _, record := range r.store.orders {
		if orderMatches(record, filter.Status, filter.VendorID, filter.LocationID) {
			records = append(records, record)
		}
	}
	// Newest first; identifier breaks creation-time ties.
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID.String() < records[j].ID.String()
	})

	return mapRecords(records, orderRecord.toDomain)
}

func (r *orderRepository) CountOpenByVendor(_ context.Context, vendorID kernel.UUID) (int, error) {
	release, err := r.enter()
	if err != nil {
		return 0, err
	}
	defer release()

	count := 0
	for _, record := range r.store.orders {
		if record.VendorID.IsEqual(vendorID) && !record.Status.IsTerminal() {
			count++
		}
	}
	return count, nil
}

type agentRepository struct {
	txAccess
}

func (r *agentRepository) Add(_ context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	id := aggregate.ID()
	if _, ok := r.store.agents[id]; ok {
		return errs.NewValueIsInvalidErrorWithCause("agentId",
			fmt.Errorf("%s already exists", id))
	}

	r.journal(func() { delete(r.store.agents, id) })
	r.store.agents[id] = agentRecordFromDomain(aggregate)
	return nil
}

func (r *agentRepository) Update(_ context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	id := aggregate.ID()
	prev, ok := r.store.agents[id]
	if !ok {
		return errs.NewObjectNotFoundError("agentId", id.String())
	}

	r.journal(func() { r.store.agents[id] = prev })
	r.store.agents[id] = agentRecordFromDomain(aggregate)
	return nil
}

func (r *agentRepository) Delete(_ context.Context, id kernel.UUID) error {
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	prev, ok := r.store.agents[id]
	if !ok {
		return errs.NewObjectNotFoundError("agentId", id.String())
	}

	r.journal(func() { r.store.agents[id] = prev })
	delete(r.store.agents, id)
	return nil
}

func (r *agentRepository) Get(_ context.Context, id kernel.UUID) (*agent.Agent, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	record, ok := r.store.agents[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("agentId", id.String())
	}
	return record.toDomain()
}

func (r *agentRepository) GetAll(_ context.Context) ([]*agent.Agent, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	records := make([]agentRecord, 0, len(r.store.agents))
	for _, record := range r.store.agents {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Name != records[j].Name {
			return records[i].Name < records[j].Name
		}
		return records[i].ID.String() < records[j].ID.String()
	})

	return mapRecords(records, agentRecord.toDomain)
}

type performanceRepository struct {
	txAccess
}

func (r *performanceRepository) Save(_ context.Context, record *agent.PerformanceRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	key := performanceKey{agentID: record.AgentID(), day: record.Day()}
	prev, existed := r.store.performance[key]
	r.journal(func() {
		if existed {
			r.store.performance[key] = prev
		} else {
			delete(r.store.performance, key)
		}
	})
	r.store.performance[key] = performanceRecordFromDomain(record)
	return nil
}

func (r *performanceRepository) GetByAgentDay(
	_ context.Context, agentID kernel.UUID, day time.Time,
) (*agent.PerformanceRecord, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	key := performanceKey{agentID: agentID, day: agent.Day(day)}
	record, ok := r.store.performance[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("performanceRecord",
			fmt.Sprintf("%s@%s", agentID, key.day.Format(time.DateOnly)))
	}
	return record.toDomain()
}

func (r *performanceRepository) GetByAgent(
	_ context.Context, agentID kernel.UUID,
) ([]*agent.PerformanceRecord, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	records := make([]performanceRecord, 0)
	for _, record := range r.store.performance {
		if record.AgentID.IsEqual(agentID) {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Day.After(records[j].Day) })

	return mapRecords(records, performanceRecord.toDomain)
}

type notificationRepository struct {
	txAccess
}

func (r *notificationRepository) Add(_ context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	id := aggregate.ID()
	if _, ok := r.store.notifications[id]; ok {
		return errs.NewValueIsInvalidErrorWithCause("notificationId",
			fmt.Errorf("%s already exists", id))
	}

	r.journal(func() { delete(r.store.notifications, id) })
	r.store.notifications[id] = notificationRecordFromDomain(aggregate)
	return nil
}

func (r *notificationRepository) Update(_ context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	id := aggregate.ID()
	prev, ok := r.store.notifications[id]
	if !ok {
		return errs.NewObjectNotFoundError("notificationId", id.String())
	}

	r.journal(func() { r.store.notifications[id] = prev })
	r.store.notifications[id] = notificationRecordFromDomain(aggregate)
	return nil
}

func (r *notificationRepository) Get(
	_ context.Context, id kernel.UUID,
) (*notification.Notification, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	record, ok := r.store.notifications[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("notificationId", id.String())
	}
	return record.toDomain()
}

func (r *notificationRepository) GetByAgent(
	_ context.Context, agentID kernel.UUID,
) ([]*notification.Notification, error) {
	release, err := r.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	records := make([]notificationRecord, 0)
	for _, record := range r.store.notifications {
		if record.AgentID.IsEqual(agentID) {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Timestamp.Equal(records[j].Timestamp) {
			return records[i].Timestamp.After(records[j].Timestamp)
		}
		return records[i].ID.String() < records[j].ID.String()
	})

	return mapRecords(records, notificationRecord.toDomain)
}

func (r *notificationRepository) DeletePurgeable(_ context.Context, olderThan time.Time) (int, error) {
	release, err := r.enter()
	if err != nil {
		return 0, err
	}
	defer release()

	purged := 0
	for id, record := range r.store.notifications {
		if !record.Read || !record.Timestamp.Before(olderThan) {
			continue
		}
		r.journal(func() { r.store.notifications[id] = record })
		delete(r.store.notifications, id)
		purged++
	}
	return purged, nil
}

// mapRecords reconstructs aggregates from snapshot records, failing on the
// first corrupt row.
func mapRecords[R any, A any](records []R, toDomain func(R) (*A, error)) ([]*A, error) {
	aggregates := make([]*A, 0, len(records))
	for _, record := range records {
		aggregate, err := toDomain(record)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}
	return aggregates, nil
}
