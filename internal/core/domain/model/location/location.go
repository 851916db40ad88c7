package location

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through NewLocation or RestoreLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation or RestoreLocation")

// ErrLocationAlreadyExists is returned when the slug identifier is taken.
var ErrLocationAlreadyExists = errors.New("location already exists")

// ID is the admin-assigned slug identifier of a location node, for example
// "us", "us-ca", "us-ca-sf". IDs are chosen by operators, not generated.
type ID string

// Validate rejects the empty identifier.
func (id ID) Validate() error {
	if id == "" {
		return errs.NewValueIsRequiredError("location id")
	}
	return nil
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// Coordinates is an optional map pin for a location.
// Latitude is bounded to [-90, 90], longitude to [-180, 180].
type Coordinates struct {
	lat float64
	lng float64
}

// NewCoordinates creates validated coordinates.
func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("latitude", lat, -90, 90)
	}
	if lng < -180 || lng > 180 {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("longitude", lng, -180, 180)
	}
	return Coordinates{lat: lat, lng: lng}, nil
}

// Lat returns the latitude component.
func (c Coordinates) Lat() float64 { return c.lat }

// Lng returns the longitude component.
func (c Coordinates) Lng() float64 { return c.lng }

// Location is a node in the administrative hierarchy. It is an entity
// identified by its slug ID, carrying denormalized rollup counters
// (vendorCount, ordersCount, revenue) maintained by the stats refresh
// operation rather than recomputed on every read.
//
// Invariants:
//   - id and name are non-empty, locType is a known Type
//   - parentID, when set, is non-empty (existence is checked at the
//     application layer where the registry is available)
//   - the parent-link graph across all locations forms a forest
type Location struct {
	id          ID
	name        string
	locType     Type
	parentID    *ID
	vendorCount int
	ordersCount int
	revenue     float64
	active      bool
	coordinates *Coordinates

	guard guard.ConstructorGuard
}

// NewLocation creates a new active location with zeroed rollup counters.
// parentID and coordinates may be nil for root nodes and unmapped locations.
func NewLocation(id ID, name string, locType Type, parentID *ID, coordinates *Coordinates) (*Location, error) {
	loc := &Location{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setID(id),
		loc.setName(name),
		loc.setType(locType),
		loc.setParentID(parentID),
	); err != nil {
		return nil, err
	}

	loc.coordinates = coordinates
	return loc, nil
}

// RestoreLocation reconstructs a location from persistence, including its
// rollup counters and active flag.
func RestoreLocation(
	id ID,
	name string,
	locType Type,
	parentID *ID,
	vendorCount int,
	ordersCount int,
	revenue float64,
	active bool,
	coordinates *Coordinates,
) (*Location, error) {
	loc, err := NewLocation(id, name, locType, parentID, coordinates)
	if err != nil {
		return nil, err
	}

	if vendorCount < 0 || ordersCount < 0 || revenue < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("location stats",
			fmt.Errorf("counters must be non-negative"))
	}

	loc.vendorCount = vendorCount
	loc.ordersCount = ordersCount
	loc.revenue = revenue
	loc.active = active
	return loc, nil
}

// Validate ensures the location was built through a constructor.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// IsEqual compares locations by identifier.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id == other.id
}

// ID returns the location's slug identifier.
func (l *Location) ID() ID { return l.id }

// Name returns the display name.
func (l *Location) Name() string { return l.name }

// Type returns the administrative granularity of the node.
func (l *Location) Type() Type { return l.locType }

// ParentID returns the parent node's identifier, or nil for roots.
func (l *Location) ParentID() *ID { return l.parentID }

// IsRoot reports whether the location has no parent.
func (l *Location) IsRoot() bool { return l.parentID == nil }

// VendorCount returns the rolled-up number of vendors serving this location.
func (l *Location) VendorCount() int { return l.vendorCount }

// OrdersCount returns the rolled-up number of orders placed in this location.
func (l *Location) OrdersCount() int { return l.ordersCount }

// Revenue returns the rolled-up order revenue attributed to this location.
func (l *Location) Revenue() float64 { return l.revenue }

// Active reports whether the location is enabled for new activity.
func (l *Location) Active() bool { return l.active }

// Coordinates returns the optional map pin, or nil.
func (l *Location) Coordinates() *Coordinates { return l.coordinates }

// SetActive enables or disables the location.
func (l *Location) SetActive(active bool) {
	l.active = active
}

// SetStats replaces the denormalized rollup counters. Used by the stats
// refresh operation after recomputing aggregates from vendors and orders.
func (l *Location) SetStats(vendorCount, ordersCount int, revenue float64) error {
	if vendorCount < 0 || ordersCount < 0 || revenue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("location stats",
			fmt.Errorf("counters must be non-negative"))
	}
	l.vendorCount = vendorCount
	l.ordersCount = ordersCount
	l.revenue = revenue
	return nil
}

func (l *Location) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Location) setType(locType Type) error {
	if err := locType.Validate(); err != nil {
		return err
	}
	l.locType = locType
	return nil
}

func (l *Location) setParentID(parentID *ID) error {
	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return err
		}
	}
	l.parentID = parentID
	return nil
}
