package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateLocationCommandIsNotConstructed = errors.New(
		"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
	)
	ErrLocationNameIsRequired = errors.New("location name is required")
)

// CreateLocationCommand represents a request to add a node to the location
// hierarchy. The slug identifier is admin-assigned; the parent is optional
// and must already exist when set.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID  location.ID
	name        string
	locType     location.Type
	parentID    *location.ID
	coordinates *location.Coordinates

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand creates a command to register a hierarchy node.
// Validates the slug, name, and type; parent existence is checked by the handler.
func NewCreateLocationCommand(
	locationID location.ID,
	name string,
	locType location.Type,
	parentID *location.ID,
	coordinates *location.Coordinates,
) (CreateLocationCommand, error) {
	cmd := CreateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLocationID(locationID),
		cmd.setName(name),
		cmd.setLocType(locType),
		cmd.setParentID(parentID),
	); err != nil {
		return CreateLocationCommand{}, err
	}

	cmd.coordinates = coordinates
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

// LocationID returns the slug identifier for the new node.
func (c CreateLocationCommand) LocationID() location.ID {
	return c.locationID
}

// Name returns the display name.
func (c CreateLocationCommand) Name() string {
	return c.name
}

// LocType returns the hierarchy level.
func (c CreateLocationCommand) LocType() location.Type {
	return c.locType
}

// ParentID returns the parent slug, or nil for a root node.
func (c CreateLocationCommand) ParentID() *location.ID {
	return c.parentID
}

// Coordinates returns the optional geo coordinates.
func (c CreateLocationCommand) Coordinates() *location.Coordinates {
	return c.coordinates
}

func (c *CreateLocationCommand) setLocationID(locationID location.ID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateLocationCommand) setName(name string) error {
	if name == "" {
		return ErrLocationNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateLocationCommand) setLocType(locType location.Type) error {
	if err := locType.Validate(); err != nil {
		return err
	}

	c.locType = locType
	return nil
}

func (c *CreateLocationCommand) setParentID(parentID *location.ID) error {
	if parentID == nil {
		c.parentID = nil
		return nil
	}
	if err := parentID.Validate(); err != nil {
		return err
	}

	parent := *parentID
	c.parentID = &parent
	return nil
}
