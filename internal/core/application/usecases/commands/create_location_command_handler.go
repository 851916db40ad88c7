package commands

import (
	"context"

	"marketplace/internal/core/domain/model/location"
)

// CreateLocationCommandHandler handles the business logic for hierarchy growth.
// New nodes attach under an existing parent or become roots.
type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCreateLocationCommandHandler creates a handler for location creation.
func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location creation command.
// The slug must be free and the parent, when given, must already exist.
func (h *CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locationRepo := uow.LocationRepository()

	if existing, err := locationRepo.Get(ctx, cmd.LocationID()); err == nil && existing != nil {
		return location.ErrLocationAlreadyExists
	}

	if parentID := cmd.ParentID(); parentID != nil {
		if _, err := locationRepo.Get(ctx, *parentID); err != nil {
			return err
		}
	}

	aggregate, err := location.NewLocation(
		cmd.LocationID(), cmd.Name(), cmd.LocType(), cmd.ParentID(), cmd.Coordinates())
	if err != nil {
		return err
	}

	if err = locationRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
