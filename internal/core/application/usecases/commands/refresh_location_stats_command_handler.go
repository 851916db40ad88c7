package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// RefreshLocationStatsCommandHandler recomputes the per-location rollups.
//
// Vendor counts are direct: a vendor counts toward each location it serves.
// Order counts and revenue roll up from the order's location through every
// ancestor, so a city order also counts for its state and country. Revenue
// sums the totals of delivered orders only.
type RefreshLocationStatsCommandHandler struct {
	uowFactory StatsUoWFactory
}

// NewRefreshLocationStatsCommandHandler creates a handler for the stats rollup.
func NewRefreshLocationStatsCommandHandler(uowFactory StatsUoWFactory) RefreshLocationStatsCommandHandler {
	return RefreshLocationStatsCommandHandler{
		uowFactory: uowFactory,
	}
}

type locationTally struct {
	vendorCount int
	ordersCount int
	revenue     float64
}

// Handle processes the stats refresh command.
// A cycle in the hierarchy aborts the whole refresh.
func (h *RefreshLocationStatsCommandHandler) Handle(ctx context.Context, cmd RefreshLocationStatsCommand) error {
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
	locations, err := locationRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	vendors, err := uow.VendorRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	orders, err := uow.OrderRepository().GetAll(ctx, ports.OrderFilter{})
	if err != nil {
		return err
	}

	index := location.Index(locations)
	tallies := make(map[location.ID]*locationTally, len(locations))
	for _, loc := range locations {
		tallies[loc.ID()] = &locationTally{}
	}

	for _, v := range vendors {
		for _, locationID := range v.LocationIDs() {
			if tally, ok := tallies[locationID]; ok {
				tally.vendorCount++
			}
		}
	}

	for _, o := range orders {
		path, pathErr := location.BuildPath(index, o.LocationID())
		if pathErr != nil {
			if errors.Is(pathErr, location.ErrHierarchyCycle) {
				return pathErr
			}
			if errors.Is(pathErr, errs.ErrObjectNotFound) {
				continue
			}
			return pathErr
		}

		for _, node := range path {
			tally := tallies[node.ID()]
			tally.ordersCount++
			if o.Status() == order.StatusDelivered {
				tally.revenue += o.TotalAmount()
			}
		}
	}

	for _, loc := range locations {
		tally := tallies[loc.ID()]
		if err = loc.SetStats(tally.vendorCount, tally.ordersCount, tally.revenue); err != nil {
			return err
		}
		if err = locationRepo.Update(ctx, loc); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
