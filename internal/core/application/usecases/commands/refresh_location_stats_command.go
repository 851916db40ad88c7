package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrRefreshLocationStatsCommandIsNotConstructed = errors.New(
	"RefreshLocationStatsCommand must be created via NewRefreshLocationStatsCommand constructor",
)

// RefreshLocationStatsCommand represents a request to recompute the
// per-location vendor, order, and revenue rollups. It carries no parameters;
// the whole hierarchy is refreshed in one pass.
type RefreshLocationStatsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshLocationStatsCommand creates a command to refresh location stats.
func NewRefreshLocationStatsCommand() RefreshLocationStatsCommand {
	return RefreshLocationStatsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RefreshLocationStatsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshLocationStatsCommandIsNotConstructed)
}
