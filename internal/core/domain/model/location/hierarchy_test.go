package location_test

import (
	"testing"

	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indiaFixture builds india -> maharashtra -> mumbai plus a sibling state.
func indiaFixture(t *testing.T) []*location.Location {
	t.Helper()
	return []*location.Location{
		mustLocation(t, "india", "India", location.TypeCountry, nil),
		mustLocation(t, "maharashtra", "Maharashtra", location.TypeState, parentOf("india")),
		mustLocation(t, "mumbai", "Mumbai", location.TypeCity, parentOf("maharashtra")),
		mustLocation(t, "karnataka", "Karnataka", location.TypeState, parentOf("india")),
	}
}

func TestBuildPath(t *testing.T) {
	t.Run("returns root to node chain", func(t *testing.T) {
		index := location.Index(indiaFixture(t))

		path, err := location.BuildPath(index, "mumbai")

		require.NoError(t, err)
		require.Len(t, path, 3)
		assert.Equal(t, location.ID("india"), path[0].ID())
		assert.Equal(t, location.ID("maharashtra"), path[1].ID())
		assert.Equal(t, location.ID("mumbai"), path[2].ID())

		// Every consecutive pair is a parent/child link.
		for i := 0; i < len(path)-1; i++ {
			require.NotNil(t, path[i+1].ParentID())
			assert.Equal(t, path[i].ID(), *path[i+1].ParentID())
		}
		assert.True(t, path[0].IsRoot())
	})

	t.Run("root path is the node itself", func(t *testing.T) {
		index := location.Index(indiaFixture(t))

		path, err := location.BuildPath(index, "india")

		require.NoError(t, err)
		require.Len(t, path, 1)
		assert.Equal(t, location.ID("india"), path[0].ID())
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		index := location.Index(indiaFixture(t))

		_, err := location.BuildPath(index, "atlantis")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("dangling parent truncates the path", func(t *testing.T) {
		orphan := mustLocation(t, "pune", "Pune", location.TypeCity, parentOf("gone"))
		index := location.Index([]*location.Location{orphan})

		path, err := location.BuildPath(index, "pune")

		require.NoError(t, err)
		require.Len(t, path, 1)
		assert.Equal(t, location.ID("pune"), path[0].ID())
	})

	t.Run("cycle fails fast", func(t *testing.T) {
		a := mustLocation(t, "a", "A", location.TypeState, parentOf("b"))
		b := mustLocation(t, "b", "B", location.TypeState, parentOf("a"))
		index := location.Index([]*location.Location{a, b})

		_, err := location.BuildPath(index, "a")

		require.ErrorIs(t, err, location.ErrHierarchyCycle)
	})

	t.Run("self-parent fails fast", func(t *testing.T) {
		selfish := mustLocation(t, "loop", "Loop", location.TypeZone, parentOf("loop"))
		index := location.Index([]*location.Location{selfish})

		_, err := location.BuildPath(index, "loop")

		require.ErrorIs(t, err, location.ErrHierarchyCycle)
	})
}

func TestChildren(t *testing.T) {
	all := indiaFixture(t)

	t.Run("nil parent selects roots", func(t *testing.T) {
		roots := location.Children(all, nil)

		require.Len(t, roots, 1)
		assert.Equal(t, location.ID("india"), roots[0].ID())
	})

	t.Run("children of a node preserve input order", func(t *testing.T) {
		states := location.Children(all, parentOf("india"))

		require.Len(t, states, 2)
		assert.Equal(t, location.ID("maharashtra"), states[0].ID())
		assert.Equal(t, location.ID("karnataka"), states[1].ID())
	})

	t.Run("is idempotent without intervening mutation", func(t *testing.T) {
		first := location.Children(all, parentOf("india"))
		second := location.Children(all, parentOf("india"))

		assert.Equal(t, first, second)
	})

	t.Run("leaf has no children", func(t *testing.T) {
		assert.Empty(t, location.Children(all, parentOf("mumbai")))
	})
}

func TestComputeStats(t *testing.T) {
	t.Run("counts and top revenue", func(t *testing.T) {
		us, err := location.RestoreLocation("us", "United States", location.TypeCountry, nil, 245, 12500, 2450000, true, nil)
		require.NoError(t, err)
		uk, err := location.RestoreLocation("uk", "United Kingdom", location.TypeCountry, nil, 112, 5400, 980000, true, nil)
		require.NoError(t, err)
		ca, err := location.RestoreLocation("ca", "Canada", location.TypeCountry, nil, 87, 3200, 520000, true, nil)
		require.NoError(t, err)
		sf, err := location.RestoreLocation("us-ca-sf", "San Francisco", location.TypeCity, parentOf("us-ca"), 48, 3100, 620000, true, nil)
		require.NoError(t, err)

		stats := location.ComputeStats([]*location.Location{us, uk, ca, sf})

		assert.Equal(t, 4, stats.TotalLocations)
		assert.Equal(t, 3, stats.CountByType[location.TypeCountry])
		assert.Equal(t, 1, stats.CountByType[location.TypeCity])
		assert.Equal(t, 0, stats.CountByType[location.TypeZone])

		require.Len(t, stats.TopByRevenue, 4)
		assert.Equal(t, location.ID("us"), stats.TopByRevenue[0].ID())
		assert.Equal(t, location.ID("uk"), stats.TopByRevenue[1].ID())
		assert.Equal(t, location.ID("us-ca-sf"), stats.TopByRevenue[2].ID())
		assert.Equal(t, location.ID("ca"), stats.TopByRevenue[3].ID())
	})

	t.Run("caps leaderboard at five and keeps ties stable", func(t *testing.T) {
		all := make([]*location.Location, 0, 7)
		for _, id := range []location.ID{"l1", "l2", "l3", "l4", "l5", "l6", "l7"} {
			loc, err := location.RestoreLocation(id, string(id), location.TypeZone, nil, 0, 0, 1000, true, nil)
			require.NoError(t, err)
			all = append(all, loc)
		}

		stats := location.ComputeStats(all)

		require.Len(t, stats.TopByRevenue, 5)
		for i, id := range []location.ID{"l1", "l2", "l3", "l4", "l5"} {
			assert.Equal(t, id, stats.TopByRevenue[i].ID())
		}
	})
}
