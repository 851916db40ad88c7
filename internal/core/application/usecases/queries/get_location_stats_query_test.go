package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/location"
)

func Test_GetLocationStatsQueryHandler_Handle(t *testing.T) {
	t.Run("aggregates counts and revenue leaders", func(t *testing.T) {
		ctx := t.Context()

		us := fixtureLocation(t, "us", location.TypeCountry, nil)
		ca := fixtureLocation(t, "us-ca", location.TypeState, ptr(us.ID()))
		sf := fixtureLocation(t, "us-ca-sf", location.TypeCity, ptr(ca.ID()))
		require.NoError(t, us.SetStats(4, 20, 900.0))
		require.NoError(t, ca.SetStats(4, 20, 900.0))
		require.NoError(t, sf.SetStats(2, 12, 480.0))

		locationsMock := &MockLocationRepository{}
		locationsMock.On("GetAll", ctx).Return([]*location.Location{sf, us, ca}, nil)

		handler := queries.NewGetLocationStatsQueryHandler(locationsMock)
		response, err := handler.Handle(ctx, queries.NewGetLocationStatsQuery())

		require.NoError(t, err)
		assert.Equal(t, 3, response.TotalLocations)
		assert.Equal(t, 1, response.CountByType[location.TypeCountry])
		assert.Equal(t, 1, response.CountByType[location.TypeState])
		assert.Equal(t, 1, response.CountByType[location.TypeCity])
		assert.Equal(t, 0, response.CountByType[location.TypeZone])
		require.Len(t, response.TopByRevenue, 3)
		assert.Equal(t, 900.0, response.TopByRevenue[0].Revenue)
		assert.Equal(t, 480.0, response.TopByRevenue[2].Revenue)
		locationsMock.AssertExpectations(t)
	})

	t.Run("empty hierarchy", func(t *testing.T) {
		ctx := t.Context()

		locationsMock := &MockLocationRepository{}
		locationsMock.On("GetAll", ctx).Return([]*location.Location{}, nil)

		handler := queries.NewGetLocationStatsQueryHandler(locationsMock)
		response, err := handler.Handle(ctx, queries.NewGetLocationStatsQuery())

		require.NoError(t, err)
		assert.Equal(t, 0, response.TotalLocations)
		assert.Empty(t, response.TopByRevenue)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		handler := queries.NewGetLocationStatsQueryHandler(&MockLocationRepository{})

		_, err := handler.Handle(t.Context(), queries.GetLocationStatsQuery{})

		assert.ErrorIs(t, err, queries.ErrGetLocationStatsQueryIsNotConstructed)
	})
}
