package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/errs"
)

func TestNewCreateVendorCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateVendorCommand(
		"Green Basket Grocers",
		[]location.ID{"us-ca-sf"},
		12,
		vendor.Contact{Email: "hello@greenbasket.example"},
	)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.NoError(t, cmd.VendorID().Validate())
	assert.Equal(t, "Green Basket Grocers", cmd.Name())
	assert.Equal(t, []location.ID{"us-ca-sf"}, cmd.LocationIDs())
	assert.InDelta(t, 12.0, cmd.CommissionRate(), 0.0001)
}

func TestNewCreateVendorCommand_InvalidInput(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := commands.NewCreateVendorCommand("", []location.ID{"us-ca-sf"}, 12, vendor.Contact{})
		require.ErrorIs(t, err, commands.ErrVendorNameIsRequired)
	})

	t.Run("no locations", func(t *testing.T) {
		_, err := commands.NewCreateVendorCommand("Green Basket Grocers", nil, 12, vendor.Contact{})
		require.ErrorIs(t, err, commands.ErrVendorLocationsAreNeeded)
	})
}

func TestCreateVendorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateVendorCommand(
		"Green Basket Grocers", []location.ID{"us-ca-sf"}, 12, vendor.Contact{})
	require.NoError(t, err)

	served := fixtureLocation(t, "us-ca-sf", location.TypeCity, nil)

	locationRepo := new(MockLocationRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", ctx, location.ID("us-ca-sf")).Return(served, nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("Add", ctx, mock.AnythingOfType("*vendor.Vendor")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVendorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateVendorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	vendorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateVendorCommandHandler_Handle_LocationMissing(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateVendorCommand(
		"Green Basket Grocers", []location.ID{"nowhere"}, 12, vendor.Contact{})
	require.NoError(t, err)

	locationRepo := new(MockLocationRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", ctx, location.ID("nowhere")).
			Return(nil, errs.NewObjectNotFoundError("location", "nowhere")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVendorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateVendorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	vendorRepo.AssertNotCalled(t, "Add")
}
