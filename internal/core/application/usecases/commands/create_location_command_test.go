package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/location"
)

func TestNewCreateLocationCommand_ValidInput(t *testing.T) {
	parentID := location.ID("us")

	cmd, err := commands.NewCreateLocationCommand(
		"us-ca", "California", location.TypeState, &parentID, nil)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, location.ID("us-ca"), cmd.LocationID())
	assert.Equal(t, "California", cmd.Name())
	assert.Equal(t, location.TypeState, cmd.LocType())
	require.NotNil(t, cmd.ParentID())
	assert.Equal(t, parentID, *cmd.ParentID())
}

func TestNewCreateLocationCommand_RootNode(t *testing.T) {
	cmd, err := commands.NewCreateLocationCommand(
		"us", "United States", location.TypeCountry, nil, nil)

	require.NoError(t, err)
	assert.Nil(t, cmd.ParentID())
}

func TestNewCreateLocationCommand_InvalidInput(t *testing.T) {
	emptyParent := location.ID("")

	testCases := []struct {
		name     string
		id       location.ID
		locName  string
		locType  location.Type
		parentID *location.ID
	}{
		{name: "empty slug", id: "", locName: "California", locType: location.TypeState},
		{name: "empty name", id: "us-ca", locName: "", locType: location.TypeState},
		{name: "unknown type", id: "us-ca", locName: "California", locType: location.Type("region")},
		{name: "empty parent slug", id: "us-ca", locName: "California", locType: location.TypeState, parentID: &emptyParent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateLocationCommand(tc.id, tc.locName, tc.locType, tc.parentID, nil)
			require.Error(t, err)
		})
	}
}

func TestCreateLocationCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateLocationCommand

	err := cmd.Validate()

	require.ErrorIs(t, err, commands.ErrCreateLocationCommandIsNotConstructed)
}
