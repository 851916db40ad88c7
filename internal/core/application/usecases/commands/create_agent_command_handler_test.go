package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/location"
)

func TestNewCreateAgentCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateAgentCommand(
		"Priya Sharma", "+91-98100-00001", []location.ID{"in-mh-mumbai-andheri"})

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.NoError(t, cmd.AgentID().Validate())
	assert.Equal(t, "Priya Sharma", cmd.Name())
	assert.Equal(t, []location.ID{location.ID("in-mh-mumbai-andheri")}, cmd.ZoneIDs())
}

func TestNewCreateAgentCommand_InvalidInput(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := commands.NewCreateAgentCommand("", "", []location.ID{"in-mh-mumbai-andheri"})
		require.ErrorIs(t, err, commands.ErrAgentNameIsRequired)
	})

	t.Run("empty zone slug", func(t *testing.T) {
		_, err := commands.NewCreateAgentCommand("Priya Sharma", "", []location.ID{""})
		require.Error(t, err)
	})
}

func TestCreateAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAgentCommand(
		"Priya Sharma", "+91-98100-00001", []location.ID{"in-mh-mumbai-andheri"})
	require.NoError(t, err)

	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Add", ctx, mock.AnythingOfType("*agent.Agent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateAgentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := agentRepo.Calls[0].Arguments[1].(*agent.Agent)
	assert.Equal(t, agent.StatusAvailable, added.Status())
	assert.True(t, added.Active())
	assert.InDelta(t, 5.0, added.Rating(), 0.0001)
	agentRepo.AssertExpectations(t)
}
