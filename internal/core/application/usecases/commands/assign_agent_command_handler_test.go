package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

func TestAssignAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := fixtureOrder(t, fixtureVendor(t, "us-ca-sf").ID(), "us-ca-sf")
	a := fixtureAgent(t, "us-ca-sf")
	cmd, err := commands.NewAssignAgentCommand(o.ID(), a.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		agentRepo.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		agentRepo.On("Update", ctx, mock.AnythingOfType("*agent.Agent")).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignAgentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, agent.StatusOnDelivery, a.Status())
	require.NotNil(t, o.DeliveryAgentID())
	assert.True(t, a.ID().IsEqual(*o.DeliveryAgentID()))

	added := notificationRepo.Calls[0].Arguments[1].(*notification.Notification)
	assert.Equal(t, notification.TypeAssignment, added.Type())
	assert.Equal(t, a.ID(), added.AgentID())
	assert.Equal(t, o.ID(), added.OrderID())

	orderRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignAgentCommandHandler_Handle_AgentUnavailable(t *testing.T) {
	ctx := t.Context()
	o := fixtureOrder(t, fixtureVendor(t, "us-ca-sf").ID(), "us-ca-sf")
	a := fixtureAgent(t, "us-ca-sf")
	require.NoError(t, a.SetStatus(agent.StatusOffline))

	cmd, err := commands.NewAssignAgentCommand(o.ID(), a.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		agentRepo.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignAgentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, agent.ErrAgentUnavailable)
	orderRepo.AssertNotCalled(t, "Update")
}

func TestAssignAgentCommandHandler_Handle_OrderAlreadyCarried(t *testing.T) {
	ctx := t.Context()
	o := fixtureOrder(t, fixtureVendor(t, "us-ca-sf").ID(), "us-ca-sf")
	carrier := fixtureAgent(t, "us-ca-sf")
	require.NoError(t, o.AssignAgent(carrier.ID()))

	a := fixtureAgent(t, "us-ca-sf")
	cmd, err := commands.NewAssignAgentCommand(o.ID(), a.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		agentRepo.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignAgentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderAlreadyAssigned)
	assert.Equal(t, agent.StatusAvailable, a.Status())
	assert.True(t, carrier.ID().IsEqual(*o.DeliveryAgentID()))
	orderRepo.AssertNotCalled(t, "Update")
	agentRepo.AssertNotCalled(t, "Update")
}

func TestAssignAgentCommandHandler_Handle_OrderMissing(t *testing.T) {
	ctx := t.Context()
	o := fixtureOrder(t, fixtureVendor(t, "us-ca-sf").ID(), "us-ca-sf")
	a := fixtureAgent(t, "us-ca-sf")
	cmd, err := commands.NewAssignAgentCommand(o.ID(), a.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).
			Return(nil, errs.NewObjectNotFoundError("order", o.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignAgentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
