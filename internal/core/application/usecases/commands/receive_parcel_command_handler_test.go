package commands_test

import (
	"testing"

	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/core/domain/model/relaypoint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReceiveParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	relayPoint := fixtureRelayPoint(t, 5)
	depositedParcel := fixtureParcel(t)
	recipient := fixtureClient(t)
	cmd, _ := commands.NewReceiveParcelCommand(relayPoint.ID(), depositedParcel.ID())

	relayRepo := new(MockRelayPointRepository)
	parcelRepo := new(MockParcelRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RelayPointRepository").Return(relayRepo).Once(),
		relayRepo.On("Get", mock.Anything, relayPoint.ID()).Return(relayPoint, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, depositedParcel.ID()).Return(depositedParcel, nil).Once(),
		relayRepo.On("Update", mock.Anything, relayPoint).Return(nil).Once(),
		parcelRepo.On("Update", mock.Anything, depositedParcel).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", mock.Anything, depositedParcel.RecipientID()).Return(recipient, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("NotifyParcelReceived", mock.Anything, recipient, relayPoint.Name()).
		Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveParcelCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, parcel.StatusReceived, depositedParcel.Status())
	assert.Equal(t, 1, relayPoint.CurrentStock())
	require.NotNil(t, depositedParcel.RelayPointID())
	assert.True(t, depositedParcel.RelayPointID().IsEqual(relayPoint.ID()))
	relayRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReceiveParcelCommandHandler_Handle_CapacityExceeded(t *testing.T) {
	ctx := t.Context()
	relayPoint := fixtureRelayPoint(t, 1)
	require.NoError(t, relayPoint.ReceiveParcel(kernel.NewUUID()))
	depositedParcel := fixtureParcel(t)
	cmd, _ := commands.NewReceiveParcelCommand(relayPoint.ID(), depositedParcel.ID())

	relayRepo := new(MockRelayPointRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RelayPointRepository").Return(relayRepo).Once(),
		relayRepo.On("Get", mock.Anything, relayPoint.ID()).Return(relayPoint, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, depositedParcel.ID()).Return(depositedParcel, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveParcelCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, relaypoint.ErrCapacityExceeded)

	// Parcel untouched: still pending, no deposit timestamp.
	assert.Equal(t, parcel.StatusPending, depositedParcel.Status())
	assert.Nil(t, depositedParcel.DepositedAt())
	uow.AssertExpectations(t)
}

func TestReceiveParcelCommandHandler_Handle_AssignedElsewhere(t *testing.T) {
	ctx := t.Context()
	relayPoint := fixtureRelayPoint(t, 5)
	depositedParcel := fixtureParcel(t)
	require.NoError(t, depositedParcel.AssignRelayPoint(kernel.NewUUID()))
	cmd, _ := commands.NewReceiveParcelCommand(relayPoint.ID(), depositedParcel.ID())

	relayRepo := new(MockRelayPointRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RelayPointRepository").Return(relayRepo).Once(),
		relayRepo.On("Get", mock.Anything, relayPoint.ID()).Return(relayPoint, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, depositedParcel.ID()).Return(depositedParcel, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveParcelCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrParcelAssignedElsewhere)
	assert.Equal(t, 0, relayPoint.CurrentStock())
}

func TestReceiveParcelCommandHandler_Handle_NotificationFailureIsIgnored(t *testing.T) {
	ctx := t.Context()
	relayPoint := fixtureRelayPoint(t, 5)
	depositedParcel := fixtureParcel(t)
	recipient := fixtureClient(t)
	cmd, _ := commands.NewReceiveParcelCommand(relayPoint.ID(), depositedParcel.ID())

	relayRepo := new(MockRelayPointRepository)
	parcelRepo := new(MockParcelRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RelayPointRepository").Return(relayRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	relayRepo.On("Get", mock.Anything, relayPoint.ID()).Return(relayPoint, nil).Once()
	relayRepo.On("Update", mock.Anything, relayPoint).Return(nil).Once()
	parcelRepo.On("Get", mock.Anything, depositedParcel.ID()).Return(depositedParcel, nil).Once()
	parcelRepo.On("Update", mock.Anything, depositedParcel).Return(nil).Once()
	clientRepo.On("Get", mock.Anything, depositedParcel.RecipientID()).Return(recipient, nil).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyParcelReceived", mock.Anything, recipient, relayPoint.Name()).
		Return(assert.AnError).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveParcelCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}
