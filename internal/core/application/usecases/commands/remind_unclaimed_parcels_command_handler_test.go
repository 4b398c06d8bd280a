package commands_test

import (
	"testing"

	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemindUnclaimedParcelsCommandHandler_Handle_OneReminderPerParcel(t *testing.T) {
	ctx := t.Context()
	relayPoint := fixtureRelayPoint(t, 5)
	recipient := fixtureClient(t)

	overdue := make([]*parcel.Parcel, 0, 2)
	for range 2 {
		overdueParcel := fixtureParcel(t)
		require.NoError(t, overdueParcel.AssignRelayPoint(relayPoint.ID()))
		require.NoError(t, overdueParcel.MarkReceived())
		overdue = append(overdue, overdueParcel)
	}

	cmd, _ := commands.NewRemindUnclaimedParcelsCommand(7)

	parcelRepo := new(MockParcelRepository)
	relayRepo := new(MockRelayPointRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	uow.On("RelayPointRepository").Return(relayRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	parcelRepo.On("GetAllReceivedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(overdue, nil).Once()
	relayRepo.On("Get", mock.Anything, relayPoint.ID()).Return(relayPoint, nil).Times(2)
	clientRepo.On("Get", mock.Anything, overdue[0].RecipientID()).Return(recipient, nil).Once()
	clientRepo.On("Get", mock.Anything, overdue[1].RecipientID()).Return(recipient, nil).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyUnclaimedParcel", mock.Anything, recipient, relayPoint.Name(), mock.AnythingOfType("int")).
		Return(nil).Times(2)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemindUnclaimedParcelsCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	notifier.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
}

func TestNewRemindUnclaimedParcelsCommand_RejectsNonPositiveThreshold(t *testing.T) {
	for _, days := range []int{0, -1} {
		_, err := commands.NewRemindUnclaimedParcelsCommand(days)

		require.ErrorIs(t, err, commands.ErrThresholdIsInvalid)
	}
}
