package commands_test

import (
	"testing"

	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateRelayPointCommand(t *testing.T, ownerID kernel.UUID) commands.CreateRelayPointCommand {
	t.Helper()
	cmd, err := commands.NewCreateRelayPointCommand(
		kernel.NewUUID(), ownerID, "Tabac de la Paix",
		48.8566, 2.3522, "12 rue de la Paix", "Paris", "75002",
		10, "Mon-Sat 8:00-19:00", "corner shop")
	require.NoError(t, err)
	return cmd
}

func TestCreateRelayPointCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	relayOwner := fixtureOwner(t)
	cmd := validCreateRelayPointCommand(t, relayOwner.ID())

	ownerRepo := new(MockOwnerRepository)
	relayRepo := new(MockRelayPointRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OwnerRepository").Return(ownerRepo).Once(),
		ownerRepo.On("Get", mock.Anything, relayOwner.ID()).Return(relayOwner, nil).Once(),
		uow.On("RelayPointRepository").Return(relayRepo).Once(),
		relayRepo.On("Add", mock.Anything, mock.AnythingOfType("*relaypoint.RelayPoint")).
			Return(nil).Once(),
		ownerRepo.On("Update", mock.Anything, relayOwner).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOwnerRelayUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRelayPointCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// Owner now lists the new relay point.
	assert.True(t, relayOwner.Owns(cmd.RelayPointID()))
	ownerRepo.AssertExpectations(t)
	relayRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRelayPointCommandHandler_Handle_OwnerNotFound(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	cmd := validCreateRelayPointCommand(t, ownerID)

	ownerRepo := new(MockOwnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OwnerRepository").Return(ownerRepo).Once(),
		ownerRepo.On("Get", mock.Anything, ownerID).
			Return(nil, errs.NewObjectNotFoundError("ownerID", ownerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOwnerRelayUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRelayPointCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewCreateRelayPointCommand_Validation(t *testing.T) {
	ownerID := kernel.NewUUID()

	_, err := commands.NewCreateRelayPointCommand(
		kernel.NewUUID(), ownerID, "", 48.8566, 2.3522,
		"street", "Paris", "75002", 10, "hours", "")
	require.ErrorIs(t, err, commands.ErrRelayPointNameIsRequired)

	_, err = commands.NewCreateRelayPointCommand(
		kernel.NewUUID(), ownerID, "Shop", 48.8566, 2.3522,
		"street", "Paris", "75002", 0, "hours", "")
	require.ErrorIs(t, err, commands.ErrRelayPointCapacityIsInvalid)

	_, err = commands.NewCreateRelayPointCommand(
		kernel.NewUUID(), ownerID, "Shop", 48.8566, 2.3522,
		"street", "Paris", "75002", 10, "", "")
	require.ErrorIs(t, err, commands.ErrRelayPointHoursAreRequired)
}
