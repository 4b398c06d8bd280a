package commands_test

import (
	"testing"

	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/owner"
	"relais/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOwnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	existing, err := owner.NewOwner(ownerID, "Pierre Blanc", "pierre@example.com")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateOwnerCommand(ownerID, "Pierre Noir", "noir@example.com")
	require.NoError(t, err)

	repo := new(MockOwnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OwnerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ownerID).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.MatchedBy(func(o *owner.Owner) bool {
			return o.Name() == "Pierre Noir" && o.Email() == "noir@example.com"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOwnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOwnerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOwnerCommandHandler_Handle_OwnerNotFound(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOwnerCommand(ownerID, "Pierre Noir", "noir@example.com")
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("owner", ownerID.String())
	repo := new(MockOwnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OwnerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ownerID).Return((*owner.Owner)(nil), notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOwnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOwnerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewUpdateOwnerCommand_Validation(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewUpdateOwnerCommand(id, "", "p@example.com")
	require.ErrorIs(t, err, commands.ErrOwnerNameIsRequired)

	_, err = commands.NewUpdateOwnerCommand(id, "Pierre", "bad-email")
	require.ErrorIs(t, err, commands.ErrOwnerEmailIsInvalid)
}
