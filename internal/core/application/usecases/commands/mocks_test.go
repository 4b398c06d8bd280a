package commands_test

import (
	"context"
	"time"

	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/domain/model/client"
	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/owner"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/core/domain/model/relaypoint"
	"relais/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByQRCodePath(ctx context.Context, qrCodePath string) (*parcel.Parcel, error) {
	args := m.Called(ctx, qrCodePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllReceivedBefore(ctx context.Context, cutoff time.Time) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockRelayPointRepository struct{ mock.Mock }

func (m *MockRelayPointRepository) Add(ctx context.Context, rp *relaypoint.RelayPoint) error {
	args := m.Called(ctx, rp)
	return args.Error(0)
}

func (m *MockRelayPointRepository) Update(ctx context.Context, rp *relaypoint.RelayPoint) error {
	args := m.Called(ctx, rp)
	return args.Error(0)
}

func (m *MockRelayPointRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRelayPointRepository) Get(ctx context.Context, id kernel.UUID) (*relaypoint.RelayPoint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*relaypoint.RelayPoint), args.Error(1)
}

type MockOwnerRepository struct{ mock.Mock }

func (m *MockOwnerRepository) Add(ctx context.Context, o *owner.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOwnerRepository) Update(ctx context.Context, o *owner.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOwnerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOwnerRepository) Get(ctx context.Context, id kernel.UUID) (*owner.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*owner.Owner), args.Error(1)
}

// MockUoW implements every UoW interface in the package so each test can
// use the narrowest factory it needs.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) RelayPointRepository() ports.RelayPointRepository {
	args := m.Called()
	return args.Get(0).(ports.RelayPointRepository)
}

func (m *MockUoW) OwnerRepository() ports.OwnerRepository {
	args := m.Called()
	return args.Get(0).(ports.OwnerRepository)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockRelayPointUoWFactory struct{ mock.Mock }

func (m *MockRelayPointUoWFactory) Create() commands.RelayPointUoW {
	args := m.Called()
	return args.Get(0).(commands.RelayPointUoW)
}

type MockOwnerUoWFactory struct{ mock.Mock }

func (m *MockOwnerUoWFactory) Create() commands.OwnerUoW {
	args := m.Called()
	return args.Get(0).(commands.OwnerUoW)
}

type MockParcelRelayUoWFactory struct{ mock.Mock }

func (m *MockParcelRelayUoWFactory) Create() commands.ParcelRelayUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelRelayUoW)
}

type MockOwnerRelayUoWFactory struct{ mock.Mock }

func (m *MockOwnerRelayUoWFactory) Create() commands.OwnerRelayUoW {
	args := m.Called()
	return args.Get(0).(commands.OwnerRelayUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyParcelReceived(ctx context.Context, recipient *client.Client, relayPointName string) error {
	args := m.Called(ctx, recipient, relayPointName)
	return args.Error(0)
}

func (m *MockNotifier) NotifyParcelWithdrawn(ctx context.Context, recipient *client.Client, relayPointName string) error {
	args := m.Called(ctx, recipient, relayPointName)
	return args.Error(0)
}

func (m *MockNotifier) NotifyHoursChanged(
	ctx context.Context, recipient *client.Client, relayPointName string, newHours string,
) error {
	args := m.Called(ctx, recipient, relayPointName, newHours)
	return args.Error(0)
}

func (m *MockNotifier) NotifyUnclaimedParcel(
	ctx context.Context, recipient *client.Client, relayPointName string, daysWaiting int,
) error {
	args := m.Called(ctx, recipient, relayPointName, daysWaiting)
	return args.Error(0)
}

type MockQRGenerator struct{ mock.Mock }

func (m *MockQRGenerator) Generate(ctx context.Context, parcelID kernel.UUID) (string, error) {
	args := m.Called(ctx, parcelID)
	return args.String(0), args.Error(1)
}
