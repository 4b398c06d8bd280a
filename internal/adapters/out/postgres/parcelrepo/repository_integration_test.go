package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"relais/internal/adapters/out/postgres/parcelrepo"
	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite provides integration tests for ParcelRepository
// using PostgreSQL containers to verify database persistence behavior.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	parcelRepository *parcelrepo.GormParcelRepository
	tracker          *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.parcelRepository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ValidParcel_Success() {
	ctx := context.Background()
	testParcel := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()

	err := suite.parcelRepository.Add(ctx, testParcel)
	suite.Require().NoError(err)

	suite.assertParcelCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_ExistingParcel_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestParcel()
	relayPointID := kernel.NewUUID()
	suite.Require().NoError(original.AssignRelayPoint(relayPointID))
	suite.Require().NoError(original.AssignQRCodePath("/qr-codes/QRCode_roundtrip.png"))

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, original))

	retrieved, err := suite.parcelRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.SenderID(), retrieved.SenderID())
	suite.Equal(original.RecipientID(), retrieved.RecipientID())
	suite.Require().NotNil(retrieved.RelayPointID())
	suite.True(retrieved.RelayPointID().IsEqual(relayPointID))
	suite.Equal(original.Description(), retrieved.Description())
	suite.InDelta(original.Weight(), retrieved.Weight(), 0.0001)
	suite.Equal(parcel.StatusPending, retrieved.Status())
	suite.Nil(retrieved.DepositedAt())
	suite.Nil(retrieved.WithdrawnAt())
	suite.Equal("/qr-codes/QRCode_roundtrip.png", retrieved.QRCodePath())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NonExistentParcel_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.parcelRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_Persists() {
	ctx := context.Background()

	testParcel := suite.createTestParcel()
	suite.Require().NoError(testParcel.AssignRelayPoint(kernel.NewUUID()))

	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Twice()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, testParcel))

	suite.Require().NoError(testParcel.MarkReceived())
	suite.Require().NoError(suite.parcelRepository.Update(ctx, testParcel))

	retrieved, err := suite.parcelRepository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusReceived, retrieved.Status())
	suite.NotNil(retrieved.DepositedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_DetachedRelayPoint_PersistsNil() {
	ctx := context.Background()

	relayPointID := kernel.NewUUID()
	withRelay, err := parcel.RestoreParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &relayPointID,
		"books", 1.5, 0.02, parcel.StatusPending, nil, nil, time.Now(), "",
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, withRelay))

	detached, err := parcel.RestoreParcel(
		withRelay.ID(), withRelay.SenderID(), withRelay.RecipientID(), nil,
		"books", 1.5, 0.02, parcel.StatusPending, nil, nil, time.Now(), "",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepository.Update(ctx, detached))

	retrieved, err := suite.parcelRepository.Get(ctx, withRelay.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.RelayPointID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_NonExistentParcel_ReturnsError() {
	ctx := context.Background()

	err := suite.parcelRepository.Update(ctx, suite.createTestParcel())
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDelete_ExistingParcel_RemovesRow() {
	ctx := context.Background()

	testParcel := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, testParcel))

	suite.Require().NoError(suite.parcelRepository.Delete(ctx, testParcel.ID()))
	suite.assertParcelCount(0)

	err := suite.parcelRepository.Delete(ctx, testParcel.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByQRCodePath_MatchesCredential() {
	ctx := context.Background()

	testParcel := suite.createTestParcel()
	suite.Require().NoError(testParcel.AssignQRCodePath("/qr-codes/QRCode_lookup.png"))

	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, testParcel))

	retrieved, err := suite.parcelRepository.GetByQRCodePath(ctx, "/qr-codes/QRCode_lookup.png")
	suite.Require().NoError(err)
	suite.Equal(testParcel.ID(), retrieved.ID())

	_, err = suite.parcelRepository.GetByQRCodePath(ctx, "/qr-codes/QRCode_missing.png")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllReceivedBefore_FiltersByStatusAndDeposit() {
	ctx := context.Background()
	now := time.Now()

	overdue := suite.createReceivedParcel(now.AddDate(0, 0, -10))
	fresh := suite.createReceivedParcel(now.AddDate(0, 0, -1))
	withdrawnAt := now.AddDate(0, 0, -8)
	depositedAt := now.AddDate(0, 0, -9)
	withdrawn, err := parcel.RestoreParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"collected long ago", 2.0, 0.01, parcel.StatusWithdrawn,
		&depositedAt, &withdrawnAt, now, "/qr-codes/QRCode_old.png",
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	suite.Require().NoError(suite.parcelRepository.Add(ctx, overdue))
	suite.Require().NoError(suite.parcelRepository.Add(ctx, fresh))
	suite.Require().NoError(suite.parcelRepository.Add(ctx, withdrawn))

	cutoff := now.AddDate(0, 0, -7)
	results, err := suite.parcelRepository.GetAllReceivedBefore(ctx, cutoff)
	suite.Require().NoError(err)

	suite.Require().Len(results, 1)
	suite.Equal(overdue.ID(), results[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestParcel creates a pending parcel with default values.
func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	testParcel, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "paperback books", 1.5, 0.02)
	suite.Require().NoError(err)
	return testParcel
}

// createReceivedParcel creates a parcel already held at a relay point with the
// given deposit timestamp.
func (suite *ParcelRepositoryIntegrationTestSuite) createReceivedParcel(depositedAt time.Time) *parcel.Parcel {
	relayPointID := kernel.NewUUID()
	testParcel, err := parcel.RestoreParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &relayPointID,
		"awaiting pickup", 1.0, 0.01, parcel.StatusReceived,
		&depositedAt, nil, depositedAt, "",
	)
	suite.Require().NoError(err)
	return testParcel
}

// assertParcelCount verifies the number of parcels in the database.
func (suite *ParcelRepositoryIntegrationTestSuite) assertParcelCount(expected int) {
	var count int64
	err := suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
