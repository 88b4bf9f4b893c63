package blockedtimerepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fieldops/internal/adapters/out/postgres/blockedtimerepo"
	"fieldops/internal/core/domain/model/blockedtime"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type BlockedTimeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *blockedtimerepo.GormBlockedTimeRepository
	providerID kernel.UUID
}

func (suite *BlockedTimeRepositoryIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&blockedtimerepo.BlockedTimeDTO{})
	suite.Require().NoError(err)

	suite.providerID = kernel.NewUUID()
}

func (suite *BlockedTimeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *BlockedTimeRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE blocked_times").Error
	suite.Require().NoError(err)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return().Maybe()
	suite.repository = blockedtimerepo.NewGormBlockedTimeRepository(suite.db, tracker)
}

func (suite *BlockedTimeRepositoryIntegrationTestSuite) date(day int) time.Time {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
}

func (suite *BlockedTimeRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsTimedBlock() {
	ctx := context.Background()
	workerID := kernel.NewUUID()
	startTime, err := kernel.ParseClockTime("13:00")
	suite.Require().NoError(err)
	endTime, err := kernel.ParseClockTime("15:30")
	suite.Require().NoError(err)

	record, err := blockedtime.NewBlockedTime(kernel.NewUUID(), suite.providerID, &workerID,
		suite.date(2), suite.date(2), &startTime, &endTime, "equipment service")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, record))

	restored, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.False(restored.IsAllDay())
	suite.Require().NotNil(restored.WorkerID())
	suite.True(restored.WorkerID().IsEqual(workerID))
	suite.Equal("13:00", restored.StartTime().String())
	suite.Equal("15:30", restored.EndTime().String())
	suite.Equal("equipment service", restored.Reason())
}

func (suite *BlockedTimeRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsAllDayBlock() {
	ctx := context.Background()
	record, err := blockedtime.NewBlockedTime(kernel.NewUUID(), suite.providerID, nil,
		suite.date(2), suite.date(6), nil, nil, "vacation")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, record))

	restored, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsAllDay())
	suite.Nil(restored.WorkerID())
}

func (suite *BlockedTimeRepositoryIntegrationTestSuite) TestDelete_RemovesRecord() {
	ctx := context.Background()
	record, err := blockedtime.NewBlockedTime(kernel.NewUUID(), suite.providerID, nil,
		suite.date(2), suite.date(2), nil, nil, "vacation")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, record))

	suite.Require().NoError(suite.repository.Delete(ctx, record.ID()))

	_, err = suite.repository.Get(ctx, record.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BlockedTimeRepositoryIntegrationTestSuite) TestDelete_MissingRecord_ReturnsObjectNotFound() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BlockedTimeRepositoryIntegrationTestSuite) TestGetAllCoveringDate_FiltersByRange() {
	ctx := context.Background()

	covering, err := blockedtime.NewBlockedTime(kernel.NewUUID(), suite.providerID, nil,
		suite.date(2), suite.date(6), nil, nil, "vacation")
	suite.Require().NoError(err)

	before, err := blockedtime.NewBlockedTime(kernel.NewUUID(), suite.providerID, nil,
		suite.date(1), suite.date(1), nil, nil, "company holiday")
	suite.Require().NoError(err)

	foreign, err := blockedtime.NewBlockedTime(kernel.NewUUID(), kernel.NewUUID(), nil,
		suite.date(4), suite.date(4), nil, nil, "vacation")
	suite.Require().NoError(err)

	for _, record := range []*blockedtime.BlockedTime{covering, before, foreign} {
		suite.Require().NoError(suite.repository.Add(ctx, record))
	}

	records, err := suite.repository.GetAllCoveringDate(ctx, suite.providerID, suite.date(4))
	suite.Require().NoError(err)

	suite.Require().Len(records, 1)
	suite.True(records[0].ID().IsEqual(covering.ID()))
}

func TestBlockedTimeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BlockedTimeRepositoryIntegrationTestSuite))
}
