package queries_test

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
	"fieldops/internal/adapters/out/postgres/jobrepo"
	"fieldops/internal/adapters/out/postgres/workerrepo"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/blockedtime"
	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
)

// MockAggregateTracker is a mock implementation of the repositories'
// aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// QueryIntegrationTestSuite exercises the read-side handlers against a real
// PostgreSQL instance, seeding state through the write-side repositories.
type QueryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	jobs       *jobrepo.GormJobRepository
	workers    *workerrepo.GormWorkerRepository
	blocks     *blockedtimerepo.GormBlockedTimeRepository
	providerID kernel.UUID
}

func (suite *QueryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&jobrepo.JobDTO{},
		&jobrepo.JobAssignmentDTO{},
		&workerrepo.WorkerDTO{},
		&blockedtimerepo.BlockedTimeDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *QueryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs, workers, blocked_times CASCADE").Error
	suite.Require().NoError(err)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return().Maybe()

	suite.jobs = jobrepo.NewGormJobRepository(suite.db, tracker)
	suite.workers = workerrepo.NewGormWorkerRepository(suite.db, tracker)
	suite.blocks = blockedtimerepo.NewGormBlockedTimeRepository(suite.db, tracker)
	suite.providerID = kernel.NewUUID()
}

func (suite *QueryIntegrationTestSuite) date(day int) time.Time {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
}

func (suite *QueryIntegrationTestSuite) seedJob(
	day, startHour, endHour int, workerIDs ...kernel.UUID,
) *job.Job {
	start := time.Date(2025, time.June, day, startHour, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, day, endHour, 0, 0, 0, time.UTC)
	window, err := kernel.NewTimeWindow(start, end)
	suite.Require().NoError(err)

	estimate, err := kernel.NewMoney(8000)
	suite.Require().NoError(err)

	aggregate, err := job.NewJob(kernel.NewUUID(), suite.providerID, "Dana Laine",
		"hvac-repair", window, workerIDs, &estimate)
	suite.Require().NoError(err)

	err = suite.jobs.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *QueryIntegrationTestSuite) completeJob(aggregate *job.Job, actualCents *int64) {
	for aggregate.Status() != job.Completed {
		err := aggregate.ChangeStatus(aggregate.Status() + 1)
		suite.Require().NoError(err)
	}
	if actualCents != nil {
		actual, err := kernel.NewMoney(*actualCents)
		suite.Require().NoError(err)
		suite.Require().NoError(aggregate.RecordActualValue(actual))
	}

	err := suite.jobs.Update(context.Background(), aggregate)
	suite.Require().NoError(err)
}

func (suite *QueryIntegrationTestSuite) seedWorker(firstName, lastName string) *worker.Worker {
	aggregate, err := worker.NewWorker(kernel.NewUUID(), suite.providerID,
		firstName, lastName, "technician")
	suite.Require().NoError(err)

	err = suite.workers.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *QueryIntegrationTestSuite) seedAllDayBlock(
	workerID *kernel.UUID, fromDay, toDay int,
) *blockedtime.BlockedTime {
	record, err := blockedtime.NewBlockedTime(kernel.NewUUID(), suite.providerID,
		workerID, suite.date(fromDay), suite.date(toDay), nil, nil, "vacation")
	suite.Require().NoError(err)

	err = suite.blocks.Add(context.Background(), record)
	suite.Require().NoError(err)
	return record
}

func (suite *QueryIntegrationTestSuite) seedTimedBlock(
	workerID *kernel.UUID, day int, startLabel, endLabel string,
) *blockedtime.BlockedTime {
	startClock, err := kernel.ParseClockTime(startLabel)
	suite.Require().NoError(err)
	endClock, err := kernel.ParseClockTime(endLabel)
	suite.Require().NoError(err)

	record, err := blockedtime.NewBlockedTime(kernel.NewUUID(), suite.providerID,
		workerID, suite.date(day), suite.date(day), &startClock, &endClock, "equipment service")
	suite.Require().NoError(err)

	err = suite.blocks.Add(context.Background(), record)
	suite.Require().NoError(err)
	return record
}

func (suite *QueryIntegrationTestSuite) TestGetDailySchedule_ReturnsJobsOrderedByStart() {
	ctx := context.Background()
	workerID := kernel.NewUUID()
	late := suite.seedJob(2, 14, 16, workerID)
	early := suite.seedJob(2, 9, 11, workerID)
	suite.seedJob(3, 9, 11, workerID)

	query, err := queries.NewGetDailyScheduleQuery(suite.providerID, suite.date(2))
	suite.Require().NoError(err)
	handler, err := queries.NewGetDailyScheduleQueryHandler(suite.db)
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(response.Jobs, 2)
	suite.True(response.Jobs[0].ID.IsEqual(early.ID()))
	suite.True(response.Jobs[1].ID.IsEqual(late.ID()))
	suite.Equal("Dana Laine", response.Jobs[0].CustomerName)
	suite.Equal("hvac-repair", response.Jobs[0].ServiceType)
	suite.Equal(job.Scheduled.String(), response.Jobs[0].Status)
	suite.Require().Len(response.Jobs[0].AssignedWorkerIDs, 1)
	suite.True(response.Jobs[0].AssignedWorkerIDs[0].IsEqual(workerID))
	suite.True(early.Window().Start().Equal(response.Jobs[0].Start))
	suite.True(early.Window().End().Equal(response.Jobs[0].End))
}

func (suite *QueryIntegrationTestSuite) TestGetDailySchedule_ComputesOverlaysConflictsAndStats() {
	ctx := context.Background()
	busy := suite.seedWorker("Sam", "Reyes")
	suite.seedWorker("Alex", "Mori")
	busyID := busy.ID()

	suite.seedJob(2, 9, 11, busyID)
	suite.seedJob(2, 10, 12, busyID)
	suite.seedJob(2, 13, 14)

	allDay := suite.seedAllDayBlock(nil, 2, 2)
	timed := suite.seedTimedBlock(&busyID, 2, "13:00", "15:00")

	query, err := queries.NewGetDailyScheduleQuery(suite.providerID, suite.date(2))
	suite.Require().NoError(err)
	handler, err := queries.NewGetDailyScheduleQueryHandler(suite.db)
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(response.Overlays, 2)
	first := response.Overlays[0]
	suite.True(first.BlockID.IsEqual(allDay.ID()))
	suite.True(first.IsAllDay)
	suite.Equal(kernel.VisibleStartHour, first.StartHour)
	suite.Equal(kernel.VisibleEndHour, first.EndHour)
	suite.Nil(first.WorkerID)
	second := response.Overlays[1]
	suite.True(second.BlockID.IsEqual(timed.ID()))
	suite.False(second.IsAllDay)
	suite.Equal(13, second.StartHour)
	suite.Equal(15, second.EndHour)
	suite.Require().NotNil(second.WorkerID)
	suite.True(second.WorkerID.IsEqual(busyID))
	suite.Equal("equipment service", second.Reason)

	suite.Require().Len(response.Conflicts, 1)
	suite.True(response.Conflicts[0].WorkerID.IsEqual(busyID))

	suite.Equal(3, response.Stats.TotalJobs)
	suite.Equal(5, response.Stats.TotalHours)
	suite.Equal(16, response.Stats.TotalCapacity)
	suite.Equal(31, response.Stats.AvgCapacityPercent)
	suite.Equal(1, response.Stats.ActiveWorkers)
	suite.Equal(1, response.Stats.UnassignedJobs)
	suite.Equal(1, response.Stats.Conflicts)
	suite.Equal(0, response.Stats.OverbookedWorkers)
	suite.Equal(1, response.Stats.UnderutilizedWorkers)
}

func (suite *QueryIntegrationTestSuite) TestGetDailySchedule_IgnoresOtherProviders() {
	ctx := context.Background()
	suite.seedJob(2, 9, 11)

	otherProvider := kernel.NewUUID()
	query, err := queries.NewGetDailyScheduleQuery(otherProvider, suite.date(2))
	suite.Require().NoError(err)
	handler, err := queries.NewGetDailyScheduleQueryHandler(suite.db)
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Empty(response.Jobs)
	suite.Empty(response.Overlays)
	suite.Empty(response.Conflicts)
}

func (suite *QueryIntegrationTestSuite) TestGetMonthlyStats_SummarizesMonth() {
	ctx := context.Background()
	suite.seedWorker("Sam", "Reyes")

	actual := int64(12550)
	withActual := suite.seedJob(2, 9, 11)
	suite.completeJob(withActual, &actual)
	estimateOnly := suite.seedJob(3, 13, 15)
	suite.completeJob(estimateOnly, nil)
	suite.seedJob(4, 9, 10)

	query, err := queries.NewGetMonthlyStatsQuery(suite.providerID, suite.date(15))
	suite.Require().NoError(err)
	handler, err := queries.NewGetMonthlyStatsQueryHandler(suite.db)
	suite.Require().NoError(err)

	stats, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(20550), stats.TotalRevenueCents)
	suite.Equal(2, stats.CompletedJobs)
	suite.Equal(3, stats.ScheduledJobs)
	suite.Equal(2, stats.UtilizationPercent)
}

func (suite *QueryIntegrationTestSuite) TestGetAllWorkers_OrdersByName() {
	ctx := context.Background()
	suite.seedWorker("Sam", "Reyes")
	suite.seedWorker("Alex", "Mori")

	query, err := queries.NewGetAllWorkersQuery(suite.providerID)
	suite.Require().NoError(err)
	handler, err := queries.NewGetAllWorkersQueryHandler(suite.db)
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(response.Workers, 2)
	suite.Equal("Mori", response.Workers[0].LastName)
	suite.Equal("Reyes", response.Workers[1].LastName)
	suite.Equal("technician", response.Workers[0].Role)
}

func (suite *QueryIntegrationTestSuite) TestGetBlockedOverlays_FiltersByWorker() {
	ctx := context.Background()
	mineID := kernel.NewUUID()
	otherID := kernel.NewUUID()

	providerWide := suite.seedAllDayBlock(nil, 2, 2)
	mine := suite.seedTimedBlock(&mineID, 2, "09:00", "11:00")
	suite.seedTimedBlock(&otherID, 2, "13:00", "15:00")

	query, err := queries.NewGetBlockedOverlaysQuery(suite.providerID, suite.date(2), &mineID)
	suite.Require().NoError(err)
	handler, err := queries.NewGetBlockedOverlaysQueryHandler(suite.db)
	suite.Require().NoError(err)

	overlays, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(overlays, 2)
	suite.True(overlays[0].BlockID.IsEqual(providerWide.ID()))
	suite.True(overlays[1].BlockID.IsEqual(mine.ID()))
}

func TestQueryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueryIntegrationTestSuite))
}
