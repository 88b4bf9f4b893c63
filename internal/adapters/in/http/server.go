// Package http exposes the scheduling engine over a JSON API. It coordinates
// between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"
)

const dateLayout = "2006-01-02"
const monthLayout = "2006-01"

// Server handles the calendar API.
type Server struct {
	// Command handlers
	createJobHandler         commands.CreateJobCommandHandler
	createWorkerHandler      commands.CreateWorkerCommandHandler
	rescheduleJobHandler     commands.RescheduleJobCommandHandler
	changeJobStatusHandler   commands.ChangeJobStatusCommandHandler
	recordJobValueHandler    commands.RecordJobValueCommandHandler
	createBlockedTimeHandler commands.CreateBlockedTimeCommandHandler
	removeBlockedTimeHandler commands.RemoveBlockedTimeCommandHandler

	// Query handlers
	dailyScheduleHandler   queries.GetDailyScheduleQueryHandler
	monthlyStatsHandler    queries.GetMonthlyStatsQueryHandler
	allWorkersHandler      queries.GetAllWorkersQueryHandler
	blockedOverlaysHandler queries.GetBlockedOverlaysQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	createWorkerHandler commands.CreateWorkerCommandHandler,
	rescheduleJobHandler commands.RescheduleJobCommandHandler,
	changeJobStatusHandler commands.ChangeJobStatusCommandHandler,
	recordJobValueHandler commands.RecordJobValueCommandHandler,
	createBlockedTimeHandler commands.CreateBlockedTimeCommandHandler,
	removeBlockedTimeHandler commands.RemoveBlockedTimeCommandHandler,
	dailyScheduleHandler queries.GetDailyScheduleQueryHandler,
	monthlyStatsHandler queries.GetMonthlyStatsQueryHandler,
	allWorkersHandler queries.GetAllWorkersQueryHandler,
	blockedOverlaysHandler queries.GetBlockedOverlaysQueryHandler,
) *Server {
	return &Server{
		createJobHandler:         createJobHandler,
		createWorkerHandler:      createWorkerHandler,
		rescheduleJobHandler:     rescheduleJobHandler,
		changeJobStatusHandler:   changeJobStatusHandler,
		recordJobValueHandler:    recordJobValueHandler,
		createBlockedTimeHandler: createBlockedTimeHandler,
		removeBlockedTimeHandler: removeBlockedTimeHandler,
		dailyScheduleHandler:     dailyScheduleHandler,
		monthlyStatsHandler:      monthlyStatsHandler,
		allWorkersHandler:        allWorkersHandler,
		blockedOverlaysHandler:   blockedOverlaysHandler,
	}
}

// RegisterRoutes mounts the API on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/schedule/daily", s.GetDailySchedule)
	v1.GET("/schedule/blocked", s.GetBlockedOverlays)
	v1.GET("/stats/monthly", s.GetMonthlyStats)
	v1.GET("/workers", s.GetWorkers)
	v1.POST("/workers", s.CreateWorker)
	v1.POST("/jobs", s.CreateJob)
	v1.POST("/jobs/:id/reschedule", s.RescheduleJob)
	v1.POST("/jobs/:id/status", s.ChangeJobStatus)
	v1.POST("/jobs/:id/value", s.RecordJobValue)
	v1.POST("/blocked-times", s.CreateBlockedTime)
	v1.DELETE("/blocked-times/:id", s.RemoveBlockedTime)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetDailySchedule handles GET /api/v1/schedule/daily - one provider calendar
// day with jobs, overlays, conflicts, and capacity numbers.
func (s *Server) GetDailySchedule(ctx echo.Context) error {
	providerID, err := parseUUIDParam(ctx.QueryParam("providerId"), "providerId")
	if err != nil {
		return respondError(ctx, err)
	}
	date, err := parseDateParam(ctx.QueryParam("date"), "date")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDailyScheduleQuery(providerID, date)
	if err != nil {
		return respondError(ctx, err)
	}

	schedule, err := s.dailyScheduleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := DailySchedule{
		Jobs:      make([]Job, len(schedule.Jobs)),
		Overlays:  make([]BlockedOverlay, len(schedule.Overlays)),
		Conflicts: make([]Conflict, len(schedule.Conflicts)),
		Stats:     statsFromService(schedule.Stats),
	}
	for i, summary := range schedule.Jobs {
		response.Jobs[i] = jobFromSummary(summary)
	}
	for i, overlay := range schedule.Overlays {
		response.Overlays[i] = overlayFromQuery(overlay)
	}
	for i, conflict := range schedule.Conflicts {
		response.Conflicts[i] = conflictFromService(conflict)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBlockedOverlays handles GET /api/v1/schedule/blocked - the blocked-time
// overlays for one date, optionally filtered to one worker.
func (s *Server) GetBlockedOverlays(ctx echo.Context) error {
	providerID, err := parseUUIDParam(ctx.QueryParam("providerId"), "providerId")
	if err != nil {
		return respondError(ctx, err)
	}
	date, err := parseDateParam(ctx.QueryParam("date"), "date")
	if err != nil {
		return respondError(ctx, err)
	}

	var workerID *kernel.UUID
	if raw := ctx.QueryParam("workerId"); raw != "" {
		id, idErr := parseUUIDParam(raw, "workerId")
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		workerID = &id
	}

	query, err := queries.NewGetBlockedOverlaysQuery(providerID, date, workerID)
	if err != nil {
		return respondError(ctx, err)
	}

	overlays, err := s.blockedOverlaysHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]BlockedOverlay, len(overlays))
	for i, overlay := range overlays {
		response[i] = overlayFromQuery(overlay)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMonthlyStats handles GET /api/v1/stats/monthly - revenue and utilization
// for the month given as "2006-01".
func (s *Server) GetMonthlyStats(ctx echo.Context) error {
	providerID, err := parseUUIDParam(ctx.QueryParam("providerId"), "providerId")
	if err != nil {
		return respondError(ctx, err)
	}
	month, err := time.Parse(monthLayout, ctx.QueryParam("month"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("month", err))
	}

	query, err := queries.NewGetMonthlyStatsQuery(providerID, month)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.monthlyStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MonthlyStats{
		TotalRevenueCents:  stats.TotalRevenueCents,
		CompletedJobs:      stats.CompletedJobs,
		ScheduledJobs:      stats.ScheduledJobs,
		UtilizationPercent: stats.UtilizationPercent,
	})
}

// GetWorkers handles GET /api/v1/workers - the provider roster.
func (s *Server) GetWorkers(ctx echo.Context) error {
	providerID, err := parseUUIDParam(ctx.QueryParam("providerId"), "providerId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAllWorkersQuery(providerID)
	if err != nil {
		return respondError(ctx, err)
	}

	roster, err := s.allWorkersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Worker, len(roster.Workers))
	for i, w := range roster.Workers {
		response[i] = Worker{
			ID:        w.ID.String(),
			FirstName: w.FirstName,
			LastName:  w.LastName,
			Role:      w.Role,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateWorker handles POST /api/v1/workers.
func (s *Server) CreateWorker(ctx echo.Context) error {
	var body NewWorker
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	providerID, err := parseUUIDParam(body.ProviderID, "providerId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateWorkerCommand(kernel.NewUUID(), providerID,
		body.FirstName, body.LastName, body.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(ctx echo.Context) error {
	var body NewJob
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	providerID, err := parseUUIDParam(body.ProviderID, "providerId")
	if err != nil {
		return respondError(ctx, err)
	}

	workerIDs := make([]kernel.UUID, 0, len(body.AssignedWorkerIDs))
	for _, raw := range body.AssignedWorkerIDs {
		id, idErr := parseUUIDParam(raw, "assignedWorkerIds")
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		workerIDs = append(workerIDs, id)
	}

	var estimate *kernel.Money
	if body.EstimatedValueCents != nil {
		value, moneyErr := kernel.NewMoney(*body.EstimatedValueCents)
		if moneyErr != nil {
			return respondError(ctx, moneyErr)
		}
		estimate = &value
	}

	cmd, err := commands.NewCreateJobCommand(kernel.NewUUID(), providerID,
		body.CustomerName, body.ServiceType, body.Start, body.End, workerIDs, estimate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RescheduleJob handles POST /api/v1/jobs/:id/reschedule - the drag-drop
// move.
func (s *Server) RescheduleJob(ctx echo.Context) error {
	jobID, err := parseUUIDParam(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var body RescheduleRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	providerID, err := parseUUIDParam(body.ProviderID, "providerId")
	if err != nil {
		return respondError(ctx, err)
	}
	targetDate, err := parseDateParam(body.TargetDate, "targetDate")
	if err != nil {
		return respondError(ctx, err)
	}

	var workerID *kernel.UUID
	if body.WorkerID != nil {
		id, idErr := parseUUIDParam(*body.WorkerID, "workerId")
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		workerID = &id
	}

	cmd, err := commands.NewRescheduleJobCommand(jobID, providerID, targetDate,
		body.TargetHour, workerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.rescheduleJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeJobStatus handles POST /api/v1/jobs/:id/status.
func (s *Server) ChangeJobStatus(ctx echo.Context) error {
	jobID, err := parseUUIDParam(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var body StatusChangeRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	status, err := job.StatusFromString(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeJobStatusCommand(jobID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeJobStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordJobValue handles POST /api/v1/jobs/:id/value.
func (s *Server) RecordJobValue(ctx echo.Context) error {
	jobID, err := parseUUIDParam(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var body JobValueRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	value, err := kernel.NewMoney(body.ActualValueCents)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordJobValueCommand(jobID, value)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.recordJobValueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateBlockedTime handles POST /api/v1/blocked-times.
func (s *Server) CreateBlockedTime(ctx echo.Context) error {
	var body NewBlockedTime
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	providerID, err := parseUUIDParam(body.ProviderID, "providerId")
	if err != nil {
		return respondError(ctx, err)
	}
	fromDate, err := parseDateParam(body.FromDate, "fromDate")
	if err != nil {
		return respondError(ctx, err)
	}
	toDate, err := parseDateParam(body.ToDate, "toDate")
	if err != nil {
		return respondError(ctx, err)
	}

	var workerID *kernel.UUID
	if body.WorkerID != nil {
		id, idErr := parseUUIDParam(*body.WorkerID, "workerId")
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		workerID = &id
	}

	cmd, err := commands.NewCreateBlockedTimeCommand(kernel.NewUUID(), providerID,
		workerID, fromDate, toDate, body.StartTime, body.EndTime, body.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createBlockedTimeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveBlockedTime handles DELETE /api/v1/blocked-times/:id.
func (s *Server) RemoveBlockedTime(ctx echo.Context) error {
	blockID, err := parseUUIDParam(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveBlockedTimeCommand(blockID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removeBlockedTimeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseUUIDParam(raw, name string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func parseDateParam(raw, name string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredError(name)
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return date, nil
}

// respondError maps application errors onto HTTP status codes: missing
// aggregates to 404, business rule refusals to 409, storage trouble to 502,
// and anything the validation layer rejected to 400.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, commands.ErrJobNotFound),
		errors.Is(err, commands.ErrBlockedTimeNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrSlotUnavailable),
		errors.Is(err, job.ErrInvalidTransition),
		errors.Is(err, job.ErrJobIsTerminal):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrPersistenceFailed):
		code = http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrIntervalIsInvalid):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
