package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fieldops/internal/core/domain/model/blockedtime"
	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
)

// loadJobs reads the provider's jobs whose start time falls in [from, to) and
// reconstructs them as domain aggregates, assignments included. The handlers
// need real aggregates because the calculators operate on domain jobs, not on
// rows.
func loadJobs(
	ctx context.Context, db *gorm.DB, providerID kernel.UUID, from, to time.Time,
) ([]*job.Job, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			provider_id,
			customer_name,
			service_type,
			start_time,
			end_time,
			status,
			estimated_value_cents,
			actual_value_cents
		FROM jobs
		WHERE provider_id = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time, id
	`, providerID.Bytes(), from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type jobRow struct {
		id             uuid.UUID
		providerID     uuid.UUID
		customerName   string
		serviceType    string
		startTime      time.Time
		endTime        time.Time
		status         int
		estimatedCents *int64
		actualCents    *int64
	}

	jobRows := make([]jobRow, 0)
	for rows.Next() {
		var row jobRow
		err = rows.Scan(
			&row.id,
			&row.providerID,
			&row.customerName,
			&row.serviceType,
			&row.startTime,
			&row.endTime,
			&row.status,
			&row.estimatedCents,
			&row.actualCents,
		)
		if err != nil {
			return nil, err
		}
		jobRows = append(jobRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	assignments, err := loadAssignments(ctx, db, providerID, from, to)
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(jobRows))
	for _, row := range jobRows {
		id, idErr := kernel.UUIDFromBytes(row.id[:])
		if idErr != nil {
			return nil, idErr
		}
		rowProviderID, idErr := kernel.UUIDFromBytes(row.providerID[:])
		if idErr != nil {
			return nil, idErr
		}

		window, windowErr := kernel.NewTimeWindow(row.startTime, row.endTime)
		if windowErr != nil {
			return nil, windowErr
		}

		estimated, moneyErr := centsToMoney(row.estimatedCents)
		if moneyErr != nil {
			return nil, moneyErr
		}
		actual, moneyErr := centsToMoney(row.actualCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		aggregate, domainErr := job.RestoreJob(id, rowProviderID, row.customerName,
			row.serviceType, window, job.Status(row.status), assignments[row.id],
			estimated, actual)
		if domainErr != nil {
			return nil, domainErr
		}
		jobs = append(jobs, aggregate)
	}

	return jobs, nil
}

// loadAssignments reads the worker assignments for the provider's jobs in
// [from, to), keyed by raw job ID.
func loadAssignments(
	ctx context.Context, db *gorm.DB, providerID kernel.UUID, from, to time.Time,
) (map[uuid.UUID][]kernel.UUID, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT a.job_id, a.worker_id
		FROM job_assignments a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.provider_id = ? AND j.start_time >= ? AND j.start_time < ?
		ORDER BY a.job_id, a.worker_id
	`, providerID.Bytes(), from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make(map[uuid.UUID][]kernel.UUID)
	for rows.Next() {
		var jobID, workerID uuid.UUID
		if err = rows.Scan(&jobID, &workerID); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(workerID[:])
		if idErr != nil {
			return nil, idErr
		}
		assignments[jobID] = append(assignments[jobID], id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// loadWorkers reads the provider's full team.
func loadWorkers(ctx context.Context, db *gorm.DB, providerID kernel.UUID) ([]*worker.Worker, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT id, provider_id, first_name, last_name, role
		FROM workers
		WHERE provider_id = ?
		ORDER BY last_name, first_name
	`, providerID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workers := make([]*worker.Worker, 0)
	for rows.Next() {
		var (
			id, rowProviderID         uuid.UUID
			firstName, lastName, role string
		)
		if err = rows.Scan(&id, &rowProviderID, &firstName, &lastName, &role); err != nil {
			return nil, err
		}

		workerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		workerProviderID, idErr := kernel.UUIDFromBytes(rowProviderID[:])
		if idErr != nil {
			return nil, idErr
		}

		aggregate, domainErr := worker.RestoreWorker(workerID, workerProviderID,
			firstName, lastName, role)
		if domainErr != nil {
			return nil, domainErr
		}
		workers = append(workers, aggregate)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}

// loadBlockedTimes reads the provider's blocked-time records covering the
// given date.
func loadBlockedTimes(
	ctx context.Context, db *gorm.DB, providerID kernel.UUID, date time.Time,
) ([]*blockedtime.BlockedTime, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT id, provider_id, worker_id, from_date, to_date, start_time, end_time, reason
		FROM blocked_times
		WHERE provider_id = ? AND from_date < ? AND to_date >= ?
		ORDER BY from_date, start_time NULLS FIRST, id
	`, providerID.Bytes(), dayEnd, dayStart).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*blockedtime.BlockedTime, 0)
	for rows.Next() {
		var (
			id, rowProviderID  uuid.UUID
			workerID           *uuid.UUID
			fromDate, toDate   time.Time
			startTime, endTime *string
			reason             string
		)
		err = rows.Scan(&id, &rowProviderID, &workerID, &fromDate, &toDate,
			&startTime, &endTime, &reason)
		if err != nil {
			return nil, err
		}

		blockID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		blockProviderID, idErr := kernel.UUIDFromBytes(rowProviderID[:])
		if idErr != nil {
			return nil, idErr
		}

		var blockWorkerID *kernel.UUID
		if workerID != nil {
			wID, widErr := kernel.UUIDFromBytes((*workerID)[:])
			if widErr != nil {
				return nil, widErr
			}
			blockWorkerID = &wID
		}

		startClock, clockErr := labelToClock(startTime)
		if clockErr != nil {
			return nil, clockErr
		}
		endClock, clockErr := labelToClock(endTime)
		if clockErr != nil {
			return nil, clockErr
		}

		record, domainErr := blockedtime.RestoreBlockedTime(blockID, blockProviderID,
			blockWorkerID, fromDate, toDate, startClock, endClock, reason)
		if domainErr != nil {
			return nil, domainErr
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func centsToMoney(cents *int64) (*kernel.Money, error) {
	if cents == nil {
		return nil, nil
	}
	value, err := kernel.NewMoney(*cents)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func labelToClock(label *string) (*kernel.ClockTime, error) {
	if label == nil {
		return nil, nil
	}
	clock, err := kernel.ParseClockTime(*label)
	if err != nil {
		return nil, err
	}
	return &clock, nil
}
