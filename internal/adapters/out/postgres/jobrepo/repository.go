package jobrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job and its assignments to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing job to the database. Assignments are replaced
// wholesale since reschedules can change the assigned worker.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&JobDTO{}).
		Where("id = ?", dto.ID).
		Omit("Assignments").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("job_id = ?", dto.ID).
		Delete(&JobAssignmentDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Assignments) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Assignments).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID with its assignments loaded.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	err := r.db.WithContext(ctx).Preload("Assignments").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOnDate retrieves the provider's jobs starting on the given calendar
// date, ordered by start time.
func (r *GormJobRepository) GetAllOnDate(
	ctx context.Context, providerID kernel.UUID, date time.Time,
) ([]*job.Job, error) {
	if err := providerID.Validate(); err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var dtos []JobDTO
	err := r.db.WithContext(ctx).Preload("Assignments").
		Where("provider_id = ? AND start_time >= ? AND start_time < ?",
			providerID.Bytes(), dayStart, dayEnd).
		Order("start_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		jobs = append(jobs, aggregate)
	}

	return jobs, nil
}
