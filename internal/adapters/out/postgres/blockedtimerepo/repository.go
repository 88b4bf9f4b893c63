package blockedtimerepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fieldops/internal/core/domain/model/blockedtime"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

// GormBlockedTimeRepository implements BlockedTimeRepository using GORM.
type GormBlockedTimeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBlockedTimeRepository creates a new GORM blocked-time repository.
func NewGormBlockedTimeRepository(db *gorm.DB, tracker aggregateTracker) *GormBlockedTimeRepository {
	return &GormBlockedTimeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new blocked-time record to the database.
func (r *GormBlockedTimeRepository) Add(ctx context.Context, record *blockedtime.BlockedTime) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves a blocked-time record by ID.
func (r *GormBlockedTimeRepository) Get(ctx context.Context, id kernel.UUID) (*blockedtime.BlockedTime, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BlockedTimeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("blockedTime", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a blocked-time record.
func (r *GormBlockedTimeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BlockedTimeDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("blockedTime", id.String())
	}

	return nil
}

// GetAllCoveringDate retrieves the provider's blocks whose date range
// contains the given calendar date.
func (r *GormBlockedTimeRepository) GetAllCoveringDate(
	ctx context.Context, providerID kernel.UUID, date time.Time,
) ([]*blockedtime.BlockedTime, error) {
	if err := providerID.Validate(); err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	// from_date < end of day and to_date >= start of day, which covers
	// blocks whose endpoints carry a time of day.
	var dtos []BlockedTimeDTO
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND from_date < ? AND to_date >= ?",
			providerID.Bytes(), dayEnd, dayStart).
		Order("from_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*blockedtime.BlockedTime, 0, len(dtos))
	for _, dto := range dtos {
		record, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		records = append(records, record)
	}

	return records, nil
}
