// Package blockedtimerepo provides data transfer objects and mapping
// functions for blocked-time persistence.
package blockedtimerepo

import (
	"time"

	"github.com/google/uuid"

	"fieldops/internal/core/domain/model/blockedtime"
	"fieldops/internal/core/domain/model/kernel"
)

// BlockedTimeDTO represents the database structure for persisting
// blocked-time records. Time-of-day endpoints are stored as "HH:MM" labels;
// both NULL means an all-day block.
type BlockedTimeDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProviderID uuid.UUID  `gorm:"type:uuid;index"`
	WorkerID   *uuid.UUID `gorm:"type:uuid;index"`
	FromDate   time.Time  `gorm:"index"`
	ToDate     time.Time
	StartTime  *string
	EndTime    *string
	Reason     string
}

// TableName specifies the database table name for blocked-time records.
func (BlockedTimeDTO) TableName() string {
	return "blocked_times"
}

// fromDomain converts a blocked-time record to its database representation.
func fromDomain(record *blockedtime.BlockedTime) BlockedTimeDTO {
	var workerID *uuid.UUID
	if id := record.WorkerID(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	return BlockedTimeDTO{
		ID:         record.ID().Bytes(),
		ProviderID: record.ProviderID().Bytes(),
		WorkerID:   workerID,
		FromDate:   record.FromDate(),
		ToDate:     record.ToDate(),
		StartTime:  clockToLabel(record.StartTime()),
		EndTime:    clockToLabel(record.EndTime()),
		Reason:     record.Reason(),
	}
}

// toDomain converts a database DTO to a blocked-time record.
func toDomain(dto BlockedTimeDTO) (*blockedtime.BlockedTime, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}
		workerID = &wID
	}

	startTime, err := labelToClock(dto.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := labelToClock(dto.EndTime)
	if err != nil {
		return nil, err
	}

	return blockedtime.RestoreBlockedTime(id, providerID, workerID,
		dto.FromDate, dto.ToDate, startTime, endTime, dto.Reason)
}

func clockToLabel(clock *kernel.ClockTime) *string {
	if clock == nil {
		return nil
	}
	label := clock.String()
	return &label
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
