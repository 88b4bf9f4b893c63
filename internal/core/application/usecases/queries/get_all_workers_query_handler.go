package queries

import (
	"context"

	"gorm.io/gorm"

	"fieldops/internal/pkg/errs"
)

// GetAllWorkersQueryHandler reads the provider roster from the database.
type GetAllWorkersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllWorkersQueryHandler creates a handler backed by the given database
// connection.
func NewGetAllWorkersQueryHandler(db *gorm.DB) (GetAllWorkersQueryHandler, error) {
	if db == nil {
		return GetAllWorkersQueryHandler{}, errs.NewValueIsRequiredError("db")
	}

	return GetAllWorkersQueryHandler{db: db}, nil
}

// Handle returns the provider's workers ordered by last name then first name.
func (h GetAllWorkersQueryHandler) Handle(
	ctx context.Context, query GetAllWorkersQuery,
) (GetAllWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllWorkersQueryResponse{}, err
	}

	workers, err := loadWorkers(ctx, h.db, query.ProviderID())
	if err != nil {
		return GetAllWorkersQueryResponse{}, err
	}

	summaries := make([]WorkerSummary, 0, len(workers))
	for _, w := range workers {
		summaries = append(summaries, WorkerSummary{
			ID:        w.ID(),
			FirstName: w.FirstName(),
			LastName:  w.LastName(),
			Role:      w.Role(),
		})
	}

	return GetAllWorkersQueryResponse{Workers: summaries}, nil
}
