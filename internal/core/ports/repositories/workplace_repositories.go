package repositories

import (
	"context"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
)

// WorkplaceReader defines read operations for workplace data
type WorkplaceReader interface {
	// FindWorkplaceByID retrieves a specific workplace by its ID.
	FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error)

	// ListWorkplaces retrieves all workplaces.
	ListWorkplaces(ctx context.Context) ([]domain.Workplace, error)
}

// WorkplaceWriter defines write operations for workplace data
type WorkplaceWriter interface {
	// SaveWorkplace persists a new workplace.
	SaveWorkplace(ctx context.Context, workplace domain.Workplace) error

	// UpdateWorkplace persists changes to an existing workplace.
	UpdateWorkplace(ctx context.Context, workplace domain.Workplace) error

	// DeleteWorkplace removes a workplace. Its appointments are removed with
	// it and any relation pointing at it is cleared.
	DeleteWorkplace(ctx context.Context, workplaceID string) error
}

// WorkplaceRepositoryFacade combines all workplace-related repository interfaces.
type WorkplaceRepositoryFacade interface {
	WorkplaceReader
	WorkplaceWriter
}
