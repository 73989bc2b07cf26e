package services

import (
	"context"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
)

// WorkplaceSvcFacade defines the service operations for workplaces.
type WorkplaceSvcFacade interface {
	// CreateWorkplace creates a new workplace. The relation target, when
	// present, must reference an existing workplace.
	CreateWorkplace(ctx context.Context, req dto.SaveWorkplaceRequest) (*domain.Workplace, error)

	// GetWorkplaceByID retrieves a workplace by its ID.
	GetWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error)

	// ListWorkplaces retrieves all workplaces.
	ListWorkplaces(ctx context.Context) ([]domain.Workplace, error)

	// UpdateWorkplace updates an existing workplace. A relation to itself or
	// to an unknown workplace is rejected.
	UpdateWorkplace(ctx context.Context, workplaceID string, req dto.SaveWorkplaceRequest) (*domain.Workplace, error)

	// DeleteWorkplace removes a workplace, cascading to its appointments.
	DeleteWorkplace(ctx context.Context, workplaceID string) error
}
