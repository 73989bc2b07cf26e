package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/apperrors"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	portsrepo "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/repositories"
	portssvc "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/services"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
)

// workplaceService implements the WorkplaceSvcFacade interface
type workplaceService struct {
	BaseService
	workplaceRepo portsrepo.WorkplaceRepositoryFacade
}

// NewWorkplaceService creates a new workplace service with the provided dependencies
func NewWorkplaceService(workplaceRepo portsrepo.WorkplaceRepositoryFacade) portssvc.WorkplaceSvcFacade {
	return &workplaceService{workplaceRepo: workplaceRepo}
}

var _ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)

// CreateWorkplace creates a new workplace
func (s *workplaceService) CreateWorkplace(ctx context.Context, req dto.SaveWorkplaceRequest) (*domain.Workplace, error) {
	if err := s.validateRelation(ctx, "", req.RelacionadoCom); err != nil {
		return nil, err
	}

	now := time.Now()
	workplace := domain.Workplace{
		WorkplaceID:        uuid.NewString(),
		Name:               req.Nome,
		Color:              req.Cor,
		HourlyRate:         decimal.NewFromFloat(req.ValorHora),
		BonusPercent:       decimal.NewFromFloat(req.AcrescimoHAPercent),
		GracePeriodMinutes: domain.DefaultGracePeriodMinutes,
		RelatedTo:          req.RelacionadoCom,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.PeriodoCarencia != nil {
		workplace.GracePeriodMinutes = *req.PeriodoCarencia
	}

	if err := s.workplaceRepo.SaveWorkplace(ctx, workplace); err != nil {
		s.LogError(ctx, err, "Failed to save workplace",
			slog.String("workplace_id", workplace.WorkplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Workplace created",
		slog.String("workplace_id", workplace.WorkplaceID),
		slog.String("name", workplace.Name))
	return &workplace, nil
}

// GetWorkplaceByID retrieves a workplace by its ID
func (s *workplaceService) GetWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workplace by ID",
				slog.String("workplace_id", workplaceID))
		}
		return nil, err
	}
	return workplace, nil
}

// ListWorkplaces retrieves all workplaces
func (s *workplaceService) ListWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	workplaces, err := s.workplaceRepo.ListWorkplaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplaces")
		return nil, err
	}
	if workplaces == nil {
		return []domain.Workplace{}, nil
	}
	return workplaces, nil
}

// UpdateWorkplace updates an existing workplace
func (s *workplaceService) UpdateWorkplace(ctx context.Context, workplaceID string, req dto.SaveWorkplaceRequest) (*domain.Workplace, error) {
	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		return nil, err
	}

	if err := s.validateRelation(ctx, workplaceID, req.RelacionadoCom); err != nil {
		return nil, err
	}

	workplace.Name = req.Nome
	workplace.Color = req.Cor
	workplace.HourlyRate = decimal.NewFromFloat(req.ValorHora)
	workplace.BonusPercent = decimal.NewFromFloat(req.AcrescimoHAPercent)
	workplace.RelatedTo = req.RelacionadoCom
	if req.PeriodoCarencia != nil {
		workplace.GracePeriodMinutes = *req.PeriodoCarencia
	}
	workplace.LastUpdatedAt = time.Now()

	if err := s.workplaceRepo.UpdateWorkplace(ctx, *workplace); err != nil {
		s.LogError(ctx, err, "Failed to update workplace",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Workplace updated", slog.String("workplace_id", workplaceID))
	return workplace, nil
}

// DeleteWorkplace removes a workplace and everything scheduled at it
func (s *workplaceService) DeleteWorkplace(ctx context.Context, workplaceID string) error {
	if _, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID); err != nil {
		return err
	}

	if err := s.workplaceRepo.DeleteWorkplace(ctx, workplaceID); err != nil {
		s.LogError(ctx, err, "Failed to delete workplace",
			slog.String("workplace_id", workplaceID))
		return err
	}

	s.LogInfo(ctx, "Workplace deleted", slog.String("workplace_id", workplaceID))
	return nil
}

// validateRelation rejects a relation target that is the workplace itself or
// does not exist.
func (s *workplaceService) validateRelation(ctx context.Context, workplaceID string, relatedTo *string) error {
	if relatedTo == nil {
		return nil
	}
	if *relatedTo == workplaceID {
		return apperrors.NewValidationFailedError("workplace cannot relate to itself")
	}
	if _, err := s.workplaceRepo.FindWorkplaceByID(ctx, *relatedTo); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationFailedError("related workplace not found")
		}
		return err
	}
	return nil
}
