package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/apperrors"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	portsrepo "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/repositories"
)

type PgxWorkplaceRepository struct {
	BaseRepository
}

// newPgxWorkplaceRepository creates a new repository for workplace data.
func newPgxWorkplaceRepository(pool *pgxpool.Pool) portsrepo.WorkplaceRepositoryFacade {
	return &PgxWorkplaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkplaceRepository implements portsrepo.WorkplaceRepositoryFacade
var _ portsrepo.WorkplaceRepositoryFacade = (*PgxWorkplaceRepository)(nil)

var FULL_WORKPLACE_SELECT_QUERY = `
SELECT
	w.workplace_id, w.name, w.color, w.hourly_rate, w.bonus_percent,
	w.grace_period_minutes, w.related_to, w.created_at, w.last_updated_at
FROM workplaces w
`

// getWorkplaces private func to get workplaces from the select query filters
func (r *PgxWorkplaceRepository) getWorkplaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workplace, error) {
	query := FULL_WORKPLACE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workplaces", err)
	}
	defer rows.Close()

	var workplaces []domain.Workplace
	for rows.Next() {
		var w domain.Workplace
		if err := rows.Scan(
			&w.WorkplaceID,
			&w.Name,
			&w.Color,
			&w.HourlyRate,
			&w.BonusPercent,
			&w.GracePeriodMinutes,
			&w.RelatedTo,
			&w.CreatedAt,
			&w.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan workplace row", err)
		}
		workplaces = append(workplaces, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect workplace rows", err)
	}
	return workplaces, nil
}

func (r *PgxWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace) error {
	query := `
		INSERT INTO workplaces (
			workplace_id, name, color, hourly_rate, bonus_percent,
			grace_period_minutes, related_to, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		workplace.WorkplaceID,
		workplace.Name,
		workplace.Color,
		workplace.HourlyRate,
		workplace.BonusPercent,
		workplace.GracePeriodMinutes,
		workplace.RelatedTo,
		workplace.CreatedAt,
		workplace.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("workplace ID " + workplace.WorkplaceID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("related workplace does not exist")
			}
			if pgErr.Code == "23514" { // check_violation
				return apperrors.NewValidationFailedError("workplace cannot relate to itself")
			}
		}
		return apperrors.NewAppError(500, "failed to save workplace "+workplace.WorkplaceID, err)
	}
	return nil
}

func (r *PgxWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	query := `WHERE w.workplace_id = $1`
	workplaces, err := r.getWorkplaces(ctx, query, workplaceID)
	if err != nil {
		return nil, err
	}
	if len(workplaces) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &workplaces[0], nil
}

func (r *PgxWorkplaceRepository) ListWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	return r.getWorkplaces(ctx, `ORDER BY w.name, w.workplace_id`)
}

func (r *PgxWorkplaceRepository) UpdateWorkplace(ctx context.Context, workplace domain.Workplace) error {
	query := `
		UPDATE workplaces SET
			name = $2, color = $3, hourly_rate = $4, bonus_percent = $5,
			grace_period_minutes = $6, related_to = $7, last_updated_at = $8
		WHERE workplace_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		workplace.WorkplaceID,
		workplace.Name,
		workplace.Color,
		workplace.HourlyRate,
		workplace.BonusPercent,
		workplace.GracePeriodMinutes,
		workplace.RelatedTo,
		workplace.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("related workplace does not exist")
			}
			if pgErr.Code == "23514" {
				return apperrors.NewValidationFailedError("workplace cannot relate to itself")
			}
		}
		return apperrors.NewAppError(500, "failed to update workplace "+workplace.WorkplaceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxWorkplaceRepository) DeleteWorkplace(ctx context.Context, workplaceID string) error {
	// Appointments go with the workplace via ON DELETE CASCADE; relations
	// pointing at it are cleared via ON DELETE SET NULL.
	tag, err := r.Pool.Exec(ctx, `DELETE FROM workplaces WHERE workplace_id = $1;`, workplaceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete workplace "+workplaceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
