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

type PgxScheduleRepository struct {
	BaseRepository
}

// newPgxScheduleRepository creates a new repository for schedule data.
func newPgxScheduleRepository(pool *pgxpool.Pool) portsrepo.ScheduleRepositoryFacade {
	return &PgxScheduleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxScheduleRepository implements portsrepo.ScheduleRepositoryFacade
var _ portsrepo.ScheduleRepositoryFacade = (*PgxScheduleRepository)(nil)

var FULL_SCHEDULE_SELECT_QUERY = `
SELECT
	s.schedule_id, s.name, s.start_date, s.end_date, s.displayed_weekdays,
	s.default_start_hour, s.default_end_hour, s.created_at, s.last_updated_at
FROM schedules s
`

// getSchedules private func to get schedules from the select query filters
func (r *PgxScheduleRepository) getSchedules(ctx context.Context, filterQuery string, args ...any) ([]domain.Schedule, error) {
	query := FULL_SCHEDULE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query schedules", err)
	}
	defer rows.Close()

	var schedules []domain.Schedule
	for rows.Next() {
		var s domain.Schedule
		if err := rows.Scan(
			&s.ScheduleID,
			&s.Name,
			&s.StartDate,
			&s.EndDate,
			&s.DisplayedWeekdays,
			&s.DefaultStartHour,
			&s.DefaultEndHour,
			&s.CreatedAt,
			&s.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan schedule row", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect schedule rows", err)
	}
	return schedules, nil
}

func (r *PgxScheduleRepository) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	query := `
		INSERT INTO schedules (
			schedule_id, name, start_date, end_date, displayed_weekdays,
			default_start_hour, default_end_hour, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		schedule.ScheduleID,
		schedule.Name,
		schedule.StartDate,
		schedule.EndDate,
		schedule.DisplayedWeekdays,
		schedule.DefaultStartHour,
		schedule.DefaultEndHour,
		schedule.CreatedAt,
		schedule.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("schedule ID " + schedule.ScheduleID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save schedule "+schedule.ScheduleID, err)
	}
	return nil
}

func (r *PgxScheduleRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	query := `WHERE s.schedule_id = $1`
	schedules, err := r.getSchedules(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &schedules[0], nil
}

func (r *PgxScheduleRepository) ListSchedules(ctx context.Context) ([]domain.Schedule, error) {
	return r.getSchedules(ctx, `ORDER BY s.start_date, s.schedule_id`)
}

func (r *PgxScheduleRepository) UpdateSchedule(ctx context.Context, schedule domain.Schedule) error {
	query := `
		UPDATE schedules SET
			name = $2, start_date = $3, end_date = $4, displayed_weekdays = $5,
			default_start_hour = $6, default_end_hour = $7, last_updated_at = $8
		WHERE schedule_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		schedule.ScheduleID,
		schedule.Name,
		schedule.StartDate,
		schedule.EndDate,
		schedule.DisplayedWeekdays,
		schedule.DefaultStartHour,
		schedule.DefaultEndHour,
		schedule.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update schedule "+schedule.ScheduleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxScheduleRepository) DeleteSchedule(ctx context.Context, scheduleID string) error {
	// Appointments and rate overrides go with the schedule via ON DELETE CASCADE.
	tag, err := r.Pool.Exec(ctx, `DELETE FROM schedules WHERE schedule_id = $1;`, scheduleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete schedule "+scheduleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxScheduleRepository) UpsertWorkplaceRate(ctx context.Context, rate domain.ScheduleWorkplaceRate) error {
	query := `
		INSERT INTO schedule_workplace_rates (schedule_id, workplace_id, hourly_rate)
		VALUES ($1, $2, $3)
		ON CONFLICT (schedule_id, workplace_id) DO UPDATE SET hourly_rate = EXCLUDED.hourly_rate;
	`
	_, err := r.Pool.Exec(ctx, query, rate.ScheduleID, rate.WorkplaceID, rate.HourlyRate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("schedule or workplace does not exist")
		}
		return apperrors.NewAppError(500, "failed to upsert rate for schedule "+rate.ScheduleID, err)
	}
	return nil
}

func (r *PgxScheduleRepository) ListWorkplaceRates(ctx context.Context, scheduleID string) ([]domain.ScheduleWorkplaceRate, error) {
	query := `
		SELECT r.schedule_id, r.workplace_id, r.hourly_rate
		FROM schedule_workplace_rates r
		WHERE r.schedule_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workplace rates", err)
	}
	defer rows.Close()

	var rates []domain.ScheduleWorkplaceRate
	for rows.Next() {
		var rate domain.ScheduleWorkplaceRate
		if err := rows.Scan(&rate.ScheduleID, &rate.WorkplaceID, &rate.HourlyRate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan workplace rate row", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect workplace rate rows", err)
	}
	return rates, nil
}
