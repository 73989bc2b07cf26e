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

type PgxAppointmentRepository struct {
	BaseRepository
}

// newPgxAppointmentRepository creates a new repository for appointment data.
func newPgxAppointmentRepository(pool *pgxpool.Pool) portsrepo.AppointmentRepositoryFacade {
	return &PgxAppointmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAppointmentRepository implements portsrepo.AppointmentRepositoryFacade
var _ portsrepo.AppointmentRepositoryFacade = (*PgxAppointmentRepository)(nil)

var FULL_APPOINTMENT_SELECT_QUERY = `
SELECT
	a.appointment_id, a.schedule_id, a.workplace_id, a.day_of_week,
	a.start_time, a.end_time, a.description, a.hour_type, a.duration_hours,
	a.created_at, a.last_updated_at
FROM appointments a
`

// getAppointments private func to get appointments from the select query filters
func (r *PgxAppointmentRepository) getAppointments(ctx context.Context, filterQuery string, args ...any) ([]domain.Appointment, error) {
	query := FULL_APPOINTMENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query appointments", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(
			&a.AppointmentID,
			&a.ScheduleID,
			&a.WorkplaceID,
			&a.DayOfWeek,
			&a.StartTime,
			&a.EndTime,
			&a.Description,
			&a.HourType,
			&a.DurationHours,
			&a.CreatedAt,
			&a.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan appointment row", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect appointment rows", err)
	}
	return appointments, nil
}

func (r *PgxAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) error {
	query := `
		INSERT INTO appointments (
			appointment_id, schedule_id, workplace_id, day_of_week,
			start_time, end_time, description, hour_type, duration_hours,
			created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		appointment.AppointmentID,
		appointment.ScheduleID,
		appointment.WorkplaceID,
		appointment.DayOfWeek,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Description,
		appointment.HourType,
		appointment.DurationHours,
		appointment.CreatedAt,
		appointment.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("appointment ID " + appointment.AppointmentID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("schedule or workplace does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save appointment "+appointment.AppointmentID, err)
	}
	return nil
}

func (r *PgxAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	query := `WHERE a.appointment_id = $1`
	appointments, err := r.getAppointments(ctx, query, appointmentID)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &appointments[0], nil
}

func (r *PgxAppointmentRepository) ListAppointmentsBySchedule(ctx context.Context, scheduleID string) ([]domain.Appointment, error) {
	query := `WHERE a.schedule_id = $1 ORDER BY a.day_of_week, a.start_time`
	return r.getAppointments(ctx, query, scheduleID)
}

func (r *PgxAppointmentRepository) UpdateAppointment(ctx context.Context, appointment domain.Appointment) error {
	query := `
		UPDATE appointments SET
			schedule_id = $2, workplace_id = $3, day_of_week = $4,
			start_time = $5, end_time = $6, description = $7, hour_type = $8,
			duration_hours = $9, last_updated_at = $10
		WHERE appointment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		appointment.AppointmentID,
		appointment.ScheduleID,
		appointment.WorkplaceID,
		appointment.DayOfWeek,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Description,
		appointment.HourType,
		appointment.DurationHours,
		appointment.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("schedule or workplace does not exist")
		}
		return apperrors.NewAppError(500, "failed to update appointment "+appointment.AppointmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAppointmentRepository) DeleteAppointment(ctx context.Context, appointmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM appointments WHERE appointment_id = $1;`, appointmentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete appointment "+appointmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
