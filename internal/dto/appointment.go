package dto

import (
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
)

// --- Appointment DTOs ---

// SaveAppointmentRequest defines data for creating or updating an
// appointment. Duracao is a display hint only; the server re-derives the
// duration from the start and end times.
type SaveAppointmentRequest struct {
	AgendaID   string  `json:"agenda_id" binding:"required"`
	LocalID    string  `json:"local_id" binding:"required"`
	DiaSemana  int     `json:"dia_semana" binding:"min=0,max=6"`
	HoraInicio string  `json:"hora_inicio" binding:"required,hhmm"`
	HoraFim    string  `json:"hora_fim" binding:"required,hhmm"`
	Descricao  string  `json:"descricao"`
	TipoHora   string  `json:"tipo_hora"`
	Duracao    float64 `json:"duracao"`
}

// AppointmentResponse defines data returned for an appointment. Times are
// "HH:MM" strings.
type AppointmentResponse struct {
	IDCompromisso string  `json:"id_compromisso"`
	AgendaID      string  `json:"agenda_id"`
	LocalID       string  `json:"local_id"`
	DiaSemana     int     `json:"dia_semana"`
	HoraInicio    string  `json:"hora_inicio"`
	HoraFim       string  `json:"hora_fim"`
	Descricao     string  `json:"descricao"`
	TipoHora      string  `json:"tipo_hora"`
	Duracao       float64 `json:"duracao"`
}

// ToAppointmentResponse converts domain.Appointment to DTO.
func ToAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		IDCompromisso: a.AppointmentID,
		AgendaID:      a.ScheduleID,
		LocalID:       a.WorkplaceID,
		DiaSemana:     a.DayOfWeek,
		HoraInicio:    a.StartTime.String(),
		HoraFim:       a.EndTime.String(),
		Descricao:     a.Description,
		TipoHora:      a.HourType,
		Duracao:       a.DurationHours.InexactFloat64(),
	}
}

// AppointmentEnvelope wraps a single appointment in the success envelope.
type AppointmentEnvelope struct {
	Sucesso     bool                `json:"sucesso"`
	Compromisso AppointmentResponse `json:"compromisso"`
}

// ToAppointmentEnvelope wraps an appointment in the success envelope.
func ToAppointmentEnvelope(a *domain.Appointment) AppointmentEnvelope {
	return AppointmentEnvelope{Sucesso: true, Compromisso: ToAppointmentResponse(a)}
}

// ListAppointmentsResponse wraps a list of appointments in the success envelope.
type ListAppointmentsResponse struct {
	Sucesso      bool                  `json:"sucesso"`
	Compromissos []AppointmentResponse `json:"compromissos"`
}

// ToListAppointmentsResponse converts a slice of domain.Appointment to DTO.
func ToListAppointmentsResponse(as []domain.Appointment) ListAppointmentsResponse {
	list := make([]AppointmentResponse, len(as))
	for i := range as {
		list[i] = ToAppointmentResponse(&as[i])
	}
	return ListAppointmentsResponse{Sucesso: true, Compromissos: list}
}
