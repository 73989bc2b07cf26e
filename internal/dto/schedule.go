package dto

import (
	"time"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
)

// --- Schedule DTOs ---

// SaveScheduleRequest defines data for creating or updating a schedule.
// Omitted weekdays and display hours fall back to the defaults.
type SaveScheduleRequest struct {
	Nome             string `json:"nome" binding:"required"`
	DataInicio       string `json:"data_inicio" binding:"required,datetime=2006-01-02"`
	DataFim          string `json:"data_fim" binding:"required,datetime=2006-01-02"`
	DiasSemana       []int  `json:"dias_semana" binding:"omitempty,dive,min=0,max=6"`
	HoraInicioPadrao string `json:"hora_inicio_padrao" binding:"omitempty,hhmm"`
	HoraFimPadrao    string `json:"hora_fim_padrao" binding:"omitempty,hhmm"`
}

// ScheduleResponse defines data returned for a schedule.
type ScheduleResponse struct {
	IDAgenda         string `json:"id_agenda"`
	Nome             string `json:"nome"`
	DataInicio       string `json:"data_inicio"`
	DataFim          string `json:"data_fim"`
	DiasSemana       []int  `json:"dias_semana"`
	HoraInicioPadrao string `json:"hora_inicio_padrao"`
	HoraFimPadrao    string `json:"hora_fim_padrao"`
}

// ToScheduleResponse converts domain.Schedule to DTO.
func ToScheduleResponse(s *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		IDAgenda:         s.ScheduleID,
		Nome:             s.Name,
		DataInicio:       s.StartDate.Format(time.DateOnly),
		DataFim:          s.EndDate.Format(time.DateOnly),
		DiasSemana:       s.DisplayedWeekdays,
		HoraInicioPadrao: s.DefaultStartHour.String(),
		HoraFimPadrao:    s.DefaultEndHour.String(),
	}
}

// ScheduleEnvelope wraps a single schedule in the success envelope.
type ScheduleEnvelope struct {
	Sucesso bool             `json:"sucesso"`
	Agenda  ScheduleResponse `json:"agenda"`
}

// ToScheduleEnvelope wraps a schedule in the success envelope.
func ToScheduleEnvelope(s *domain.Schedule) ScheduleEnvelope {
	return ScheduleEnvelope{Sucesso: true, Agenda: ToScheduleResponse(s)}
}

// ListSchedulesResponse wraps a list of schedules in the success envelope.
type ListSchedulesResponse struct {
	Sucesso bool               `json:"sucesso"`
	Agendas []ScheduleResponse `json:"agendas"`
}

// ToListSchedulesResponse converts a slice of domain.Schedule to DTO.
func ToListSchedulesResponse(ss []domain.Schedule) ListSchedulesResponse {
	list := make([]ScheduleResponse, len(ss))
	for i := range ss {
		list[i] = ToScheduleResponse(&ss[i])
	}
	return ListSchedulesResponse{Sucesso: true, Agendas: list}
}

// --- Schedule rate override DTOs ---

// SetWorkplaceRateRequest defines data for a per-schedule hourly rate
// override.
type SetWorkplaceRateRequest struct {
	ValorHora float64 `json:"valor_hora" binding:"min=0"`
}

// ScheduleRateResponse defines data returned for a rate override.
type ScheduleRateResponse struct {
	LocalID   string  `json:"local_id"`
	ValorHora float64 `json:"valor_hora"`
}

// ToScheduleRateResponse converts domain.ScheduleWorkplaceRate to DTO.
func ToScheduleRateResponse(r *domain.ScheduleWorkplaceRate) ScheduleRateResponse {
	return ScheduleRateResponse{
		LocalID:   r.WorkplaceID,
		ValorHora: r.HourlyRate.InexactFloat64(),
	}
}

// ListScheduleRatesResponse wraps a schedule's rate overrides in the success
// envelope.
type ListScheduleRatesResponse struct {
	Sucesso bool                   `json:"sucesso"`
	Valores []ScheduleRateResponse `json:"valores"`
}

// ToListScheduleRatesResponse converts rate overrides to DTO.
func ToListScheduleRatesResponse(rs []domain.ScheduleWorkplaceRate) ListScheduleRatesResponse {
	list := make([]ScheduleRateResponse, len(rs))
	for i := range rs {
		list[i] = ToScheduleRateResponse(&rs[i])
	}
	return ListScheduleRatesResponse{Sucesso: true, Valores: list}
}
