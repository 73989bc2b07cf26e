package dto

import (
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
)

// --- Workplace DTOs ---

// SaveWorkplaceRequest defines data for creating or updating a workplace.
// PeriodoCarencia defaults to 60 minutes when omitted.
type SaveWorkplaceRequest struct {
	Nome               string  `json:"nome" binding:"required"`
	Cor                string  `json:"cor"`
	ValorHora          float64 `json:"valor_hora" binding:"min=0"`
	AcrescimoHAPercent float64 `json:"acrescimo_ha_percent" binding:"min=0"`
	PeriodoCarencia    *int    `json:"periodo_carencia" binding:"omitempty,min=0"`
	RelacionadoCom     *string `json:"relacionado_com"`
}

// WorkplaceResponse defines data returned for a workplace.
type WorkplaceResponse struct {
	IDLocal            string  `json:"id_local"`
	Nome               string  `json:"nome"`
	Cor                string  `json:"cor"`
	ValorHora          float64 `json:"valor_hora"`
	AcrescimoHAPercent float64 `json:"acrescimo_ha_percent"`
	PeriodoCarencia    int     `json:"periodo_carencia"`
	RelacionadoCom     *string `json:"relacionado_com,omitempty"`
}

// ToWorkplaceResponse converts domain.Workplace to DTO.
func ToWorkplaceResponse(w *domain.Workplace) WorkplaceResponse {
	return WorkplaceResponse{
		IDLocal:            w.WorkplaceID,
		Nome:               w.Name,
		Cor:                w.Color,
		ValorHora:          w.HourlyRate.InexactFloat64(),
		AcrescimoHAPercent: w.BonusPercent.InexactFloat64(),
		PeriodoCarencia:    w.GracePeriodMinutes,
		RelacionadoCom:     w.RelatedTo,
	}
}

// WorkplaceEnvelope wraps a single workplace in the success envelope.
type WorkplaceEnvelope struct {
	Sucesso bool              `json:"sucesso"`
	Local   WorkplaceResponse `json:"local"`
}

// ToWorkplaceEnvelope wraps a workplace in the success envelope.
func ToWorkplaceEnvelope(w *domain.Workplace) WorkplaceEnvelope {
	return WorkplaceEnvelope{Sucesso: true, Local: ToWorkplaceResponse(w)}
}

// ListWorkplacesResponse wraps a list of workplaces in the success envelope.
type ListWorkplacesResponse struct {
	Sucesso bool                `json:"sucesso"`
	Locais  []WorkplaceResponse `json:"locais"`
}

// ToListWorkplacesResponse converts a slice of domain.Workplace to DTO.
func ToListWorkplacesResponse(ws []domain.Workplace) ListWorkplacesResponse {
	list := make([]WorkplaceResponse, len(ws))
	for i := range ws {
		list[i] = ToWorkplaceResponse(&ws[i])
	}
	return ListWorkplacesResponse{Sucesso: true, Locais: list}
}
