package dto

import (
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
)

// ReportWorkplaceResponse defines one workplace row in a report.
// Hours carry one decimal place, currency values two.
type ReportWorkplaceResponse struct {
	IDLocal           string  `json:"id_local"`
	Nome              string  `json:"nome"`
	RelacionadoCom    *string `json:"relacionado_com"`
	BaseHoras         float64 `json:"base_horas"`
	AcrescimoHoras    float64 `json:"acrescimo_horas"`
	TotalHoras        float64 `json:"total_horas"`
	ValorHoraAplicado float64 `json:"valor_hora_aplicado"`
	ValorTotal        float64 `json:"valor_total"`
}

// ReportPayload carries the report rows plus grand totals.
type ReportPayload struct {
	Locais     []ReportWorkplaceResponse `json:"locais"`
	TotalHoras float64                   `json:"total_horas"`
	TotalValor float64                   `json:"total_valor"`
}

// ReportResponse wraps a report in the success envelope.
type ReportResponse struct {
	Sucesso   bool          `json:"sucesso"`
	Relatorio ReportPayload `json:"relatorio"`
}

// ToReportResponse converts domain.Report to DTO, rounding hours to one
// decimal place and currency values to two.
func ToReportResponse(r *domain.Report) ReportResponse {
	rows := make([]ReportWorkplaceResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = ReportWorkplaceResponse{
			IDLocal:           row.WorkplaceID,
			Nome:              row.Name,
			RelacionadoCom:    row.RelatedTo,
			BaseHoras:         row.BaseHours.Round(1).InexactFloat64(),
			AcrescimoHoras:    row.BonusHours.Round(1).InexactFloat64(),
			TotalHoras:        row.TotalHours.Round(1).InexactFloat64(),
			ValorHoraAplicado: row.AppliedRate.Round(2).InexactFloat64(),
			ValorTotal:        row.Value.Round(2).InexactFloat64(),
		}
	}
	return ReportResponse{
		Sucesso: true,
		Relatorio: ReportPayload{
			Locais:     rows,
			TotalHoras: r.TotalHours.Round(1).InexactFloat64(),
			TotalValor: r.TotalValue.Round(2).InexactFloat64(),
		},
	}
}
