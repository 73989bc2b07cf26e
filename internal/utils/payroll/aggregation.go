// Package payroll implements the hour and pay aggregation over a set of
// appointments: per-workplace base/bonus hour totals, bonused hourly values,
// grand totals, and presentation grouping of related workplaces. All math is
// decimal at full precision; rounding is left to the presentation boundary.
package payroll

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
)

var oneHundred = decimal.NewFromInt(100)

// Aggregate computes the per-workplace report rows and grand totals for the
// given appointment set. rateOverrides maps workplace id to a schedule
// specific hourly rate; workplaces without an override use their default
// rate. Appointments referencing an unknown workplace are skipped. The result
// is deterministic: rows are ordered by workplace name, then id.
func Aggregate(appointments []domain.Appointment, workplaces []domain.Workplace, rateOverrides map[string]decimal.Decimal) domain.Report {
	byID := make(map[string]*domain.Workplace, len(workplaces))
	for i := range workplaces {
		byID[workplaces[i].WorkplaceID] = &workplaces[i]
	}

	rows := make(map[string]*domain.WorkplaceReportRow)
	for i := range appointments {
		a := &appointments[i]
		workplace, ok := byID[a.WorkplaceID]
		if !ok {
			continue
		}
		row, ok := rows[a.WorkplaceID]
		if !ok {
			row = &domain.WorkplaceReportRow{
				WorkplaceID: workplace.WorkplaceID,
				Name:        workplace.Name,
				RelatedTo:   workplace.RelatedTo,
				AppliedRate: effectiveRate(workplace, rateOverrides),
			}
			rows[a.WorkplaceID] = row
		}
		if a.IsBonusHours() {
			row.BonusHours = row.BonusHours.Add(a.DurationHours)
		} else {
			row.BaseHours = row.BaseHours.Add(a.DurationHours)
		}
	}

	report := domain.Report{Rows: make([]domain.WorkplaceReportRow, 0, len(rows))}
	for _, row := range rows {
		workplace := byID[row.WorkplaceID]
		bonusFactor := decimal.NewFromInt(1).Add(workplace.BonusPercent.Div(oneHundred))
		row.TotalHours = row.BaseHours.Add(row.BonusHours)
		row.Value = row.BaseHours.Mul(row.AppliedRate).
			Add(row.BonusHours.Mul(row.AppliedRate).Mul(bonusFactor))
		report.Rows = append(report.Rows, *row)
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		if report.Rows[i].Name != report.Rows[j].Name {
			return report.Rows[i].Name < report.Rows[j].Name
		}
		return report.Rows[i].WorkplaceID < report.Rows[j].WorkplaceID
	})

	for _, row := range report.Rows {
		report.TotalHours = report.TotalHours.Add(row.TotalHours)
		report.TotalValue = report.TotalValue.Add(row.Value)
	}
	return report
}

// Scale multiplies every hour and value of the report by factor. Used to
// derive the monthly report from the weekly one.
func Scale(report domain.Report, factor int64) domain.Report {
	f := decimal.NewFromInt(factor)
	scaled := domain.Report{
		Rows:       make([]domain.WorkplaceReportRow, len(report.Rows)),
		TotalHours: report.TotalHours.Mul(f),
		TotalValue: report.TotalValue.Mul(f),
	}
	for i, row := range report.Rows {
		row.BaseHours = row.BaseHours.Mul(f)
		row.BonusHours = row.BonusHours.Mul(f)
		row.TotalHours = row.TotalHours.Mul(f)
		row.Value = row.Value.Mul(f)
		scaled.Rows[i] = row
	}
	return scaled
}

func effectiveRate(w *domain.Workplace, overrides map[string]decimal.Decimal) decimal.Decimal {
	if rate, ok := overrides[w.WorkplaceID]; ok {
		return rate
	}
	return w.HourlyRate
}

// Group is a set of report rows whose workplaces are related, with subtotals
// across the members. Single-member groups render standalone; multi-member
// groups render with the subtotal.
type Group struct {
	Rows          []domain.WorkplaceReportRow
	SubtotalHours decimal.Decimal
	SubtotalValue decimal.Decimal
}

// GroupRows partitions the rows into relation groups. The relation is
// undirected: two rows belong together when either declares the other in
// RelatedTo. Components are collected with visited-set bookkeeping, so a hub
// workplace pulls all of its spokes into one group and no row appears twice.
func GroupRows(rows []domain.WorkplaceReportRow) []Group {
	visited := make(map[string]bool, len(rows))
	groups := make([]Group, 0, len(rows))

	related := func(a, b *domain.WorkplaceReportRow) bool {
		return (a.RelatedTo != nil && *a.RelatedTo == b.WorkplaceID) ||
			(b.RelatedTo != nil && *b.RelatedTo == a.WorkplaceID)
	}

	for i := range rows {
		if visited[rows[i].WorkplaceID] {
			continue
		}
		visited[rows[i].WorkplaceID] = true
		group := Group{Rows: []domain.WorkplaceReportRow{rows[i]}}

		// Collect the whole component: rows joined to any member so far.
		for added := true; added; {
			added = false
			for j := range rows {
				if visited[rows[j].WorkplaceID] {
					continue
				}
				for k := range group.Rows {
					if related(&group.Rows[k], &rows[j]) {
						visited[rows[j].WorkplaceID] = true
						group.Rows = append(group.Rows, rows[j])
						added = true
						break
					}
				}
			}
		}

		for _, row := range group.Rows {
			group.SubtotalHours = group.SubtotalHours.Add(row.TotalHours)
			group.SubtotalValue = group.SubtotalValue.Add(row.Value)
		}
		groups = append(groups, group)
	}
	return groups
}
