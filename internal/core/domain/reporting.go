package domain

import "github.com/shopspring/decimal"

// MonthWeeks is the multiplier applied to a weekly report to produce the
// monthly report. The schedule repeats weekly, so a month is approximated as
// four weeks.
const MonthWeeks = 4

// WorkplaceReportRow is the per-workplace summary line of an hour/pay report.
// Hours and values are kept at full precision; rounding happens once at the
// presentation boundary.
type WorkplaceReportRow struct {
	WorkplaceID string          `json:"workplaceID"`
	Name        string          `json:"name"`
	RelatedTo   *string         `json:"relatedTo,omitempty"`
	BaseHours   decimal.Decimal `json:"baseHours"`
	BonusHours  decimal.Decimal `json:"bonusHours"`
	TotalHours  decimal.Decimal `json:"totalHours"`
	AppliedRate decimal.Decimal `json:"appliedRate"`
	Value       decimal.Decimal `json:"value"`
}

// Report is a full hour/pay report for one period window.
type Report struct {
	Rows       []WorkplaceReportRow `json:"rows"`
	TotalHours decimal.Decimal      `json:"totalHours"`
	TotalValue decimal.Decimal      `json:"totalValue"`
}
