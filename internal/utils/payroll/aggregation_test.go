package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/utils/payroll"
)

func stringPtr(s string) *string { return &s }

func workplace(id, name string, rate float64, bonusPercent float64, relatedTo *string) domain.Workplace {
	return domain.Workplace{
		WorkplaceID:  id,
		Name:         name,
		HourlyRate:   decimal.NewFromFloat(rate),
		BonusPercent: decimal.NewFromFloat(bonusPercent),
		RelatedTo:    relatedTo,
	}
}

func appointment(workplaceID string, hours float64, hourType string) domain.Appointment {
	return domain.Appointment{
		WorkplaceID:   workplaceID,
		ScheduleID:    "sched-1",
		HourType:      hourType,
		DurationHours: decimal.NewFromFloat(hours),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestAggregate_BonusSplit(t *testing.T) {
	// 4 base hours plus 1 bonus hour at 50/h with a 20% bonus:
	// 4*50 + 1*50*1.2 = 260
	workplaces := []domain.Workplace{
		workplace("clinic", "Clinic", 50, 20, nil),
	}
	appointments := []domain.Appointment{
		appointment("clinic", 4, domain.HourTypeNormal),
		appointment("clinic", 1, domain.HourTypeBonus),
	}

	report := payroll.Aggregate(appointments, workplaces, nil)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assertDecimal(t, "4", row.BaseHours)
	assertDecimal(t, "1", row.BonusHours)
	assertDecimal(t, "5", row.TotalHours)
	assertDecimal(t, "50", row.AppliedRate)
	assertDecimal(t, "260", row.Value)
	assertDecimal(t, "5", report.TotalHours)
	assertDecimal(t, "260", report.TotalValue)
}

func TestAggregate_RateOverride(t *testing.T) {
	workplaces := []domain.Workplace{
		workplace("a", "Alpha", 50, 0, nil),
		workplace("b", "Beta", 30, 0, nil),
	}
	appointments := []domain.Appointment{
		appointment("a", 2, domain.HourTypeNormal),
		appointment("b", 2, domain.HourTypeNormal),
	}
	overrides := map[string]decimal.Decimal{
		"a": decimal.NewFromInt(80),
	}

	report := payroll.Aggregate(appointments, workplaces, overrides)

	require.Len(t, report.Rows, 2)
	assertDecimal(t, "80", report.Rows[0].AppliedRate) // Alpha, overridden
	assertDecimal(t, "160", report.Rows[0].Value)
	assertDecimal(t, "30", report.Rows[1].AppliedRate) // Beta, default
	assertDecimal(t, "60", report.Rows[1].Value)
	assertDecimal(t, "220", report.TotalValue)
}

func TestAggregate_SkipsUnknownWorkplaceAndOrdersRows(t *testing.T) {
	workplaces := []domain.Workplace{
		workplace("z", "Zulu", 10, 0, nil),
		workplace("a", "Alpha", 10, 0, nil),
	}
	appointments := []domain.Appointment{
		appointment("z", 1, domain.HourTypeNormal),
		appointment("ghost", 3, domain.HourTypeNormal),
		appointment("a", 2, domain.HourTypeNormal),
	}

	report := payroll.Aggregate(appointments, workplaces, nil)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Alpha", report.Rows[0].Name)
	assert.Equal(t, "Zulu", report.Rows[1].Name)
	assertDecimal(t, "3", report.TotalHours)
}

func TestAggregate_Idempotent(t *testing.T) {
	workplaces := []domain.Workplace{
		workplace("a", "Alpha", 42.5, 35, nil),
	}
	appointments := []domain.Appointment{
		appointment("a", 3.5, domain.HourTypeNormal),
		appointment("a", 2, domain.HourTypeBonus),
	}

	first := payroll.Aggregate(appointments, workplaces, nil)
	second := payroll.Aggregate(appointments, workplaces, nil)

	require.Len(t, second.Rows, len(first.Rows))
	assert.True(t, first.TotalHours.Equal(second.TotalHours))
	assert.True(t, first.TotalValue.Equal(second.TotalValue))
	for i := range first.Rows {
		assert.True(t, first.Rows[i].Value.Equal(second.Rows[i].Value))
	}
}

func TestScale(t *testing.T) {
	workplaces := []domain.Workplace{
		workplace("a", "Alpha", 50, 20, nil),
	}
	appointments := []domain.Appointment{
		appointment("a", 4, domain.HourTypeNormal),
		appointment("a", 1, domain.HourTypeBonus),
	}

	weekly := payroll.Aggregate(appointments, workplaces, nil)
	monthly := payroll.Scale(weekly, domain.MonthWeeks)

	require.Len(t, monthly.Rows, 1)
	assertDecimal(t, "16", monthly.Rows[0].BaseHours)
	assertDecimal(t, "4", monthly.Rows[0].BonusHours)
	assertDecimal(t, "20", monthly.TotalHours)
	assertDecimal(t, "1040", monthly.TotalValue)
}

func TestGroupRows(t *testing.T) {
	// a is the hub; b and c both declare a. d stands alone.
	rows := []domain.WorkplaceReportRow{
		{WorkplaceID: "a", Name: "Alpha", TotalHours: decimal.NewFromInt(2), Value: decimal.NewFromInt(20)},
		{WorkplaceID: "b", Name: "Beta", RelatedTo: stringPtr("a"), TotalHours: decimal.NewFromInt(3), Value: decimal.NewFromInt(30)},
		{WorkplaceID: "c", Name: "Charlie", RelatedTo: stringPtr("a"), TotalHours: decimal.NewFromInt(1), Value: decimal.NewFromInt(10)},
		{WorkplaceID: "d", Name: "Delta", TotalHours: decimal.NewFromInt(4), Value: decimal.NewFromInt(40)},
	}

	groups := payroll.GroupRows(rows)

	require.Len(t, groups, 2)

	require.Len(t, groups[0].Rows, 3)
	ids := []string{groups[0].Rows[0].WorkplaceID, groups[0].Rows[1].WorkplaceID, groups[0].Rows[2].WorkplaceID}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, ids)
	assertDecimal(t, "6", groups[0].SubtotalHours)
	assertDecimal(t, "60", groups[0].SubtotalValue)

	require.Len(t, groups[1].Rows, 1)
	assert.Equal(t, "d", groups[1].Rows[0].WorkplaceID)
	assertDecimal(t, "4", groups[1].SubtotalHours)
	assertDecimal(t, "40", groups[1].SubtotalValue)
}
