package simulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
	"github.com/nddiaye/centerpointe/internal/simulation"
)

func TestStaffingScheduleSelection(t *testing.T) {
	estimator := simulation.NewStaffingEstimator(config.DefaultParams())

	fall := models.AcademicPeriod{Name: models.PeriodFallSemester}
	summer := models.AcademicPeriod{Name: models.PeriodSummerSession}
	winter := models.AcademicPeriod{Name: models.PeriodWinterBreak}

	assert.Len(t, estimator.ScheduleFor(fall, false).Periods, 4)
	assert.Len(t, estimator.ScheduleFor(fall, true).Periods, 3)
	assert.Len(t, estimator.ScheduleFor(summer, false).Periods, 2)
	assert.Len(t, estimator.ScheduleFor(winter, false).Periods, 1)
	assert.True(t, estimator.ScheduleFor(winter, true).Closed)
}

func TestStaffingClosedDayYieldsZeroHours(t *testing.T) {
	estimator := simulation.NewStaffingEstimator(config.DefaultParams())
	winter := models.AcademicPeriod{Name: models.PeriodWinterBreak, Multiplier: 0.09}
	transactions := models.TransactionEstimate{Total: 500}

	// 2024-12-21 is a Saturday; break weekends have no service.
	estimate := estimator.Estimate(date("2024-12-21"), transactions, winter, calmConditions)

	for _, role := range models.Roles {
		assert.Zero(t, estimate[role], "role %s", role)
	}
	assert.Zero(t, estimate.TotalHours())
}

func TestStaffingMinimumCoverageClamp(t *testing.T) {
	params := config.DefaultParams()
	estimator := simulation.NewStaffingEstimator(params)
	fall := models.AcademicPeriod{Name: models.PeriodFallSemester, Multiplier: 1.0}

	// Ten transactions scale every role far below its floor.
	estimate := estimator.Estimate(date("2024-09-11"), models.TransactionEstimate{Total: 10}, fall, calmConditions)

	for _, role := range models.Roles {
		assert.InDelta(t, params.Staffing.Roles[role].MinimumCoverageHours, estimate[role], 1e-9, "role %s", role)
	}
}

func TestStaffingScalesWithVolumeAndConditions(t *testing.T) {
	estimator := simulation.NewStaffingEstimator(config.DefaultParams())
	fall := models.AcademicPeriod{Name: models.PeriodFallSemester, Multiplier: 1.0}
	day := date("2024-09-11")

	normal := estimator.Estimate(day, models.TransactionEstimate{Total: 1200}, fall, calmConditions)
	busier := estimator.Estimate(day, models.TransactionEstimate{Total: 1500}, fall, calmConditions)
	assert.Greater(t, busier.TotalHours(), normal.TotalHours())

	rainy := calmConditions
	rainy.Weather = models.WeatherRainy
	rainy.WeatherImpact = 1.147
	wet := estimator.Estimate(day, models.TransactionEstimate{Total: 1200}, fall, rainy)
	assert.Greater(t, wet.TotalHours(), normal.TotalHours())

	eventful := calmConditions
	eventful.Event = models.EventClubFair
	eventful.EventImpact = 1.34
	crowded := estimator.Estimate(day, models.TransactionEstimate{Total: 1200}, fall, eventful)
	assert.Greater(t, crowded.TotalHours(), normal.TotalHours())
}

func TestStaffingPeakPeriodMultiplier(t *testing.T) {
	estimator := simulation.NewStaffingEstimator(config.DefaultParams())
	fall := models.AcademicPeriod{Name: models.PeriodFallSemester, Multiplier: 1.0}
	day := date("2024-09-11")

	flat := models.TransactionEstimate{
		Total:       1200,
		MealPeriods: models.MealPeriodBreakdown{Breakfast: 300, Lunch: 300, Dinner: 300, LateNight: 300},
	}
	peaked := models.TransactionEstimate{
		Total:       1200,
		MealPeriods: models.MealPeriodBreakdown{Breakfast: 100, Lunch: 900, Dinner: 150, LateNight: 50},
	}

	assert.Greater(t,
		estimator.Estimate(day, peaked, fall, calmConditions).TotalHours(),
		estimator.Estimate(day, flat, fall, calmConditions).TotalHours())
}

func TestStaffingSummerMixRequiresMoreHours(t *testing.T) {
	estimator := simulation.NewStaffingEstimator(config.DefaultParams())
	day := date("2025-07-09")

	fall := models.AcademicPeriod{Name: models.PeriodFallSemester, Multiplier: 1.0}
	summer := models.AcademicPeriod{Name: models.PeriodSummerSession, Multiplier: 0.32}

	transactions := models.TransactionEstimate{Total: 1200}
	fallHours := estimator.Estimate(day, transactions, fall, calmConditions)
	summerHours := estimator.Estimate(day, transactions, summer, calmConditions)

	// Summer runs fewer service periods but a thinner staff mix; per-period
	// scaling must reflect the 0.76 mix divisor. Compare a role whose hours
	// are volume-driven on both schedules.
	fallLine := fallHours[models.RoleKitchenLine]
	summerLine := summerHours[models.RoleKitchenLine]
	assert.Positive(t, fallLine)
	assert.Positive(t, summerLine)
	// Summer halves the period count (2 vs 4) but divides by 0.76 instead
	// of 0.82, so summer hours exceed half the academic-year hours.
	assert.Greater(t, summerLine, fallLine/2)
}

func TestStaffingCapacityUtilization(t *testing.T) {
	estimator := simulation.NewStaffingEstimator(config.DefaultParams())

	// 680 seats at 2.5 daily turns gives 1700 transactions of throughput.
	assert.InDelta(t, 0.5, estimator.CapacityUtilization(850), 1e-9)
	assert.InDelta(t, 1.0, estimator.CapacityUtilization(5000), 1e-9)
	assert.Zero(t, estimator.CapacityUtilization(0))
}

func TestStaffingSurgeNearCapacity(t *testing.T) {
	estimator := simulation.NewStaffingEstimator(config.DefaultParams())
	fall := models.AcademicPeriod{Name: models.PeriodFallSemester, Multiplier: 1.0}
	day := date("2024-09-11")

	below := estimator.Estimate(day, models.TransactionEstimate{Total: 1500}, fall, calmConditions)
	above := estimator.Estimate(day, models.TransactionEstimate{Total: 1600}, fall, calmConditions)

	// 1600/1700 crosses the 0.9 utilization threshold; the jump must exceed
	// plain volume scaling.
	ratio := above.TotalHours() / below.TotalHours()
	assert.Greater(t, ratio, 1.08)
}
