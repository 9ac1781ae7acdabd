package simulation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
	"github.com/nddiaye/centerpointe/internal/simulation"
)

func date(value string) time.Time {
	parsed, err := time.Parse(models.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestCalendarResolve(t *testing.T) {
	resolver := simulation.NewCalendarResolver(config.DefaultParams())

	tests := map[string]struct {
		date       string
		name       string
		periodType models.PeriodType
		multiplier float64
	}{
		"MoveInWeekStart":     {"2024-08-15", models.PeriodMoveInWeek, models.PeriodTypeSpecial, 1.28},
		"MoveInOverFallStart": {"2024-08-20", models.PeriodMoveInWeek, models.PeriodTypeSpecial, 1.28},
		"MoveInWeekEnd":       {"2024-08-22", models.PeriodMoveInWeek, models.PeriodTypeSpecial, 1.28},
		"FallAfterMoveIn":     {"2024-08-23", models.PeriodFallSemester, models.PeriodTypeRegular, 1.0},
		"SummerBeforeMoveIn":  {"2024-08-14", models.PeriodSummerSession, models.PeriodTypeRegular, 0.32},
		"FallFinals":          {"2024-12-10", models.PeriodFinalsWeeks, models.PeriodTypeSpecial, 1.16},
		"FallFinalsEnd":       {"2024-12-15", models.PeriodFinalsWeeks, models.PeriodTypeSpecial, 1.16},
		"IntersessionStart":   {"2024-12-16", models.PeriodWinterIntersession, models.PeriodTypeSpecial, 0.09},
		"IntersessionNewYear": {"2025-01-10", models.PeriodWinterIntersession, models.PeriodTypeSpecial, 0.09},
		"SpringStart":         {"2025-01-15", models.PeriodSpringSemester, models.PeriodTypeRegular, 0.96},
		"SpringMidterm":       {"2025-02-10", models.PeriodSpringSemester, models.PeriodTypeRegular, 0.96},
		"SpringBreak":         {"2025-03-20", models.PeriodSpringBreak, models.PeriodTypeSpecial, 0.31},
		"Thanksgiving":        {"2024-11-25", models.PeriodThanksgivingWeek, models.PeriodTypeSpecial, 0.45},
		"SpringFinals":        {"2025-05-10", models.PeriodFinalsWeeks, models.PeriodTypeSpecial, 1.16},
		"LateMayGap":          {"2025-05-20", models.PeriodUnknown, models.PeriodTypeRegular, 0.5},
		"SummerSession":       {"2025-07-04", models.PeriodSummerSession, models.PeriodTypeRegular, 0.32},
		"MoveInOverSummerEnd": {"2025-08-15", models.PeriodMoveInWeek, models.PeriodTypeSpecial, 1.28},
		"GapAfterSpringEnd":   {"2025-05-16", models.PeriodUnknown, models.PeriodTypeRegular, 0.5},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			period := resolver.Resolve(date(tc.date))
			assert.Equal(t, tc.name, period.Name)
			assert.Equal(t, tc.periodType, period.Type)
			assert.InDelta(t, tc.multiplier, period.Multiplier, 1e-9)
		})
	}
}

func TestCalendarSpecialPeriodsWinOverRegular(t *testing.T) {
	resolver := simulation.NewCalendarResolver(config.DefaultParams())

	// December 10 sits inside both the fall semester window and the fall
	// finals window; the special period must win.
	period := resolver.Resolve(date("2024-12-10"))
	assert.Equal(t, models.PeriodTypeSpecial, period.Type)
	assert.Equal(t, models.PeriodFinalsWeeks, period.Name)
}

func TestCalendarYearWrappingPeriod(t *testing.T) {
	resolver := simulation.NewCalendarResolver(config.DefaultParams())

	for _, day := range []string{"2024-12-20", "2024-12-31", "2025-01-01", "2025-01-14"} {
		period := resolver.Resolve(date(day))
		assert.Equal(t, models.PeriodWinterIntersession, period.Name, "date %s", day)
	}

	// January 15 falls outside the wrap and opens the spring semester.
	assert.Equal(t, models.PeriodSpringSemester, resolver.Resolve(date("2025-01-15")).Name)
}
