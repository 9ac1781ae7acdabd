package predictor

import (
	"time"

	"github.com/nddiaye/centerpointe/internal/domain/models"
)

// FeatureNames is the exact field order both regression artifacts were
// trained against. The staffing model additionally receives the predicted
// transaction count appended at the end.
var FeatureNames = []string{
	"day_of_week",
	"month",
	"year",
	"day_of_year",
	"week_of_year",
	"is_weekend",
	"seasonal_multiplier",
	"total_enrollment",
	"active_enrollment",
	"residential_students",
	"commuter_students",
	"total_meal_plan_holders",
	"enrollment_seasonal_factor",
	"weather_impact",
	"event_impact",
}

// features builds the stage-one vector for a date and validated conditions.
func (p *Predictor) features(date time.Time, environment models.EnvironmentalConditions) []float64 {
	period := p.calendar.Resolve(date)
	population := p.population.FeatureSnapshot(date, period)

	dayOfWeek := (int(date.Weekday()) + 6) % 7
	isWeekend := 0.0
	if dayOfWeek >= 5 {
		isWeekend = 1.0
	}
	_, week := date.ISOWeek()

	return []float64{
		float64(dayOfWeek),
		float64(date.Month()),
		float64(date.Year()),
		float64(date.YearDay()),
		float64(week),
		isWeekend,
		period.Multiplier,
		float64(population.TotalEnrollment),
		float64(population.ActiveEnrollment),
		float64(population.ResidentialStudents),
		float64(population.CommuterStudents),
		float64(population.MealPlanHolders),
		period.Multiplier,
		environment.WeatherImpact,
		environment.EventImpact,
	}
}
