package simulation

import (
	"math"
	"time"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
)

// PopulationModel derives campus population figures for a date. It is pure:
// the only time-dependent input is the elapsed-years term computed from the
// date itself.
type PopulationModel struct {
	params *config.Params
}

// NewPopulationModel builds a population model over the given parameter set.
func NewPopulationModel(params *config.Params) *PopulationModel {
	return &PopulationModel{params: params}
}

// Snapshot computes the population figures the simulation uses. The
// residential/commuter split is taken from the seasonally scaled active
// enrollment, and meal-plan holder counts are NOT rescaled by the seasonal
// factor a second time. This is one of two deliberate variants; see
// FeatureSnapshot for the other.
func (m *PopulationModel) Snapshot(date time.Time, period models.AcademicPeriod) models.PopulationSnapshot {
	pop := m.params.Population
	total := m.totalEnrollment(date)

	seasonal, ok := pop.SeasonalVariation[period.Name]
	if !ok {
		seasonal = 1.0
	}

	active := int(float64(total) * seasonal)
	residential := int(float64(active) * pop.ResidentialRatio)
	commuter := active - residential

	residentialHolders := int(float64(residential) * pop.Participation.ResidentialMandatory)
	commuterHolders := int(float64(commuter) * pop.Participation.CommuterVoluntary)

	return models.PopulationSnapshot{
		TotalEnrollment:     total,
		ActiveEnrollment:    active,
		ResidentialStudents: residential,
		CommuterStudents:    commuter,
		MealPlanHolders:     residentialHolders + commuterHolders,
		SeasonalFactor:      seasonal,
	}
}

// FeatureSnapshot computes the population figures the regression feature
// pipeline was trained against. Unlike Snapshot, the residential/commuter
// split comes off total enrollment, the seasonal factor is the period's
// demand multiplier, and meal-plan holders ARE rescaled by it. Both variants
// are load-bearing: the model artifacts expect exactly this arithmetic.
func (m *PopulationModel) FeatureSnapshot(date time.Time, period models.AcademicPeriod) models.PopulationSnapshot {
	pop := m.params.Population
	total := m.totalEnrollment(date)
	seasonal := period.Multiplier

	active := int(float64(total) * seasonal)
	residential := int(float64(total) * pop.ResidentialRatio)
	commuter := total - residential

	residentialHolders := int(float64(residential) * pop.Participation.ResidentialMandatory)
	commuterHolders := int(float64(commuter) * pop.Participation.CommuterVoluntary)
	holders := int(float64(residentialHolders+commuterHolders) * seasonal)

	return models.PopulationSnapshot{
		TotalEnrollment:     total,
		ActiveEnrollment:    active,
		ResidentialStudents: residential,
		CommuterStudents:    commuter,
		MealPlanHolders:     holders,
		SeasonalFactor:      seasonal,
	}
}

// totalEnrollment grows the base enrollment by the configured year-over-year
// rate, with the fractional year taken from the day of year.
func (m *PopulationModel) totalEnrollment(date time.Time) int {
	pop := m.params.Population
	yearsElapsed := float64(date.Year()-pop.BaseYear) + float64(date.YearDay())/365.25
	growth := math.Pow(1+pop.GrowthRate, yearsElapsed)
	return int(float64(pop.BaseEnrollment) * growth)
}
