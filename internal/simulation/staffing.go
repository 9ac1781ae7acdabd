package simulation

import (
	"math"
	"time"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
)

const (
	// volumeNormalization and volumeExponent define the sublinear staffing
	// curve: hours grow slower than transaction volume.
	volumeNormalization = 2000.0
	volumeExponent      = 0.73

	// peakVolumeThreshold triggers per-role peak multipliers when a single
	// meal period exceeds it.
	peakVolumeThreshold = 800

	rainStaffFactor      = 1.04
	eventImpactThreshold = 1.2
	eventStaffFactor     = 1.07

	// Staff-mix efficiency divisors. Student worker availability drops
	// during finals and summer.
	baseStaffMix   = 0.82
	finalsStaffMix = 0.91
	summerStaffMix = 0.76

	// Crowd-management surge near facility capacity.
	surgeUtilization = 0.9
	surgeFactor      = 1.08

	// dailyCapacityTurns converts simultaneous seating into daily
	// transaction throughput.
	dailyCapacityTurns = 2.5
)

// StaffingEstimator converts a transaction estimate and the day's context
// into per-role staffing hours.
type StaffingEstimator struct {
	params *config.Params
}

// NewStaffingEstimator builds an estimator over the given parameter set.
func NewStaffingEstimator(params *config.Params) *StaffingEstimator {
	return &StaffingEstimator{params: params}
}

// ScheduleFor returns the operating schedule in effect for a period and day
// kind.
func (e *StaffingEstimator) ScheduleFor(period models.AcademicPeriod, weekend bool) config.DaySchedule {
	var week config.WeekSchedule
	switch period.Name {
	case models.PeriodSummerSession:
		week = e.params.Hours.SummerSession
	case models.PeriodWinterBreak:
		week = e.params.Hours.BreakPeriods
	default:
		week = e.params.Hours.AcademicYear
	}
	if weekend {
		return week.Weekend
	}
	return week.Weekday
}

// Estimate computes required hours per role. A closed operating day yields
// zero hours for every role; otherwise every role is clamped below at its
// minimum coverage.
func (e *StaffingEstimator) Estimate(
	date time.Time,
	transactions models.TransactionEstimate,
	period models.AcademicPeriod,
	environment models.EnvironmentalConditions,
) models.StaffingEstimate {
	estimate := make(models.StaffingEstimate, len(models.Roles))

	schedule := e.ScheduleFor(period, isWeekend(date))
	if schedule.Closed {
		for _, role := range models.Roles {
			estimate[role] = 0.0
		}
		return estimate
	}

	numPeriods := float64(len(schedule.Periods))
	volumeFactor := math.Pow(float64(transactions.Total)/volumeNormalization, volumeExponent)
	peakVolume := transactions.MealPeriods.Peak()
	utilization := e.CapacityUtilization(transactions.Total)

	staffMix := baseStaffMix
	switch period.Name {
	case models.PeriodFinalsWeeks:
		staffMix *= finalsStaffMix
	case models.PeriodSummerSession:
		staffMix *= summerStaffMix
	}

	for _, role := range models.Roles {
		roleParams := e.params.Staffing.Roles[role]

		hours := roleParams.BaseHoursPerPeriod * numPeriods
		hours *= volumeFactor * roleParams.VolumeScalingFactor

		if peakVolume > peakVolumeThreshold {
			hours *= roleParams.PeakHourMultiplier
		}
		if environment.Weather == models.WeatherRainy {
			hours *= rainStaffFactor
		}
		if environment.EventImpact > eventImpactThreshold {
			hours *= eventStaffFactor
		}

		hours /= staffMix

		if hours < roleParams.MinimumCoverageHours {
			hours = roleParams.MinimumCoverageHours
		}
		if utilization > surgeUtilization {
			hours *= surgeFactor
		}

		estimate[role] = roundTo(hours, 1)
	}

	return estimate
}

// CapacityUtilization is the ratio of daily transactions to the facility's
// daily throughput, capped at 1.
func (e *StaffingEstimator) CapacityUtilization(totalTransactions int) float64 {
	capacity := float64(e.params.Facility.MaxCapacity) * dailyCapacityTurns
	utilization := float64(totalTransactions) / capacity
	if utilization > 1 {
		return 1
	}
	return utilization
}

func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
