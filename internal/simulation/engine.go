package simulation

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
)

// Engine orchestrates the per-date pipeline: calendar classification,
// population derivation, environmental conditions, transaction estimation
// and staffing estimation, assembled into DailyRecords.
//
// Every computation is a pure function of the date, the parameter set and
// the seed. Sampling uses a generator derived from seed and date, so records
// are reproducible per date and a range can be recomputed or restarted
// without drift.
type Engine struct {
	params       *config.Params
	calendar     *CalendarResolver
	population   *PopulationModel
	environment  *EnvironmentSampler
	transactions *TransactionEstimator
	staffing     *StaffingEstimator
	logger       *zap.Logger
}

// NewEngine wires a simulation engine over an immutable parameter set.
func NewEngine(params *config.Params, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		params:       params,
		calendar:     NewCalendarResolver(params),
		population:   NewPopulationModel(params),
		environment:  NewEnvironmentSampler(params),
		transactions: NewTransactionEstimator(params),
		staffing:     NewStaffingEstimator(params),
		logger:       logger,
	}
}

// Params exposes the engine's parameter set for read-only use.
func (e *Engine) Params() *config.Params {
	return e.params
}

// Calendar exposes the calendar resolver.
func (e *Engine) Calendar() *CalendarResolver {
	return e.calendar
}

// Population exposes the population model.
func (e *Engine) Population() *PopulationModel {
	return e.population
}

// Compute assembles the DailyRecord for one date. Empty weather or event
// strings are sampled from the configured distributions; non-empty values
// must belong to the fixed enumerations.
func (e *Engine) Compute(date time.Time, weather, event string) (models.DailyRecord, error) {
	date = midnight(date)

	period := e.calendar.Resolve(date)
	population := e.population.Snapshot(date, period)

	environment, err := e.conditionsFor(date, period, weather, event)
	if err != nil {
		return models.DailyRecord{}, err
	}

	transactions := e.transactions.Estimate(date, population, period, environment)

	// A closed operating day takes no transactions at all.
	if e.staffing.ScheduleFor(period, isWeekend(date)).Closed {
		transactions = models.TransactionEstimate{}
	}

	staffing := e.staffing.Estimate(date, transactions, period, environment)

	return e.assemble(date, period, population, environment, transactions, staffing), nil
}

// ComputeRange computes one record per date in [start, end] inclusive, in
// ascending order. Fixed weather/event values, when supplied, apply to every
// date.
func (e *Engine) ComputeRange(start, end time.Time, weather, event string) ([]models.DailyRecord, error) {
	start, end = midnight(start), midnight(end)
	if end.Before(start) {
		return nil, &InvalidDateRangeError{Start: start, End: end}
	}

	records := make([]models.DailyRecord, 0, int(end.Sub(start).Hours()/24)+1)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		record, err := e.Compute(date, weather, event)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Generate runs the simulation over a date range with sampled environmental
// conditions.
func (e *Engine) Generate(start, end time.Time) ([]models.DailyRecord, error) {
	return e.ComputeRange(start, end, "", "")
}

// conditionsFor samples conditions when either input is omitted, then
// overlays whichever values the caller supplied.
func (e *Engine) conditionsFor(date time.Time, period models.AcademicPeriod, weather, event string) (models.EnvironmentalConditions, error) {
	var conditions models.EnvironmentalConditions
	if weather == "" || event == "" {
		conditions = e.environment.Sample(date, period, e.rngFor(date))
	}

	if weather != "" {
		category, impact, err := e.environment.Weather(weather)
		if err != nil {
			return models.EnvironmentalConditions{}, err
		}
		conditions.Weather = category
		conditions.WeatherImpact = impact
	}

	if event != "" {
		category, impact, err := e.environment.Event(event)
		if err != nil {
			return models.EnvironmentalConditions{}, err
		}
		conditions.Event = category
		conditions.EventImpact = impact
		conditions.EventScheduled = false
	}

	return conditions, nil
}

// rngFor derives a per-date generator from the configured seed, keeping
// range iterations independent of each other and of iteration order.
func (e *Engine) rngFor(date time.Time) *rand.Rand {
	day := date.Unix() / 86400
	return rand.New(rand.NewSource(e.params.Seed*1_000_003 + day))
}

func (e *Engine) assemble(
	date time.Time,
	period models.AcademicPeriod,
	population models.PopulationSnapshot,
	environment models.EnvironmentalConditions,
	transactions models.TransactionEstimate,
	staffing models.StaffingEstimate,
) models.DailyRecord {
	totalHours := roundTo(staffing.TotalHours(), 1)
	laborCost := roundTo(totalHours*e.params.Staffing.LaborCosts.AverageHourlyRate, 2)
	revenue := transactions.Revenue.DailyRevenue

	var revenuePerHour, transactionsPerHour, laborCostPct float64
	if totalHours > 0 {
		revenuePerHour = roundTo(revenue/totalHours, 2)
		transactionsPerHour = roundTo(float64(transactions.Total)/totalHours, 2)
		revenueFloor := revenue
		if revenueFloor < 1 {
			revenueFloor = 1
		}
		laborCostPct = roundTo(laborCost/revenueFloor*100, 1)
	}

	holders := population.MealPlanHolders
	if holders < 1 {
		holders = 1
	}

	_, week := date.ISOWeek()

	return models.DailyRecord{
		Date:       date,
		DateString: date.Format(models.DateLayout),
		DayOfWeek:  mondayIndexed(date.Weekday()),
		DayName:    date.Weekday().String(),
		IsWeekend:  isWeekend(date),
		Month:      int(date.Month()),
		Year:       date.Year(),
		DayOfYear:  date.YearDay(),
		WeekOfYear: week,

		Period:       period,
		Population:   population,
		Environment:  environment,
		Transactions: transactions,
		Staffing:     staffing,

		TotalLaborHours:          totalHours,
		LaborCost:                laborCost,
		RevenuePerLaborHour:      revenuePerHour,
		TransactionsPerLaborHour: transactionsPerHour,
		LaborCostPercentage:      laborCostPct,
		TransactionsPerHolder:    roundTo(float64(transactions.Total)/float64(holders), 3),
		CapacityUtilization:      e.staffing.CapacityUtilization(transactions.Total),
		PeakMealPeriodVolume:     transactions.MealPeriods.Peak(),
	}
}

// mondayIndexed converts Go's Sunday-first weekday to the Monday-first
// index used across the demand patterns and model features.
func mondayIndexed(day time.Weekday) int {
	return (int(day) + 6) % 7
}

func midnight(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

func roundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
