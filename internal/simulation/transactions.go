package simulation

import (
	"sort"
	"time"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
)

// TransactionEstimator converts a population snapshot and the day's context
// into a transaction-volume estimate with payment, meal-period and revenue
// breakdowns.
type TransactionEstimator struct {
	params *config.Params
}

// NewTransactionEstimator builds an estimator over the given parameter set.
func NewTransactionEstimator(params *config.Params) *TransactionEstimator {
	return &TransactionEstimator{params: params}
}

// Estimate computes the transaction estimate for one date.
func (e *TransactionEstimator) Estimate(
	date time.Time,
	population models.PopulationSnapshot,
	period models.AcademicPeriod,
	environment models.EnvironmentalConditions,
) models.TransactionEstimate {
	dailyRate := e.dailyTransactionRate()
	dayMultiplier := e.params.Calendar.WeeklyPatterns.For(date.Weekday())

	base := float64(population.MealPlanHolders) * dailyRate * dayMultiplier
	base *= period.Multiplier
	base *= environment.WeatherImpact
	base *= environment.EventImpact

	guest := base * e.params.Transactions.GuestMultiplier

	total := int(base + guest)
	if total < 0 {
		total = 0
	}

	payments := e.splitPayments(total)
	mealPeriods := e.splitMealPeriods(total)
	revenue := e.revenue(total, payments)

	return models.TransactionEstimate{
		Total:       total,
		Guest:       int(guest),
		BaseRate:    dailyRate,
		Payments:    payments,
		MealPeriods: mealPeriods,
		Revenue:     revenue,
	}
}

// dailyTransactionRate is the expected transactions per meal-plan holder per
// day, weighted across the plan catalogue. Plans are summed in sorted name
// order; float addition is order-sensitive and the rate must be identical
// across runs.
func (e *TransactionEstimator) dailyTransactionRate() float64 {
	names := make([]string, 0, len(e.params.MealPlans.Plans))
	for name := range e.params.MealPlans.Plans {
		names = append(names, name)
	}
	sort.Strings(names)

	var rate float64
	for _, name := range names {
		plan := e.params.MealPlans.Plans[name]
		rate += plan.TypicalDailyUsage * plan.UtilizationRate * plan.StudentDistribution
	}
	return rate
}

// splitPayments distributes the total across payment methods. Credit/debit
// absorbs the truncation remainder so the buckets sum exactly to total.
func (e *TransactionEstimator) splitPayments(total int) models.PaymentBreakdown {
	rates := e.params.Transactions.PaymentMethods
	swipes := int(float64(total) * rates.MealSwipes)
	diningDollars := int(float64(total) * rates.DiningDollars)
	broncoBucks := int(float64(total) * rates.BroncoBucks)
	return models.PaymentBreakdown{
		MealSwipes:    swipes,
		DiningDollars: diningDollars,
		BroncoBucks:   broncoBucks,
		CreditDebit:   total - swipes - diningDollars - broncoBucks,
	}
}

// splitMealPeriods distributes the total across service periods. Late night
// absorbs the truncation remainder.
func (e *TransactionEstimator) splitMealPeriods(total int) models.MealPeriodBreakdown {
	rates := e.params.Transactions.MealPeriods
	breakfast := int(float64(total) * rates.Breakfast)
	lunch := int(float64(total) * rates.Lunch)
	dinner := int(float64(total) * rates.Dinner)
	return models.MealPeriodBreakdown{
		Breakfast: breakfast,
		Lunch:     lunch,
		Dinner:    dinner,
		LateNight: total - breakfast - lunch - dinner,
	}
}

// revenue applies the corrected model by default: meal swipes are prepaid
// and contribute no immediate revenue, dollar transactions contribute a
// fixed average each. The legacy flat-average model remains available behind
// include_meal_plan_revenue.
func (e *TransactionEstimator) revenue(total int, payments models.PaymentBreakdown) models.Revenue {
	cfg := e.params.Transactions.Revenue
	dollarTransactions := payments.DollarTransactions()

	var daily float64
	if cfg.IncludeMealPlanRevenue {
		daily = float64(total) * cfg.LegacyAverageValue
	} else {
		daily = float64(dollarTransactions)*cfg.DollarTransactionAverage +
			float64(payments.MealSwipes)*cfg.SwipeImmediateRevenue
	}

	perDollar := 0.0
	if dollarTransactions > 0 {
		perDollar = roundTo(daily/float64(dollarTransactions), 2)
	}

	divisor := total
	if divisor < 1 {
		divisor = 1
	}

	return models.Revenue{
		DailyRevenue:         roundTo(daily, 2),
		DollarTransactions:   dollarTransactions,
		PerTransaction:       roundTo(daily/float64(divisor), 2),
		PerDollarTransaction: perDollar,
	}
}
