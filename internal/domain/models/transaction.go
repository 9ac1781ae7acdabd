package models

// PaymentBreakdown splits daily transactions by payment method. The four
// buckets always sum to the day's total; credit/debit absorbs the integer
// truncation remainder.
type PaymentBreakdown struct {
	MealSwipes    int `json:"meal_swipes"`
	DiningDollars int `json:"dining_dollars_transactions"`
	BroncoBucks   int `json:"bronco_bucks_transactions"`
	CreditDebit   int `json:"credit_debit_transactions"`
}

// Sum returns the bucket total.
func (p PaymentBreakdown) Sum() int {
	return p.MealSwipes + p.DiningDollars + p.BroncoBucks + p.CreditDebit
}

// DollarTransactions counts the buckets that generate immediate cash revenue.
// Meal swipes are prepaid and excluded.
func (p PaymentBreakdown) DollarTransactions() int {
	return p.DiningDollars + p.BroncoBucks + p.CreditDebit
}

// MealPeriodBreakdown splits daily transactions across the four service
// periods. Late night absorbs the integer truncation remainder.
type MealPeriodBreakdown struct {
	Breakfast int `json:"breakfast_transactions"`
	Lunch     int `json:"lunch_transactions"`
	Dinner    int `json:"dinner_transactions"`
	LateNight int `json:"late_night_transactions"`
}

// Sum returns the bucket total.
func (m MealPeriodBreakdown) Sum() int {
	return m.Breakfast + m.Lunch + m.Dinner + m.LateNight
}

// Peak returns the largest single meal-period volume.
func (m MealPeriodBreakdown) Peak() int {
	peak := m.Breakfast
	for _, v := range []int{m.Lunch, m.Dinner, m.LateNight} {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// Revenue carries the daily revenue figures under the corrected model, where
// only dollar transactions contribute immediate revenue.
type Revenue struct {
	DailyRevenue         float64 `json:"estimated_daily_revenue"`
	DollarTransactions   int     `json:"dollar_transactions"`
	PerTransaction       float64 `json:"revenue_per_transaction"`
	PerDollarTransaction float64 `json:"revenue_per_dollar_transaction"`
}

// TransactionEstimate is the full demand estimate for one date.
type TransactionEstimate struct {
	Total       int                 `json:"total_transactions"`
	Guest       int                 `json:"guest_transactions"`
	BaseRate    float64             `json:"base_transaction_rate"`
	Payments    PaymentBreakdown    `json:"payment_breakdown"`
	MealPeriods MealPeriodBreakdown `json:"meal_period_breakdown"`
	Revenue     Revenue             `json:"revenue"`
}
