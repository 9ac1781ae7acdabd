package models

import "time"

// DateLayout is the wire format used for dates throughout the API and export.
const DateLayout = "2006-01-02"

// DailyRecord aggregates everything the engine computes for a single date.
type DailyRecord struct {
	Date       time.Time `json:"-"`
	DateString string    `json:"date"`
	DayOfWeek  int       `json:"day_of_week"`
	DayName    string    `json:"day_name"`
	IsWeekend  bool      `json:"is_weekend"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	DayOfYear  int       `json:"day_of_year"`
	WeekOfYear int       `json:"week_of_year"`

	Period       AcademicPeriod          `json:"academic_period"`
	Population   PopulationSnapshot      `json:"population"`
	Environment  EnvironmentalConditions `json:"environment"`
	Transactions TransactionEstimate     `json:"transactions"`
	Staffing     StaffingEstimate        `json:"staffing"`

	TotalLaborHours          float64 `json:"total_actual_hours"`
	LaborCost                float64 `json:"labor_cost_actual"`
	RevenuePerLaborHour      float64 `json:"revenue_per_labor_hour"`
	TransactionsPerLaborHour float64 `json:"transactions_per_labor_hour"`
	LaborCostPercentage      float64 `json:"labor_cost_percentage"`
	TransactionsPerHolder    float64 `json:"transactions_per_meal_plan_holder"`
	CapacityUtilization      float64 `json:"facility_capacity_utilization"`
	PeakMealPeriodVolume     int     `json:"peak_meal_period_volume"`
}
