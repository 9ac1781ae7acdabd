// Package export writes simulation output as tabular records with a stable
// column set, one row per day.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nddiaye/centerpointe/internal/domain/models"
)

// Columns is the stable export column order.
var Columns = []string{
	"date",
	"day_of_week",
	"day_name",
	"is_weekend",
	"month",
	"year",
	"day_of_year",
	"week_of_year",
	"academic_period",
	"period_type",
	"seasonal_multiplier",
	"period_description",
	"total_enrollment",
	"active_enrollment",
	"residential_students",
	"commuter_students",
	"total_meal_plan_holders",
	"enrollment_seasonal_factor",
	"weather",
	"weather_impact",
	"campus_event",
	"event_impact",
	"event_scheduled",
	"total_transactions",
	"guest_transactions",
	"base_transaction_rate",
	"meal_swipes",
	"dining_dollars_transactions",
	"bronco_bucks_transactions",
	"credit_debit_transactions",
	"breakfast_transactions",
	"lunch_transactions",
	"dinner_transactions",
	"late_night_transactions",
	"estimated_daily_revenue",
	"avg_transaction_value",
	"labor_cost_actual",
	"transactions_per_meal_plan_holder",
	"facility_capacity_utilization",
	"peak_meal_period_volume",
	"actual_foh_general",
	"actual_foh_cashier",
	"actual_kitchen_prep",
	"actual_kitchen_line",
	"actual_dish_room",
	"actual_management",
	"total_actual_hours",
	"revenue_per_labor_hour",
	"transactions_per_labor_hour",
	"labor_cost_percentage",
}

// WriteCSV streams the records to w as CSV with a header row.
func WriteCSV(w io.Writer, records []models.DailyRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(row(record)); err != nil {
			return fmt.Errorf("write row %s: %w", record.DateString, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func row(r models.DailyRecord) []string {
	fields := []string{
		r.DateString,
		strconv.Itoa(r.DayOfWeek),
		r.DayName,
		strconv.FormatBool(r.IsWeekend),
		strconv.Itoa(r.Month),
		strconv.Itoa(r.Year),
		strconv.Itoa(r.DayOfYear),
		strconv.Itoa(r.WeekOfYear),
		r.Period.Name,
		string(r.Period.Type),
		formatFloat(r.Period.Multiplier),
		r.Period.Description,
		strconv.Itoa(r.Population.TotalEnrollment),
		strconv.Itoa(r.Population.ActiveEnrollment),
		strconv.Itoa(r.Population.ResidentialStudents),
		strconv.Itoa(r.Population.CommuterStudents),
		strconv.Itoa(r.Population.MealPlanHolders),
		formatFloat(r.Population.SeasonalFactor),
		string(r.Environment.Weather),
		formatFloat(r.Environment.WeatherImpact),
		string(r.Environment.Event),
		formatFloat(r.Environment.EventImpact),
		strconv.FormatBool(r.Environment.EventScheduled),
		strconv.Itoa(r.Transactions.Total),
		strconv.Itoa(r.Transactions.Guest),
		strconv.FormatFloat(r.Transactions.BaseRate, 'f', 4, 64),
		strconv.Itoa(r.Transactions.Payments.MealSwipes),
		strconv.Itoa(r.Transactions.Payments.DiningDollars),
		strconv.Itoa(r.Transactions.Payments.BroncoBucks),
		strconv.Itoa(r.Transactions.Payments.CreditDebit),
		strconv.Itoa(r.Transactions.MealPeriods.Breakfast),
		strconv.Itoa(r.Transactions.MealPeriods.Lunch),
		strconv.Itoa(r.Transactions.MealPeriods.Dinner),
		strconv.Itoa(r.Transactions.MealPeriods.LateNight),
		formatFloat(r.Transactions.Revenue.DailyRevenue),
		formatFloat(r.Transactions.Revenue.PerTransaction),
		formatFloat(r.LaborCost),
		formatFloat(r.TransactionsPerHolder),
		formatFloat(r.CapacityUtilization),
		strconv.Itoa(r.PeakMealPeriodVolume),
	}

	for _, role := range models.Roles {
		fields = append(fields, strconv.FormatFloat(r.Staffing[role], 'f', 1, 64))
	}

	return append(fields,
		strconv.FormatFloat(r.TotalLaborHours, 'f', 1, 64),
		formatFloat(r.RevenuePerLaborHour),
		formatFloat(r.TransactionsPerLaborHour),
		formatFloat(r.LaborCostPercentage),
	)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
