package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/nddiaye/centerpointe/internal/domain/models"
)

// ValidationError reports a malformed or out-of-range configuration value.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Params is the full simulation parameter set. It is built once via
// DefaultParams (optionally merged with overrides) and never mutated
// afterwards; the engine shares a single instance across all computations.
type Params struct {
	Seed         int64             `json:"random_seed"`
	FacilityName string            `json:"facility_name"`
	Population   PopulationParams  `json:"student_population"`
	MealPlans    MealPlanParams    `json:"meal_plans"`
	Hours        OperatingHours    `json:"operating_hours"`
	Calendar     CalendarParams    `json:"academic_calendar"`
	Environment  EnvironmentParams `json:"environmental_factors"`
	Transactions TransactionParams `json:"transaction_patterns"`
	Staffing     StaffingParams    `json:"staffing_model"`
	Facility     FacilityParams    `json:"facility_specs"`
}

// PopulationParams drives enrollment growth and meal-plan participation.
type PopulationParams struct {
	BaseEnrollment    int                `json:"total_enrollment_base"`
	BaseYear          int                `json:"base_year"`
	GrowthRate        float64            `json:"yoy_growth_rate"`
	ResidentialRatio  float64            `json:"residential_student_ratio"`
	Participation     ParticipationRates `json:"meal_plan_participation"`
	SeasonalVariation map[string]float64 `json:"enrollment_seasonal_variation"`
}

// ParticipationRates holds meal-plan uptake rates per population segment.
type ParticipationRates struct {
	ResidentialMandatory float64 `json:"residential_mandatory_rate"`
	CommuterVoluntary    float64 `json:"commuter_voluntary_rate"`
	FacultyStaff         float64 `json:"faculty_staff_rate"`
}

// MealPlanParams describes the plan catalogue.
type MealPlanParams struct {
	Plans map[string]MealPlan `json:"plan_types"`
}

// MealPlan describes one plan type. SwipesPerSemester of 0 means unlimited.
type MealPlan struct {
	CostPerSemester     float64 `json:"cost_per_semester"`
	SwipesPerSemester   int     `json:"swipes_per_semester"`
	DiningDollars       float64 `json:"dining_dollars"`
	TypicalDailyUsage   float64 `json:"typical_daily_usage"`
	UtilizationRate     float64 `json:"utilization_rate"`
	StudentDistribution float64 `json:"student_distribution"`
}

// OperatingHours holds the three operating schedules the facility cycles
// through across the academic year.
type OperatingHours struct {
	AcademicYear  WeekSchedule `json:"academic_year"`
	SummerSession WeekSchedule `json:"summer_session"`
	BreakPeriods  WeekSchedule `json:"break_periods"`
}

// WeekSchedule splits a schedule into weekday and weekend service.
type WeekSchedule struct {
	Weekday DaySchedule `json:"weekday"`
	Weekend DaySchedule `json:"weekend"`
}

// DaySchedule lists the meal periods served on one kind of day. Closed marks
// a day with no service at all.
type DaySchedule struct {
	Closed  bool              `json:"closed,omitempty"`
	Periods map[string]Window `json:"periods,omitempty"`
}

// Window is a service window in fractional hours since midnight.
type Window struct {
	Open  float64 `json:"open"`
	Close float64 `json:"close"`
}

// CalendarParams defines the academic calendar: regular semester windows,
// priority-ordered special periods and day-of-week demand patterns.
type CalendarParams struct {
	Semesters          SemesterDates      `json:"semester_dates"`
	SpecialPeriods     []SpecialPeriod    `json:"special_periods"`
	WeeklyPatterns     WeeklyPatterns     `json:"weekly_patterns"`
	RegularMultipliers RegularMultipliers `json:"regular_multipliers"`
}

// SemesterDates anchors the regular semester windows.
type SemesterDates struct {
	FallStart   models.MonthDay `json:"fall_start"`
	FallEnd     models.MonthDay `json:"fall_end"`
	SpringStart models.MonthDay `json:"spring_start"`
	SpringEnd   models.MonthDay `json:"spring_end"`
	SummerStart models.MonthDay `json:"summer_start"`
	SummerEnd   models.MonthDay `json:"summer_end"`
}

// SpecialPeriod is a date-range override that takes priority over the
// regular semester grid. A range whose start month exceeds its end month
// wraps across the year boundary.
type SpecialPeriod struct {
	Name        string          `json:"name"`
	Start       models.MonthDay `json:"start"`
	End         models.MonthDay `json:"end"`
	Multiplier  float64         `json:"multiplier"`
	Description string          `json:"description"`
}

// RegularMultipliers are the demand multipliers of the regular academic
// periods and the gap fallback.
type RegularMultipliers struct {
	FallSemester   float64 `json:"fall_semester"`
	SpringSemester float64 `json:"spring_semester"`
	SummerSession  float64 `json:"summer_session"`
	WinterBreak    float64 `json:"winter_break"`
	Unknown        float64 `json:"unknown_period"`
}

// WeeklyPatterns holds the day-of-week demand multipliers.
type WeeklyPatterns struct {
	Monday    float64 `json:"monday"`
	Tuesday   float64 `json:"tuesday"`
	Wednesday float64 `json:"wednesday"`
	Thursday  float64 `json:"thursday"`
	Friday    float64 `json:"friday"`
	Saturday  float64 `json:"saturday"`
	Sunday    float64 `json:"sunday"`
}

// For returns the multiplier for the given weekday.
func (w WeeklyPatterns) For(day time.Weekday) float64 {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// EnvironmentParams drives weather and campus-event sampling.
type EnvironmentParams struct {
	Weather WeatherParams `json:"weather_patterns"`
	Events  EventParams   `json:"campus_events"`
}

// WeatherParams holds the per-season categorical weather distributions and
// the impact multiplier of each category. Probability vectors follow the
// order of models.WeatherCategories.
type WeatherParams struct {
	SeasonalProbabilities map[string][]float64               `json:"seasonal_probabilities"`
	Impacts               map[models.WeatherCategory]float64 `json:"weather_impacts"`
}

// EventParams holds the campus event calendar.
type EventParams struct {
	Profiles map[models.EventCategory]EventProfile `json:"event_calendar"`
}

// EventProfile describes the sampling probability, demand impact and
// (optionally) the typical calendar anchors of one event category.
type EventProfile struct {
	Probability  float64           `json:"probability"`
	Impact       float64           `json:"impact"`
	TypicalDates []models.MonthDay `json:"typical_dates,omitempty"`
}

// TransactionParams drives the demand-to-transaction conversion.
type TransactionParams struct {
	PaymentMethods     PaymentMethodRates `json:"payment_methods"`
	MealPeriods        MealPeriodRates    `json:"meal_period_distribution"`
	GuestMultiplier    float64            `json:"guest_multiplier"`
	Revenue            RevenueParams      `json:"revenue_model"`
	PlatformPopularity map[string]float64 `json:"platform_popularity"`
}

// PaymentMethodRates are the proportional payment-method splits.
type PaymentMethodRates struct {
	MealSwipes    float64 `json:"meal_swipes"`
	DiningDollars float64 `json:"dining_dollars"`
	BroncoBucks   float64 `json:"bronco_bucks"`
	CreditDebit   float64 `json:"credit_debit"`
}

// MealPeriodRates are the proportional meal-period splits.
type MealPeriodRates struct {
	Breakfast float64 `json:"breakfast"`
	Lunch     float64 `json:"lunch"`
	Dinner    float64 `json:"dinner"`
	LateNight float64 `json:"late_night"`
}

// RevenueParams selects between the corrected revenue model (dollar
// transactions only) and the legacy flat-average model.
type RevenueParams struct {
	SwipeImmediateRevenue    float64 `json:"meal_swipe_immediate_revenue"`
	DollarTransactionAverage float64 `json:"dollar_transaction_average"`
	IncludeMealPlanRevenue   bool    `json:"include_meal_plan_revenue"`
	LegacyAverageValue       float64 `json:"legacy_average_transaction_value"`
}

// StaffingParams holds per-role staffing parameters and labor cost rates.
type StaffingParams struct {
	Roles      map[models.Role]RoleParams `json:"roles"`
	LaborCosts LaborCostParams            `json:"labor_costs"`
}

// RoleParams are the staffing-curve parameters of a single role.
type RoleParams struct {
	Description          string            `json:"description"`
	BaseHoursPerPeriod   float64           `json:"base_hours_per_period"`
	VolumeScalingFactor  float64           `json:"volume_scaling_factor"`
	MinimumCoverageHours float64           `json:"minimum_coverage_hours"`
	PeakHourMultiplier   float64           `json:"peak_hour_multiplier"`
	Efficiency           EfficiencyFactors `json:"efficiency_factors"`
}

// EfficiencyFactors are relative productivity rates per staff segment.
type EfficiencyFactors struct {
	Experienced    float64 `json:"experienced_staff"`
	NewHires       float64 `json:"new_hires"`
	StudentWorkers float64 `json:"student_workers"`
}

// LaborCostParams are blended hourly rates used for cost projections.
type LaborCostParams struct {
	AverageHourlyRate float64 `json:"average_hourly_rate"`
	StudentWorkerRate float64 `json:"student_worker_rate"`
	ExperiencedRate   float64 `json:"experienced_staff_rate"`
	ManagementRate    float64 `json:"management_rate"`
}

// FacilityParams describe the physical plant limits.
type FacilityParams struct {
	MaxCapacity         int     `json:"maximum_simultaneous_capacity"`
	SquareFootage       int     `json:"total_square_footage"`
	DiningPlatforms     int     `json:"number_of_dining_platforms"`
	ScannerThroughput   int     `json:"biometric_scanner_throughput"`
	PeakHourDuration    float64 `json:"peak_hour_duration"`
	KitchenPrepCapacity int     `json:"kitchen_prep_capacity"`
	DishRoomCapacity    int     `json:"dish_room_capacity"`
}

// WithOverrides merges a partial JSON override document over the receiver and
// returns the merged, validated result. Matching nested objects merge
// key-by-key; scalar leaves replace outright. The receiver is not modified.
func (p *Params) WithOverrides(raw []byte) (*Params, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return p, nil
	}

	var partial map[string]any
	if err := json.Unmarshal(raw, &partial); err != nil {
		return nil, &ValidationError{Field: "overrides", Err: err}
	}

	buf, err := json.Marshal(p)
	if err != nil {
		return nil, &ValidationError{Field: "defaults", Err: err}
	}
	base := map[string]any{}
	if err := json.Unmarshal(buf, &base); err != nil {
		return nil, &ValidationError{Field: "defaults", Err: err}
	}

	mergeMaps(base, partial)

	merged, err := json.Marshal(base)
	if err != nil {
		return nil, &ValidationError{Field: "overrides", Err: err}
	}

	out := new(Params)
	dec := json.NewDecoder(bytes.NewReader(merged))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return nil, &ValidationError{Field: "overrides", Err: err}
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// WithOverrideFile reads a JSON override file and applies it over the
// receiver. An empty path returns the receiver unchanged.
func (p *Params) WithOverrideFile(path string) (*Params, error) {
	if path == "" {
		return p, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ValidationError{Field: "overrides", Err: err}
	}
	return p.WithOverrides(raw)
}

func mergeMaps(base, override map[string]any) {
	for key, value := range override {
		if baseMap, ok := base[key].(map[string]any); ok {
			if overrideMap, ok := value.(map[string]any); ok {
				mergeMaps(baseMap, overrideMap)
				continue
			}
		}
		base[key] = value
	}
}

// Validate bounds-checks the parameter set.
func (p *Params) Validate() error {
	pop := p.Population
	if pop.BaseEnrollment <= 0 {
		return &ValidationError{Field: "student_population.total_enrollment_base", Err: fmt.Errorf("must be positive, got %d", pop.BaseEnrollment)}
	}
	if pop.BaseYear < 1900 {
		return &ValidationError{Field: "student_population.base_year", Err: fmt.Errorf("implausible year %d", pop.BaseYear)}
	}
	if pop.GrowthRate < -1 || pop.GrowthRate > 1 {
		return &ValidationError{Field: "student_population.yoy_growth_rate", Err: fmt.Errorf("must be within [-1, 1], got %g", pop.GrowthRate)}
	}
	if err := requireRatio("student_population.residential_student_ratio", pop.ResidentialRatio); err != nil {
		return err
	}
	if err := requireRatio("meal_plan_participation.residential_mandatory_rate", pop.Participation.ResidentialMandatory); err != nil {
		return err
	}
	if err := requireRatio("meal_plan_participation.commuter_voluntary_rate", pop.Participation.CommuterVoluntary); err != nil {
		return err
	}

	if len(p.MealPlans.Plans) == 0 {
		return &ValidationError{Field: "meal_plans.plan_types", Err: fmt.Errorf("at least one plan type is required")}
	}
	for name, plan := range p.MealPlans.Plans {
		if plan.TypicalDailyUsage < 0 {
			return &ValidationError{Field: "meal_plans.plan_types." + name, Err: fmt.Errorf("typical_daily_usage must be non-negative")}
		}
		if err := requireRatio("meal_plans.plan_types."+name+".utilization_rate", plan.UtilizationRate); err != nil {
			return err
		}
		if err := requireRatio("meal_plans.plan_types."+name+".student_distribution", plan.StudentDistribution); err != nil {
			return err
		}
	}

	for i, sp := range p.Calendar.SpecialPeriods {
		field := fmt.Sprintf("academic_calendar.special_periods[%d]", i)
		if sp.Name == "" {
			return &ValidationError{Field: field, Err: fmt.Errorf("name is required")}
		}
		if sp.Multiplier <= 0 {
			return &ValidationError{Field: field, Err: fmt.Errorf("multiplier must be positive, got %g", sp.Multiplier)}
		}
		if !validMonthDay(sp.Start) || !validMonthDay(sp.End) {
			return &ValidationError{Field: field, Err: fmt.Errorf("invalid month/day range")}
		}
	}

	for season, probs := range p.Environment.Weather.SeasonalProbabilities {
		field := "weather_patterns.seasonal_probabilities." + season
		if len(probs) != len(models.WeatherCategories) {
			return &ValidationError{Field: field, Err: fmt.Errorf("expected %d probabilities, got %d", len(models.WeatherCategories), len(probs))}
		}
		var sum float64
		for _, prob := range probs {
			if prob < 0 {
				return &ValidationError{Field: field, Err: fmt.Errorf("negative probability")}
			}
			sum += prob
		}
		if math.Abs(sum-1) > 1e-6 {
			return &ValidationError{Field: field, Err: fmt.Errorf("probabilities sum to %g, want 1", sum)}
		}
	}
	for _, category := range models.WeatherCategories {
		if _, ok := p.Environment.Weather.Impacts[category]; !ok {
			return &ValidationError{Field: "weather_patterns.weather_impacts", Err: fmt.Errorf("missing impact for %q", category)}
		}
	}
	for _, category := range models.EventCategories {
		profile, ok := p.Environment.Events.Profiles[category]
		if !ok {
			return &ValidationError{Field: "campus_events.event_calendar", Err: fmt.Errorf("missing profile for %q", category)}
		}
		if profile.Probability < 0 || profile.Probability > 1 {
			return &ValidationError{Field: "campus_events.event_calendar." + string(category), Err: fmt.Errorf("probability out of range")}
		}
		if profile.Impact <= 0 {
			return &ValidationError{Field: "campus_events.event_calendar." + string(category), Err: fmt.Errorf("impact must be positive")}
		}
	}

	pm := p.Transactions.PaymentMethods
	pmSum := pm.MealSwipes + pm.DiningDollars + pm.BroncoBucks + pm.CreditDebit
	if math.Abs(pmSum-1) > 1e-6 {
		return &ValidationError{Field: "transaction_patterns.payment_methods", Err: fmt.Errorf("rates sum to %g, want 1", pmSum)}
	}
	mp := p.Transactions.MealPeriods
	mpSum := mp.Breakfast + mp.Lunch + mp.Dinner + mp.LateNight
	if math.Abs(mpSum-1) > 1e-6 {
		return &ValidationError{Field: "transaction_patterns.meal_period_distribution", Err: fmt.Errorf("rates sum to %g, want 1", mpSum)}
	}
	if p.Transactions.GuestMultiplier < 0 {
		return &ValidationError{Field: "transaction_patterns.guest_multiplier", Err: fmt.Errorf("must be non-negative")}
	}

	for _, role := range models.Roles {
		params, ok := p.Staffing.Roles[role]
		if !ok {
			return &ValidationError{Field: "staffing_model.roles", Err: fmt.Errorf("missing parameters for role %q", role)}
		}
		field := "staffing_model.roles." + string(role)
		if params.BaseHoursPerPeriod < 0 || params.MinimumCoverageHours < 0 {
			return &ValidationError{Field: field, Err: fmt.Errorf("hours must be non-negative")}
		}
		if params.VolumeScalingFactor <= 0 || params.PeakHourMultiplier <= 0 {
			return &ValidationError{Field: field, Err: fmt.Errorf("scaling factors must be positive")}
		}
	}
	if p.Staffing.LaborCosts.AverageHourlyRate <= 0 {
		return &ValidationError{Field: "staffing_model.labor_costs.average_hourly_rate", Err: fmt.Errorf("must be positive")}
	}

	if p.Facility.MaxCapacity <= 0 {
		return &ValidationError{Field: "facility_specs.maximum_simultaneous_capacity", Err: fmt.Errorf("must be positive")}
	}

	return nil
}

func requireRatio(field string, value float64) error {
	if value < 0 || value > 1 {
		return &ValidationError{Field: field, Err: fmt.Errorf("must be within [0, 1], got %g", value)}
	}
	return nil
}

func validMonthDay(md models.MonthDay) bool {
	return md.Month >= 1 && md.Month <= 12 && md.Day >= 1 && md.Day <= 31
}
