package models

// PopulationSnapshot describes the campus population feeding dining demand on
// one date. All counts are derived from the configured base enrollment plus
// growth; nothing here is stateful.
type PopulationSnapshot struct {
	TotalEnrollment     int     `json:"total_enrollment"`
	ActiveEnrollment    int     `json:"active_enrollment"`
	ResidentialStudents int     `json:"residential_students"`
	CommuterStudents    int     `json:"commuter_students"`
	MealPlanHolders     int     `json:"total_meal_plan_holders"`
	SeasonalFactor      float64 `json:"enrollment_seasonal_factor"`
}
