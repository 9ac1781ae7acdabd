package models

// PeriodType distinguishes date-range overrides from the regular semester grid.
type PeriodType string

const (
	PeriodTypeSpecial PeriodType = "special"
	PeriodTypeRegular PeriodType = "regular"
)

// Canonical academic period names used across the calendar, population and
// staffing computations.
const (
	PeriodFallSemester       = "fall_semester"
	PeriodSpringSemester     = "spring_semester"
	PeriodSummerSession      = "summer_session"
	PeriodWinterBreak        = "winter_break"
	PeriodUnknown            = "unknown_period"
	PeriodMoveInWeek         = "move_in_week"
	PeriodFinalsWeeks        = "finals_weeks"
	PeriodSpringBreak        = "spring_break"
	PeriodWinterIntersession = "winter_intersession"
	PeriodThanksgivingWeek   = "thanksgiving_week"
)

// AcademicPeriod is the classification of a calendar date together with its
// demand multiplier.
type AcademicPeriod struct {
	Name        string     `json:"name"`
	Type        PeriodType `json:"type"`
	Multiplier  float64    `json:"multiplier"`
	Description string     `json:"description"`
}

// MonthDay is a recurring calendar anchor without a year.
type MonthDay struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}
