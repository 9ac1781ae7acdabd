package simulation

import (
	"time"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
)

// CalendarResolver classifies a calendar date into an academic period.
// Special periods are evaluated in declaration order and the first match
// wins; the regular semester windows are only consulted when no special
// period contains the date.
type CalendarResolver struct {
	params *config.Params
}

// NewCalendarResolver builds a resolver over the given parameter set.
func NewCalendarResolver(params *config.Params) *CalendarResolver {
	return &CalendarResolver{params: params}
}

// Resolve returns the academic period classification for date.
func (r *CalendarResolver) Resolve(date time.Time) models.AcademicPeriod {
	month, day := int(date.Month()), date.Day()

	for _, period := range r.params.Calendar.SpecialPeriods {
		if specialContains(period, month, day) {
			return models.AcademicPeriod{
				Name:        period.Name,
				Type:        models.PeriodTypeSpecial,
				Multiplier:  period.Multiplier,
				Description: period.Description,
			}
		}
	}

	semesters := r.params.Calendar.Semesters
	multipliers := r.params.Calendar.RegularMultipliers

	switch {
	case within(month, day, semesters.FallStart, semesters.FallEnd):
		return models.AcademicPeriod{
			Name:        models.PeriodFallSemester,
			Type:        models.PeriodTypeRegular,
			Multiplier:  multipliers.FallSemester,
			Description: "Regular fall semester",
		}
	case within(month, day, semesters.SpringStart, semesters.SpringEnd):
		return models.AcademicPeriod{
			Name:        models.PeriodSpringSemester,
			Type:        models.PeriodTypeRegular,
			Multiplier:  multipliers.SpringSemester,
			Description: "Regular spring semester",
		}
	case within(month, day, semesters.SummerStart, semesters.SummerEnd):
		return models.AcademicPeriod{
			Name:        models.PeriodSummerSession,
			Type:        models.PeriodTypeRegular,
			Multiplier:  multipliers.SummerSession,
			Description: "Regular summer session",
		}
	case (month == semesters.FallEnd.Month && day > semesters.FallEnd.Day) ||
		(month == semesters.SpringStart.Month && day < semesters.SpringStart.Day) ||
		(month > semesters.SpringEnd.Month && month < semesters.SummerStart.Month):
		return models.AcademicPeriod{
			Name:        models.PeriodWinterBreak,
			Type:        models.PeriodTypeRegular,
			Multiplier:  multipliers.WinterBreak,
			Description: "Winter break / intersession",
		}
	default:
		// Only reachable through gaps the regular windows leave open, such
		// as the stretch between spring end and summer start.
		return models.AcademicPeriod{
			Name:        models.PeriodUnknown,
			Type:        models.PeriodTypeRegular,
			Multiplier:  multipliers.Unknown,
			Description: "Unknown academic period",
		}
	}
}

// within reports whether (month, day) falls inside a non-wrapping range,
// inclusive on both ends.
func within(month, day int, start, end models.MonthDay) bool {
	afterStart := month > start.Month || (month == start.Month && day >= start.Day)
	beforeEnd := month < end.Month || (month == end.Month && day <= end.Day)
	return afterStart && beforeEnd
}

// specialContains tests range membership for a special period. Ranges whose
// start month exceeds their end month wrap across the year boundary; the
// wrap test checks each boundary's month and day independently, preserving
// the historical behavior near month edges.
func specialContains(period config.SpecialPeriod, month, day int) bool {
	if period.Start.Month > period.End.Month {
		return (month >= period.Start.Month && day >= period.Start.Day) ||
			(month <= period.End.Month && day <= period.End.Day)
	}
	return within(month, day, period.Start, period.End)
}
