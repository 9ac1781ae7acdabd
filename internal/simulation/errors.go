package simulation

import (
	"fmt"
	"strings"
	"time"

	"github.com/nddiaye/centerpointe/internal/domain/models"
)

// InvalidCategoryError reports a weather or event value outside the fixed
// enumerations.
type InvalidCategoryError struct {
	Kind    string
	Value   string
	Allowed []string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Kind, e.Value, strings.Join(e.Allowed, ", "))
}

// InvalidDateRangeError reports a range whose end precedes its start.
type InvalidDateRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: end %s before start %s",
		e.End.Format(models.DateLayout), e.Start.Format(models.DateLayout))
}

func weatherNames() []string {
	names := make([]string, len(models.WeatherCategories))
	for i, category := range models.WeatherCategories {
		names[i] = string(category)
	}
	return names
}

func eventNames() []string {
	names := make([]string, len(models.EventCategories))
	for i, category := range models.EventCategories {
		names[i] = string(category)
	}
	return names
}
