package simulation

import (
	"math/rand"
	"time"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
)

const (
	// scheduledEventWindowDays is how close a date must be to an event's
	// typical calendar anchor to count as scheduled.
	scheduledEventWindowDays = 2
	// scheduledEventAcceptance is the probability a near-anchor date
	// actually hosts the event.
	scheduledEventAcceptance = 0.7
	// breakRegularDayWeight and breakSuppression reshape the event
	// distribution during winter break and summer session, when campus
	// events are rare.
	breakRegularDayWeight = 0.95
	breakSuppression      = 0.1
)

// EnvironmentSampler produces weather and campus-event conditions, either by
// drawing from the configured distributions (simulation mode) or by
// validating caller-supplied categories (prediction mode).
type EnvironmentSampler struct {
	params *config.Params
}

// NewEnvironmentSampler builds a sampler over the given parameter set.
func NewEnvironmentSampler(params *config.Params) *EnvironmentSampler {
	return &EnvironmentSampler{params: params}
}

// Sample draws environmental conditions for a date from the configured
// distributions using the supplied generator.
func (s *EnvironmentSampler) Sample(date time.Time, period models.AcademicPeriod, rng *rand.Rand) models.EnvironmentalConditions {
	weather := s.sampleWeather(date, rng)
	impact := s.params.Environment.Weather.Impacts[weather]

	if event, profile, ok := s.scheduledEvent(date, rng); ok {
		return models.EnvironmentalConditions{
			Weather:        weather,
			WeatherImpact:  impact,
			Event:          event,
			EventImpact:    profile.Impact,
			EventScheduled: true,
		}
	}

	event := s.sampleEvent(period, rng)
	return models.EnvironmentalConditions{
		Weather:        weather,
		WeatherImpact:  impact,
		Event:          event,
		EventImpact:    s.params.Environment.Events.Profiles[event].Impact,
		EventScheduled: false,
	}
}

// Accept validates caller-supplied weather and event categories and returns
// the resulting conditions without any sampling.
func (s *EnvironmentSampler) Accept(weather, event string) (models.EnvironmentalConditions, error) {
	weatherCategory, weatherImpact, err := s.Weather(weather)
	if err != nil {
		return models.EnvironmentalConditions{}, err
	}
	eventCategory, eventImpact, err := s.Event(event)
	if err != nil {
		return models.EnvironmentalConditions{}, err
	}
	return models.EnvironmentalConditions{
		Weather:       weatherCategory,
		WeatherImpact: weatherImpact,
		Event:         eventCategory,
		EventImpact:   eventImpact,
	}, nil
}

// Weather validates a weather category name and returns it with its impact
// multiplier.
func (s *EnvironmentSampler) Weather(name string) (models.WeatherCategory, float64, error) {
	category := models.WeatherCategory(name)
	impact, ok := s.params.Environment.Weather.Impacts[category]
	if !ok {
		return "", 0, &InvalidCategoryError{Kind: "weather", Value: name, Allowed: weatherNames()}
	}
	return category, impact, nil
}

// Event validates an event category name and returns it with its impact
// multiplier.
func (s *EnvironmentSampler) Event(name string) (models.EventCategory, float64, error) {
	category := models.EventCategory(name)
	profile, ok := s.params.Environment.Events.Profiles[category]
	if !ok {
		return "", 0, &InvalidCategoryError{Kind: "event", Value: name, Allowed: eventNames()}
	}
	return category, profile.Impact, nil
}

func (s *EnvironmentSampler) sampleWeather(date time.Time, rng *rand.Rand) models.WeatherCategory {
	probs := s.params.Environment.Weather.SeasonalProbabilities[seasonOf(date.Month())]
	idx := sampleIndex(probs, rng)
	return models.WeatherCategories[idx]
}

// scheduledEvent checks each event's typical calendar anchors. A date within
// the anchor window hosts that event with fixed probability; the first
// accepted event wins.
func (s *EnvironmentSampler) scheduledEvent(date time.Time, rng *rand.Rand) (models.EventCategory, config.EventProfile, bool) {
	for _, category := range models.EventCategories {
		profile := s.params.Environment.Events.Profiles[category]
		for _, anchor := range profile.TypicalDates {
			if int(date.Month()) != anchor.Month {
				continue
			}
			delta := date.Day() - anchor.Day
			if delta < 0 {
				delta = -delta
			}
			if delta <= scheduledEventWindowDays && rng.Float64() < scheduledEventAcceptance {
				return category, profile, true
			}
		}
	}
	return "", config.EventProfile{}, false
}

func (s *EnvironmentSampler) sampleEvent(period models.AcademicPeriod, rng *rand.Rand) models.EventCategory {
	probs := make([]float64, len(models.EventCategories))
	for i, category := range models.EventCategories {
		probs[i] = s.params.Environment.Events.Profiles[category].Probability
	}

	if period.Name == models.PeriodWinterBreak || period.Name == models.PeriodSummerSession {
		probs[0] = breakRegularDayWeight
		var sum float64
		for i := 1; i < len(probs); i++ {
			probs[i] *= breakSuppression
		}
		for _, prob := range probs {
			sum += prob
		}
		for i := range probs {
			probs[i] /= sum
		}
	}

	idx := sampleIndex(probs, rng)
	return models.EventCategories[idx]
}

// sampleIndex draws an index from a discrete distribution by inverting its
// cumulative distribution function. Probabilities are normalized by their
// own sum so small numeric drift cannot push the draw out of range.
func sampleIndex(probs []float64, rng *rand.Rand) int {
	var total float64
	for _, prob := range probs {
		total += prob
	}

	u := rng.Float64() * total
	var cumulative float64
	for i, prob := range probs {
		cumulative += prob
		if u < cumulative {
			return i
		}
	}
	return len(probs) - 1
}

// seasonOf maps a month to its meteorological season key.
func seasonOf(month time.Month) string {
	switch month {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "fall"
	}
}
