package models

// WeatherCategory is the closed set of weather classifications the demand
// model understands.
type WeatherCategory string

const (
	WeatherSunny       WeatherCategory = "sunny"
	WeatherCloudy      WeatherCategory = "cloudy"
	WeatherRainy       WeatherCategory = "rainy"
	WeatherExtremeHeat WeatherCategory = "extreme_heat"
)

// WeatherCategories lists every valid weather category in sampling order.
var WeatherCategories = []WeatherCategory{
	WeatherSunny,
	WeatherCloudy,
	WeatherRainy,
	WeatherExtremeHeat,
}

// EventCategory is the closed set of campus event classifications.
type EventCategory string

const (
	EventRegularDay            EventCategory = "regular_day"
	EventClubFair              EventCategory = "club_fair"
	EventCareerFair            EventCategory = "career_fair"
	EventSportsEvents          EventCategory = "sports_events"
	EventGraduation            EventCategory = "graduation"
	EventParentWeekend         EventCategory = "parent_weekend"
	EventProspectiveStudentDay EventCategory = "prospective_student_day"
	EventConferenceHosting     EventCategory = "conference_hosting"
	EventCampusConstruction    EventCategory = "campus_construction"
)

// EventCategories lists every valid event category. Order matters: it is the
// evaluation order for scheduled-event anchors and the column order of the
// sampling distribution.
var EventCategories = []EventCategory{
	EventRegularDay,
	EventClubFair,
	EventCareerFair,
	EventSportsEvents,
	EventGraduation,
	EventParentWeekend,
	EventProspectiveStudentDay,
	EventConferenceHosting,
	EventCampusConstruction,
}

// EnvironmentalConditions captures the weather and campus event context for a
// single day, along with the impact multipliers they contribute.
type EnvironmentalConditions struct {
	Weather        WeatherCategory `json:"weather"`
	WeatherImpact  float64         `json:"weather_impact"`
	Event          EventCategory   `json:"campus_event"`
	EventImpact    float64         `json:"event_impact"`
	EventScheduled bool            `json:"event_scheduled"`
}
