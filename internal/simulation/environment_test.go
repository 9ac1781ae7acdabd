package simulation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
	"github.com/nddiaye/centerpointe/internal/simulation"
)

func TestEnvironmentAccept(t *testing.T) {
	sampler := simulation.NewEnvironmentSampler(config.DefaultParams())

	conditions, err := sampler.Accept("rainy", "club_fair")
	require.NoError(t, err)
	assert.Equal(t, models.WeatherRainy, conditions.Weather)
	assert.InDelta(t, 1.147, conditions.WeatherImpact, 1e-9)
	assert.Equal(t, models.EventClubFair, conditions.Event)
	assert.InDelta(t, 1.34, conditions.EventImpact, 1e-9)
	assert.False(t, conditions.EventScheduled)
}

func TestEnvironmentAcceptRejectsUnknownCategories(t *testing.T) {
	sampler := simulation.NewEnvironmentSampler(config.DefaultParams())

	_, err := sampler.Accept("snowy", "regular_day")
	var categoryErr *simulation.InvalidCategoryError
	require.ErrorAs(t, err, &categoryErr)
	assert.Equal(t, "weather", categoryErr.Kind)
	assert.Equal(t, "snowy", categoryErr.Value)

	_, err = sampler.Accept("sunny", "flash_mob")
	require.ErrorAs(t, err, &categoryErr)
	assert.Equal(t, "event", categoryErr.Kind)
}

func TestEnvironmentSampleIsDeterministic(t *testing.T) {
	sampler := simulation.NewEnvironmentSampler(config.DefaultParams())
	period := models.AcademicPeriod{Name: models.PeriodFallSemester, Multiplier: 1.0}
	day := date("2024-09-10")

	first := sampler.Sample(day, period, rand.New(rand.NewSource(7)))
	second := sampler.Sample(day, period, rand.New(rand.NewSource(7)))
	assert.Equal(t, first, second)
}

func TestEnvironmentSampleSuppressesEventsDuringBreaks(t *testing.T) {
	sampler := simulation.NewEnvironmentSampler(config.DefaultParams())
	period := models.AcademicPeriod{Name: models.PeriodWinterBreak, Multiplier: 0.09}
	day := date("2024-12-30")

	regularDays := 0
	for seed := int64(0); seed < 300; seed++ {
		conditions := sampler.Sample(day, period, rand.New(rand.NewSource(seed)))
		if conditions.Event == models.EventRegularDay {
			regularDays++
		}
	}

	// With the reshaped distribution roughly 98% of break days carry no
	// event at all.
	assert.GreaterOrEqual(t, regularDays, 280)
}

func TestEnvironmentScheduledEventNearAnchor(t *testing.T) {
	sampler := simulation.NewEnvironmentSampler(config.DefaultParams())
	period := models.AcademicPeriod{Name: models.PeriodFallSemester, Multiplier: 1.0}
	day := date("2024-10-12")

	scheduled := 0
	for seed := int64(0); seed < 200; seed++ {
		conditions := sampler.Sample(day, period, rand.New(rand.NewSource(seed)))
		if conditions.EventScheduled {
			scheduled++
			assert.Equal(t, models.EventParentWeekend, conditions.Event)
		}
	}

	// The anchor window accepts at 70%; well over half the draws should
	// land the scheduled event.
	assert.Greater(t, scheduled, 100)
}
