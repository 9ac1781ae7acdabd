package predictor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
	"github.com/nddiaye/centerpointe/internal/predictor"
	"github.com/nddiaye/centerpointe/internal/simulation"
)

// stubModel implements modelserve.Client with a canned response.
type stubModel struct {
	fn       func(features []float64) ([]float64, error)
	captured [][]float64
}

func (s *stubModel) Predict(_ context.Context, features []float64) ([]float64, error) {
	s.captured = append(s.captured, features)
	return s.fn(features)
}

func date(value string) time.Time {
	parsed, err := time.Parse(models.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestPredictTransactions(t *testing.T) {
	transactionModel := &stubModel{fn: func([]float64) ([]float64, error) {
		return []float64{1234.7}, nil
	}}
	p := predictor.New(config.DefaultParams(), transactionModel, nil, nil)

	predicted, err := p.PredictTransactions(context.Background(), date("2024-10-09"), "sunny", "regular_day")
	require.NoError(t, err)
	assert.Equal(t, 1234, predicted)
}

func TestPredictTransactionsFloorsNegativeOutput(t *testing.T) {
	transactionModel := &stubModel{fn: func([]float64) ([]float64, error) {
		return []float64{-58.2}, nil
	}}
	p := predictor.New(config.DefaultParams(), transactionModel, nil, nil)

	predicted, err := p.PredictTransactions(context.Background(), date("2024-12-25"), "sunny", "regular_day")
	require.NoError(t, err)
	assert.Zero(t, predicted)
}

func TestPredictTransactionsFeatureVector(t *testing.T) {
	transactionModel := &stubModel{fn: func([]float64) ([]float64, error) {
		return []float64{100}, nil
	}}
	p := predictor.New(config.DefaultParams(), transactionModel, nil, nil)

	// 2024-12-10 is a Tuesday inside the fall finals window.
	_, err := p.PredictTransactions(context.Background(), date("2024-12-10"), "rainy", "regular_day")
	require.NoError(t, err)

	require.Len(t, transactionModel.captured, 1)
	features := transactionModel.captured[0]
	require.Len(t, features, len(predictor.FeatureNames))

	assert.InDelta(t, 1.0, features[0], 1e-9)    // day_of_week, Monday-first
	assert.InDelta(t, 12.0, features[1], 1e-9)   // month
	assert.InDelta(t, 2024.0, features[2], 1e-9) // year
	assert.InDelta(t, 345.0, features[3], 1e-9)  // day_of_year
	assert.InDelta(t, 0.0, features[5], 1e-9)    // is_weekend
	assert.InDelta(t, 1.16, features[6], 1e-9)   // seasonal_multiplier
	assert.InDelta(t, 1.16, features[12], 1e-9)  // enrollment_seasonal_factor
	assert.InDelta(t, 1.147, features[13], 1e-9) // weather_impact
	assert.InDelta(t, 1.0, features[14], 1e-9)   // event_impact
}

func TestPredictStaffingRunsTwoStages(t *testing.T) {
	transactionModel := &stubModel{fn: func([]float64) ([]float64, error) {
		return []float64{1000.4}, nil
	}}
	staffingModel := &stubModel{fn: func([]float64) ([]float64, error) {
		return []float64{10.12, 5, -1, 8, 3, 2}, nil
	}}
	p := predictor.New(config.DefaultParams(), transactionModel, staffingModel, nil)

	forecast, err := p.PredictStaffing(context.Background(), date("2024-10-09"), "sunny", "regular_day")
	require.NoError(t, err)

	// Stage two receives the stage-one features plus the predicted count.
	require.Len(t, staffingModel.captured, 1)
	features := staffingModel.captured[0]
	require.Len(t, features, len(predictor.FeatureNames)+1)
	assert.InDelta(t, 1000.0, features[len(features)-1], 1e-9)

	assert.Equal(t, "2024-10-09", forecast.Date)
	assert.Equal(t, 1000, forecast.PredictedTransactions)
	assert.InDelta(t, 10.1, forecast.Hours[models.RoleFOHGeneral], 1e-9)
	assert.InDelta(t, 5.0, forecast.Hours[models.RoleFOHCashier], 1e-9)
	assert.Zero(t, forecast.Hours[models.RoleKitchenPrep]) // negatives floor at zero
	assert.InDelta(t, 8.0, forecast.Hours[models.RoleKitchenLine], 1e-9)
	assert.InDelta(t, 3.0, forecast.Hours[models.RoleDishRoom], 1e-9)
	assert.InDelta(t, 2.0, forecast.Hours[models.RoleManagement], 1e-9)
	assert.InDelta(t, 28.1, forecast.TotalHours, 1e-9)
}

func TestPredictStaffingRejectsShortOutput(t *testing.T) {
	transactionModel := &stubModel{fn: func([]float64) ([]float64, error) {
		return []float64{500}, nil
	}}
	staffingModel := &stubModel{fn: func([]float64) ([]float64, error) {
		return []float64{1, 2}, nil
	}}
	p := predictor.New(config.DefaultParams(), transactionModel, staffingModel, nil)

	_, err := p.PredictStaffing(context.Background(), date("2024-10-09"), "sunny", "regular_day")
	assert.Error(t, err)
}

func TestPredictWithoutModels(t *testing.T) {
	p := predictor.New(config.DefaultParams(), nil, nil, nil)

	assert.False(t, p.Ready())
	_, err := p.PredictTransactions(context.Background(), date("2024-10-09"), "sunny", "regular_day")
	assert.ErrorIs(t, err, predictor.ErrModelUnavailable)
	_, err = p.PredictStaffing(context.Background(), date("2024-10-09"), "sunny", "regular_day")
	assert.ErrorIs(t, err, predictor.ErrModelUnavailable)
}

func TestBatchPredictSkipsFailedDates(t *testing.T) {
	failDayOfYear := float64(date("2024-10-10").YearDay())
	transactionModel := &stubModel{fn: func(features []float64) ([]float64, error) {
		if features[3] == failDayOfYear {
			return nil, errors.New("model server timeout")
		}
		return []float64{900}, nil
	}}
	staffingModel := &stubModel{fn: func([]float64) ([]float64, error) {
		return []float64{10, 5, 12, 16, 6, 3}, nil
	}}
	p := predictor.New(config.DefaultParams(), transactionModel, staffingModel, nil)

	result, err := p.BatchPredict(context.Background(), date("2024-10-09"), date("2024-10-11"), "sunny", "regular_day")
	require.NoError(t, err)

	require.Len(t, result.Forecasts, 2)
	assert.Equal(t, "2024-10-09", result.Forecasts[0].Date)
	assert.Equal(t, "2024-10-11", result.Forecasts[1].Date)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "2024-10-10", result.Failures[0].Date)
	assert.Contains(t, result.Failures[0].Reason, "timeout")
}

func TestBatchPredictValidationAborts(t *testing.T) {
	transactionModel := &stubModel{fn: func([]float64) ([]float64, error) {
		return []float64{900}, nil
	}}
	staffingModel := &stubModel{fn: func([]float64) ([]float64, error) {
		return []float64{10, 5, 12, 16, 6, 3}, nil
	}}
	p := predictor.New(config.DefaultParams(), transactionModel, staffingModel, nil)

	_, err := p.BatchPredict(context.Background(), date("2024-10-09"), date("2024-10-11"), "snowy", "regular_day")
	var categoryErr *simulation.InvalidCategoryError
	assert.ErrorAs(t, err, &categoryErr)
	assert.Empty(t, transactionModel.captured)

	_, err = p.BatchPredict(context.Background(), date("2024-10-11"), date("2024-10-09"), "sunny", "regular_day")
	var rangeErr *simulation.InvalidDateRangeError
	assert.ErrorAs(t, err, &rangeErr)
}
