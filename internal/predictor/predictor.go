// Package predictor wraps the two externally trained regression artifacts
// behind a two-stage pipeline: predict total transactions from the date and
// conditions, then predict per-role staffing hours from those features plus
// the predicted transaction count.
package predictor

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
	"github.com/nddiaye/centerpointe/internal/simulation"
	"github.com/nddiaye/centerpointe/pkg/clients/modelserve"
)

// ErrModelUnavailable indicates a prediction was requested without a model
// client configured.
var ErrModelUnavailable = errors.New("model server not configured")

// Predictor is the thin two-stage prediction pipeline. The regression
// artifacts themselves are opaque; only the feature contract lives here.
type Predictor struct {
	transactionModel modelserve.Client
	staffingModel    modelserve.Client
	calendar         *simulation.CalendarResolver
	population       *simulation.PopulationModel
	environment      *simulation.EnvironmentSampler
	logger           *zap.Logger
}

// New wires a predictor over the parameter set and the two model clients.
func New(params *config.Params, transactionModel, staffingModel modelserve.Client, logger *zap.Logger) *Predictor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Predictor{
		transactionModel: transactionModel,
		staffingModel:    staffingModel,
		calendar:         simulation.NewCalendarResolver(params),
		population:       simulation.NewPopulationModel(params),
		environment:      simulation.NewEnvironmentSampler(params),
		logger:           logger,
	}
}

// StaffingForecast is the result of one two-stage prediction.
type StaffingForecast struct {
	Date                  string                  `json:"date"`
	Weather               string                  `json:"weather"`
	Event                 string                  `json:"event"`
	PredictedTransactions int                     `json:"predicted_transactions"`
	Hours                 map[models.Role]float64 `json:"staffing_hours"`
	TotalHours            float64                 `json:"total_predicted_hours"`
}

// FailedDate records one date omitted from a batch because its model call
// failed.
type FailedDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// BatchResult carries the successful forecasts of a batch alongside the
// dates that failed. A batch with failures is still a success overall.
type BatchResult struct {
	Forecasts []StaffingForecast `json:"forecasts"`
	Failures  []FailedDate       `json:"failures"`
}

// PredictTransactions runs stage one: total transactions for a date under
// the given conditions, floored at zero.
func (p *Predictor) PredictTransactions(ctx context.Context, date time.Time, weather, event string) (int, error) {
	if p.transactionModel == nil {
		return 0, ErrModelUnavailable
	}

	environment, err := p.environment.Accept(weather, event)
	if err != nil {
		return 0, err
	}

	outputs, err := p.transactionModel.Predict(ctx, p.features(date, environment))
	if err != nil {
		return 0, err
	}
	if len(outputs) == 0 {
		return 0, errors.New("transaction model returned no outputs")
	}

	predicted := int(outputs[0])
	if predicted < 0 {
		predicted = 0
	}
	return predicted, nil
}

// PredictStaffing runs both stages and returns per-role hours, each
// non-negative and rounded to one decimal.
func (p *Predictor) PredictStaffing(ctx context.Context, date time.Time, weather, event string) (StaffingForecast, error) {
	if p.transactionModel == nil || p.staffingModel == nil {
		return StaffingForecast{}, ErrModelUnavailable
	}

	environment, err := p.environment.Accept(weather, event)
	if err != nil {
		return StaffingForecast{}, err
	}

	transactions, err := p.PredictTransactions(ctx, date, weather, event)
	if err != nil {
		return StaffingForecast{}, err
	}

	features := append(p.features(date, environment), float64(transactions))
	outputs, err := p.staffingModel.Predict(ctx, features)
	if err != nil {
		return StaffingForecast{}, err
	}
	if len(outputs) < len(models.Roles) {
		return StaffingForecast{}, errors.New("staffing model returned too few outputs")
	}

	hours := make(map[models.Role]float64, len(models.Roles))
	var total float64
	for i, role := range models.Roles {
		value := outputs[i]
		if value < 0 {
			value = 0
		}
		value = roundTenth(value)
		hours[role] = value
		total += value
	}

	return StaffingForecast{
		Date:                  date.Format(models.DateLayout),
		Weather:               weather,
		Event:                 event,
		PredictedTransactions: transactions,
		Hours:                 hours,
		TotalHours:            roundTenth(total),
	}, nil
}

// BatchPredict runs the two-stage pipeline over every date in [start, end]
// inclusive with fixed conditions. Category and range validation abort the
// whole call; a model failure on one date is logged, recorded, and the date
// omitted, letting the batch succeed partially.
func (p *Predictor) BatchPredict(ctx context.Context, start, end time.Time, weather, event string) (BatchResult, error) {
	if end.Before(start) {
		return BatchResult{}, &simulation.InvalidDateRangeError{Start: start, End: end}
	}
	if _, err := p.environment.Accept(weather, event); err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		forecast, err := p.PredictStaffing(ctx, date, weather, event)
		if err != nil {
			p.logger.Warn("skipping date after model failure",
				zap.String("date", date.Format(models.DateLayout)),
				zap.Error(err))
			result.Failures = append(result.Failures, FailedDate{
				Date:   date.Format(models.DateLayout),
				Reason: err.Error(),
			})
			continue
		}
		result.Forecasts = append(result.Forecasts, forecast)
	}
	return result, nil
}

// Ready reports whether both model clients are configured.
func (p *Predictor) Ready() bool {
	return p != nil && p.transactionModel != nil && p.staffingModel != nil
}

func roundTenth(value float64) float64 {
	return math.Round(value*10) / 10
}
