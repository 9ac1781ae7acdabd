package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nddiaye/centerpointe/internal/domain/models"
	"github.com/nddiaye/centerpointe/internal/metrics"
	"github.com/nddiaye/centerpointe/internal/predictor"
	"github.com/nddiaye/centerpointe/internal/simulation"
)

// ForecastHandler exposes the simulation engine and the model-backed
// predictor over HTTP.
type ForecastHandler struct {
	engine *simulation.Engine
	pred   *predictor.Predictor
	logger *zap.Logger
}

// NewForecastHandler constructs the HTTP handler adapter. pred may be nil
// when no model server is configured; the predict endpoints then answer 503.
func NewForecastHandler(engine *simulation.Engine, pred *predictor.Predictor, logger *zap.Logger) *ForecastHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ForecastHandler{engine: engine, pred: pred, logger: logger}
}

type forecastRequest struct {
	Date    string `json:"date" binding:"required"`
	Weather string `json:"weather"`
	Event   string `json:"event"`
}

type rangeRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Weather   string `json:"weather"`
	Event     string `json:"event"`
}

// Forecast computes the full simulated record for one date.
func (h *ForecastHandler) Forecast(c *gin.Context) {
	var req forecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	start := time.Now()
	record, err := h.engine.Compute(date, req.Weather, req.Event)
	if err != nil {
		metrics.ForecastsTotal.WithLabelValues("simulation", "error").Inc()
		h.respondError(c, err)
		return
	}
	metrics.ForecastDuration.WithLabelValues("simulation").Observe(time.Since(start).Seconds())
	metrics.ForecastsTotal.WithLabelValues("simulation", "ok").Inc()

	c.JSON(http.StatusOK, record)
}

// ForecastRange computes one simulated record per date in an inclusive
// range.
func (h *ForecastHandler) ForecastRange(c *gin.Context) {
	req, start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	began := time.Now()
	records, err := h.engine.ComputeRange(start, end, req.Weather, req.Event)
	if err != nil {
		metrics.ForecastsTotal.WithLabelValues("simulation", "error").Inc()
		h.respondError(c, err)
		return
	}
	metrics.ForecastDuration.WithLabelValues("simulation").Observe(time.Since(began).Seconds())
	metrics.ForecastsTotal.WithLabelValues("simulation", "ok").Inc()

	c.JSON(http.StatusOK, gin.H{"count": len(records), "records": records})
}

// Predict runs the two-stage model pipeline for one date.
func (h *ForecastHandler) Predict(c *gin.Context) {
	if !h.pred.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model server not configured"})
		return
	}

	var req forecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	start := time.Now()
	forecast, err := h.pred.PredictStaffing(c.Request.Context(), date, req.Weather, req.Event)
	if err != nil {
		metrics.ForecastsTotal.WithLabelValues("model", "error").Inc()
		h.respondError(c, err)
		return
	}
	metrics.ForecastDuration.WithLabelValues("model").Observe(time.Since(start).Seconds())
	metrics.ForecastsTotal.WithLabelValues("model", "ok").Inc()

	c.JSON(http.StatusOK, forecast)
}

// PredictRange runs the model pipeline over an inclusive range, tolerating
// per-date model failures.
func (h *ForecastHandler) PredictRange(c *gin.Context) {
	if !h.pred.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model server not configured"})
		return
	}

	req, start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	began := time.Now()
	result, err := h.pred.BatchPredict(c.Request.Context(), start, end, req.Weather, req.Event)
	if err != nil {
		metrics.ForecastsTotal.WithLabelValues("model", "error").Inc()
		h.respondError(c, err)
		return
	}
	metrics.ForecastDuration.WithLabelValues("model").Observe(time.Since(began).Seconds())
	metrics.ForecastsTotal.WithLabelValues("model", "ok").Inc()
	metrics.ModelCallFailures.Add(float64(len(result.Failures)))

	c.JSON(http.StatusOK, result)
}

// Options lists the accepted weather, event and staffing-role enumerations.
func (h *ForecastHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"weather": models.WeatherCategories,
		"events":  models.EventCategories,
		"roles":   models.Roles,
	})
}

// TodaySummary computes today's record and returns its headline numbers.
func (h *ForecastHandler) TodaySummary(c *gin.Context) {
	record, err := h.engine.Compute(time.Now().UTC(), "", "")
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":                 record.DateString,
		"academic_period":      record.Period.Name,
		"weather":              record.Environment.Weather,
		"campus_event":         record.Environment.Event,
		"total_transactions":   record.Transactions.Total,
		"estimated_revenue":    record.Transactions.Revenue.DailyRevenue,
		"total_labor_hours":    record.TotalLaborHours,
		"staffing_hours":       record.Staffing,
		"capacity_utilization": record.CapacityUtilization,
	})
}

func (h *ForecastHandler) bindRange(c *gin.Context) (rangeRequest, time.Time, time.Time, bool) {
	var req rangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return req, time.Time{}, time.Time{}, false
	}

	start, err := time.Parse(models.DateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be formatted as YYYY-MM-DD"})
		return req, time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(models.DateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be formatted as YYYY-MM-DD"})
		return req, time.Time{}, time.Time{}, false
	}

	return req, start, end, true
}

func (h *ForecastHandler) respondError(c *gin.Context, err error) {
	var categoryErr *simulation.InvalidCategoryError
	var rangeErr *simulation.InvalidDateRangeError

	switch {
	case errors.As(err, &categoryErr), errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, predictor.ErrModelUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		h.logger.Error("forecast request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream prediction failed"})
	}
}
