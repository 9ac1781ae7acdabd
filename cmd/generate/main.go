// Command generate runs the demand simulation over a date range and writes
// the daily records to a CSV file.
package main

import (
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/domain/models"
	"github.com/nddiaye/centerpointe/internal/export"
	"github.com/nddiaye/centerpointe/internal/simulation"
	"github.com/nddiaye/centerpointe/pkg/logger"
)

func main() {
	var (
		startFlag  = flag.String("start", "2024-08-15", "first simulated date (YYYY-MM-DD)")
		endFlag    = flag.String("end", "2025-08-14", "last simulated date, inclusive (YYYY-MM-DD)")
		outputFlag = flag.String("output", "dining_dataset.csv", "output CSV path")
	)
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	start, err := time.Parse(models.DateLayout, *startFlag)
	if err != nil {
		baseLogger.Fatal("invalid start date", zap.String("start", *startFlag), zap.Error(err))
	}
	end, err := time.Parse(models.DateLayout, *endFlag)
	if err != nil {
		baseLogger.Fatal("invalid end date", zap.String("end", *endFlag), zap.Error(err))
	}

	params, err := cfg.BuildParams()
	if err != nil {
		baseLogger.Fatal("failed to build simulation parameters", zap.Error(err))
	}

	engine := simulation.NewEngine(params, baseLogger.Named("simulation"))

	records, err := engine.Generate(start, end)
	if err != nil {
		baseLogger.Fatal("simulation failed", zap.Error(err))
	}

	file, err := os.Create(*outputFlag)
	if err != nil {
		baseLogger.Fatal("failed to create output file", zap.String("path", *outputFlag), zap.Error(err))
	}
	defer func() { _ = file.Close() }()

	if err := export.WriteCSV(file, records); err != nil {
		baseLogger.Fatal("failed to write csv", zap.Error(err))
	}

	var totalTransactions int
	var totalRevenue, totalHours float64
	for _, record := range records {
		totalTransactions += record.Transactions.Total
		totalRevenue += record.Transactions.Revenue.DailyRevenue
		totalHours += record.TotalLaborHours
	}

	baseLogger.Info("dataset generated",
		zap.String("path", *outputFlag),
		zap.Int("days", len(records)),
		zap.Int64("seed", params.Seed),
		zap.Int("total_transactions", totalTransactions),
		zap.Float64("total_revenue", totalRevenue),
		zap.Float64("total_labor_hours", totalHours))
}
