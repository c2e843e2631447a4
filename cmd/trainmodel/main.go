package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/rtanga/clearance-tracker/internal/common"
	"github.com/rtanga/clearance-tracker/internal/model"
)

// trainmodel fits the multi-label classifier from a flags CSV and writes the
// artifacts to the model directory. Existing artifacts are only replaced
// after a successful fit.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	csvPath := cfg.Model.TrainingCSV
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	if csvPath == "" {
		logger.Error("usage: trainmodel <training.csv> (or set TRAINING_CSV)")
		os.Exit(2)
	}

	start := time.Now()
	m, err := model.Train(csvPath, logger)
	if err != nil {
		logger.Error("training failed", "csv", csvPath, "error", err)
		os.Exit(1)
	}
	if err := m.Save(cfg.Model.Dir); err != nil {
		logger.Error("saving model failed", "dir", cfg.Model.Dir, "error", err)
		os.Exit(1)
	}

	logger.Info("model trained",
		"csv", csvPath,
		"dir", cfg.Model.Dir,
		"duration_ms", time.Since(start).Milliseconds())
}
