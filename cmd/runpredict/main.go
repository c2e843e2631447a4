package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/rtanga/clearance-tracker/internal/classify"
	"github.com/rtanga/clearance-tracker/internal/common"
	"github.com/rtanga/clearance-tracker/internal/extract"
	"github.com/rtanga/clearance-tracker/internal/model"
	"github.com/rtanga/clearance-tracker/internal/predictor"
)

// runpredict runs the extraction and prediction pipeline over a single file
// without touching the database. Useful for debugging OCR and keyword rules.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: runpredict <file> [clearance-type]")
		os.Exit(2)
	}
	path := os.Args[1]
	declaredType := ""
	if len(os.Args) > 2 {
		declaredType = os.Args[2]
	}

	cfg := common.LoadConfig()

	classifier, err := classify.NewClassifier(logger)
	if err != nil {
		logger.Error("failed to load keyword table", "error", err)
		os.Exit(1)
	}
	extractor := extract.NewExtractor(extract.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)
	models := model.NewStore(cfg.Model.Dir, logger)
	_ = models.Load()

	pred := predictor.New(extractor, classifier, models,
		predictor.Strategy(cfg.Predict.Strategy), cfg.Predict.Timeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	p := pred.Predict(ctx, path, declaredType)

	category := ""
	if p.HaveCategory {
		category = string(p.Category)
	}
	logger.Info("prediction complete",
		"path", path,
		"status", string(p.Status),
		"category", category,
		"method", p.Method,
		"format", string(p.Format),
		"warnings", p.Warnings,
		"text_bytes", len(p.Text),
		"duration_ms", time.Since(start).Milliseconds())
}
