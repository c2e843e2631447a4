package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/rtanga/clearance-tracker/gen/proto/clearance/v1"
	"github.com/rtanga/clearance-tracker/internal/classify"
	"github.com/rtanga/clearance-tracker/internal/common"
	"github.com/rtanga/clearance-tracker/internal/export"
	"github.com/rtanga/clearance-tracker/internal/extract"
	"github.com/rtanga/clearance-tracker/internal/ingest"
	"github.com/rtanga/clearance-tracker/internal/model"
	"github.com/rtanga/clearance-tracker/internal/notify"
	"github.com/rtanga/clearance-tracker/internal/pipeline"
	"github.com/rtanga/clearance-tracker/internal/predictor"
	repo "github.com/rtanga/clearance-tracker/internal/repository"
	svc "github.com/rtanga/clearance-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		os.Exit(1)
	}

	facultyRepo := repo.NewFacultyRepository(entc, logger)
	setsRepo := repo.NewClearanceSetRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewPredictJobRepository(entc, logger)

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
	// an absent artifact is fine; the predictor degrades to keywords
	_ = models.Load()

	// SIGHUP picks up freshly trained artifacts without a restart
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			logger.Info("reloading clearance model", "model_dir", cfg.Model.Dir)
			_ = models.Reload()
		}
	}()

	pred := predictor.New(extractor, classifier, models,
		predictor.Strategy(cfg.Predict.Strategy), cfg.Predict.Timeout, logger)

	var notifier notify.Notifier = notify.Nop{}
	if cfg.SMTP.Host != "" {
		notifier = notify.NewSMTP(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			From:     cfg.SMTP.From,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
		}, logger)
	}

	pipe := pipeline.NewService(facultyRepo, setsRepo, docsRepo, jobsRepo,
		pred, notifier, cfg.Predict.Workers, logger)
	exporter := export.NewService(facultyRepo, setsRepo, docsRepo, logger)
	ingestor := ingest.NewFSIngestor(setsRepo, docsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	clearanceService := svc.NewClearanceService(facultyRepo, setsRepo, docsRepo, ingestor, pipe, exporter, logger)
	v1.RegisterClearanceServiceServer(grpcServer, clearanceService)

	v1.RegisterClassifyServiceServer(grpcServer, svc.NewClassifyService(models, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("clearanced listening", "addr", cfg.Server.GRPCAddr, "strategy", cfg.Predict.Strategy)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
