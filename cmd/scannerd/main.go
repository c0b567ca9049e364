package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	documentsv1 "github.com/mausam-code/complete-agency/gen/proto/documents/v1"
	"github.com/mausam-code/complete-agency/internal/common"
	"github.com/mausam-code/complete-agency/internal/core"
	"github.com/mausam-code/complete-agency/internal/core/async"
	"github.com/mausam-code/complete-agency/internal/export"
	"github.com/mausam-code/complete-agency/internal/notify"
	"github.com/mausam-code/complete-agency/internal/ocr"
	repo "github.com/mausam-code/complete-agency/internal/repository"
	"github.com/mausam-code/complete-agency/internal/server"
	"github.com/mausam-code/complete-agency/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
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

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	scansRepo := repo.NewDocumentScanRepository(entc, logger)
	extractedRepo := repo.NewExtractedDataRepository(entc, logger)
	cvsRepo := repo.NewGeneratedCVRepository(entc, logger)
	jobsRepo := repo.NewProcessingJobRepository(entc, logger)

	store := storage.NewStore(cfg.Storage.Root, logger)
	notifier := notify.NewLogNotifier(logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	processor := core.NewProcessor(logger, extractor, scansRepo, extractedRepo, jobsRepo, store, notifier)
	generator := core.NewGenerator(logger, scansRepo, cvsRepo, extractedRepo, jobsRepo, store, notifier)
	dispatcher := &core.PipelineDispatcher{Processor: processor, Generator: generator}

	queue := async.NewProcessorQueue(dispatcher, logger,
		async.WithWorkers(cfg.Jobs.Workers),
		async.WithQueueSize(cfg.Jobs.QueueSize),
		async.WithProcessTimeout(cfg.Jobs.ProcessTimeout),
	)

	maintenance := core.NewMaintenance(logger, scansRepo, cvsRepo, extractedRepo, jobsRepo, store, notifier,
		cfg.Jobs.ScanRetention, cfg.Jobs.FailedJobMaxAge)
	go runMaintenance(ctx, maintenance, cfg.Jobs.MaintenanceEvery)

	exporter := export.NewService(scansRepo, cvsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	svc := server.NewDocumentsService(scansRepo, extractedRepo, cvsRepo, jobsRepo, store, queue, processor, exporter, logger)
	documentsv1.RegisterDocumentsServiceServer(grpcServer, svc)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("scannerd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// runMaintenance runs retention cleanup and the daily report on a ticker
// until ctx is cancelled.
func runMaintenance(ctx context.Context, m *core.Maintenance, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Run(ctx)
		}
	}
}
