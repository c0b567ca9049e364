package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/internal/common"
	"github.com/mausam-code/complete-agency/internal/core"
	"github.com/mausam-code/complete-agency/internal/notify"
	"github.com/mausam-code/complete-agency/internal/ocr"
	repo "github.com/mausam-code/complete-agency/internal/repository"
	"github.com/mausam-code/complete-agency/internal/storage"
)

// runscan processes a single uploaded document synchronously, outside
// the daemon queue. Useful for retrying one stuck scan by hand.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runscan <scan-id-uuid>")
		os.Exit(2)
	}
	scanID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid scan id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	scansRepo := repo.NewDocumentScanRepository(entc, logger)
	extractedRepo := repo.NewExtractedDataRepository(entc, logger)
	jobsRepo := repo.NewProcessingJobRepository(entc, logger)

	scan, err := scansRepo.GetByID(ctx, scanID)
	if err != nil {
		logger.Error("load scan", "scan_id", scanID, "error", err)
		os.Exit(1)
	}
	if scan.Status != constants.ScanStatusPending {
		if err := scansRepo.ResetPending(ctx, scanID); err != nil {
			logger.Error("reset scan", "scan_id", scanID, "error", err)
			os.Exit(1)
		}
	}

	job, err := jobsRepo.Create(ctx, scan.UserID, constants.JobTypeScan, &scanID, nil)
	if err != nil {
		logger.Error("create job", "scan_id", scanID, "error", err)
		os.Exit(1)
	}

	store := storage.NewStore(cfg.Storage.Root, logger)
	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	processor := core.NewProcessor(logger, extractor, scansRepo, extractedRepo, jobsRepo, store, notify.NewLogNotifier(logger))

	start := time.Now()
	if err := processor.ProcessDocument(ctx, scanID, job.ID); err != nil {
		logger.Error("processing failed",
			"scan_id", scanID, "job_id", job.ID, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	done, err := scansRepo.GetByID(ctx, scanID)
	if err != nil {
		logger.Error("reload scan", "scan_id", scanID, "error", err)
		os.Exit(1)
	}
	logger.Info("processing OK",
		"scan_id", scanID,
		"job_id", job.ID,
		"status", done.Status,
		"pages", done.PageCount,
		"confidence", done.ConfidenceScore,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
