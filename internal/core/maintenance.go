package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mausam-code/complete-agency/internal/notify"
	"github.com/mausam-code/complete-agency/internal/repository"
)

// FileRemover deletes stored files by relative path.
type FileRemover interface {
	Remove(rel string) error
}

// Maintenance performs the periodic housekeeping passes: expiring old
// scans with their artifacts, purging stale failed jobs, and producing
// the daily processing report.
type Maintenance struct {
	logger    *slog.Logger
	scans     repository.DocumentScanRepository
	cvs       repository.GeneratedCVRepository
	extracted repository.ExtractedDataRepository
	jobs      repository.ProcessingJobRepository
	files     FileRemover
	notifier  notify.Notifier

	ScanRetention   time.Duration
	FailedJobMaxAge time.Duration
}

func NewMaintenance(
	logger *slog.Logger,
	scans repository.DocumentScanRepository,
	cvs repository.GeneratedCVRepository,
	extracted repository.ExtractedDataRepository,
	jobs repository.ProcessingJobRepository,
	files FileRemover,
	notifier notify.Notifier,
	scanRetention, failedJobMaxAge time.Duration,
) *Maintenance {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}
	if scanRetention <= 0 {
		scanRetention = 90 * 24 * time.Hour
	}
	if failedJobMaxAge <= 0 {
		failedJobMaxAge = 30 * 24 * time.Hour
	}
	return &Maintenance{
		logger:          logger,
		scans:           scans,
		cvs:             cvs,
		extracted:       extracted,
		jobs:            jobs,
		files:           files,
		notifier:        notifier,
		ScanRetention:   scanRetention,
		FailedJobMaxAge: failedJobMaxAge,
	}
}

// Run executes one full maintenance pass.
func (m *Maintenance) Run(ctx context.Context) {
	if n, err := m.CleanupOldScans(ctx); err != nil {
		m.logger.Error("scan cleanup failed", "error", err)
	} else if n > 0 {
		m.logger.Info("cleaned up old documents", "count", n)
	}
	if n, err := m.CleanupFailedJobs(ctx); err != nil {
		m.logger.Error("failed job cleanup failed", "error", err)
	} else if n > 0 {
		m.logger.Info("cleaned up old failed jobs", "count", n)
	}
	m.ReportYesterday(ctx)
}

// CleanupOldScans removes scans past retention together with their
// extracted data, generated CVs and every file they produced. Errors
// on one scan do not stop the sweep.
func (m *Maintenance) CleanupOldScans(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-m.ScanRetention)
	old, err := m.scans.ListCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, scan := range old {
		cvs, err := m.cvs.ListByDocument(ctx, scan.ID)
		if err != nil {
			m.logger.Error("list cvs for expired scan failed", "scan_id", scan.ID, "error", err)
			continue
		}
		ok := true
		for _, cv := range cvs {
			for _, rel := range []*string{cv.CVFile, cv.ApplicationForm, cv.MergedDocument} {
				if rel != nil {
					_ = m.files.Remove(*rel)
				}
			}
			if err := m.cvs.Delete(ctx, cv.ID); err != nil {
				m.logger.Error("delete expired cv failed", "cv_id", cv.ID, "error", err)
				ok = false
			}
		}
		if !ok {
			continue
		}
		if err := m.extracted.DeleteByDocument(ctx, scan.ID); err != nil {
			m.logger.Error("delete extracted data failed", "scan_id", scan.ID, "error", err)
			continue
		}
		_ = m.files.Remove(scan.FilePath)
		if err := m.scans.Delete(ctx, scan.ID); err != nil {
			m.logger.Error("delete expired scan failed", "scan_id", scan.ID, "error", err)
			continue
		}
		deleted++
	}
	return deleted, nil
}

// CleanupFailedJobs purges failed job rows older than the max age.
func (m *Maintenance) CleanupFailedJobs(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-m.FailedJobMaxAge)
	return m.jobs.PurgeFailedBefore(ctx, cutoff)
}

// Report holds one day's processing statistics.
type Report struct {
	Date           string  `json:"date"`
	TotalDocuments int     `json:"total_documents"`
	SuccessfulScan int     `json:"successful_scans"`
	FailedScans    int     `json:"failed_scans"`
	SuccessRate    float64 `json:"success_rate"`
	GeneratedCVs   int     `json:"generated_cvs"`
	SuccessfulCVs  int     `json:"successful_cvs"`
	CVSuccessRate  float64 `json:"cv_success_rate"`
	AvgProcessing  float64 `json:"avg_processing_time"`
}

// ReportYesterday computes yesterday's processing report, logs it and
// notifies the admin channel.
func (m *Maintenance) ReportYesterday(ctx context.Context) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -1).Truncate(24 * time.Hour)
	to := from.Add(24 * time.Hour)
	rep, err := m.ReportBetween(ctx, from, to)
	if err != nil {
		m.logger.Error("processing report failed", "error", err)
		return
	}
	m.notifier.Notify(ctx, "admin", notify.KindInfo,
		"Daily Processing Report",
		fmt.Sprintf("%s: %d documents processed (%.1f%% success), %d CVs generated.",
			rep.Date, rep.TotalDocuments, rep.SuccessRate, rep.GeneratedCVs))
	m.logger.Info("daily processing report",
		"date", rep.Date,
		"total_documents", rep.TotalDocuments,
		"successful_scans", rep.SuccessfulScan,
		"failed_scans", rep.FailedScans,
		"success_rate", rep.SuccessRate,
		"generated_cvs", rep.GeneratedCVs,
		"successful_cvs", rep.SuccessfulCVs,
		"avg_processing_time", rep.AvgProcessing,
	)
}

// ReportBetween computes the processing report for a window.
func (m *Maintenance) ReportBetween(ctx context.Context, from, to time.Time) (Report, error) {
	ss, err := m.scans.StatsBetween(ctx, from, to)
	if err != nil {
		return Report{}, err
	}
	cs, err := m.cvs.StatsBetween(ctx, from, to)
	if err != nil {
		return Report{}, err
	}
	rep := Report{
		Date:           from.Format("2006-01-02"),
		TotalDocuments: ss.Total,
		SuccessfulScan: ss.Completed,
		FailedScans:    ss.Failed,
		GeneratedCVs:   cs.Total,
		SuccessfulCVs:  cs.Completed,
		AvgProcessing:  ss.AvgProcessingTime,
	}
	if ss.Total > 0 {
		rep.SuccessRate = float64(ss.Completed) / float64(ss.Total) * 100
	}
	if cs.Total > 0 {
		rep.CVSuccessRate = float64(cs.Completed) / float64(cs.Total) * 100
	}
	return rep, nil
}
