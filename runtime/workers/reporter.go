package workers

import (
	"context"
	"log/slog"
	"time"

	"upload-lab/observability"
)

// ReporterWorker logs a monitor snapshot every interval and once more on shutdown.
type ReporterWorker struct {
	log        *slog.Logger
	monitoring *observability.TransferMonitor
	interval   time.Duration
}

func NewReporterWorker(log *slog.Logger, monitoring *observability.TransferMonitor, interval time.Duration) *ReporterWorker {
	return &ReporterWorker{
		log:        log,
		monitoring: monitoring,
		interval:   interval,
	}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	startTime := time.Now()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report(startTime)
			w.log.Info("Reporter stopped")
			return nil
		case <-ticker.C:
			w.report(startTime)
		}
	}
}

func (w *ReporterWorker) report(startTime time.Time) {
	stats := w.monitoring.Snapshot()
	w.log.Info("Transfer stats",
		"uptime", time.Since(startTime).Round(time.Second).String(),
		"active", stats.ActiveSessions,
		"completed", stats.CompletedSessions,
		"failed", stats.FailedSessions,
		"aborted", stats.AbortedSessions,
		"bytes", stats.BytesReceived,
		"throughput_mb_s", stats.ThroughputMBs,
		"space_faults", stats.SpaceFaults,
		"permission_faults", stats.PermissionFaults,
		"worker_restarts", stats.WorkerRestarts,
		"rss_mb", stats.RssMb,
		"free_disk_mb", stats.FreeDiskMb,
	)
}
