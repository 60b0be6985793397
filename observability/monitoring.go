package observability

import (
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/process"

	"upload-lab/errors"
)

// TransferStats is a point-in-time view of the receive side.
type TransferStats struct {
	ActiveSessions    int64   `json:"active_sessions"`
	CompletedSessions uint64  `json:"completed_sessions"`
	FailedSessions    uint64  `json:"failed_sessions"`
	AbortedSessions   uint64  `json:"aborted_sessions"`
	BytesReceived     uint64  `json:"bytes_received"`
	SpaceFaults       uint64  `json:"space_faults"`
	PermissionFaults  uint64  `json:"permission_faults"`
	WorkerRestarts    uint64  `json:"worker_restarts"`
	ThroughputMBs     float64 `json:"throughput_mb_s"`
	RssMb             uint64  `json:"rss_mb"`
	FreeDiskMb        uint64  `json:"free_disk_mb"`
	DiskUsedPercent   float64 `json:"disk_used_percent"`
}

// TransferMonitor counts sessions and bytes. Counters are atomics so
// sessions update them without locking; Snapshot computes the rest.
type TransferMonitor struct {
	log  *slog.Logger
	root string

	active           int64
	completed        uint64
	failed           uint64
	aborted          uint64
	bytesReceived    uint64
	spaceFaults      uint64
	permissionFaults uint64
	workerRestarts   uint64

	mu        sync.Mutex
	lastBytes uint64
	lastCheck time.Time
}

func NewTransferMonitor(log *slog.Logger, root string) *TransferMonitor {
	return &TransferMonitor{
		log:       log,
		root:      root,
		lastCheck: time.Now(),
	}
}

func (m *TransferMonitor) SessionStarted() {
	atomic.AddInt64(&m.active, 1)
}

// SessionEnded closes a session started with SessionStarted. A nil err counts
// as completed, a transport abort as aborted, anything else as failed.
func (m *TransferMonitor) SessionEnded(err error) {
	atomic.AddInt64(&m.active, -1)
	if err == nil {
		atomic.AddUint64(&m.completed, 1)
		return
	}
	switch errors.KindOf(err) {
	case errors.KindTransportAborted:
		atomic.AddUint64(&m.aborted, 1)
		return
	case errors.KindSpaceExhausted:
		atomic.AddUint64(&m.spaceFaults, 1)
	case errors.KindPermissionDenied:
		atomic.AddUint64(&m.permissionFaults, 1)
	}
	atomic.AddUint64(&m.failed, 1)
}

// WorkerRestarted counts a background worker restarted by the supervisor.
func (m *TransferMonitor) WorkerRestarted(name string, cause error) {
	atomic.AddUint64(&m.workerRestarts, 1)
	m.log.Debug("Worker restart counted", "name", name, "cause", cause)
}

func (m *TransferMonitor) IncrBytesReceived(n uint64) {
	atomic.AddUint64(&m.bytesReceived, n)
}

// FreeDiskMb reports free space on the filesystem holding the upload root.
func (m *TransferMonitor) FreeDiskMb() (uint64, error) {
	usage, err := disk.Usage(m.usagePath())
	if err != nil {
		return 0, err
	}
	return usage.Free / 1024 / 1024, nil
}

// usagePath falls back to the working directory until the root exists.
func (m *TransferMonitor) usagePath() string {
	if _, err := os.Stat(m.root); err != nil {
		return "."
	}
	return m.root
}

// Snapshot reads the counters and samples the process and the disk.
// Throughput is measured since the previous Snapshot.
func (m *TransferMonitor) Snapshot() TransferStats {
	bytes := atomic.LoadUint64(&m.bytesReceived)
	stats := TransferStats{
		ActiveSessions:    atomic.LoadInt64(&m.active),
		CompletedSessions: atomic.LoadUint64(&m.completed),
		FailedSessions:    atomic.LoadUint64(&m.failed),
		AbortedSessions:   atomic.LoadUint64(&m.aborted),
		BytesReceived:     bytes,
		SpaceFaults:       atomic.LoadUint64(&m.spaceFaults),
		PermissionFaults:  atomic.LoadUint64(&m.permissionFaults),
		WorkerRestarts:    atomic.LoadUint64(&m.workerRestarts),
	}

	m.mu.Lock()
	now := time.Now()
	if elapsed := now.Sub(m.lastCheck).Seconds(); elapsed > 0 {
		stats.ThroughputMBs = (float64(bytes-m.lastBytes) / 1024 / 1024) / elapsed
	}
	m.lastBytes = bytes
	m.lastCheck = now
	m.mu.Unlock()

	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := p.MemoryInfo(); err == nil {
			stats.RssMb = mem.RSS / 1024 / 1024
		} else {
			m.log.Debug("Error while finding process memory", "err", err)
		}
	}

	if usage, err := disk.Usage(m.usagePath()); err == nil {
		stats.FreeDiskMb = usage.Free / 1024 / 1024
		stats.DiskUsedPercent = usage.UsedPercent
	} else {
		m.log.Debug("Error while finding disk usage", "root", m.root, "err", err)
	}

	return stats
}
