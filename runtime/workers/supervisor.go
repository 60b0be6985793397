package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"upload-lab/contract"
	"upload-lab/errors"
)

// maxRestartDelay caps the backoff between restarts. A worker that stayed up
// longer than this starts again from the configured delay.
const maxRestartDelay = 30 * time.Second

// Supervisor keeps the server's background workers (ledger GC, stats
// reporter) alive. A worker that panics or fails is restarted after a delay
// that doubles on each consecutive failure, and every restart is reported to
// the RestartRecorder. A worker returning nil is done.
type Supervisor struct {
	log          *slog.Logger
	restartDelay time.Duration
	restarts     contract.RestartRecorder
	workers      []contract.Worker
	wg           sync.WaitGroup

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
}

func NewSupervisor(log *slog.Logger, restartDelay time.Duration, restarts contract.RestartRecorder) *Supervisor {
	return &Supervisor{
		log:          log,
		restartDelay: restartDelay,
		restarts:     restarts,
	}
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run blocks until every worker has returned. Stop, before or during Run,
// cancels the workers without touching the parent context.
func (s *Supervisor) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.cancel = cancel
	if s.stopped {
		cancel()
	}
	s.mu.Unlock()

	for _, worker := range s.workers {
		s.Start(ctx, worker)
	}
	s.wg.Wait()
}

// Start supervises one worker on its own goroutine.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.supervise(ctx, worker)
	}()
}

func (s *Supervisor) supervise(ctx context.Context, worker contract.Worker) {
	name := contract.GetWorkerName(worker)
	delay := s.restartDelay

	for ctx.Err() == nil {
		startedAt := time.Now()
		err := runRecovered(ctx, worker)
		if err == nil {
			s.log.Info("Worker finished", "name", name)
			return
		}
		if ctx.Err() != nil {
			break
		}

		if time.Since(startedAt) > maxRestartDelay {
			delay = s.restartDelay
		}
		s.log.Warn("Worker failed, restarting", "name", name, "err", err, "delay", delay)
		s.restarts.WorkerRestarted(name, err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
		delay = min(2*delay, maxRestartDelay)
	}
	s.log.Info("Worker stopped", "name", name)
}

// runRecovered turns a panic in the worker into an ErrWorkerPanic error.
func runRecovered(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return worker.Run(ctx)
}

// Stop cancels the supervised workers; Run returns once they have exited.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}
