package workers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"upload-lab/errors"
	"upload-lab/mocks"
	"upload-lab/observability"
)

const testRestartDelay = 10 * time.Millisecond

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)
	restarts := mocks.NewMockRestartRecorder(ctrl)

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()

	// Every restart is reported with the recovered panic
	restarts.EXPECT().
		WorkerRestarted("MockWorker", gomock.Cond(func(err error) bool {
			return stderrors.Is(err, errors.ErrWorkerPanic)
		})).
		MinTimes(2)

	sup := NewSupervisor(log, testRestartDelay, restarts)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	sup.Add(workerMock).Run(ctx)
	req.GreaterOrEqual(calls.Load(), int32(3))
}

func TestSupervisor_BackoffDoublesBetweenRestarts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			return stderrors.New("failed")
		}).
		AnyTimes()

	monitor := observability.NewTransferMonitor(slog.Default(), t.TempDir())
	sup := NewSupervisor(slog.Default(), 50*time.Millisecond, monitor)

	// Restarts land at 50, 150, 350 and 750ms: four runs fit in 500ms, not ten
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	sup.Add(workerMock).Run(ctx)

	req.GreaterOrEqual(calls.Load(), int32(3))
	req.LessOrEqual(calls.Load(), int32(5))
	req.Equal(uint64(calls.Load()), monitor.Snapshot().WorkerRestarts)
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)
	restarts := mocks.NewMockRestartRecorder(ctrl)

	// Given a worker running only once
	workerMock.EXPECT().
		Run(gomock.Any()).
		Return(nil).
		Times(1)
	restarts.EXPECT().WorkerRestarted(gomock.Any(), gomock.Any()).Times(0)

	sup := NewSupervisor(slog.Default(), testRestartDelay, restarts)

	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_Stop(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)
	restarts := mocks.NewMockRestartRecorder(ctrl)

	started := make(chan struct{})
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		}).
		Times(1)

	sup := NewSupervisor(slog.Default(), testRestartDelay, restarts)
	sup.Add(workerMock)

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	<-started
	sup.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Supervisor should have returned after Stop")
	}
}

func TestSupervisor_StopBeforeRun(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)
	restarts := mocks.NewMockRestartRecorder(ctrl)

	// A worker that only returns once canceled
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}).
		AnyTimes()

	sup := NewSupervisor(slog.Default(), testRestartDelay, restarts)
	sup.Add(workerMock)
	sup.Stop()

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Run should return at once after an earlier Stop")
	}
}
