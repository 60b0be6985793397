package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"

	"upload-lab/infrastructure/grpc/server"
	"upload-lab/infrastructure/storage"
	"upload-lab/internal"
	"upload-lab/observability"
	pb "upload-lab/proto/upload"
	"upload-lab/runtime/workers"
	"upload-lab/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Upload server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the server and blocks until SIGINT/SIGTERM. Deferred cleanups
// run before main exits.
func run() (int, error) {
	_ = godotenv.Load()

	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(config.UploadRootDir, 0o755); err != nil {
		return exitRuntime, fmt.Errorf("failed to create upload root %s: %w", config.UploadRootDir, err)
	}

	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		url := fmt.Sprintf("http://localhost:%d%s?prefix=transfer:", config.DebugInspectPort, config.DebugInspectRoute)
		logger.Info("Debug Badger inspector available", "url", url)
		database.StartDebugServer(db, config.DebugInspectPort, config.DebugInspectRoute, storage.TransferMapper)
	}

	repository := storage.NewTransferRepository(db, logger)
	monitor := observability.NewTransferMonitor(logger, config.UploadRootDir)

	listener, err := net.Listen("tcp", config.Address())
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", config.Address(), err)
	}

	// Workers must be gone before the deferred db.Close runs.
	sup := workers.NewSupervisor(logger, config.RestartInterval, monitor)
	sup.Add(
		workers.NewLedgerGCWorker(db, logger, config.LedgerGCInterval),
		workers.NewReporterWorker(logger, monitor, config.ReportInterval),
	)
	supervisorDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervisorDone)
	}()
	defer func() {
		sup.Stop()
		<-supervisorDone
	}()

	s := grpc.NewServer(grpc.MaxRecvMsgSize(config.MaxRecvMsgSize))
	receiverService := services.NewReceiverService(logger, config.UploadRootDir, repository, monitor)
	pb.RegisterUploadServiceServer(s, server.NewUploadServer(logger, receiverService))

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting gRPC server", "address", config.Address(), "root", config.UploadRootDir, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down gracefully...")
	case err := <-errChan:
		s.Stop()
		return exitRuntime, err
	}

	s.GracefulStop()
	logger.Info("Server stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}
