package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"upload-lab/domain"
	"upload-lab/errors"
	"upload-lab/infrastructure/grpc/client"
	pb "upload-lab/proto/upload"
)

// Exit codes for the upload client.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

type outcome struct {
	report domain.UploadReport
	err    error
}

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Upload error: %v\n", err)
	}
	os.Exit(code)
}

// run uploads every path given on the command line, each in its own
// session, and fails when at least one of them failed.
func run(paths []string) (int, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return exitConfig, fmt.Errorf("invalid config: %w", err)
	}
	if len(paths) == 0 {
		return exitConfig, fmt.Errorf("usage: upload <file>...")
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	uploader := client.NewUploader(pb.NewUploadServiceClient(conn), log, config.ChunkSize)

	// Sessions are independent: one failure does not cancel the others.
	outcomes := make([]outcome, len(paths))
	var g errgroup.Group
	g.SetLimit(config.Parallelism)
	for i, path := range paths {
		g.Go(func() error {
			report, err := uploader.Upload(ctx, path)
			outcomes[i] = outcome{report: report, err: err}
			return nil
		})
	}
	_ = g.Wait()

	for _, o := range outcomes {
		fmt.Println(describe(o, !config.NoColour))
	}

	failed := lo.CountBy(outcomes, func(o outcome) bool { return o.err != nil })
	if failed > 0 {
		return exitRuntime, fmt.Errorf("%d of %d uploads failed", failed, len(outcomes))
	}
	return exitOK, nil
}

func describe(o outcome, colours bool) string {
	r := o.report
	if o.err == nil {
		line := fmt.Sprintf("OK    %s  %d bytes in %d chunks (%s)", r.Path, r.Bytes, r.Chunks, r.Duration.Round(time.Millisecond))
		if colours {
			return color.New(color.FgGreen).Render(line)
		}
		return line
	}

	line := fmt.Sprintf("FAIL  %s  %s: %v", r.Path, errors.KindOf(o.err), o.err)
	if last, ok := r.LastAck(); ok && !last.OK() {
		line += fmt.Sprintf(" [receiver: %s %q]", last.Code, last.Message)
	}
	if colours {
		return color.New(color.FgRed, color.OpBold).Render(line)
	}
	return line
}
