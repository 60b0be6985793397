package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"upload-lab/domain"
	"upload-lab/infrastructure/grpc/client"
	"upload-lab/infrastructure/grpc/server"
	"upload-lab/infrastructure/storage"
	"upload-lab/observability"
	pb "upload-lab/proto/upload"
	"upload-lab/services"
)

type BaseGrpcSuite struct {
	suite.Suite
	Config Config

	listener *bufconn.Listener
	server   *grpc.Server
	db       *badger.DB
	Ledger   *storage.TransferRepository
}

// SetupSuite loads the environment configuration and, without a target
// address, serves uploads in process on an in-memory listener.
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.UploadServerAddr != "" {
		return
	}

	log := slog.Default()
	s.Config.UploadRootDir = s.T().TempDir()
	s.db, err = badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	s.Require().NoError(err)
	s.Ledger = storage.NewTransferRepository(s.db, log)

	receiver := services.NewReceiverService(log, s.Config.UploadRootDir, s.Ledger,
		observability.NewTransferMonitor(log, s.Config.UploadRootDir))
	s.listener = bufconn.Listen(4 * domain.MB)
	s.server = grpc.NewServer(grpc.MaxRecvMsgSize(8 * domain.MB))
	pb.RegisterUploadServiceServer(s.server, server.NewUploadServer(log, receiver))
	go func() { _ = s.server.Serve(s.listener) }()
}

func (s *BaseGrpcSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Stop()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}

// GrpcConn initializes a gRPC connection that logs every stream it opens
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, name string) *grpc.ClientConn {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	addr := s.Config.UploadServerAddr
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStreamInterceptor(func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
			start := time.Now()
			stream, err := streamer(ctx, desc, cc, method, opts...)
			t.Logf("GRPC stream %s opened in %v (err=%v)", method, time.Since(start), err)
			return stream, err
		}),
	}
	if s.listener != nil {
		addr = "passthrough:///bufnet"
		opts = append(opts, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return s.listener.DialContext(ctx)
		}))
	}

	conn, err := grpc.NewClient(addr, opts...)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+addr)
	return conn
}

// WithUploader provides an Uploader within a contextual test step
func (s *BaseGrpcSuite) WithUploader(name string, chunkSize int, fn func(ctx context.Context, uploader *client.Uploader)) {
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	uploader := client.NewUploader(pb.NewUploadServiceClient(conn), slog.Default(), chunkSize)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, uploader)
}
