package server

import (
	"log/slog"

	"google.golang.org/grpc"

	pb "upload-lab/proto/upload"
	"upload-lab/services"
)

type UploadServer struct {
	pb.UnimplementedUploadServiceServer
	log             *slog.Logger
	receiverService services.IReceiverService
}

func NewUploadServer(log *slog.Logger, receiverService services.IReceiverService) *UploadServer {
	return &UploadServer{
		log:             log,
		receiverService: receiverService,
	}
}

// UploadFile hands the stream to the receiver, one session per call.
// Concurrent calls are independent and only share the upload directory.
func (s *UploadServer) UploadFile(stream grpc.BidiStreamingServer[pb.FileContent, pb.Status]) error {
	return s.receiverService.Receive(stream)
}
