//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"upload-lab/domain"
	pb "upload-lab/proto/upload"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker is a long-running background task owned by the supervisor.
type Worker interface {
	Run(ctx context.Context) error
}

// RestartRecorder is told each time the supervisor restarts a failed worker.
type RestartRecorder interface {
	WorkerRestarted(name string, cause error)
}

// GetWorkerName uses reflection to retrieve the type name of the worker
// for supervision logs.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ChunkSender is the write half of the duplex channel. Send blocks while the
// transport's send window is full; an error means the peer is gone.
type ChunkSender interface {
	Send(*pb.FileContent) error
}

// UploadSendStream is the sender's view of an UploadFile stream.
// grpc.BidiStreamingClient[pb.FileContent, pb.Status] satisfies it.
type UploadSendStream interface {
	ChunkSender
	Recv() (*pb.Status, error)
	CloseSend() error
}

// UploadRecvStream is the receiver's view of an UploadFile stream.
// grpc.BidiStreamingServer[pb.FileContent, pb.Status] satisfies it.
type UploadRecvStream interface {
	Recv() (*pb.FileContent, error)
	Send(*pb.Status) error
	Context() context.Context
}

type ITransferRepository interface {
	Save(record domain.TransferRecord) error
	List(limit int) ([]domain.TransferRecord, error)
}
