package services

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"upload-lab/domain"
	"upload-lab/errors"
	"upload-lab/mocks"
	"upload-lab/observability"
	pb "upload-lab/proto/upload"
)

// failingSink fails its n-th Write with err, the way sink.FileSink reports it.
type failingSink struct {
	failAt  int
	err     error
	writes  int
	aborted bool
	name    string
}

func (f *failingSink) Write(name string, data []byte) error {
	f.writes++
	f.name = name
	if f.writes == f.failAt {
		return f.err
	}
	return nil
}
func (f *failingSink) Close() error           { return nil }
func (f *failingSink) Abort(error)            { f.aborted = true }
func (f *failingSink) NoSpaceLeft() bool      { return errors.KindOf(f.err) == errors.KindSpaceExhausted }
func (f *failingSink) PermissionDenied() bool { return errors.KindOf(f.err) == errors.KindPermissionDenied }
func (f *failingSink) Name() string           { return f.name }
func (f *failingSink) Path() string           { return "/uploads/" + f.name }
func (f *failingSink) BytesWritten() int64    { return 0 }
func (f *failingSink) Chunks() int            { return f.writes - 1 }
func (f *failingSink) MimeType() string       { return "" }

func newTestService(t *testing.T, root string, repository *mocks.MockITransferRepository) *ReceiverService {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewReceiverService(log, root, repository, observability.NewTransferMonitor(log, root))
}

func TestReceiverService_Receive_WritesFileAndAcknowledgesEachChunk(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	stream := mocks.NewMockUploadRecvStream(ctrl)
	repository := mocks.NewMockITransferRepository(ctrl)
	service := newTestService(t, root, repository)

	// Given a sender sending three chunks, the last one shorter
	chunks := [][]byte{[]byte("hello "), []byte("bulk "), []byte("world")}
	var acks []*pb.Status
	gomock.InOrder(
		stream.EXPECT().Recv().Return(&pb.FileContent{Name: "greeting.txt", Content: chunks[0]}, nil),
		stream.EXPECT().Recv().Return(&pb.FileContent{Name: "greeting.txt", Content: chunks[1]}, nil),
		stream.EXPECT().Recv().Return(&pb.FileContent{Name: "greeting.txt", Content: chunks[2]}, nil),
		stream.EXPECT().Recv().Return(nil, io.EOF),
	)
	stream.EXPECT().Send(gomock.Any()).DoAndReturn(func(s *pb.Status) error {
		acks = append(acks, s)
		return nil
	}).Times(3)

	var saved domain.TransferRecord
	repository.EXPECT().Save(gomock.Any()).DoAndReturn(func(r domain.TransferRecord) error {
		saved = r
		return nil
	})

	// When
	err := service.Receive(stream)

	// Then
	req.NoError(err)
	content, err := os.ReadFile(filepath.Join(root, "greeting.txt"))
	req.NoError(err)
	req.Equal("hello bulk world", string(content))

	req.Len(acks, 3)
	req.Equal("Uploaded 6 bytes.", acks[0].GetMessage())
	req.Equal("Uploaded 5 bytes.", acks[2].GetMessage())
	for _, ack := range acks {
		req.Equal(int32(0), ack.GetCode())
	}

	req.Equal(domain.OutcomeCompleted, saved.Outcome)
	req.Equal(uint64(16), saved.Bytes)
	req.Equal(uint64(3), saved.Chunks)
	req.Equal("greeting.txt", saved.Name)
	req.NotEmpty(saved.ID)
}

func TestReceiverService_Receive_EmptyFile(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	stream := mocks.NewMockUploadRecvStream(ctrl)
	repository := mocks.NewMockITransferRepository(ctrl)
	service := newTestService(t, root, repository)

	gomock.InOrder(
		stream.EXPECT().Recv().Return(&pb.FileContent{Name: "empty.bin"}, nil),
		stream.EXPECT().Recv().Return(nil, io.EOF),
	)
	stream.EXPECT().Send(&pb.Status{Code: 0, Message: "Uploaded 0 bytes."}).Return(nil)
	repository.EXPECT().Save(gomock.Any()).Return(nil)

	req.NoError(service.Receive(stream))

	info, err := os.Stat(filepath.Join(root, "empty.bin"))
	req.NoError(err)
	req.Zero(info.Size())
}

func TestReceiverService_Receive_OnlyBaseNameIsUsed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	stream := mocks.NewMockUploadRecvStream(ctrl)
	repository := mocks.NewMockITransferRepository(ctrl)
	service := newTestService(t, root, repository)

	gomock.InOrder(
		stream.EXPECT().Recv().Return(&pb.FileContent{Name: "../../etc/passwd", Content: []byte("x")}, nil),
		stream.EXPECT().Recv().Return(nil, io.EOF),
	)
	stream.EXPECT().Send(gomock.Any()).Return(nil)
	repository.EXPECT().Save(gomock.Any()).Return(nil)

	req.NoError(service.Receive(stream))
	_, err := os.Stat(filepath.Join(root, "passwd"))
	req.NoError(err)
}

func TestReceiverService_Receive_NoChunksIsRecordedAsAborted(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	stream := mocks.NewMockUploadRecvStream(ctrl)
	repository := mocks.NewMockITransferRepository(ctrl)
	monitor := observability.NewTransferMonitor(log, root)
	service := NewReceiverService(log, root, repository, monitor)

	// Given a sender whose source failed before the first chunk
	stream.EXPECT().Recv().Return(nil, io.EOF)
	var saved domain.TransferRecord
	repository.EXPECT().Save(gomock.Any()).DoAndReturn(func(r domain.TransferRecord) error {
		saved = r
		return nil
	})

	// Then the RPC still ends OK
	req.NoError(service.Receive(stream))

	entries, err := os.ReadDir(root)
	req.NoError(err)
	req.Empty(entries)
	req.Equal(domain.OutcomeAborted, saved.Outcome)
	req.Equal(errors.KindTransportAborted, saved.Fault)
	req.Contains(saved.Message, errors.ErrNoChunks.Error())
	req.Empty(saved.Path)

	stats := monitor.Snapshot()
	req.Equal(uint64(0), stats.CompletedSessions)
	req.Equal(uint64(1), stats.AbortedSessions)
}

func TestReceiverService_Receive_SinkFailures(t *testing.T) {
	tests := []struct {
		description string
		err         error
		wantCode    codes.Code
		wantStatus  domain.StatusCode
	}{
		{
			"Disk full ends with RESOURCE_EXHAUSTED",
			errors.New(errors.KindSpaceExhausted, "write", "/uploads/big.iso", syscall.ENOSPC),
			codes.ResourceExhausted,
			domain.StatusSpaceExhausted,
		},
		{
			"File too large counts as disk full",
			errors.New(errors.KindSpaceExhausted, "write", "/uploads/big.iso", syscall.EFBIG),
			codes.ResourceExhausted,
			domain.StatusSpaceExhausted,
		},
		{
			"Permission denied ends with ABORTED",
			errors.New(errors.KindPermissionDenied, "open", "/uploads/big.iso", syscall.EACCES),
			codes.Aborted,
			domain.StatusPermissionDenied,
		},
		{
			"Unclassified error ends with ABORTED",
			errors.New(errors.KindIOError, "write", "/uploads/big.iso", syscall.EIO),
			codes.Aborted,
			domain.StatusIOError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			stream := mocks.NewMockUploadRecvStream(ctrl)
			repository := mocks.NewMockITransferRepository(ctrl)
			service := newTestService(t, t.TempDir(), repository)
			fake := &failingSink{failAt: 2, err: tt.err}
			service.newSink = func(string, *slog.Logger) Sink { return fake }

			// Given the second chunk fails on the receiver
			gomock.InOrder(
				stream.EXPECT().Recv().Return(&pb.FileContent{Name: "big.iso", Content: []byte("a")}, nil),
				stream.EXPECT().Send(&pb.Status{Code: 0, Message: "Uploaded 1 bytes."}).Return(nil),
				stream.EXPECT().Recv().Return(&pb.FileContent{Name: "big.iso", Content: []byte("b")}, nil),
				stream.EXPECT().Send(gomock.Any()).DoAndReturn(func(s *pb.Status) error {
					req.Equal(int32(tt.wantStatus), s.GetCode())
					req.Contains(s.GetMessage(), tt.err.Error())
					return nil
				}),
			)
			var saved domain.TransferRecord
			repository.EXPECT().Save(gomock.Any()).DoAndReturn(func(r domain.TransferRecord) error {
				saved = r
				return nil
			})

			// When
			err := service.Receive(stream)

			// Then
			req.Error(err)
			req.Equal(tt.wantCode, status.Code(err))
			req.Equal(domain.OutcomeFailed, saved.Outcome)
			req.Equal(errors.KindOf(tt.err), saved.Fault)
		})
	}
}

func TestReceiverService_Receive_BrokenStreamRemovesPartialFile(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	stream := mocks.NewMockUploadRecvStream(ctrl)
	repository := mocks.NewMockITransferRepository(ctrl)
	service := newTestService(t, root, repository)

	gomock.InOrder(
		stream.EXPECT().Recv().Return(&pb.FileContent{Name: "half.bin", Content: []byte("first")}, nil),
		stream.EXPECT().Recv().Return(nil, fmt.Errorf("connection reset")),
	)
	stream.EXPECT().Send(gomock.Any()).Return(nil)

	var saved domain.TransferRecord
	repository.EXPECT().Save(gomock.Any()).DoAndReturn(func(r domain.TransferRecord) error {
		saved = r
		return nil
	})

	err := service.Receive(stream)

	req.Equal(codes.Aborted, status.Code(err))
	_, statErr := os.Stat(filepath.Join(root, "half.bin"))
	req.True(os.IsNotExist(statErr))
	req.Equal(domain.OutcomeAborted, saved.Outcome)
	req.Equal(errors.KindTransportAborted, saved.Fault)
}

func TestReceiverService_Receive_LedgerFailureDoesNotFailUpload(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	stream := mocks.NewMockUploadRecvStream(ctrl)
	repository := mocks.NewMockITransferRepository(ctrl)
	service := newTestService(t, root, repository)

	gomock.InOrder(
		stream.EXPECT().Recv().Return(&pb.FileContent{Name: "a.txt", Content: []byte("a")}, nil),
		stream.EXPECT().Recv().Return(nil, io.EOF),
	)
	stream.EXPECT().Send(gomock.Any()).Return(nil)
	repository.EXPECT().Save(gomock.Any()).Return(fmt.Errorf("badger closed"))

	req.NoError(service.Receive(stream))
}
