package services

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"upload-lab/contract"
	"upload-lab/domain"
	"upload-lab/errors"
	"upload-lab/observability"
	pb "upload-lab/proto/upload"
	"upload-lab/sink"
)

type IReceiverService interface {
	Receive(stream contract.UploadRecvStream) error
}

// Sink is what a session needs from sink.FileSink.
type Sink interface {
	Write(name string, data []byte) error
	Close() error
	Abort(cause error)
	NoSpaceLeft() bool
	PermissionDenied() bool
	Name() string
	Path() string
	BytesWritten() int64
	Chunks() int
	MimeType() string
}

// ReceiverService writes each UploadFile session into its own file under root.
type ReceiverService struct {
	log        *slog.Logger
	root       string
	repository contract.ITransferRepository
	monitor    *observability.TransferMonitor
	newSink    func(root string, log *slog.Logger) Sink
}

func NewReceiverService(
	log *slog.Logger,
	root string,
	repository contract.ITransferRepository,
	monitor *observability.TransferMonitor,
) *ReceiverService {
	return &ReceiverService{
		log:        log,
		root:       root,
		repository: repository,
		monitor:    monitor,
		newSink: func(root string, log *slog.Logger) Sink {
			return sink.New(root, log)
		},
	}
}

// Receive runs one session until the sender closes its side or something
// fails. Every chunk is acknowledged with Status{0, "Uploaded N bytes."}.
// A sink failure is reported with a last Status carrying the fault code,
// and the RPC ends with RESOURCE_EXHAUSTED when the disk is full, ABORTED otherwise.
func (s *ReceiverService) Receive(stream contract.UploadRecvStream) error {
	id := uuid.NewString()
	startedAt := time.Now().UTC()
	log := s.log.With("session_id", id)
	out := s.newSink(s.root, log)

	s.monitor.SessionStarted()
	err := s.receive(stream, out, log)

	// A sender whose source failed closes without a chunk. Nothing was
	// written and the RPC still ends OK, but the session is not a transfer.
	if err == nil && out.Chunks() == 0 {
		noChunks := errors.New(errors.KindTransportAborted, "receive", "", errors.ErrNoChunks)
		log.Info("Upload stream closed without chunks")
		s.monitor.SessionEnded(noChunks)
		s.record(id, out, startedAt, noChunks, log)
		return nil
	}
	s.monitor.SessionEnded(err)
	s.record(id, out, startedAt, err, log)

	if err == nil {
		log.Info("Upload completed", "file", out.Path(), "bytes", out.BytesWritten(), "chunks", out.Chunks())
		return nil
	}
	return s.toStatusError(err, out, log)
}

func (s *ReceiverService) receive(stream contract.UploadRecvStream, out Sink, log *slog.Logger) error {
	for {
		chunk, err := stream.Recv()
		if stderrors.Is(err, io.EOF) {
			if err := out.Close(); err != nil {
				return s.reject(stream, err, log)
			}
			return nil
		}
		if err != nil {
			out.Abort(err)
			return errors.New(errors.KindTransportAborted, "receive", out.Path(), err)
		}

		content := chunk.GetContent()
		log.Debug("Chunk received", "name", chunk.GetName(), "size", len(content))

		// Only the final path element is trusted.
		if err := out.Write(filepath.Base(chunk.GetName()), content); err != nil {
			return s.reject(stream, err, log)
		}
		s.monitor.IncrBytesReceived(uint64(len(content)))

		ack := &pb.Status{
			Code:    int32(domain.StatusOK),
			Message: fmt.Sprintf("Uploaded %d bytes.", len(content)),
		}
		if err := stream.Send(ack); err != nil {
			out.Abort(err)
			return errors.New(errors.KindTransportAborted, "acknowledge", out.Path(), err)
		}
	}
}

// reject tells the sender why the session failed. The sink has already
// removed the partial file.
func (s *ReceiverService) reject(stream contract.UploadRecvStream, cause error, log *slog.Logger) error {
	code := domain.StatusCodeFor(errors.KindOf(cause))
	if err := stream.Send(&pb.Status{Code: int32(code), Message: cause.Error()}); err != nil {
		log.Debug("Failed to send final status", "code", code.String(), "err", err)
	}
	return cause
}

func (s *ReceiverService) toStatusError(err error, out Sink, log *slog.Logger) error {
	switch {
	case out.NoSpaceLeft():
		attrs := []any{"file", out.Path(), "err", err}
		if free, diskErr := s.monitor.FreeDiskMb(); diskErr == nil {
			attrs = append(attrs, "free_disk_mb", free)
		}
		log.Error("Upload failed, no space left", attrs...)
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.KindOf(err) == errors.KindTransportAborted:
		log.Warn("Upload aborted by transport", "file", out.Path(), "err", err)
	default:
		log.Error("Upload failed", "file", out.Path(), "kind", errors.KindOf(err).String(), "err", err)
	}
	return status.Error(codes.Aborted, err.Error())
}

func (s *ReceiverService) record(id string, out Sink, startedAt time.Time, err error, log *slog.Logger) {
	record := domain.TransferRecord{
		ID:        id,
		Name:      out.Name(),
		Path:      out.Path(),
		Bytes:     uint64(out.BytesWritten()),
		Chunks:    uint64(out.Chunks()),
		MimeType:  out.MimeType(),
		Outcome:   domain.OutcomeCompleted,
		StartedAt: startedAt,
		EndedAt:   time.Now().UTC(),
	}
	if err != nil {
		record.Fault = errors.KindOf(err)
		record.Message = err.Error()
		record.Outcome = domain.OutcomeFailed
		if record.Fault == errors.KindTransportAborted {
			record.Outcome = domain.OutcomeAborted
		}
	}

	if err := s.repository.Save(record); err != nil {
		log.Error("Failed to record transfer", "err", err)
	}
}
