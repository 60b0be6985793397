package client

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"google.golang.org/grpc/status"

	"upload-lab/contract"
	"upload-lab/domain"
	"upload-lab/errors"
	pb "upload-lab/proto/upload"
	"upload-lab/relay"
	"upload-lab/source"
)

// Uploader sends local files over UploadFile, one stream per file.
type Uploader struct {
	client    pb.UploadServiceClient
	log       *slog.Logger
	chunkSize int
	validate  *validator.Validate
}

func NewUploader(client pb.UploadServiceClient, log *slog.Logger, chunkSize int) *Uploader {
	return &Uploader{
		client:    client,
		log:       log,
		chunkSize: chunkSize,
		validate:  validator.New(),
	}
}

type pumpResult struct {
	stats relay.Stats
	err   error
}

// Upload opens a stream and transfers path over it. Canceling ctx cancels the stream.
func (u *Uploader) Upload(ctx context.Context, path string) (domain.UploadReport, error) {
	request := domain.UploadRequest{Path: path, ChunkSize: u.chunkSize}
	if err := u.validate.Struct(request); err != nil {
		return domain.UploadReport{Path: path}, err
	}

	stream, err := u.client.UploadFile(ctx)
	if err != nil {
		return domain.UploadReport{Path: path, Name: filepath.Base(path)},
			errors.New(errors.KindTransportAborted, "open stream", path, err)
	}
	return u.Transfer(stream, path)
}

// Transfer pumps the file on a goroutine while this one drains the peer's
// statuses up to the final RPC status. CloseSend and the drain happen on
// every path. A pump error wins over the remote status; when the peer
// explains why it stopped accepting chunks, that cause is joined to it.
func (u *Uploader) Transfer(stream contract.UploadSendStream, path string) (domain.UploadReport, error) {
	start := time.Now()
	report := domain.UploadReport{Path: path, Name: filepath.Base(path)}

	done := make(chan pumpResult, 1)
	go func() {
		stats, err := u.pump(stream, path)
		if closeErr := stream.CloseSend(); closeErr != nil {
			u.log.Debug("CloseSend failed", "file", path, "err", closeErr)
		}
		done <- pumpResult{stats: stats, err: err}
	}()

	acks, rpcErr := drain(stream)
	result := <-done

	report.Chunks = result.stats.Chunks
	report.Bytes = result.stats.Bytes
	report.Acks = acks
	report.Duration = time.Since(start)
	st := status.Convert(rpcErr)
	report.RemoteCode = st.Code().String()
	report.Remote = st.Message()

	remoteErr := remoteError(path, rpcErr, acks)
	switch {
	case result.err != nil && remoteErr != nil && errors.KindOf(result.err) == errors.KindTransportAborted:
		return report, stderrors.Join(result.err, remoteErr)
	case result.err != nil:
		return report, result.err
	case remoteErr != nil:
		return report, remoteErr
	}

	u.log.Debug("Upload finished", "file", path, "chunks", report.Chunks, "bytes", report.Bytes, "duration", report.Duration)
	return report, nil
}

func (u *Uploader) pump(sender contract.ChunkSender, path string) (relay.Stats, error) {
	src, err := source.Open(path, u.log)
	if err != nil {
		return relay.Stats{}, err
	}
	defer src.Close()

	return relay.New(src, sender, u.log).Pump(u.chunkSize)
}

// drain reads statuses until the stream ends. A nil error means the RPC ended OK.
func drain(stream contract.UploadSendStream) ([]domain.StatusMessage, error) {
	var acks []*pb.Status
	for {
		ack, err := stream.Recv()
		if err != nil {
			messages := lo.Map(acks, func(item *pb.Status, _ int) domain.StatusMessage {
				return domain.StatusMessage{Code: domain.StatusCode(item.GetCode()), Message: item.GetMessage()}
			})
			if stderrors.Is(err, io.EOF) {
				return messages, nil
			}
			return messages, err
		}
		acks = append(acks, ack)
	}
}

// remoteError classifies a non-OK final status by the last status message the
// receiver sent. gRPC answers RESOURCE_EXHAUSTED on its own for messages above
// the server's receive limit, so the RPC code alone never means a full disk.
func remoteError(path string, rpcErr error, acks []domain.StatusMessage) error {
	if rpcErr == nil {
		return nil
	}
	if last := lo.LastOrEmpty(acks); !last.OK() {
		switch kind := domain.KindFor(last.Code); kind {
		case errors.KindPermissionDenied, errors.KindIOError, errors.KindSpaceExhausted:
			return errors.New(kind, "upload", path, rpcErr)
		}
	}
	return errors.New(errors.KindRemoteFailed, "upload", path, rpcErr)
}
