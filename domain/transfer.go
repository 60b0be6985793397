package domain

import (
	"time"

	"upload-lab/errors"
)

const KB = 1024
const MB = KB * KB

// DefaultChunkSize is 1 MiB, which behaves well with the default gRPC window sizes.
const DefaultChunkSize = 1 * MB

// MaxChunkSize bounds the chunk size a sender may use. Servers must accept
// messages of at least MinRecvMsgSize, which leaves room for the name and
// the protobuf framing around a full chunk.
const (
	MaxChunkSize   = 4 * MB
	MinRecvMsgSize = MaxChunkSize + 4*KB
)

// StatusCode is the numeric code carried by a StatusMessage. Zero means success.
type StatusCode int32

const (
	StatusOK StatusCode = iota
	StatusSpaceExhausted
	StatusPermissionDenied
	StatusIOError
	StatusTransportError
)

func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "OK"
	case StatusSpaceExhausted:
		return "SPACE_EXHAUSTED"
	case StatusPermissionDenied:
		return "PERMISSION_DENIED"
	case StatusIOError:
		return "IO_ERROR"
	case StatusTransportError:
		return "TRANSPORT_ERROR"
	default:
		return "UNKNOWN"
	}
}

// StatusMessage is emitted by the receiver after each chunk, and once more
// with a non-zero code when the session fails.
type StatusMessage struct {
	Code    StatusCode
	Message string
}

func (s StatusMessage) OK() bool {
	return s.Code == StatusOK
}

// StatusCodeFor maps a receive-side failure kind to its wire code.
func StatusCodeFor(kind errors.Kind) StatusCode {
	switch kind {
	case errors.KindSpaceExhausted:
		return StatusSpaceExhausted
	case errors.KindPermissionDenied:
		return StatusPermissionDenied
	case errors.KindTransportAborted:
		return StatusTransportError
	default:
		return StatusIOError
	}
}

// KindFor is the inverse of StatusCodeFor, used by the sender to rebuild
// the receiver's classification from the last status it saw.
func KindFor(code StatusCode) errors.Kind {
	switch code {
	case StatusSpaceExhausted:
		return errors.KindSpaceExhausted
	case StatusPermissionDenied:
		return errors.KindPermissionDenied
	case StatusIOError:
		return errors.KindIOError
	case StatusTransportError:
		return errors.KindTransportAborted
	default:
		return errors.KindUnknown
	}
}

// SinkState follows Unopened -> Open -> Closed(Success|Failed).
type SinkState int

const (
	SinkUnopened SinkState = iota
	SinkOpen
	SinkClosedSuccess
	SinkClosedFailed
)

func (s SinkState) String() string {
	switch s {
	case SinkUnopened:
		return "unopened"
	case SinkOpen:
		return "open"
	case SinkClosedSuccess:
		return "closed_success"
	case SinkClosedFailed:
		return "closed_failed"
	default:
		return "unknown"
	}
}

type TransferOutcome int

const (
	OutcomeCompleted TransferOutcome = iota
	OutcomeFailed
	OutcomeAborted
)

func (o TransferOutcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// TransferRecord is the ledger entry written at the end of every receive session.
type TransferRecord struct {
	ID        string
	Name      string
	Path      string
	Bytes     uint64
	Chunks    uint64
	MimeType  string
	Outcome   TransferOutcome
	Fault     errors.Kind
	Message   string
	StartedAt time.Time
	EndedAt   time.Time
}

// UploadRequest is what the sender is asked to transfer.
type UploadRequest struct {
	Path      string `validate:"required,max=4096"`
	ChunkSize int    `validate:"min=1,max=4194304"`
}

// UploadReport summarizes one send-side session, successful or not.
type UploadReport struct {
	Name       string
	Path       string
	Chunks     int
	Bytes      int64
	Acks       []StatusMessage
	RemoteCode string
	Remote     string
	Duration   time.Duration
}

// LastAck returns the last status received from the peer, if any.
func (r UploadReport) LastAck() (StatusMessage, bool) {
	if len(r.Acks) == 0 {
		return StatusMessage{}, false
	}
	return r.Acks[len(r.Acks)-1], true
}
