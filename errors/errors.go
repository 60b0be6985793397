package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrSourceConsumed   = fmt.Errorf("file source already consumed")
	ErrInvalidChunkSize = fmt.Errorf("chunk size must be greater than zero")
	ErrSinkClosed       = fmt.Errorf("file sink is closed")
	ErrNoChunks         = fmt.Errorf("stream closed before any chunk")
)

// Kind classifies a transfer failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindNotRegularFile
	KindOpenFailed
	KindMapFailed
	KindTransportAborted
	KindSpaceExhausted
	KindPermissionDenied
	KindIOError
	KindRemoteFailed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindNotRegularFile:
		return "not_regular_file"
	case KindOpenFailed:
		return "open_failed"
	case KindMapFailed:
		return "map_failed"
	case KindTransportAborted:
		return "transport_aborted"
	case KindSpaceExhausted:
		return "space_exhausted"
	case KindPermissionDenied:
		return "permission_denied"
	case KindIOError:
		return "io_error"
	case KindRemoteFailed:
		return "remote_failed"
	default:
		return "unknown"
	}
}

// TransferError carries the failure kind along with the operation and path
// that produced it. The underlying OS or transport error stays reachable
// through errors.Is / errors.As.
type TransferError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func New(kind Kind, op, path string, err error) *TransferError {
	return &TransferError{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *TransferError) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// Is matches another *TransferError on Kind alone, so callers can write
// errors.Is(err, &TransferError{Kind: KindSpaceExhausted}).
func (e *TransferError) Is(target error) bool {
	t, ok := target.(*TransferError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Path == "" && t.Err == nil
}

// KindOf returns the kind of the first TransferError in err's chain.
func KindOf(err error) Kind {
	var te *TransferError
	if stderrors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}
