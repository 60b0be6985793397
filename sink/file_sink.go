package sink

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"upload-lab/domain"
	"upload-lab/errors"
)

const sniffLen = 512

// FileSink reassembles one upload into root/name.
// It moves Unopened -> Open -> Closed(Success|Failed) and is not safe for
// concurrent use: a session owns its sink.
type FileSink struct {
	root string
	log  *slog.Logger

	create func(path string) (io.WriteCloser, error)
	remove func(path string) error

	state    domain.SinkState
	name     string
	path     string
	out      io.WriteCloser
	written  int64
	chunks   int
	sniff    []byte
	mimeType string
	err      error

	spaceExhausted   bool
	permissionDenied bool
}

func New(root string, log *slog.Logger) *FileSink {
	return &FileSink{
		root:   root,
		log:    log,
		create: createFile,
		remove: os.Remove,
	}
}

func createFile(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
}

// Write appends data to the destination, opening root/name on the first
// call. Later names are ignored. The sink owns data once called.
func (s *FileSink) Write(name string, data []byte) error {
	switch s.state {
	case domain.SinkClosedSuccess, domain.SinkClosedFailed:
		return errors.ErrSinkClosed
	case domain.SinkUnopened:
		if err := s.open(name); err != nil {
			return err
		}
	default:
		if name != s.name {
			s.log.Warn("Ignoring file name change within a session", "file", s.name, "received", name)
		}
	}

	if len(s.sniff) < sniffLen {
		s.sniff = append(s.sniff, data[:min(len(data), sniffLen-len(s.sniff))]...)
	}

	n, err := s.out.Write(data)
	s.written += int64(n)
	if err != nil {
		return s.fail("write", err, true)
	}
	s.chunks++
	return nil
}

// Close flushes and closes the destination. Closing a sink that never
// received a chunk is a successful no-op.
func (s *FileSink) Close() error {
	switch s.state {
	case domain.SinkUnopened:
		s.state = domain.SinkClosedSuccess
		return nil
	case domain.SinkOpen:
		out := s.out
		s.out = nil
		if err := out.Close(); err != nil {
			return s.fail("close", err, true)
		}
		s.state = domain.SinkClosedSuccess
		return nil
	default:
		return s.err
	}
}

// Abort ends the session without a result, removing whatever was written.
func (s *FileSink) Abort(cause error) {
	switch s.state {
	case domain.SinkOpen:
		_ = s.out.Close()
		s.out = nil
		_ = s.remove(s.path)
	case domain.SinkClosedSuccess, domain.SinkClosedFailed:
		return
	}
	s.state = domain.SinkClosedFailed
	s.err = errors.New(errors.KindTransportAborted, "receive", s.path, cause)
}

func (s *FileSink) open(name string) error {
	s.name = name
	s.path = filepath.Join(s.root, name)

	out, err := s.create(s.path)
	if err != nil {
		// The file may predate this session: it is left alone.
		return s.fail("open", err, false)
	}
	s.out = out
	s.state = domain.SinkOpen
	return nil
}

func (s *FileSink) fail(op string, err error, removePartial bool) error {
	kind := Classify(err)
	switch kind {
	case errors.KindSpaceExhausted:
		s.spaceExhausted = true
	case errors.KindPermissionDenied:
		s.permissionDenied = true
	}

	if s.out != nil {
		_ = s.out.Close()
		s.out = nil
	}
	if removePartial {
		// Best effort, the outcome is already decided.
		_ = s.remove(s.path)
	}

	s.state = domain.SinkClosedFailed
	s.err = errors.New(kind, op, s.path, err)
	return s.err
}

func (s *FileSink) NoSpaceLeft() bool {
	return s.spaceExhausted
}

func (s *FileSink) PermissionDenied() bool {
	return s.permissionDenied
}

func (s *FileSink) State() domain.SinkState {
	return s.state
}

func (s *FileSink) Name() string {
	return s.name
}

func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) BytesWritten() int64 {
	return s.written
}

func (s *FileSink) Chunks() int {
	return s.chunks
}

// MimeType is sniffed from the first bytes written; empty until the sink has opened.
func (s *FileSink) MimeType() string {
	if s.state == domain.SinkUnopened {
		return ""
	}
	if s.mimeType != "" {
		return s.mimeType
	}
	detected := mimetype.Detect(s.sniff).String()
	if s.state != domain.SinkOpen || len(s.sniff) >= sniffLen {
		s.mimeType = detected
	}
	return detected
}
