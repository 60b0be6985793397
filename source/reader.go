package source

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"upload-lab/errors"
)

// MappedFile delivers a file as a sequence of chunks read from a read-only
// memory mapping. The sequence can be consumed once.
type MappedFile struct {
	path    string
	size    int64
	mapping *Mapping
	log     *slog.Logger

	mu       sync.Mutex
	consumed bool
}

// Open validates path, opens it and maps it. Errors are *errors.TransferError
// of kind NotFound, NotRegularFile, OpenFailed or MapFailed, wrapping the OS error.
func Open(path string, log *slog.Logger) (*MappedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.KindNotFound, "open", path, err)
		}
		return nil, errors.New(errors.KindOpenFailed, "stat", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.New(errors.KindNotRegularFile, "open", path, nil)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.New(errors.KindOpenFailed, "open", path, err)
	}

	// Size comes from the open descriptor, not from the earlier stat.
	info, err = file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, errors.New(errors.KindOpenFailed, "stat", path, err)
	}
	if !info.Mode().IsRegular() {
		_ = file.Close()
		return nil, errors.New(errors.KindNotRegularFile, "open", path, nil)
	}

	mapping, err := Map(file, info.Size(), true)
	if err != nil {
		return nil, errors.New(errors.KindMapFailed, "mmap", path, err)
	}

	if err := mapping.AdviseSequential(); err != nil {
		log.Warn("Sequential access advice rejected, reading anyway", "file", path, "error", err)
	}

	return &MappedFile{
		path:    path,
		size:    info.Size(),
		mapping: mapping,
		log:     log,
	}, nil
}

func (f *MappedFile) Path() string {
	return f.path
}

// Name is the final path component, the only part sent to the receiver.
func (f *MappedFile) Name() string {
	return filepath.Base(f.path)
}

func (f *MappedFile) Size() int64 {
	return f.size
}

// Read calls onChunk with consecutive slices of at most maxChunkSize bytes
// until the whole file has been delivered. An empty file produces exactly one
// empty chunk. Chunks borrow the mapping and must not be retained after
// onChunk returns. An error from onChunk stops the read and is returned as is.
func (f *MappedFile) Read(maxChunkSize int, onChunk func(chunk []byte) error) error {
	if maxChunkSize <= 0 {
		return errors.ErrInvalidChunkSize
	}

	f.mu.Lock()
	if f.consumed {
		f.mu.Unlock()
		return errors.ErrSourceConsumed
	}
	f.consumed = true
	f.mu.Unlock()

	data := f.mapping.Bytes()
	if len(data) == 0 {
		return onChunk(data[:0:0])
	}

	for offset := 0; offset < len(data); {
		n := min(maxChunkSize, len(data)-offset)
		// Capacity is capped so a callee cannot append into the next chunk.
		if err := onChunk(data[offset : offset+n : offset+n]); err != nil {
			return err
		}
		offset += n
	}
	return nil
}

// Close releases the mapping and the descriptor. Reading afterwards fails
// with ErrSourceConsumed.
func (f *MappedFile) Close() error {
	f.mu.Lock()
	f.consumed = true
	f.mu.Unlock()
	return f.mapping.Close()
}
