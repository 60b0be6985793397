package source

import (
	"fmt"
	"math"
	"os"
	"sync"
	"syscall"
)

// Mapping is a read-only view of a whole file. It optionally owns the
// descriptor it was built from; when it does, the descriptor and the
// mapping are released together, exactly once.
type Mapping struct {
	data     []byte
	file     *os.File
	ownsFile bool

	once sync.Once
	err  error
}

// Map maps size bytes of file. A zero size yields a valid mapping with no
// bytes and no kernel mapping behind it. When ownsFile is true the file is
// closed on every failure path, so the caller never has to roll back.
func Map(file *os.File, size int64, ownsFile bool) (*Mapping, error) {
	m := &Mapping{file: file, ownsFile: ownsFile}
	if size == 0 {
		return m, nil
	}
	if size < 0 || size > math.MaxInt {
		_ = m.Close()
		return nil, fmt.Errorf("cannot map %d bytes: %w", size, syscall.EFBIG)
	}

	data, err := mmapFile(file, int(size))
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	m.data = data
	return m, nil
}

// Bytes returns the mapped content. The slice is only valid until Close.
func (m *Mapping) Bytes() []byte {
	return m.data
}

func (m *Mapping) Len() int {
	return len(m.data)
}

// AdviseSequential tells the kernel the region is read front to back.
// It is a hint: callers are expected to log a failure and carry on.
func (m *Mapping) AdviseSequential() error {
	if len(m.data) == 0 {
		return nil
	}
	return adviseSequential(m.data)
}

func (m *Mapping) Close() error {
	m.once.Do(func() {
		if m.data != nil {
			m.err = munmap(m.data)
			m.data = nil
		}
		if m.ownsFile && m.file != nil {
			if err := m.file.Close(); err != nil && m.err == nil {
				m.err = err
			}
		}
	})
	return m.err
}
