//go:build !unix

package source

import (
	"io"
	"os"
)

// Without mmap the content is read into memory once; the rest of the
// package does not see the difference.
func mmapFile(file *os.File, size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := file.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, err
	}
	return data, nil
}

func munmap([]byte) error {
	return nil
}

func adviseSequential([]byte) error {
	return nil
}
