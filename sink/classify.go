package sink

import (
	stderrors "errors"
	"syscall"

	"upload-lab/errors"
)

// Classify maps an OS error to the receive-side failure taxonomy.
func Classify(err error) errors.Kind {
	var errno syscall.Errno
	if !stderrors.As(err, &errno) {
		return errors.KindIOError
	}
	switch errno {
	case syscall.ENOSPC, syscall.EFBIG:
		return errors.KindSpaceExhausted
	case syscall.EACCES, syscall.EPERM, syscall.EROFS:
		return errors.KindPermissionDenied
	default:
		return errors.KindIOError
	}
}
