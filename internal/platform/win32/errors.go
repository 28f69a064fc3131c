//go:build windows

package win32

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// wrapErrno annotates the last-error value returned by LazyProc.Call. Call
// always returns a non-nil error, so ERROR_SUCCESS is reported as a plain
// failure of the named function.
func wrapErrno(fn string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) && errno != 0 {
		return fmt.Errorf("%s: %w", fn, errno)
	}
	return fmt.Errorf("%s failed", fn)
}
