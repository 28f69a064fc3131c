package platform

import (
	"fmt"
	"runtime"

	"github.com/mj1618/uipilot/internal/model"
)

// WithAttachedInput runs fn with the calling thread's input queue attached to
// the input queue of the thread that owns the current foreground window.
// The queues are detached on every exit path, including a panic in fn.
// When a is nil, or the threads already match, fn runs without attaching.
//
// The reported bool is true when an attachment was made.
func WithAttachedInput(a InputAttacher, foreground model.Handle, fn func() error) (attached bool, err error) {
	if a == nil || foreground == 0 {
		return false, fn()
	}

	// Thread IDs are only meaningful while the goroutine stays on one thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	current := a.CurrentThreadID()
	target, terr := a.WindowThreadID(foreground)
	if terr != nil || target == 0 || target == current {
		return false, fn()
	}

	if aerr := a.AttachThreadInput(current, target, true); aerr != nil {
		// Activation may still succeed without the attachment.
		return false, fn()
	}
	defer func() {
		if derr := a.AttachThreadInput(current, target, false); derr != nil && err == nil {
			err = fmt.Errorf("detach thread input: %w", derr)
		}
	}()

	return true, fn()
}
