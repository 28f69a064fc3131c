package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/platform"
)

var errWindowGone = errors.New("window no longer exists")

// FocusCoordinator forces a window to the foreground. Activation requests
// from background processes are routinely refused, so each attempt restores,
// raises and activates the window with the caller's input queue attached to
// the current foreground thread, then checks the result.
type FocusCoordinator struct {
	windows   platform.WindowSystem
	attacher  platform.InputAttacher
	clock     Clock
	trail     *Trail
	log       *slog.Logger
	backoff   time.Duration
	stepDelay time.Duration
}

// NewFocusCoordinator returns a FocusCoordinator. attacher may be nil when
// the backend cannot join input queues.
func NewFocusCoordinator(windows platform.WindowSystem, attacher platform.InputAttacher, clock Clock, trail *Trail, log *slog.Logger, backoff, stepDelay time.Duration) *FocusCoordinator {
	return &FocusCoordinator{
		windows:   windows,
		attacher:  attacher,
		clock:     clock,
		trail:     trail,
		log:       log,
		backoff:   backoff,
		stepDelay: stepDelay,
	}
}

// BringToFront makes up to maxAttempts activation attempts. When none is
// verified it issues a forced z-order change and reports Unverified. It never
// fails the pipeline; every problem is recorded in the trail.
func (f *FocusCoordinator) BringToFront(ctx context.Context, w model.Window, maxAttempts int) model.FocusStatus {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	h := w.Handle
	f.log.Info("bringing window to front", "title", w.Title, "max_attempts", maxAttempts)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			f.trail.Failure(model.StageFocus, "activate", cancelled("focus", err))
			return model.FocusUnverified
		}

		attached, err := f.activate(ctx, h)
		if err == nil {
			f.log.Info("foreground verified", "attempt", attempt)
			f.trail.Success(model.StageFocus, "activate", "attempt %d: foreground verified (input attached: %v)", attempt, attached)
			return model.FocusVerified
		}

		op := fmt.Sprintf("attempt %d", attempt)
		switch {
		case errors.Is(err, errWindowGone):
			f.log.Warn("window vanished during focus", "handle", uint64(h))
			f.trail.Failure(model.StageFocus, "activate", newError(KindFocusUnverified, op, err))
			return model.FocusUnverified
		case KindOf(err) == KindCancelled:
			f.trail.Failure(model.StageFocus, "activate", cancelled(op, err))
			return model.FocusUnverified
		}
		f.log.Debug("focus attempt failed", "attempt", attempt, "error", err)
		f.trail.Failure(model.StageFocus, "activate", newError(KindFocusUnverified, op, err))

		if attempt < maxAttempts {
			if err := f.clock.Sleep(ctx, f.backoff); err != nil {
				f.trail.Failure(model.StageFocus, "activate", cancelled("focus", err))
				return model.FocusUnverified
			}
		}
	}

	if err := f.windows.ForceToTop(h); err != nil {
		f.trail.Failure(model.StageFocus, "force_to_top", newError(KindFocusUnverified, "force_to_top", err))
	} else if err := f.clock.Sleep(ctx, f.stepDelay); err != nil {
		f.trail.Failure(model.StageFocus, "force_to_top", cancelled("force_to_top", err))
		return model.FocusUnverified
	} else {
		f.trail.Success(model.StageFocus, "force_to_top", "forced to top of z-order after %d attempts", maxAttempts)
	}
	f.log.Warn("foreground not verified, continuing", "attempts", maxAttempts)
	return model.FocusUnverified
}

// activate runs one restore/show/raise/activate/verify cycle. Errors from the
// individual OS calls are collected into the returned error only when the
// window did not end up in the foreground.
func (f *FocusCoordinator) activate(ctx context.Context, h model.Handle) (attached bool, err error) {
	if !f.windows.Exists(h) {
		return false, errWindowGone
	}

	var steps []error
	if minimized, err := f.windows.IsMinimized(h); err != nil {
		steps = append(steps, fmt.Errorf("query minimized: %w", err))
	} else if minimized {
		if err := f.windows.Restore(h); err != nil {
			steps = append(steps, fmt.Errorf("restore: %w", err))
		}
	}
	if err := f.windows.Show(h); err != nil {
		steps = append(steps, fmt.Errorf("show: %w", err))
	}
	if err := f.pause(ctx); err != nil {
		return false, err
	}
	if err := f.windows.BringToTop(h); err != nil {
		steps = append(steps, fmt.Errorf("bring to top: %w", err))
	}

	current, err := f.windows.Foreground()
	if err != nil {
		current = 0
	}
	attached, err = platform.WithAttachedInput(f.attacher, current, func() error {
		return f.windows.SetForeground(h)
	})
	if err != nil {
		steps = append(steps, fmt.Errorf("set foreground: %w", err))
	}
	if err := f.pause(ctx); err != nil {
		return attached, err
	}

	fg, err := f.windows.Foreground()
	if err != nil {
		steps = append(steps, fmt.Errorf("read foreground: %w", err))
	} else if fg == h {
		return attached, nil
	}
	steps = append([]error{fmt.Errorf("foreground is %#x, want %#x", uint64(fg), uint64(h))}, steps...)
	return attached, joinSteps(steps)
}

// joinSteps flattens step errors onto one line for the audit trail.
func joinSteps(steps []error) error {
	msgs := make([]string, len(steps))
	for i, err := range steps {
		msgs[i] = err.Error()
	}
	return errors.New(strings.Join(msgs, "; "))
}

func (f *FocusCoordinator) pause(ctx context.Context) error {
	if err := f.clock.Sleep(ctx, f.stepDelay); err != nil {
		return cancelled("focus", err)
	}
	return nil
}
