package automation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/platform"
)

// Locator polls the OS window list for a window matching known signatures.
type Locator struct {
	windows platform.WindowSystem
	clock   Clock
	trail   *Trail
	log     *slog.Logger
}

// NewLocator returns a Locator that appends one record per poll to trail.
func NewLocator(windows platform.WindowSystem, clock Clock, trail *Trail, log *slog.Logger) *Locator {
	return &Locator{windows: windows, clock: clock, trail: trail, log: log}
}

// MatchWindow returns the first window matching the highest-priority
// signature that matches anything. Signatures are tried in order and, for
// each, windows are tried in enumeration order.
func MatchWindow(windows []model.Window, signatures []model.Signature) (model.Window, model.Signature, bool) {
	for _, sig := range signatures {
		for _, w := range windows {
			if sig.Matches(w) {
				return w, sig, true
			}
		}
	}
	return model.Window{}, model.Signature{}, false
}

// Locate polls up to maxAttempts times, sleeping pollInterval between polls.
// An enumeration failure counts as a poll without a match.
func (l *Locator) Locate(ctx context.Context, signatures []model.Signature, maxAttempts int, pollInterval time.Duration) (model.Window, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	l.log.Info("searching for window", "signatures", len(signatures), "max_attempts", maxAttempts)

	for poll := 1; poll <= maxAttempts; poll++ {
		if err := ctx.Err(); err != nil {
			e := cancelled("locate", err)
			l.trail.Failure(model.StageLocate, "poll", e)
			return model.Window{}, e
		}

		windows, err := l.windows.ListWindows()
		switch {
		case err != nil:
			l.log.Debug("window enumeration failed", "poll", poll, "error", err)
			l.trail.Failure(model.StageLocate, "poll",
				newError(KindWindowNotFound, fmt.Sprintf("poll %d", poll), fmt.Errorf("enumerate windows: %w", err)))
		default:
			if w, sig, ok := MatchWindow(windows, signatures); ok {
				l.log.Info("window found", "title", w.Title, "class", w.Class, "handle", uint64(w.Handle), "poll", poll)
				l.trail.Success(model.StageLocate, "poll", "poll %d: %q matched %s", poll, w.Title, sig)
				return w, nil
			}
			l.log.Debug("no matching window", "poll", poll, "visible", len(windows))
			l.trail.Failure(model.StageLocate, "poll",
				newError(KindWindowNotFound, fmt.Sprintf("poll %d", poll), fmt.Errorf("no match among %d visible windows", len(windows))))
		}

		if poll < maxAttempts {
			if err := l.clock.Sleep(ctx, pollInterval); err != nil {
				e := cancelled("locate", err)
				l.trail.Failure(model.StageLocate, "poll", e)
				return model.Window{}, e
			}
		}
	}

	return model.Window{}, newError(KindWindowNotFound, "locate",
		fmt.Errorf("no window matched %d signatures after %d polls", len(signatures), maxAttempts))
}
