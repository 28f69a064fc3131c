// Package fake provides a scripted in-memory platform backend for tests.
package fake

import (
	"fmt"

	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/platform"
)

// Backend implements every platform interface against scripted state.
type Backend struct {
	// WindowsAt returns the visible windows for the given 0-based poll.
	WindowsAt func(poll int) []model.Window
	// ListErrAt optionally fails the given poll.
	ListErrAt func(poll int) error

	// GrantForegroundOn makes the Nth SetForeground call (1-based) succeed.
	// Zero means activation requests are always denied.
	GrantForegroundOn int
	// ForceGrants makes ForceToTop move the window to the foreground.
	ForceGrants bool
	// Gone lists handles that no longer exist.
	Gone map[model.Handle]bool
	// Minimized lists handles reported as minimized until restored.
	Minimized map[model.Handle]bool

	// Trees holds the control tree per window.
	Trees   map[model.Handle]model.Control
	TreeErr error

	InvokeErr error
	ClickErr  error
	// InvokePanic makes Invoke panic with the given value.
	InvokePanic any
	ScreenRect  model.Rect

	// SameThread makes the foreground window share the caller's input thread.
	SameThread bool

	// Calls records every backend call in order.
	Calls   []string
	Invoked []model.Control
	Clicks  []model.Point

	// Attaches and Detaches count thread-input attachment calls.
	Attaches int
	Detaches int

	polls      int
	known      map[model.Handle]bool
	foreground model.Handle
	setFgCalls int
}

// New returns a backend whose screen is 1920x1080 and which shows windows on
// every poll.
func New(windows ...model.Window) *Backend {
	return &Backend{
		WindowsAt:  func(int) []model.Window { return windows },
		ScreenRect: model.Rect{Width: 1920, Height: 1080},
		Gone:       map[model.Handle]bool{},
		Minimized:  map[model.Handle]bool{},
		Trees:      map[model.Handle]model.Control{},
		known:      map[model.Handle]bool{},
	}
}

// Provider bundles the backend into a platform.Provider with every
// capability present.
func (b *Backend) Provider() *platform.Provider {
	p := &platform.Provider{
		Windows:      b,
		Attacher:     b,
		Controls:     b,
		Inputter:     b,
		Capabilities: platform.Capabilities{Backend: "fake"},
	}
	return p.Resolve()
}

// Polls returns how many times ListWindows was called.
func (b *Backend) Polls() int { return b.polls }

// SetForegroundCalls returns how many activation requests were made.
func (b *Backend) SetForegroundCalls() int { return b.setFgCalls }

// SetCurrentForeground sets which window the fake OS reports as foreground.
func (b *Backend) SetCurrentForeground(h model.Handle) { b.foreground = h }

func (b *Backend) record(format string, args ...any) {
	b.Calls = append(b.Calls, fmt.Sprintf(format, args...))
}

func (b *Backend) ListWindows() ([]model.Window, error) {
	poll := b.polls
	b.polls++
	b.record("list")
	if b.ListErrAt != nil {
		if err := b.ListErrAt(poll); err != nil {
			return nil, err
		}
	}
	windows := b.WindowsAt(poll)
	out := make([]model.Window, 0, len(windows))
	for _, w := range windows {
		b.known[w.Handle] = true
		w.Minimized = b.Minimized[w.Handle]
		out = append(out, w)
	}
	return out, nil
}

func (b *Backend) Exists(h model.Handle) bool {
	return b.known[h] && !b.Gone[h]
}

func (b *Backend) Foreground() (model.Handle, error) {
	return b.foreground, nil
}

func (b *Backend) IsMinimized(h model.Handle) (bool, error) {
	return b.Minimized[h], nil
}

func (b *Backend) Restore(h model.Handle) error {
	b.record("restore %d", h)
	delete(b.Minimized, h)
	return nil
}

func (b *Backend) Show(h model.Handle) error {
	b.record("show %d", h)
	return nil
}

func (b *Backend) BringToTop(h model.Handle) error {
	b.record("top %d", h)
	return nil
}

func (b *Backend) SetForeground(h model.Handle) error {
	b.setFgCalls++
	b.record("foreground %d", h)
	if b.GrantForegroundOn > 0 && b.setFgCalls >= b.GrantForegroundOn {
		b.foreground = h
		return nil
	}
	return fmt.Errorf("SetForegroundWindow denied")
}

func (b *Backend) ForceToTop(h model.Handle) error {
	b.record("force %d", h)
	if b.ForceGrants {
		b.foreground = h
	}
	return nil
}

func (b *Backend) Bounds(h model.Handle) (model.Rect, error) {
	for _, w := range b.WindowsAt(max(b.polls-1, 0)) {
		if w.Handle == h {
			return w.Bounds, nil
		}
	}
	return model.Rect{}, fmt.Errorf("no window %d", h)
}

func (b *Backend) CurrentThreadID() uint32 { return 1 }

func (b *Backend) WindowThreadID(model.Handle) (uint32, error) {
	if b.SameThread {
		return 1, nil
	}
	return 2, nil
}

func (b *Backend) AttachThreadInput(from, to uint32, attach bool) error {
	if attach {
		b.Attaches++
		b.record("attach %d->%d", from, to)
	} else {
		b.Detaches++
		b.record("detach %d->%d", from, to)
	}
	return nil
}

func (b *Backend) Controls(h model.Handle) (model.Control, error) {
	b.record("controls %d", h)
	if b.TreeErr != nil {
		return model.Control{}, b.TreeErr
	}
	tree, ok := b.Trees[h]
	if !ok {
		return model.Control{Handle: h}, nil
	}
	return tree, nil
}

func (b *Backend) Invoke(c model.Control) error {
	b.record("invoke %q", c.Name)
	if b.InvokePanic != nil {
		panic(b.InvokePanic)
	}
	if b.InvokeErr != nil {
		return b.InvokeErr
	}
	b.Invoked = append(b.Invoked, c)
	return nil
}

func (b *Backend) MoveMouse(x, y int) error {
	b.record("move %d,%d", x, y)
	return nil
}

func (b *Backend) Click(x, y int, button platform.MouseButton, count int) error {
	b.record("click %d,%d %s", x, y, button)
	if b.ClickErr != nil {
		return b.ClickErr
	}
	b.Clicks = append(b.Clicks, model.Point{X: x, Y: y})
	return nil
}

func (b *Backend) Screen() (model.Rect, error) {
	return b.ScreenRect, nil
}
