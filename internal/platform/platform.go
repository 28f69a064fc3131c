package platform

import "github.com/mj1618/uipilot/internal/model"

// WindowSystem enumerates top-level windows and manipulates their z-order and
// activation state.
type WindowSystem interface {
	// ListWindows returns all visible top-level windows.
	ListWindows() ([]model.Window, error)

	// Exists reports whether the OS still knows about the window.
	Exists(h model.Handle) bool

	// Foreground returns the window currently receiving keyboard input.
	Foreground() (model.Handle, error)

	IsMinimized(h model.Handle) (bool, error)
	Restore(h model.Handle) error
	Show(h model.Handle) error
	BringToTop(h model.Handle) error
	SetForeground(h model.Handle) error

	// ForceToTop repositions the window at the top of the z-order and shows
	// it. It is the last resort when activation requests are denied.
	ForceToTop(h model.Handle) error

	// Bounds returns the window's current screen rectangle.
	Bounds(h model.Handle) (model.Rect, error)
}

// InputAttacher joins the input queues of two threads so that a background
// process may change the foreground window.
type InputAttacher interface {
	CurrentThreadID() uint32
	WindowThreadID(h model.Handle) (uint32, error)
	AttachThreadInput(from, to uint32, attach bool) error
}

// ControlTree reads and activates controls inside a window.
type ControlTree interface {
	// Controls returns the control tree rooted at the window.
	Controls(h model.Handle) (model.Control, error)

	// Invoke performs the control's native click/invoke action.
	Invoke(c model.Control) error
}

// Inputter simulates pointer input.
type Inputter interface {
	MoveMouse(x, y int) error
	Click(x, y int, button MouseButton, count int) error

	// Screen returns the bounds of the primary screen.
	Screen() (model.Rect, error)
}
