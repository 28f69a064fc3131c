//go:build windows

package win32

import (
	"fmt"

	"github.com/mj1618/uipilot/internal/model"
)

// WindowSystem implements platform.WindowSystem over user32.
type WindowSystem struct{}

func (WindowSystem) ListWindows() ([]model.Window, error) {
	handles, err := enumTopLevel()
	if err != nil {
		return nil, err
	}
	var out []model.Window
	for _, h := range handles {
		if !boolCall(procIsWindowVisible, h) {
			continue
		}
		_, pid := threadProcessID(h)
		w := model.Window{
			Handle:    model.Handle(h),
			Title:     windowText(h),
			Class:     className(h),
			PID:       int(pid),
			Minimized: boolCall(procIsIconic, h),
		}
		if r, err := windowRect(h); err == nil {
			w.Bounds = toRect(r)
		}
		out = append(out, w)
	}
	return out, nil
}

func (WindowSystem) Exists(h model.Handle) bool {
	return boolCall(procIsWindow, uintptr(h))
}

func (WindowSystem) Foreground() (model.Handle, error) {
	h, _, _ := procGetForegroundWindow.Call()
	return model.Handle(h), nil
}

func (WindowSystem) IsMinimized(h model.Handle) (bool, error) {
	return boolCall(procIsIconic, uintptr(h)), nil
}

// ShowWindow returns the previous visibility, not success, so its result is
// ignored.
func (WindowSystem) Restore(h model.Handle) error {
	procShowWindow.Call(uintptr(h), swRestore)
	return nil
}

func (WindowSystem) Show(h model.Handle) error {
	procShowWindow.Call(uintptr(h), swShow)
	return nil
}

func (WindowSystem) BringToTop(h model.Handle) error {
	r, _, err := procBringWindowToTop.Call(uintptr(h))
	if r == 0 {
		return wrapErrno("BringWindowToTop", err)
	}
	return nil
}

func (WindowSystem) SetForeground(h model.Handle) error {
	if !boolCall(procSetForegroundWindow, uintptr(h)) {
		return fmt.Errorf("SetForegroundWindow refused for %#x", uint64(h))
	}
	return nil
}

// ForceToTop moves the window to the top of the z-order with
// SetWindowPos(HWND_TOP) and then repeats the activation request.
func (WindowSystem) ForceToTop(h model.Handle) error {
	r, _, err := procSetWindowPos.Call(uintptr(h), hwndTop, 0, 0, 0, 0, swpNoMove|swpNoSize|swpShowWindow)
	if r == 0 {
		return wrapErrno("SetWindowPos", err)
	}
	procSetForegroundWindow.Call(uintptr(h))
	return nil
}

func (WindowSystem) Bounds(h model.Handle) (model.Rect, error) {
	r, err := windowRect(uintptr(h))
	if err != nil {
		return model.Rect{}, err
	}
	return toRect(r), nil
}

func toRect(r rect) model.Rect {
	return model.Rect{
		X:      int(r.Left),
		Y:      int(r.Top),
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}
}
