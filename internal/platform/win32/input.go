//go:build windows

package win32

import (
	"fmt"
	"time"

	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/platform"
	"golang.org/x/sys/windows"
)

// Inputter implements platform.Inputter with SetCursorPos and mouse_event.
type Inputter struct{}

func (Inputter) MoveMouse(x, y int) error {
	r, _, err := procSetCursorPos.Call(uintptr(int32(x)), uintptr(int32(y)))
	if r == 0 {
		return wrapErrno("SetCursorPos", err)
	}
	return nil
}

func (in Inputter) Click(x, y int, button platform.MouseButton, count int) error {
	if err := in.MoveMouse(x, y); err != nil {
		return err
	}
	var down, up uintptr
	switch button {
	case platform.MouseLeft:
		down, up = mouseeventfLeftDown, mouseeventfLeftUp
	case platform.MouseRight:
		down, up = mouseeventfRightDown, mouseeventfRightUp
	case platform.MouseMiddle:
		down, up = mouseeventfMiddleDown, mouseeventfMiddleUp
	default:
		return fmt.Errorf("unsupported mouse button %s", button)
	}
	for i := 0; i < max(count, 1); i++ {
		procMouseEvent.Call(down, 0, 0, 0, 0)
		procMouseEvent.Call(up, 0, 0, 0, 0)
		if i+1 < count {
			time.Sleep(50 * time.Millisecond)
		}
	}
	return nil
}

func (Inputter) Screen() (model.Rect, error) {
	w, _, _ := procGetSystemMetrics.Call(smCXScreen)
	h, _, _ := procGetSystemMetrics.Call(smCYScreen)
	if w == 0 || h == 0 {
		return model.Rect{}, fmt.Errorf("GetSystemMetrics returned an empty screen")
	}
	return model.Rect{Width: int(w), Height: int(h)}, nil
}

// Attacher implements platform.InputAttacher.
type Attacher struct{}

func (Attacher) CurrentThreadID() uint32 { return windows.GetCurrentThreadId() }

func (Attacher) WindowThreadID(h model.Handle) (uint32, error) {
	tid, _ := threadProcessID(uintptr(h))
	if tid == 0 {
		return 0, fmt.Errorf("GetWindowThreadProcessId: no thread for %#x", uint64(h))
	}
	return tid, nil
}

func (Attacher) AttachThreadInput(from, to uint32, attach bool) error {
	var flag uintptr
	if attach {
		flag = 1
	}
	r, _, err := procAttachThreadInput.Call(uintptr(from), uintptr(to), flag)
	if r == 0 {
		return wrapErrno("AttachThreadInput", err)
	}
	return nil
}
