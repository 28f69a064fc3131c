//go:build windows

package win32

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procEnumChildWindows         = user32.NewProc("EnumChildWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetClassNameW            = user32.NewProc("GetClassNameW")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsIconic                 = user32.NewProc("IsIconic")
	procShowWindow               = user32.NewProc("ShowWindow")
	procBringWindowToTop         = user32.NewProc("BringWindowToTop")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetParent                = user32.NewProc("GetParent")
	procSendMessageW             = user32.NewProc("SendMessageW")
	procSetCursorPos             = user32.NewProc("SetCursorPos")
	procMouseEvent               = user32.NewProc("mouse_event")
	procGetSystemMetrics         = user32.NewProc("GetSystemMetrics")
)

const (
	swShow    = 5
	swRestore = 9

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpShowWindow = 0x0040
	hwndTop       = 0

	bmClick = 0x00F5

	smCXScreen = 0
	smCYScreen = 1

	mouseeventfLeftDown   = 0x0002
	mouseeventfLeftUp     = 0x0004
	mouseeventfRightDown  = 0x0008
	mouseeventfRightUp    = 0x0010
	mouseeventfMiddleDown = 0x0020
	mouseeventfMiddleUp   = 0x0040
)

type rect struct {
	Left, Top, Right, Bottom int32
}

// Callbacks are created once: windows.NewCallback has a fixed process-wide
// limit. Enumeration results are collected under enumMu.
var (
	enumMu      sync.Mutex
	enumHandles []uintptr

	enumCallback = windows.NewCallback(func(hwnd, _ uintptr) uintptr {
		enumHandles = append(enumHandles, hwnd)
		return 1
	})
)

// enumTopLevel returns every top-level window handle in z-order.
func enumTopLevel() ([]uintptr, error) {
	enumMu.Lock()
	defer enumMu.Unlock()
	enumHandles = nil
	r, _, err := procEnumWindows.Call(enumCallback, 0)
	if r == 0 {
		return nil, wrapErrno("EnumWindows", err)
	}
	return append([]uintptr(nil), enumHandles...), nil
}

// enumChildren returns every descendant window of parent.
func enumChildren(parent uintptr) []uintptr {
	enumMu.Lock()
	defer enumMu.Unlock()
	enumHandles = nil
	// EnumChildWindows' return value is unused per its documentation.
	procEnumChildWindows.Call(parent, enumCallback, 0)
	return append([]uintptr(nil), enumHandles...)
}

func windowText(hwnd uintptr) string {
	n, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf)
}

func className(hwnd uintptr) string {
	buf := make([]uint16, 256)
	n, _, _ := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowRect(hwnd uintptr) (rect, error) {
	var r rect
	ok, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return rect{}, wrapErrno("GetWindowRect", err)
	}
	return r, nil
}

func threadProcessID(hwnd uintptr) (tid, pid uint32) {
	t, _, _ := procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	return uint32(t), pid
}

func boolCall(p *windows.LazyProc, args ...uintptr) bool {
	r, _, _ := p.Call(args...)
	return r != 0
}
