//go:build linux

package x11

import (
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// decodeWindows decodes a 32-bit WINDOW list property such as
// _NET_CLIENT_LIST.
func decodeWindows(data []byte) []xproto.Window {
	out := make([]xproto.Window, 0, len(data)/4)
	for i := 0; i+4 <= len(data); i += 4 {
		out = append(out, xproto.Window(xgb.Get32(data[i:])))
	}
	return out
}

// decodeAtoms decodes a 32-bit ATOM list property such as _NET_WM_STATE.
func decodeAtoms(data []byte) []xproto.Atom {
	out := make([]xproto.Atom, 0, len(data)/4)
	for i := 0; i+4 <= len(data); i += 4 {
		out = append(out, xproto.Atom(xgb.Get32(data[i:])))
	}
	return out
}

// decodeClass returns the class half of WM_CLASS ("instance\x00class\x00"),
// falling back to the instance name.
func decodeClass(data []byte) string {
	parts := strings.Split(strings.TrimRight(string(data), "\x00"), "\x00")
	if len(parts) >= 2 && parts[1] != "" {
		return parts[1]
	}
	return parts[0]
}

func decodeString(data []byte) string {
	return strings.TrimRight(string(data), "\x00")
}
