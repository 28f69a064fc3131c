//go:build linux

package x11

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/mj1618/uipilot/internal/model"
	"github.com/pkg/errors"
)

// WindowSystem implements platform.WindowSystem over EWMH.
type WindowSystem struct{ *Client }

// ListWindows returns the viewable managed client windows in stacking
// order.
func (s WindowSystem) ListWindows() ([]model.Window, error) {
	data, err := s.property(s.root, "_NET_CLIENT_LIST", xproto.AtomWindow, 4096)
	if err != nil {
		return nil, err
	}
	var out []model.Window
	for _, w := range decodeWindows(data) {
		attrs, err := xproto.GetWindowAttributes(s.conn, w).Reply()
		if err != nil {
			continue
		}
		hidden := s.hidden(w)
		if attrs.MapState != xproto.MapStateViewable && !hidden {
			continue
		}
		win := model.Window{
			Handle:    model.Handle(w),
			Title:     s.name(w),
			Class:     s.class(w),
			PID:       s.pid(w),
			Minimized: hidden,
		}
		if r, err := s.Bounds(model.Handle(w)); err == nil {
			win.Bounds = r
		}
		out = append(out, win)
	}
	return out, nil
}

func (s WindowSystem) Exists(h model.Handle) bool {
	_, err := xproto.GetWindowAttributes(s.conn, xproto.Window(h)).Reply()
	return err == nil
}

func (s WindowSystem) Foreground() (model.Handle, error) {
	data, err := s.property(s.root, "_NET_ACTIVE_WINDOW", xproto.AtomWindow, 1)
	if err != nil {
		return 0, err
	}
	if len(data) < 4 {
		return 0, nil
	}
	return model.Handle(xgb.Get32(data)), nil
}

func (s WindowSystem) IsMinimized(h model.Handle) (bool, error) {
	return s.hidden(xproto.Window(h)), nil
}

// Restore maps the window and asks the window manager to activate it, which
// clears _NET_WM_STATE_HIDDEN on compliant managers.
func (s WindowSystem) Restore(h model.Handle) error {
	if err := s.Show(h); err != nil {
		return err
	}
	return s.sendClientMessage(xproto.Window(h), "_NET_ACTIVE_WINDOW", 2, xproto.TimeCurrentTime)
}

func (s WindowSystem) Show(h model.Handle) error {
	err := xproto.MapWindowChecked(s.conn, xproto.Window(h)).Check()
	return errors.Wrap(err, "map window")
}

func (s WindowSystem) BringToTop(h model.Handle) error {
	err := xproto.ConfigureWindowChecked(s.conn, xproto.Window(h),
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove}).Check()
	return errors.Wrap(err, "raise window")
}

// SetForeground sends a _NET_ACTIVE_WINDOW request with source indication 2
// (pager), which window managers honour regardless of focus-stealing rules.
func (s WindowSystem) SetForeground(h model.Handle) error {
	active, _ := s.Foreground()
	return s.sendClientMessage(xproto.Window(h), "_NET_ACTIVE_WINDOW", 2, xproto.TimeCurrentTime, uint32(active))
}

// ForceToTop raises the window and assigns input focus directly, bypassing
// the window manager.
func (s WindowSystem) ForceToTop(h model.Handle) error {
	if err := s.BringToTop(h); err != nil {
		return err
	}
	err := xproto.SetInputFocusChecked(s.conn, xproto.InputFocusPointerRoot, xproto.Window(h), xproto.TimeCurrentTime).Check()
	return errors.Wrap(err, "set input focus")
}

// Bounds returns the window geometry translated to root coordinates.
func (s WindowSystem) Bounds(h model.Handle) (model.Rect, error) {
	w := xproto.Window(h)
	geom, err := xproto.GetGeometry(s.conn, xproto.Drawable(w)).Reply()
	if err != nil {
		return model.Rect{}, errors.Wrap(err, "get geometry")
	}
	pos, err := xproto.TranslateCoordinates(s.conn, w, s.root, 0, 0).Reply()
	if err != nil {
		return model.Rect{}, errors.Wrap(err, "translate coordinates")
	}
	return model.Rect{
		X:      int(pos.DstX),
		Y:      int(pos.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}
