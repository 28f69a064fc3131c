//go:build linux

package x11

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"
	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/platform"
	"github.com/pkg/errors"
)

// Inputter synthesizes pointer input with the XTEST extension, falling back
// to WarpPointer for motion when XTEST is missing.
type Inputter struct{ *Client }

func (in Inputter) MoveMouse(x, y int) error {
	if in.xtest {
		err := xtest.FakeInputChecked(in.conn, xproto.MotionNotify, 0, 0, in.root, int16(x), int16(y), 0).Check()
		return errors.Wrap(err, "xtest motion")
	}
	err := xproto.WarpPointerChecked(in.conn, 0, in.root, 0, 0, 0, 0, int16(x), int16(y)).Check()
	return errors.Wrap(err, "warp pointer")
}

func (in Inputter) Click(x, y int, button platform.MouseButton, count int) error {
	if !in.xtest {
		return errors.New("XTEST extension not available; cannot synthesize clicks")
	}
	if err := in.MoveMouse(x, y); err != nil {
		return err
	}
	var detail byte
	switch button {
	case platform.MouseLeft:
		detail = 1
	case platform.MouseMiddle:
		detail = 2
	case platform.MouseRight:
		detail = 3
	default:
		return errors.Errorf("unsupported mouse button %s", button)
	}
	for i := 0; i < max(count, 1); i++ {
		if err := xtest.FakeInputChecked(in.conn, xproto.ButtonPress, detail, 0, in.root, 0, 0, 0).Check(); err != nil {
			return errors.Wrap(err, "xtest button press")
		}
		if err := xtest.FakeInputChecked(in.conn, xproto.ButtonRelease, detail, 0, in.root, 0, 0, 0).Check(); err != nil {
			return errors.Wrap(err, "xtest button release")
		}
	}
	return nil
}

func (in Inputter) Screen() (model.Rect, error) {
	return model.Rect{Width: int(in.screen.WidthInPixels), Height: int(in.screen.HeightInPixels)}, nil
}
