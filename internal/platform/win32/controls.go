//go:build windows

package win32

import (
	"fmt"

	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/platform"
)

// ControlTree implements platform.ControlTree from child HWNDs.
type ControlTree struct {
	input Inputter
}

// Controls enumerates all descendant windows of h and nests them by parent.
func (ControlTree) Controls(h model.Handle) (model.Control, error) {
	root := uintptr(h)
	if !boolCall(procIsWindow, root) {
		return model.Control{}, fmt.Errorf("window %#x no longer exists", uint64(h))
	}

	children := map[uintptr][]uintptr{}
	for _, c := range enumChildren(root) {
		p, _, _ := procGetParent.Call(c)
		children[p] = append(children[p], c)
	}

	var build func(hwnd uintptr, depth int) model.Control
	build = func(hwnd uintptr, depth int) model.Control {
		class := className(hwnd)
		ctl := model.Control{
			Handle: model.Handle(hwnd),
			Name:   windowText(hwnd),
			Class:  class,
			Type:   model.MapControlType(class),
		}
		if r, err := windowRect(hwnd); err == nil {
			ctl.Bounds = toRect(r)
		}
		// Guard against parent cycles from windows re-parented mid-walk.
		if depth < 64 {
			for _, c := range children[hwnd] {
				ctl.Children = append(ctl.Children, build(c, depth+1))
			}
		}
		return ctl
	}
	return build(root, 0), nil
}

// Invoke sends BM_CLICK to standard buttons. Other controls are clicked at
// their centre with synthetic mouse input.
func (t ControlTree) Invoke(c model.Control) error {
	if c.Handle != 0 && c.Type == model.ControlButton && c.Class == "Button" {
		if !boolCall(procIsWindow, uintptr(c.Handle)) {
			return fmt.Errorf("control %#x no longer exists", uint64(c.Handle))
		}
		procSendMessageW.Call(uintptr(c.Handle), bmClick, 0, 0)
		return nil
	}
	if c.Bounds.Empty() {
		return fmt.Errorf("control %q has no on-screen bounds", c.Name)
	}
	p := c.Bounds.Center()
	if err := t.input.MoveMouse(p.X, p.Y); err != nil {
		return err
	}
	return t.input.Click(p.X, p.Y, platform.MouseLeft, 1)
}
