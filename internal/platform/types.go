package platform

import "strconv"

// MouseButton identifies a pointer button for synthetic clicks.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "button(" + strconv.Itoa(int(b)) + ")"
	}
}
