package model

import (
	"fmt"
	"strings"
)

// ControlType is the coarse type tag used by element resolution.
type ControlType int

const (
	ControlOther ControlType = iota
	ControlButton
	ControlText
)

func (t ControlType) String() string {
	switch t {
	case ControlButton:
		return "button"
	case ControlText:
		return "text"
	default:
		return "other"
	}
}

// MarshalText encodes the type as its lowercase name.
func (t ControlType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a lowercase type name.
func (t *ControlType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "button":
		*t = ControlButton
	case "text":
		*t = ControlText
	case "other", "":
		*t = ControlOther
	default:
		return fmt.Errorf("unknown control type: %q", string(b))
	}
	return nil
}

// ClassMap maps raw backend class names to control types. Win32 window
// classes, Qt widget classes and UI Automation type names are all covered.
var ClassMap = map[string]ControlType{
	"Button":         ControlButton,
	"ButtonControl":  ControlButton,
	"QPushButton":    ControlButton,
	"QToolButton":    ControlButton,
	"Static":         ControlText,
	"TextControl":    ControlText,
	"QLabel":         ControlText,
	"RICHEDIT50W":    ControlText,
	"DirectUIHWND":   ControlOther,
	"Qt5QWindowIcon": ControlOther,
}

// MapControlType converts a raw class name to a ControlType. Unknown classes
// containing "Button" are treated as buttons.
func MapControlType(class string) ControlType {
	if t, ok := ClassMap[class]; ok {
		return t
	}
	if strings.Contains(class, "Button") {
		return ControlButton
	}
	return ControlOther
}
