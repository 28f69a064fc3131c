package model

import "testing"

func TestMapControlType_KnownClasses(t *testing.T) {
	tests := []struct {
		input string
		want  ControlType
	}{
		{"Button", ControlButton},
		{"ButtonControl", ControlButton},
		{"QPushButton", ControlButton},
		{"QToolButton", ControlButton},
		{"Static", ControlText},
		{"TextControl", ControlText},
		{"QLabel", ControlText},
		{"Qt5QWindowIcon", ControlOther},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := MapControlType(tt.input)
			if got != tt.want {
				t.Errorf("MapControlType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapControlType_ButtonSuffix(t *testing.T) {
	if got := MapControlType("SplitButton"); got != ControlButton {
		t.Errorf("MapControlType(SplitButton) = %v, want button", got)
	}
}

func TestMapControlType_UnknownFallback(t *testing.T) {
	unknowns := []string{"Edit", "SysListView32", "SomethingElse", ""}
	for _, class := range unknowns {
		if got := MapControlType(class); got != ControlOther {
			t.Errorf("MapControlType(%q) = %v, want other", class, got)
		}
	}
}

func TestControlType_TextRoundTrip(t *testing.T) {
	for _, ct := range []ControlType{ControlOther, ControlButton, ControlText} {
		b, err := ct.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got ControlType
		if err := got.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if got != ct {
			t.Errorf("round trip %v: got %v", ct, got)
		}
	}
	var bad ControlType
	if err := bad.UnmarshalText([]byte("slider")); err == nil {
		t.Error("expected error for unknown control type")
	}
}
