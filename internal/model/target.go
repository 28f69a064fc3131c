package model

import "strings"

// Signature identifies a target window by title and/or class substring.
// An empty field never matches.
type Signature struct {
	Title string `mapstructure:"title" yaml:"title,omitempty" json:"title,omitempty"`
	Class string `mapstructure:"class" yaml:"class,omitempty" json:"class,omitempty"`
}

// Matches reports whether the window's title or class contains the
// signature's substring. Matching is case-sensitive.
func (s Signature) Matches(w Window) bool {
	if s.Title != "" && strings.Contains(w.Title, s.Title) {
		return true
	}
	return s.Class != "" && strings.Contains(w.Class, s.Class)
}

func (s Signature) String() string {
	switch {
	case s.Title != "" && s.Class != "":
		return "title=" + s.Title + " class=" + s.Class
	case s.Class != "":
		return "class=" + s.Class
	default:
		return "title=" + s.Title
	}
}

// Fraction is a click point expressed as fractions of a window's width and
// height, measured from its top-left corner.
type Fraction struct {
	X float64 `mapstructure:"x" yaml:"x" json:"x"`
	Y float64 `mapstructure:"y" yaml:"y" json:"y"`
}

// Target names a control to resolve and the ordered coordinate fallbacks to
// use when no control matches.
type Target struct {
	Name     string     `mapstructure:"name"     yaml:"name"               json:"name"`
	Fallback []Fraction `mapstructure:"fallback" yaml:"fallback,omitempty" json:"fallback,omitempty"`
}
