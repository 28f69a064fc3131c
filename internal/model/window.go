package model

// Handle is an opaque OS reference to a window or control. It is borrowed from
// the OS and only valid while the OS reports the object exists.
type Handle uintptr

// Point is an absolute screen coordinate.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Rect is a screen rectangle.
type Rect struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// PointAt returns the point at fractional offsets fx, fy of the rectangle.
func (r Rect) PointAt(fx, fy float64) Point {
	return Point{
		X: r.X + int(float64(r.Width)*fx),
		Y: r.Y + int(float64(r.Height)*fy),
	}
}

// Contains reports whether p lies inside r (right/bottom edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Window represents a top-level application window.
type Window struct {
	Handle    Handle `yaml:"handle"              json:"handle"`
	Title     string `yaml:"title"               json:"title"`
	Class     string `yaml:"class,omitempty"     json:"class,omitempty"`
	PID       int    `yaml:"pid,omitempty"       json:"pid,omitempty"`
	Bounds    Rect   `yaml:"bounds"              json:"bounds"`
	Minimized bool   `yaml:"minimized,omitempty" json:"minimized,omitempty"`
}
