package model

// Control is a UI element exposed by the platform's automation layer.
// The root of a tree returned by a backend represents the window itself.
type Control struct {
	Handle   Handle      `yaml:"handle,omitempty" json:"handle,omitempty"`
	Name     string      `yaml:"name,omitempty"   json:"name,omitempty"`
	Class    string      `yaml:"class,omitempty"  json:"class,omitempty"`
	Type     ControlType `yaml:"type"             json:"type"`
	Bounds   Rect        `yaml:"bounds"           json:"bounds"`
	Children []Control   `yaml:"children,omitempty" json:"children,omitempty"`
}

// Walk visits every descendant of c depth-first in document order, passing the
// control and its parent. The root itself is not visited. Walk stops when fn
// returns false.
func (c *Control) Walk(fn func(el, parent *Control) bool) {
	c.walk(fn)
}

func (c *Control) walk(fn func(el, parent *Control) bool) bool {
	for i := range c.Children {
		child := &c.Children[i]
		if !fn(child, c) {
			return false
		}
		if !child.walk(fn) {
			return false
		}
	}
	return true
}

// Count returns the number of descendants below c.
func (c *Control) Count() int {
	n := 0
	c.Walk(func(_, _ *Control) bool {
		n++
		return true
	})
	return n
}
