// Package win32 implements the platform interfaces on Windows using user32
// window management, thread-input attachment and synthetic mouse input.
//
// Control trees are built from child HWNDs. Applications that draw their own
// widgets (Qt, Electron) expose no child windows, in which case the resolver
// falls back to proportional coordinates.
package win32
