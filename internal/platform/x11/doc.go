// Package x11 implements window discovery, activation and pointer input for
// EWMH-compliant X11 window managers. It exposes no control tree, so element
// resolution on X11 always ends in the proportional fallback.
package x11
