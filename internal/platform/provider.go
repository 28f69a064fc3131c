package platform

import (
	"fmt"
	"runtime"
)

// Capabilities describes which backend features are present. It is resolved
// once when the provider is built and handed to the orchestrator.
type Capabilities struct {
	Backend     string `yaml:"backend"      json:"backend"`
	Windows     bool   `yaml:"windows"      json:"windows"`
	Controls    bool   `yaml:"controls"     json:"controls"`
	Input       bool   `yaml:"input"        json:"input"`
	InputAttach bool   `yaml:"input_attach" json:"input_attach"`
}

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Windows      WindowSystem
	Attacher     InputAttacher
	Controls     ControlTree
	Inputter     Inputter
	Capabilities Capabilities
}

// Resolve fills Capabilities from the backends that are actually present,
// keeping the backend name set by the platform package.
func (p *Provider) Resolve() *Provider {
	p.Capabilities.Windows = p.Windows != nil
	p.Capabilities.Controls = p.Controls != nil
	p.Capabilities.Input = p.Inputter != nil
	p.Capabilities.InputAttach = p.Attacher != nil
	return p
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("uipilot is not supported on %s/%s; supported: windows, linux (X11)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32 and internal/platform/x11.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	p, err := NewProviderFunc()
	if err != nil {
		return nil, err
	}
	if p.Windows == nil {
		return nil, fmt.Errorf("window management not available on this platform")
	}
	return p.Resolve(), nil
}
