//go:build linux

package x11

import "github.com/mj1618/uipilot/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		c, err := Dial()
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Windows:      WindowSystem{c},
			Inputter:     Inputter{c},
			Capabilities: platform.Capabilities{Backend: "x11"},
		}, nil
	}
}
