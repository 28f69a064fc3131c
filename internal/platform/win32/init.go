//go:build windows

package win32

import "github.com/mj1618/uipilot/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		if err := procEnumWindows.Find(); err != nil {
			return nil, err
		}
		return &platform.Provider{
			Windows:      WindowSystem{},
			Attacher:     Attacher{},
			Controls:     ControlTree{},
			Inputter:     Inputter{},
			Capabilities: platform.Capabilities{Backend: "win32"},
		}, nil
	}
}
