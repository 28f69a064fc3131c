package main

import (
	"github.com/mj1618/uipilot/cmd"

	_ "github.com/mj1618/uipilot/internal/platform/win32"
	_ "github.com/mj1618/uipilot/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
