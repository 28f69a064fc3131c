package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/mj1618/uipilot/internal/output"
	"github.com/mj1618/uipilot/internal/platform"
	"github.com/mj1618/uipilot/internal/platform/fake"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"click_start_creation", "click", "bring_to_front", "check_running", "import_videos", "list", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_SetupRunsBeforeSubcommands(t *testing.T) {
	if rootCmd.PersistentPreRunE == nil {
		t.Fatal("root command should configure output, logging and config before running")
	}
	newEnv(t, fake.New(editor))
	if _, err := run(t, "check_running", "--format", "json"); err != nil {
		t.Fatal(err)
	}
	if output.OutputFormat != output.FormatJSON {
		t.Errorf("OutputFormat = %q, want json", output.OutputFormat)
	}
	if cfg.Targets.Start.Name == "" {
		t.Error("config was not loaded")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"format", "string"},
		{"pretty", "bool"},
		{"config", "string"},
		{"log-level", "string"},
		{"log-format", "string"},
		{"timeout", "duration"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestRootCommand_SetupErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"check_running", "--format", "xml"}, "unsupported output format"},
		{"log level", []string{"check_running", "--log-level", "loud"}, "unknown log level"},
		{"log format", []string{"check_running", "--log-format", "xml"}, "unsupported log format"},
		{"missing config", []string{"check_running", "--config", "/does/not/exist.yaml"}, "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newEnv(t, fake.New(editor))
			_, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestRootCommand_UnsupportedPlatform(t *testing.T) {
	newEnv(t, fake.New())
	newProvider = func() (*platform.Provider, error) { return nil, platform.ErrUnsupported }

	_, err := run(t, "click_start_creation")
	if !errors.Is(err, platform.ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}
