package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/uipilot/internal/automation"
	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/output"
	"github.com/mj1618/uipilot/internal/platform"
	"github.com/mj1618/uipilot/internal/platform/fake"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const testListFile = "/tmp/uipilot-test/list.txt"

var editor = model.Window{
	Handle: 3,
	Title:  "剪映专业版",
	Class:  "Qt5QWindowIcon",
	PID:    1234,
	Bounds: model.Rect{X: 0, Y: 0, Width: 1000, Height: 800},
}

var notepad = model.Window{
	Handle: 4,
	Title:  "notes.txt - Notepad",
	Class:  "Notepad",
	PID:    77,
	Bounds: model.Rect{X: 50, Y: 50, Width: 400, Height: 300},
}

func editorWithButton(name string) *fake.Backend {
	b := fake.New(editor, notepad)
	b.GrantForegroundOn = 1
	b.Trees[editor.Handle] = model.Control{
		Handle: editor.Handle,
		Children: []model.Control{
			{Name: name, Class: "QPushButton", Type: model.ControlButton,
				Bounds: model.Rect{X: 100, Y: 100, Width: 80, Height: 30}},
		},
	}
	return b
}

// env wires the command package to a fake backend for one test.
type env struct {
	backend *fake.Backend
	fs      afero.Fs
}

func newEnv(t *testing.T, b *fake.Backend) *env {
	t.Helper()
	e := &env{backend: b, fs: afero.NewMemMapFs()}

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("import:\n  list_file: "+testListFile+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UIPILOT_CONFIG", cfgPath)

	prevProvider, prevOpts, prevLog := newProvider, orchestratorOptions, logOutput
	newProvider = func() (*platform.Provider, error) { return b.Provider(), nil }
	orchestratorOptions = []automation.Option{
		automation.WithClock(fake.NewClock()),
		automation.WithFS(e.fs),
		automation.WithIDFunc(func() string { return "cli-test" }),
	}
	logOutput = io.Discard
	rootCmd.SetErr(io.Discard)

	t.Cleanup(func() {
		newProvider, orchestratorOptions, logOutput = prevProvider, prevOpts, prevLog
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
		output.OutputFormat = output.FormatYAML
		output.PrettyOutput = false
	})
	return e
}

// resetFlags restores every flag on c and its subcommands to its default so
// tests sharing the package-level command tree don't leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command with args and returns what it wrote to
// stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	oldStdout := os.Stdout
	os.Stdout = w

	rootCmd.SetArgs(args)
	runErr := rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out), runErr
}
