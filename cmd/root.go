package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mj1618/uipilot/internal/automation"
	"github.com/mj1618/uipilot/internal/config"
	"github.com/mj1618/uipilot/internal/logging"
	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/output"
	"github.com/mj1618/uipilot/internal/platform"
	"github.com/mj1618/uipilot/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "uipilot",
	Short: "Bring the JianyingPro editor to the front and click its controls",
	Long: `Locate the JianyingPro / CapCut desktop editor, force it to the foreground
and activate named controls. Every run prints a structured result with the
full attempt trail; the exit code is 0 only when the run succeeded.`,
	SilenceUsage: true,
}

// Replaced in tests.
var (
	newProvider         = platform.NewProvider
	orchestratorOptions []automation.Option
	logOutput           io.Writer = os.Stderr
)

// cfg is loaded by setup before any command runs.
var cfg config.Config

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	flags := rootCmd.PersistentFlags()
	flags.String("format", "yaml", "Output format: yaml, json, text")
	flags.Bool("pretty", false, "Pretty-print JSON output")
	flags.String("config", "", "Config file (default $UIPILOT_CONFIG or <user config dir>/uipilot/config.yaml)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "text", "Log format: text, json")
	flags.Duration("timeout", 0, "Abort the run after this long (0 for no limit)")
	rootCmd.PersistentPreRunE = setup
}

func setup(cmd *cobra.Command, args []string) error {
	flags := rootCmd.PersistentFlags()

	format, _ := flags.GetString("format")
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	output.OutputFormat = f
	output.PrettyOutput, _ = flags.GetBool("pretty")

	levelName, _ := flags.GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logFormat, _ := flags.GetString("log-format")
	if logFormat != "text" && logFormat != "json" {
		return fmt.Errorf("unsupported log format: %s (use text or json)", logFormat)
	}
	logging.Init(level, logFormat, logOutput)

	path, _ := flags.GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

func newOrchestrator() (*automation.Orchestrator, error) {
	p, err := newProvider()
	if err != nil {
		return nil, err
	}
	return automation.New(p, cfg, orchestratorOptions...), nil
}

// commandContext is cancelled on interrupt or when --timeout elapses.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	timeout, _ := rootCmd.PersistentFlags().GetDuration("timeout")
	if timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

// report prints the result and turns a failed run into a command error so
// the process exits non-zero.
func report(res model.InvocationResult) error {
	if err := output.Print(output.Result{InvocationResult: res}); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("%s ended %s: %s", res.Mode, res.State, res.Error)
	}
	return nil
}
