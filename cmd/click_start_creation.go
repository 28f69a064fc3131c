package cmd

import (
	"github.com/mj1618/uipilot/internal/automation"
	"github.com/spf13/cobra"
)

var clickStartCreationCmd = &cobra.Command{
	Use:   "click_start_creation",
	Short: "Bring the editor to the front and click its start-creation button",
	Long: `Wait for the editor window, force it to the foreground, then find the
start-creation button by exact match, child scan, or text label, and invoke
it. When no control matches, configured proportional points inside the window
are clicked instead.`,
	Args: cobra.NoArgs,
	RunE: runClickStartCreation,
}

func init() {
	rootCmd.AddCommand(clickStartCreationCmd)
}

func runClickStartCreation(cmd *cobra.Command, args []string) error {
	orch, err := newOrchestrator()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	return report(orch.Run(ctx, automation.Request{Mode: automation.ModeFull, Target: cfg.Targets.Start}))
}
