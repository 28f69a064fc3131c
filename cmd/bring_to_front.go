package cmd

import (
	"github.com/mj1618/uipilot/internal/automation"
	"github.com/spf13/cobra"
)

var bringToFrontCmd = &cobra.Command{
	Use:   "bring_to_front",
	Short: "Bring the editor window to the foreground",
	Long: `Wait for the editor window and force it to the foreground. Succeeds when
the window was found, even if the foreground change could not be verified;
the result's focus field says which.`,
	Args: cobra.NoArgs,
	RunE: runBringToFront,
}

func init() {
	rootCmd.AddCommand(bringToFrontCmd)
}

func runBringToFront(cmd *cobra.Command, args []string) error {
	orch, err := newOrchestrator()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	return report(orch.Run(ctx, automation.Request{Mode: automation.ModeFocusOnly}))
}
