package cmd

import (
	"fmt"

	"github.com/mj1618/uipilot/internal/automation"
	"github.com/mj1618/uipilot/internal/config"
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Bring the editor to the front and click a control by name",
	Long: `Run the full pipeline against an arbitrary control name.

Configured targets (the start and import buttons) keep their configured
fallback points. --fallback replaces them; --no-fallback disables them.

Examples:
  uipilot click --target 导出
  uipilot click --target 开始创作 --no-fallback
  uipilot click --target 导出 --fallback 0.9,0.05`,
	Args: cobra.NoArgs,
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().String("target", "", "Control name to resolve (required)")
	clickCmd.Flags().Bool("no-fallback", false, "Disable proportional coordinate fallback")
	clickCmd.Flags().StringArray("fallback", nil, "Fallback point as fx,fy within the window (repeatable)")
	_ = clickCmd.MarkFlagRequired("target")
}

func runClick(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("target")
	noFallback, _ := cmd.Flags().GetBool("no-fallback")
	points, _ := cmd.Flags().GetStringArray("fallback")

	if name == "" {
		return fmt.Errorf("--target must not be empty")
	}
	if noFallback && len(points) > 0 {
		return fmt.Errorf("--fallback and --no-fallback are mutually exclusive")
	}

	target := cfg.TargetFor(name)
	if len(points) > 0 {
		target.Fallback = target.Fallback[:0]
		for _, p := range points {
			f, err := config.ParseFraction(p)
			if err != nil {
				return err
			}
			target.Fallback = append(target.Fallback, f)
		}
	}
	if noFallback {
		target.Fallback = nil
	}

	orch, err := newOrchestrator()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	return report(orch.Run(ctx, automation.Request{Mode: automation.ModeFull, Target: target}))
}
