package cmd

import (
	"fmt"

	"github.com/mj1618/uipilot/internal/automation"
	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible top-level windows",
	Long: `List visible top-level windows with the configured signature each one
matches. Use it to check which window the other commands would pick.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("matching", false, "Only list windows that match a signature")
	listCmd.Flags().Int("pid", 0, "Filter windows by PID")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}

	matching, _ := cmd.Flags().GetBool("matching")
	pid, _ := cmd.Flags().GetInt("pid")

	windows, err := provider.Windows.ListWindows()
	if err != nil {
		return fmt.Errorf("list windows: %w", err)
	}

	list := output.WindowList{Windows: []output.WindowEntry{}}
	for _, w := range windows {
		if pid != 0 && w.PID != pid {
			continue
		}
		entry := output.WindowEntry{Window: w}
		if _, sig, ok := automation.MatchWindow([]model.Window{w}, cfg.Window.Signatures); ok {
			entry.Matches = sig.String()
		} else if matching {
			continue
		}
		list.Windows = append(list.Windows, entry)
	}
	return output.Print(list)
}
