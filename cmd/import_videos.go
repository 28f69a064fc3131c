package cmd

import (
	"github.com/spf13/cobra"
)

var importVideosCmd = &cobra.Command{
	Use:   "import_videos <json-array>",
	Short: "Write media paths to the import list and click the import button",
	Long: `Parse a JSON array of media file paths, keep the ones that exist, write
them one per line to the import list file, then bring the editor to the
front and click its import button. Fails before touching the desktop when
the argument is not a JSON array or no path exists.

Example:
  uipilot import_videos '["D:/clips/a.mp4","D:/clips/b.mp4"]'`,
	Args: cobra.ExactArgs(1),
	RunE: runImportVideos,
}

func init() {
	rootCmd.AddCommand(importVideosCmd)
}

func runImportVideos(cmd *cobra.Command, args []string) error {
	orch, err := newOrchestrator()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	return report(orch.ImportVideos(ctx, args[0]))
}
