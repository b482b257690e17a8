package cmd

import (
	"github.com/spf13/cobra"
)

// rebuildCmd represents the rebuild command
var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild every record and the index from the raw archive",
	Long: `Parses every *.json export of --root-path, writes one record per session
into <dest-path>/records and replaces <dest-path>/index.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRebuild(cmd)
	},
}

func runRebuild(cmd *cobra.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	svc, err := a.ingestService(cmd.Context())
	if err != nil {
		return err
	}

	_, root, dest := a.paths()
	_, err = svc.Rebuild(cmd.Context(), root, dest)
	return err
}

func init() {
	RootCmd.AddCommand(rebuildCmd)
}
