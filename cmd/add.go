package cmd

import (
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Ingest staged exports into an existing index",
	Long: `Loads <dest-path>/index.json, ingests every *.json export of --add-path,
copies each ingested export into --root-path and persists the merged index.
Sessions already present in the index are not detected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd)
	},
}

func runAdd(cmd *cobra.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	svc, err := a.ingestService(cmd.Context())
	if err != nil {
		return err
	}

	add, root, dest := a.paths()
	_, err = svc.Add(cmd.Context(), add, root, dest)
	return err
}

func init() {
	RootCmd.AddCommand(addCmd)
}
