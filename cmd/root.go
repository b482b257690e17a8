package cmd

import (
	"fmt"
	"os"

	"gdkp-ledger/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rebuildFlag bool
	addJSONFlag bool

	addPath  string
	rootPath string
	destPath string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gdkp-ledger",
	Short: "GDKP session ledger builder",
	Long: `gdkp-ledger normalizes GDKP addon exports into per-session records
and a searchable index.

  gdkp-ledger --rebuild -r exports -d site
  gdkp-ledger --addjson -a incoming -r exports -d site`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case rebuildFlag:
			return runRebuild(cmd)
		case addJSONFlag:
			return runAdd(cmd)
		default:
			return cmd.Help()
		}
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable ISO8601 timestamps for a CLI
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().BoolVar(&rebuildFlag, "rebuild", false, "rebuild records and index from the root path")
	RootCmd.Flags().BoolVar(&addJSONFlag, "addjson", false, "ingest exports from the add path")

	RootCmd.PersistentFlags().StringVarP(&addPath, "add-path", "a", "", "staging directory of new exports")
	RootCmd.PersistentFlags().StringVarP(&rootPath, "root-path", "r", "", "raw export archive directory")
	RootCmd.PersistentFlags().StringVarP(&destPath, "dest-path", "d", "", "destination of index.json and records")
}
