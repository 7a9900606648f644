package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("tablecsv")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "tablecsv",
		Short: "Inspect and convert RFC 4180 CSV files",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")

	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newColumnCmd())
	rootCmd.AddCommand(newRewriteCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
