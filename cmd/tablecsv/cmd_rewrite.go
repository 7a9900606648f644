package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleg578/tablecsv"
)

func newRewriteCmd() *cobra.Command {
	var (
		hasHeader bool
		useCRLF   bool
	)

	cmd := &cobra.Command{
		Use:   "rewrite <file>",
		Short: "Parse a CSV file and emit it with normalized quoting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			tbl, err := tablecsv.Parse(path, hasHeader)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			log.Infof("rewriting %s (%d records)", path, tbl.Rows())

			if useCRLF {
				w := tablecsv.NewWriter(os.Stdout)
				w.UseCRLF = true
				if header := tbl.Header(); header != nil {
					if err := w.Write(header); err != nil {
						return err
					}
				}
				for i := uint32(0); i < tbl.Rows(); i++ {
					row, err := tbl.Row(i)
					if err != nil {
						return err
					}
					if err := w.Write(row); err != nil {
						return err
					}
				}
				return w.Flush()
			}
			return tbl.Write(os.Stdout)
		},
	}
	cmd.Flags().BoolVar(&hasHeader, "header", false, "treat the first record as column names")
	cmd.Flags().BoolVar(&useCRLF, "crlf", false, "terminate records with \\r\\n")

	return cmd
}
