package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oleg578/tablecsv"
)

func newInfoCmd() *cobra.Command {
	var hasHeader bool

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print the dimensions and header of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			tbl, err := tablecsv.Parse(path, hasHeader)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			log.Infof("parsed %s: %d rows, %d columns", path, tbl.Rows(), tbl.Columns())

			fmt.Printf("rows:    %d\n", tbl.Rows())
			fmt.Printf("columns: %d\n", tbl.Columns())
			fmt.Printf("total:   %d\n", tbl.Total())
			fmt.Printf("missing: %d\n", tbl.Missing())
			if header := tbl.Header(); header != nil {
				fmt.Printf("header:  %s\n", strings.Join(header, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hasHeader, "header", false, "treat the first record as column names")

	return cmd
}
