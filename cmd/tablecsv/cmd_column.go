package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oleg578/tablecsv"
)

func newColumnCmd() *cobra.Command {
	var (
		hasHeader bool
		kind      string
		base      int
	)

	cmd := &cobra.Command{
		Use:   "column <file> <index>",
		Short: "Extract one column, optionally converted to a typed array",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			index, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("column index %q: %w", args[1], err)
			}

			tbl, err := tablecsv.Parse(path, hasHeader)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			log.Infof("extracting column %d of %s as %s", index, path, kind)

			j := uint32(index)
			switch kind {
			case "string":
				values, err := tbl.Column(j)
				if err != nil {
					return fmt.Errorf("column %d: %w", j, err)
				}
				for _, v := range values {
					fmt.Println(v)
				}
			case "int":
				values, err := tbl.ColumnInts(j, base)
				if err != nil {
					return fmt.Errorf("column %d: %w", j, err)
				}
				for _, v := range values {
					fmt.Println(v)
				}
			case "float":
				values, err := tbl.ColumnFloats(j)
				if err != nil {
					return fmt.Errorf("column %d: %w", j, err)
				}
				for _, v := range values {
					fmt.Println(v)
				}
			case "char":
				values, err := tbl.ColumnChars(j)
				if err != nil {
					return fmt.Errorf("column %d: %w", j, err)
				}
				for _, v := range values {
					fmt.Printf("%c\n", v)
				}
			default:
				return fmt.Errorf("unsupported type: %s (expected string, int, float, or char)", kind)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hasHeader, "header", false, "treat the first record as column names")
	cmd.Flags().StringVarP(&kind, "type", "t", "string", "value type: string, int, float, or char")
	cmd.Flags().IntVarP(&base, "base", "b", 10, "numeric base for int conversion")

	return cmd
}
