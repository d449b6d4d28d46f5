package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDumpCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <domain> <file>",
		Short: "Resolve a domain and write its snapshot to a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := d.fetcher.DumpToFile(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
			return nil
		},
	}
}
