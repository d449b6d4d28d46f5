package cli

import (
	"github.com/spf13/cobra"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/codec"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/normalize"
)

func newHistoryCmd(d *deps) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <domain>",
		Short: "Print stored snapshots for a domain, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := normalize.Normalize(args[0])
			if err != nil {
				return err
			}

			recs, err := d.store.History(cmd.Context(), domain, limit)
			if err != nil {
				return err
			}
			for i := range recs {
				snap, err := codec.DecodeRecord(&recs[i])
				if err != nil {
					return err
				}
				if err := printValue(cmd, snap); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of snapshots to print")
	return cmd
}
