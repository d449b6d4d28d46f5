package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newPruneCmd(d *deps) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete stored history older than the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			retention := olderThan
			if retention <= 0 {
				retention = d.cfg.Storage.Retention
			}
			cutoff := time.Now().Add(-retention)

			rows, err := d.store.PruneOlderThan(cmd.Context(), cutoff)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pruned %d records older than %s\n", rows, retention)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "retention window (overrides config)")
	return cmd
}
