// Package cli provides the Cobra command tree for dnsintel.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the top-level Cobra command.
// d is populated by PersistentPreRunE before any subcommand's RunE runs.
// INVARIANT: Cobra only executes the innermost PersistentPreRunE in the
// command chain; subcommands must not define their own without re-calling
// buildDeps.
func NewRootCmd() *cobra.Command {
	var d deps

	cmd := &cobra.Command{
		Use:   "dnsintel",
		Short: "dnsintel: domain intelligence lookups with history",
		Long: `dnsintel resolves the full DNS and ownership picture of a domain:
address and mail records, nameserver glue, AS ownership, zone transfer
exposure, Office 365 footprint, WHOIS fields, HTTPS reachability and
blacklist status. Results are cached, stored as history and served over
CLI or HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			resolved, err := buildDeps(cmd)
			if err != nil {
				return err
			}
			d = *resolved
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			d.close()
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "path to config file")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.String("db", "", "database path (overrides config)")
	pf.String("redis", "", "redis address for the cache (overrides config)")

	cmd.AddCommand(
		newLookupCmd(&d),
		newDumpCmd(&d),
		newHistoryCmd(&d),
		newServeCmd(&d),
		newPruneCmd(&d),
		newVersionCmd(),
	)

	return cmd
}
