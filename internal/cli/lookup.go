package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/worker"
)

func newLookupCmd(d *deps) *cobra.Command {
	var (
		recordType string
		withSRV    bool
	)

	cmd := &cobra.Command{
		Use:   "lookup [domain...]",
		Short: "Resolve domains and print their snapshots or a single record",
		Long: `Resolve one or more domains. With no arguments, domains are read one
per line from stdin. With -t, only the named record type is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			domains, err := resolveInputs(cmd, args)
			if err != nil {
				return err
			}

			for _, domain := range domains {
				if recordType != "" {
					value, err := d.fetcher.GetRecord(cmd.Context(), domain, recordType)
					if err != nil {
						return err
					}
					if err := printValue(cmd, value); err != nil {
						return err
					}
					continue
				}

				snap, err := d.fetcher.GetSnapshot(cmd.Context(), domain, withSRV)
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

	cmd.Flags().StringVarP(&recordType, "type", "t", "",
		"print a single record type (A, AAAA, MX, SOA, NS, TXT, SRV, PTR, WWW, IPV4, IPV6, ASN, XFR, O365, ...)")
	cmd.Flags().BoolVarP(&withSRV, "srv", "s", false, "include the full SRV service sweep")
	return cmd
}

// resolveInputs returns positional args, or reads non-empty lines from stdin
// when no args are provided. An interactive terminal with no args is an
// error; the user forgot to pass an argument or pipe input.
func resolveInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	r := cmd.InOrStdin()
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("no input: pass an argument or pipe stdin")
	}
	return worker.ReadInputs(r)
}

// printValue writes scalars bare and everything else as indented JSON.
func printValue(cmd *cobra.Command, value any) error {
	switch v := value.(type) {
	case string:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
		return err
	case bool:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
		return err
	default:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
