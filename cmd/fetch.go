package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/standings"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	sources  sourceFlags
	currency string
	dryRun   bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches a raw ledger and normalizes it into sessions" }
func (*fetchCmd) Usage() string {
	return `pks fetch -sheet <id> | -html <url> | -csv <file> | -sample

Fetches a raw ledger table, detects its schema, normalizes it, and
writes the resulting sessions to the ledger file.

Rows missing their player, date, or net amount are dropped silently; a
messy spreadsheet never aborts the import.

Usage Examples:
# Import the embedded sample ledger.
$ pks fetch -sample

# Import a shared spreadsheet.
$ pks fetch -sheet 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms -worksheet Ledger
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	c.sources.SetFlags(f)
	f.StringVar(&c.currency, "currency", "USD", "ISO 4217 code stamped on every imported amount. Empty keeps amounts unitless.")
	f.BoolVar(&c.dryRun, "n", false, "Normalize and report, but do not write the ledger file.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := c.sources.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading source: %v\n", err)
		return subcommands.ExitFailure
	}

	schema := standings.DetectSchema(table)
	ds := standings.Normalize(table, c.currency)

	dropped := len(table.Rows()) - ds.Len()
	fmt.Printf("Detected schema %s: %d sessions normalized, %d rows dropped.\n", schema, ds.Len(), dropped)

	if ds.IsEmpty() && schema == standings.Unknown {
		fmt.Fprintf(os.Stderr, "Error: unrecognized ledger layout, see 'pks schema' for a diagnosis.\n")
		return subcommands.ExitFailure
	}

	if c.dryRun {
		return subcommands.ExitSuccess
	}

	if err := SaveSessions(ds); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully wrote %d sessions to %s\n", ds.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}
