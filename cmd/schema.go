package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/standings/renderer"
	"github.com/google/subcommands"
)

type schemaCmd struct {
	sources sourceFlags
}

func (*schemaCmd) Name() string     { return "schema" }
func (*schemaCmd) Synopsis() string { return "inspect a raw ledger without importing it" }
func (*schemaCmd) Usage() string {
	return `pks schema -sheet <id> | -html <url> | -csv <file> | -sample

Shows the columns a raw ledger exposes and which layout was detected,
without touching the ledger file. Useful to diagnose a sheet that
imports zero sessions.
`
}

func (c *schemaCmd) SetFlags(f *flag.FlagSet) {
	c.sources.SetFlags(f)
}

func (c *schemaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := c.sources.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading source: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SchemaMarkdown(table))
	return subcommands.ExitSuccess
}
