package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/standings"
	"github.com/etnz/standings/renderer"
	"github.com/google/subcommands"
)

// overviewCmd holds the flags for the 'overview' subcommand.
type overviewCmd struct {
	filter filterFlags
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display group totals and the standings table" }
func (*overviewCmd) Usage() string {
	return `pks overview [-from <date>] [-to <date>] [-players <list>] [-groups <list>]

  Displays the group dashboard: total sessions, total net, top winner,
  biggest loser, and the full standings table.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	c.filter.SetFlags(f)
}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.filter.Filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ds, err := LoadSessions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OverviewMarkdown(standings.NewStandings(ds.Select(filter))))
	return subcommands.ExitSuccess
}
