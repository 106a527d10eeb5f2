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

// standingsCmd holds the flags for the 'standings' subcommand.
type standingsCmd struct {
	filter filterFlags
}

func (*standingsCmd) Name() string     { return "standings" }
func (*standingsCmd) Synopsis() string { return "display the standings table" }
func (*standingsCmd) Usage() string {
	return `pks standings [-from <date>] [-to <date>] [-players <list>] [-groups <list>]

  Displays the per-player standings table, without the group KPIs.
`
}

func (c *standingsCmd) SetFlags(f *flag.FlagSet) {
	c.filter.SetFlags(f)
}

func (c *standingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.StandingsMarkdown(standings.NewStandings(ds.Select(filter))))
	return subcommands.ExitSuccess
}
