package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/standings/renderer"
	"github.com/google/subcommands"
)

// sessionsCmd holds the flags for the 'sessions' subcommand.
type sessionsCmd struct {
	filter filterFlags
}

func (*sessionsCmd) Name() string     { return "sessions" }
func (*sessionsCmd) Synopsis() string { return "display the chronological session log" }
func (*sessionsCmd) Usage() string {
	return `pks sessions [-from <date>] [-to <date>] [-players <list>] [-groups <list>]

  Displays every recorded session in chronological order, with each
  player's running cumulative net.
`
}

func (c *sessionsCmd) SetFlags(f *flag.FlagSet) {
	c.filter.SetFlags(f)
}

func (c *sessionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.SessionsMarkdown(ds.Select(filter)))
	return subcommands.ExitSuccess
}
