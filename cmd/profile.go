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

// profileCmd holds the flags for the 'profile' subcommand.
type profileCmd struct {
	filter filterFlags
	recent int
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "display a single player's metrics and streaks" }
func (*profileCmd) Usage() string {
	return `pks profile <player> [-recent <n>] [-from <date>] [-to <date>]

  Displays a player's profile: games played, win rate, average and
  median net, best and worst session, streaks, and the most recent
  sessions.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	c.filter.SetFlags(f)
	f.IntVar(&c.recent, "recent", standings.DefaultRecentLimit, "How many recent sessions to display.")
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one player name.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	player := f.Arg(0)

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

	profile := standings.NewPlayerProfile(ds.Select(filter), player, c.recent)
	printMarkdown(renderer.ProfileMarkdown(profile))
	return subcommands.ExitSuccess
}
