// Package cmd implements the CLI application to track a poker group's
// standings.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/etnz/standings"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&overviewCmd{}, "reports")
	c.Register(&standingsCmd{}, "reports")
	c.Register(&profileCmd{}, "reports")
	c.Register(&sessionsCmd{}, "reports")

	c.Register(&fetchCmd{}, "ledger")
	c.Register(&schemaCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
	c.Register(&AssistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "sessions.jsonl", "Path to the ledger file containing normalized sessions (JSONL format)")
var cacheTTL = flag.Duration("cache-ttl", 24*time.Hour, "How long fetched sheets are cached on disk")

// LoadSessions reads the dataset from the app default ledger file.
// A missing file is an empty ledger, not an error.
func LoadSessions() (*standings.Dataset, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return standings.NewDataset(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ds, err := standings.ImportSessions(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	return ds, nil
}

// SaveSessions writes the whole dataset into the app default ledger file.
func SaveSessions(ds *standings.Dataset) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q for writing: %w", *ledgerFile, err)
	}
	defer f.Close()

	if err := standings.ExportSessions(f, ds); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", *ledgerFile, err)
	}
	return nil
}

// filterFlags holds the report restriction flags shared by all report
// subcommands.
type filterFlags struct {
	from, to string
	players  string
	groups   string
}

func (c *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date, inclusive. See 'pks topic dates' for supported formats.")
	f.StringVar(&c.to, "to", "", "End date, inclusive.")
	f.StringVar(&c.players, "players", "", "Comma-separated players to keep. Empty keeps everyone.")
	f.StringVar(&c.groups, "groups", "", "Comma-separated groups to keep. Empty keeps every group.")
}

// Filter parses the flags into the report filter.
func (c *filterFlags) Filter() (standings.Filter, error) {
	var filter standings.Filter
	var from, to standings.Date
	var err error

	if c.from != "" {
		if from, err = standings.ParseDate(c.from); err != nil {
			return filter, fmt.Errorf("invalid -from date: %w", err)
		}
	}
	if c.to != "" {
		if to, err = standings.ParseDate(c.to); err != nil {
			return filter, fmt.Errorf("invalid -to date: %w", err)
		}
	}
	filter.Range = standings.NewRange(from, to)
	filter.Players = splitList(c.players)
	filter.Groups = splitList(c.groups)
	return filter, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
