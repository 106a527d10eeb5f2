package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/standings/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first: in completion mode it prints
	// candidates and exits.
	completion().Complete("pks")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	filters := map[string]complete.Predictor{
		"from":    predict.Something,
		"to":      predict.Something,
		"players": predict.Something,
		"groups":  predict.Something,
	}
	sources := map[string]complete.Predictor{
		"sheet":     predict.Something,
		"worksheet": predict.Something,
		"html":      predict.Something,
		"csv":       predict.Files("*.csv"),
		"sample":    predict.Nothing,
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"cache-ttl":   predict.Something,
		},
		Sub: map[string]*complete.Command{
			"overview":  {Flags: filters},
			"standings": {Flags: filters},
			"sessions":  {Flags: filters},
			"profile":   {Flags: filters},
			"fetch":     {Flags: sources},
			"schema":    {Flags: sources},
			"topic":     {},
			"assist":    {},
		},
	}
}
