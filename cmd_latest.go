package main

import (
	"github.com/spf13/cobra"

	"github.com/GunniBusch/brew-version-check/pkg/cliutil"
)

var argparserLatest = &cobra.Command{
	Use:   "latest {[flags]|SUBCOMMAND...}",
	Short: "Find the newest published version of a project",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,
}

func init() {
	argparser.AddCommand(argparserLatest)
}
