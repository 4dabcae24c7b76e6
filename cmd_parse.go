package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GunniBusch/brew-version-check/pkg/cliutil"
	"github.com/GunniBusch/brew-version-check/pkg/version"
)

func init() {
	cmd := &cobra.Command{
		Use:   "parse VERSION...",
		Short: "Normalize version strings through the extraction heuristics",
		Args:  cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			for _, arg := range args {
				ver := version.Parse(arg)
				if ver.IsNull() {
					return fmt.Errorf("no version recognized in %q", arg)
				}
				fmt.Fprintln(flags.OutOrStdout(), ver)
			}
			return nil
		},
	}
	argparser.AddCommand(cmd)
}
