package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GunniBusch/brew-version-check/pkg/cliutil"
	"github.com/GunniBusch/brew-version-check/pkg/version"
)

func init() {
	cmd := &cobra.Command{
		Use:   "compare VERSION_A VERSION_B",
		Short: "Order two version strings, printing -1, 0, or 1",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
		RunE: func(flags *cobra.Command, args []string) error {
			cmp, err := version.Compare(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(flags.OutOrStdout(), cmp)
			return nil
		},
	}
	argparser.AddCommand(cmd)
}
