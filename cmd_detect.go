package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GunniBusch/brew-version-check/pkg/cliutil"
	"github.com/GunniBusch/brew-version-check/pkg/version"
)

func init() {
	var argNoDecode bool
	cmd := &cobra.Command{
		Use:   "detect [flags] URL",
		Short: "Infer the version encoded in a download URL or filename",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ver := version.Detect(args[0], !argNoDecode)
			if ver.IsNull() {
				return fmt.Errorf("no version recognized in %q", args[0])
			}
			fmt.Fprintln(flags.OutOrStdout(), ver)
			return nil
		},
	}
	cmd.Flags().BoolVar(&argNoDecode, "no-decode", false,
		"Do not percent-decode the argument before matching")
	argparser.AddCommand(cmd)
}
