package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GunniBusch/brew-version-check/pkg/cliutil"
	"github.com/GunniBusch/brew-version-check/pkg/livecheck"
)

func init() {
	cmd := &cobra.Command{
		Use:   "git REMOTE",
		Short: "Find the newest version tag of a git remote",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			versions, err := livecheck.GitVersions(flags.Context(), args[0])
			if err != nil {
				return err
			}
			newest := livecheck.Newest(versions)
			if newest.IsNull() {
				return fmt.Errorf("no version tags on %q", args[0])
			}
			fmt.Fprintln(flags.OutOrStdout(), newest)
			return nil
		},
	}
	argparserLatest.AddCommand(cmd)
}
