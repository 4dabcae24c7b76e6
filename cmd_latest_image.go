package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GunniBusch/brew-version-check/pkg/cliutil"
	"github.com/GunniBusch/brew-version-check/pkg/livecheck"
)

func init() {
	cmd := &cobra.Command{
		Use:   "image REPOSITORY",
		Short: "Find the newest version tag of a container image repository",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			versions, err := livecheck.ImageVersions(flags.Context(), args[0])
			if err != nil {
				return err
			}
			newest := livecheck.Newest(versions)
			if newest.IsNull() {
				return fmt.Errorf("no version tags in %q", args[0])
			}
			fmt.Fprintln(flags.OutOrStdout(), newest)
			return nil
		},
	}
	argparserLatest.AddCommand(cmd)
}
