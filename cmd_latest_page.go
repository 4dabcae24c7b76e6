package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/GunniBusch/brew-version-check/pkg/cliutil"
	"github.com/GunniBusch/brew-version-check/pkg/livecheck"
)

func init() {
	var argPattern string
	cmd := &cobra.Command{
		Use:   "page [flags] URL",
		Short: "Scrape a release page for the newest linked version",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			var pattern *regexp.Regexp
			if argPattern != "" {
				var err error
				pattern, err = regexp.Compile(argPattern)
				if err != nil {
					return err
				}
			}

			client := livecheck.Client{}
			versions, err := client.Versions(flags.Context(), args[0], pattern)
			if err != nil {
				return err
			}
			newest := livecheck.Newest(versions)
			if newest.IsNull() {
				return fmt.Errorf("no versions found on %q", args[0])
			}
			fmt.Fprintln(flags.OutOrStdout(), newest)
			return nil
		},
	}
	cmd.Flags().StringVar(&argPattern, "pattern", "",
		"Only consider links matching the `REGEX`; the first capture group is the version")
	argparserLatest.AddCommand(cmd)
}
