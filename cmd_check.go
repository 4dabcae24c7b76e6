package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/GunniBusch/brew-version-check/pkg/formula"
)

func init() {
	var (
		argAPIBase   string
		argWatchlist string
	)
	cmd := &cobra.Command{
		Use:   "check [flags] [FORMULA...]",
		Short: "Audit formulae whose declared version disagrees with their download URL",
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()

			names := args
			if argWatchlist != "" {
				content, err := os.ReadFile(argWatchlist)
				if err != nil {
					return err
				}
				var watchlist struct {
					Formulae []string `json:"formulae"`
				}
				if err := sigsyaml.UnmarshalStrict(content, &watchlist); err != nil {
					return fmt.Errorf("%s: %w", argWatchlist, err)
				}
				names = append(names, watchlist.Formulae...)
			}
			if len(names) == 0 {
				return errors.New("no formulae given; pass names or --watchlist")
			}

			client := formula.Client{BaseURL: argAPIBase}
			bad := 0
			for _, name := range names {
				dlog.Debugf(ctx, "fetching formula %q", name)
				f, err := client.Get(ctx, name)
				if err != nil {
					return err
				}
				result := formula.Check(f)
				fmt.Fprintf(flags.OutOrStdout(), "%s: %s (declared %q, detected %q)\n",
					result.Name, result.Verdict, result.Declared, result.Detected)
				if result.Verdict != formula.VerdictOK {
					bad++
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d formulae did not check out", bad, len(names))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&argAPIBase, "api-base", formula.DefaultBaseURL,
		"Base `URL` of the formula JSON API")
	cmd.Flags().StringVar(&argWatchlist, "watchlist", "",
		"Read additional formula names from the YAML `FILE`")
	argparser.AddCommand(cmd)
}
