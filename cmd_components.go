package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/GunniBusch/brew-version-check/pkg/cliutil"
	"github.com/GunniBusch/brew-version-check/pkg/version"
)

func init() {
	var argOutput string
	cmd := &cobra.Command{
		Use:   "components [flags] VERSION",
		Short: "Break a version into its orderable components",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ver, err := version.New(args[0])
			if err != nil {
				return err
			}
			components := struct {
				Major           string `yaml:"major"`
				Minor           string `yaml:"minor"`
				Patch           string `yaml:"patch"`
				MajorMinor      string `yaml:"major_minor"`
				MajorMinorPatch string `yaml:"major_minor_patch"`
			}{
				Major:           ver.Major().String(),
				Minor:           ver.Minor().String(),
				Patch:           ver.Patch().String(),
				MajorMinor:      ver.MajorMinor().String(),
				MajorMinorPatch: ver.MajorMinorPatch().String(),
			}
			switch argOutput {
			case "text":
				fmt.Fprintf(flags.OutOrStdout(),
					"major=%s\nminor=%s\npatch=%s\nmajor_minor=%s\nmajor_minor_patch=%s\n",
					components.Major, components.Minor, components.Patch,
					components.MajorMinor, components.MajorMinorPatch)
			case "yaml":
				out, err := yaml.Marshal(components)
				if err != nil {
					return err
				}
				fmt.Fprint(flags.OutOrStdout(), string(out))
			default:
				return fmt.Errorf("invalid --output format: %q", argOutput)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&argOutput, "output", "o", "text",
		"Output `FORMAT`, one of: text, yaml")
	argparser.AddCommand(cmd)
}
