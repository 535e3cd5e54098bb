package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	theme      string
	noColor    bool
	ascii      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "studybook",
		Short:         "Studybook manages and renders your study content library",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Color theme (default, dark, light, mono)")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable ANSI colors")
	cmd.PersistentFlags().BoolVar(&flags.ascii, "ascii", false, "Use ASCII borders and bullets")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newRemoveCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
