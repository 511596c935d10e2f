package main

import (
	"github.com/spf13/cobra"

	"github.com/LittlePapers/calendarizer/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
	log        *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "calendarizer",
		Short:         "Calendarizer lays out yearly photo calendars",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			flags.log = log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Calendar file (YAML)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
