package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	cmd := &cobra.Command{
		Use:           "labrec",
		Short:         "LabRecorder configuration and output path tooling",
		Long:          "labrec loads recording configuration files and resolves the XDF output path they describe.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	ctx.configFlag = cmd.PersistentFlags().StringP("config", "c", "", "path to a configuration file (.cfg, .json, or .toml)")
	ctx.logLevelFlag = cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	ctx.logFormatFlag = cmd.PersistentFlags().String("log-format", "", "log format (console, json)")
	ctx.historyFlag = cmd.PersistentFlags().String("history-db", "", "path to the resolution history database")

	cmd.AddCommand(newResolveCommand(ctx))
	cmd.AddCommand(newCheckCommand(ctx))
	cmd.AddCommand(newConfigCommand(ctx))
	cmd.AddCommand(newHistoryCommand(ctx))

	return cmd
}
