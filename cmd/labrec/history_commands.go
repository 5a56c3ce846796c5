package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"labrec/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded filename resolutions",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past resolutions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.historyPath()
			if err != nil {
				return err
			}
			store, err := history.Open(path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "History database: %s\n", store.Path())
			if len(entries) == 0 {
				fmt.Fprintln(out, "No resolutions recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					strconv.FormatInt(entry.ID, 10),
					entry.CreatedAt.Local().Format(time.DateTime),
					entry.ResolvedPath,
					entry.ConfigPath,
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"ID", "When", "Output", "Config"}, rows,
				[]columnAlignment{alignRight}))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit entries as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded resolutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.historyPath()
			if err != nil {
				return err
			}
			store, err := history.Open(path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			deleted, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries\n", deleted)
			return nil
		},
	}
}
