package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"labrec/internal/outputpath"
	"labrec/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run preflight checks against the resolved output target",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore()
			if err != nil {
				return err
			}

			filename := store.GetString("filename", outputpath.DefaultFilename)
			results := []preflight.Result{preflight.CheckConfigFile(ctx.configPath)}
			results = append(results, preflight.CheckOutputTarget(filename)...)

			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					status := "ok"
					if !result.Passed {
						status = "FAIL"
					}
					rows = append(rows, []string{result.Name, status, result.Detail})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd.OutOrStdout(),
					[]string{"Check", "Status", "Detail"}, rows, nil))
			}

			for _, result := range results {
				if !result.Passed {
					return fmt.Errorf("preflight check failed: %s", result.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit check results as JSON")

	return cmd
}
