package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"labrec/internal/history"
	"labrec/internal/logging"
	"labrec/internal/outputpath"
)

type resolveReport struct {
	SessionID       string   `json:"session_id"`
	ConfigPath      string   `json:"config_path,omitempty"`
	Filename        string   `json:"filename"`
	AutoStart       bool     `json:"auto_start"`
	RemoteControl   bool     `json:"remote_control"`
	RemotePort      int      `json:"remote_port"`
	RequiredStreams []string `json:"required_streams,omitempty"`
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var createDirs bool
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the recording output path from configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			sessionID := ctx.session()
			logger = logging.WithContext(logging.WithSessionID(cmd.Context(), sessionID), logger).
				With(logging.FieldComponent, "resolve")

			report := resolveReport{
				SessionID:       sessionID,
				ConfigPath:      ctx.configPath,
				Filename:        store.GetString("filename", outputpath.DefaultFilename),
				AutoStart:       store.GetBool("auto_start", false),
				RemoteControl:   store.GetBool("remote_control.enabled", true),
				RemotePort:      store.GetInt("remote_control.port", 22345),
				RequiredStreams: store.GetStringList("streams.required_labels"),
			}

			logger.Info("output path resolved",
				logging.FieldFilename, report.Filename,
				logging.FieldConfigPath, report.ConfigPath)

			if createDirs {
				dir := filepath.Dir(report.Filename)
				if dir != "" && dir != "." {
					if err := os.MkdirAll(dir, 0o755); err != nil {
						return fmt.Errorf("create output directory %q: %w", dir, err)
					}
					logger.Debug("output directory ready", "directory", dir)
				}
			}

			if !noHistory {
				recordResolution(ctx, cmd, logger, report, store.Hostname())
			}

			if jsonOutput {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Output file: %s\n", report.Filename)
			if report.ConfigPath != "" {
				fmt.Fprintf(out, "Config: %s\n", report.ConfigPath)
			}
			fmt.Fprintf(out, "Remote control: %s (port %d)\n", enabledDisabled(report.RemoteControl), report.RemotePort)
			fmt.Fprintf(out, "Auto start: %s\n", yesNo(report.AutoStart))
			if len(report.RequiredStreams) > 0 {
				fmt.Fprintf(out, "Required streams: %s\n", strings.Join(report.RequiredStreams, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the resolution as JSON")
	cmd.Flags().BoolVar(&createDirs, "create-dirs", false, "create the output directory if missing")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "skip recording this resolution in the history database")

	return cmd
}

// recordResolution appends to the history database. Failures are logged and
// swallowed so a broken history store never blocks a resolution.
func recordResolution(ctx *commandContext, cmd *cobra.Command, logger *slog.Logger, report resolveReport, hostname string) {
	path, err := ctx.historyPath()
	if err != nil {
		logger.Warn("history disabled", "error", err)
		return
	}
	store, err := history.Open(path)
	if err != nil {
		logger.Warn("history disabled", "error", err)
		return
	}
	defer store.Close()

	_, err = store.Record(cmd.Context(), history.Entry{
		SessionID:    report.SessionID,
		ConfigPath:   report.ConfigPath,
		ResolvedPath: report.Filename,
		Hostname:     hostname,
	})
	if err != nil {
		logger.Warn("history record failed", "error", err)
	}
}

func enabledDisabled(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
