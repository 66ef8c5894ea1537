package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"knobgenre/internal/preflight"
	"knobgenre/internal/registry"
	"knobgenre/internal/report"
	"knobgenre/internal/workflow"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration, dependency, and pass readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			c := cmd.Context()

			configMessage := ctx.configPath
			if !ctx.configExists {
				configMessage += " (not found; defaults in use)"
			}
			writeLines(out, renderSectionHeader("Configuration", colorize)...)
			writeLines(out,
				renderStatusLine("Config", statusInfo, configMessage, colorize),
				renderStatusLine("Media root", statusInfo, cfg.Paths.MediaRoot, colorize),
				renderStatusLine("Registry", statusInfo, cfg.Paths.Database, colorize),
				renderStatusLine("MAEST enabled", statusInfo, yesNo(cfg.MAEST.Enabled), colorize),
			)

			fmt.Fprintln(out)
			writeLines(out, renderSectionHeader("Dependencies", colorize)...)
			statuses := preflight.CheckSystemDeps(cfg)
			writeLines(out, renderDependencySummary(statuses, colorize))
			for _, status := range statuses {
				writeLines(out, renderDependencyLine(status, colorize))
			}

			fmt.Fprintln(out)
			writeLines(out, renderSectionHeader("Preflight", colorize)...)
			for _, result := range preflight.RunAll(c, cfg) {
				writeLines(out, renderPreflightLine(result, colorize))
			}

			return ctx.withStore(func(store *registry.Store) error {
				manager := workflow.NewManager(store, logger)
				statuses, err := manager.Status(c, buildClassifiers(cfg, logger))
				if err != nil {
					return fmt.Errorf("pass status: %w", err)
				}
				fmt.Fprintln(out)
				writeLines(out, renderSectionHeader("Passes", colorize)...)
				for _, ps := range statuses {
					writeLines(out, renderPassLine(ps, colorize))
				}

				progress, err := manager.Progress(c)
				if err != nil {
					return fmt.Errorf("progress: %w", err)
				}
				fmt.Fprintln(out)
				writeLines(out, renderStatusLine("Classified", statusInfo, fmt.Sprintf("%s/%s songs (%.1f%%)",
					report.FormatCount(progress.Classified),
					report.FormatCount(progress.Songs),
					progress.Percent(),
				), colorize))
				return nil
			})
		},
	}
}
