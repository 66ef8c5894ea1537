package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"knobgenre/internal/registry"
	"knobgenre/internal/report"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var genreFlag string
	var subFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export classified songs as JSON, CSV, or an M3U playlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts := report.ExportOptions{
				Format:    format,
				Parent:    strings.TrimSpace(genreFlag),
				Sub:       strings.TrimSpace(subFlag),
				Output:    strings.TrimSpace(outputFlag),
				MediaRoot: cfg.Paths.MediaRoot,
			}
			return ctx.withStore(func(store *registry.Store) error {
				path, n, err := report.Export(cmd.Context(), store, opts)
				if err != nil {
					return fmt.Errorf("export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s tracks (%s) to %s\n", report.FormatCount(n), opts.Label(), path)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", string(report.FormatJSON), "Output format: json, csv, or m3u")
	cmd.Flags().StringVar(&genreFlag, "genre", "", "Only export this parent genre")
	cmd.Flags().StringVar(&subFlag, "subgenre", "", "Only export this subgenre")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file (default knob_<genre>.<format>)")
	return cmd
}
