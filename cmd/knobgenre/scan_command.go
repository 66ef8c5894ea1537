package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"knobgenre/internal/registry"
	"knobgenre/internal/report"
	"knobgenre/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Discover audio files and sync them into the registry",
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
			return ctx.withRunLock(func() error {
				return ctx.withStore(func(store *registry.Store) error {
					sc := scanner.New(cfg, logger)
					stats, err := sc.Sync(cmd.Context(), store)
					if err != nil {
						if scanner.IsNotExist(err) {
							return fmt.Errorf("media root %s does not exist; set paths.media_root in the config", sc.Root())
						}
						return fmt.Errorf("scan: %w", err)
					}

					out := cmd.OutOrStdout()
					fmt.Fprintf(out, "Scanned %s\n", sc.Root())
					fmt.Fprintf(out, "  New:       %s\n", report.FormatCount(stats.New))
					fmt.Fprintf(out, "  Updated:   %s\n", report.FormatCount(stats.Updated))
					fmt.Fprintf(out, "  Removed:   %s\n", report.FormatCount(stats.Removed))
					fmt.Fprintf(out, "  Unchanged: %s\n", report.FormatCount(stats.Unchanged))
					fmt.Fprintf(out, "  Total:     %s audio files\n", report.FormatCount(stats.Total()))

					counts, err := store.ContentTypeCounts(cmd.Context())
					if err != nil {
						return fmt.Errorf("content type counts: %w", err)
					}
					if len(counts) == 0 {
						return nil
					}
					rows := make([][]string, 0, len(counts))
					for _, c := range counts {
						rows = append(rows, []string{c.Label, report.FormatCount(c.Count)})
					}
					fmt.Fprintln(out, report.RenderTable([]string{"Content type", "Tracks"}, rows, []report.Alignment{report.AlignLeft, report.AlignRight}))
					return nil
				})
			})
		},
	}
}
