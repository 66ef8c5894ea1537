package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"knobgenre/internal/registry"
	"knobgenre/internal/report"
)

const (
	reportSummary      = "summary"
	reportParent       = "parent"
	reportSub          = "sub"
	reportUnclassified = "unclassified"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var byFlag string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show classification progress and genre distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := strings.ToLower(strings.TrimSpace(byFlag))
			switch view {
			case "", reportSummary, reportParent, reportSub, reportUnclassified:
			default:
				return fmt.Errorf("unknown report %q (want summary, parent, sub, or unclassified)", byFlag)
			}

			return ctx.withStore(func(store *registry.Store) error {
				c := cmd.Context()
				out := cmd.OutOrStdout()
				switch view {
				case reportParent:
					dist, err := report.BuildParentDistribution(c, store)
					if err != nil {
						return fmt.Errorf("parent distribution: %w", err)
					}
					report.RenderParents(out, dist)
				case reportSub:
					groups, err := report.BuildSubDistribution(c, store)
					if err != nil {
						return fmt.Errorf("subgenre distribution: %w", err)
					}
					report.RenderSubs(out, groups)
				case reportUnclassified:
					groups, total, err := report.BuildUnclassified(c, store)
					if err != nil {
						return fmt.Errorf("unclassified tracks: %w", err)
					}
					report.RenderUnclassified(out, groups, total)
				default:
					summary, err := report.BuildSummary(c, store)
					if err != nil {
						return fmt.Errorf("summary: %w", err)
					}
					report.RenderSummary(out, summary)
					if summary.Classified == 0 {
						return nil
					}
					dist, err := report.BuildParentDistribution(c, store)
					if err != nil {
						return fmt.Errorf("parent distribution: %w", err)
					}
					report.RenderParents(out, dist)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&byFlag, "by", reportSummary, "Report view: summary, parent, sub, or unclassified")
	return cmd
}
