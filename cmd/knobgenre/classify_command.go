package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"knobgenre/internal/classify/acoustid"
	"knobgenre/internal/classify/maest"
	"knobgenre/internal/classify/metadata"
	"knobgenre/internal/config"
	"knobgenre/internal/preflight"
	"knobgenre/internal/registry"
	"knobgenre/internal/report"
	"knobgenre/internal/stage"
	"knobgenre/internal/workflow"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var passFlag int
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Run classification passes over pending songs",
		Long: "Run the classification passes in escalation order: embedded tags and\n" +
			"directory hints, then AcoustID fingerprint lookups, then MAEST inference.\n" +
			"Use --pass to run a single pass.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passFlag != 0 && !registry.Pass(passFlag).Valid() {
				return fmt.Errorf("--pass must be 1, 2, or 3 (got %d)", passFlag)
			}
			if limitFlag < 0 {
				return errors.New("--limit must not be negative")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if failed := preflight.Failed(preflight.CheckPaths(cfg)); len(failed) > 0 {
				return preflightError(failed)
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			classifiers := selectClassifiers(buildClassifiers(cfg, logger), registry.Pass(passFlag))
			return ctx.withRunLock(func() error {
				return ctx.withStore(func(store *registry.Store) error {
					manager := workflow.NewManager(store, logger)
					results, runErr := manager.RunAll(runCtx, classifiers, workflow.RunOptions{Limit: limitFlag})

					out := cmd.OutOrStdout()
					printPassResults(out, results)

					progress, err := manager.Progress(context.WithoutCancel(runCtx))
					if err != nil {
						if runErr != nil {
							return runErr
						}
						return fmt.Errorf("progress: %w", err)
					}
					fmt.Fprintf(out, "\nOverall: %s/%s songs classified (%.1f%%)\n",
						report.FormatCount(progress.Classified),
						report.FormatCount(progress.Songs),
						progress.Percent(),
					)
					return runErr
				})
			})
		},
	}

	cmd.Flags().IntVar(&passFlag, "pass", 0, "Run only this pass (1=metadata, 2=acoustid, 3=maest)")
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "Maximum tracks to visit per pass (0 = all)")
	return cmd
}

// buildClassifiers returns every pass in escalation order.
func buildClassifiers(cfg *config.Config, logger *slog.Logger) []stage.Classifier {
	return []stage.Classifier{
		metadata.New(cfg, logger),
		acoustid.New(cfg, logger),
		maest.New(cfg, logger),
	}
}

func selectClassifiers(all []stage.Classifier, pass registry.Pass) []stage.Classifier {
	if pass == 0 {
		return all
	}
	for _, c := range all {
		if c.Pass() == pass {
			return []stage.Classifier{c}
		}
	}
	return nil
}

func printPassResults(out io.Writer, results []workflow.Result) {
	for _, r := range results {
		label := passLabel(r.Pass)
		if r.Unavailable {
			fmt.Fprintf(out, "%s: unavailable (%s)\n", label, r.Detail)
			continue
		}
		if r.Attempted() == 0 {
			fmt.Fprintf(out, "%s: nothing pending\n", label)
			continue
		}
		fmt.Fprintf(out, "%s: %s classified, %s without match in %s\n",
			label,
			report.FormatCount(r.Classified),
			report.FormatCount(r.Skipped),
			r.Elapsed.Round(10*time.Millisecond),
		)
	}
}

func passLabel(pass registry.Pass) string {
	return fmt.Sprintf("Pass %d (%s)", int(pass), pass)
}

func preflightError(failed []preflight.Result) error {
	parts := make([]string, 0, len(failed))
	for _, r := range failed {
		parts = append(parts, fmt.Sprintf("%s: %s", r.Name, r.Detail))
	}
	return fmt.Errorf("preflight failed: %s", strings.Join(parts, "; "))
}
