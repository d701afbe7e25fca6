// Package commands implements CLI command handlers for nofliptester.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kamil-cwintal/no-flip-tester/pkg/config"
	"github.com/kamil-cwintal/no-flip-tester/pkg/generator"
	"github.com/kamil-cwintal/no-flip-tester/pkg/report"
	"github.com/kamil-cwintal/no-flip-tester/pkg/safeconv"
	"github.com/kamil-cwintal/no-flip-tester/pkg/telemetry"
	"github.com/kamil-cwintal/no-flip-tester/pkg/trial"
)

// NewRunCommand builds the "run" subcommand: execute the configured
// number of trials and print a summary table.
func NewRunCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run trials comparing AMC against the Kowalik and Brodal-Fagerberg baselines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrials(configPath, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")

	return cmd
}

func runTrials(configPath string, w io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := telemetry.NewLogger("nofliptester", slog.LevelInfo, false)
	registry := telemetry.NewRegistry()

	checkpoints := map[string]*report.Checkpoint{
		trial.StrategyAMC:     report.NewCheckpoint(trial.StrategyAMC),
		trial.StrategyKowalik: report.NewCheckpoint(trial.StrategyKowalik),
		trial.StrategyBrodal:  report.NewCheckpoint(trial.StrategyBrodal),
	}

	seed := cfg.Run.Seed

	for t := 0; t < cfg.Run.Trials; t++ {
		trialLogger := telemetry.TrialLogger(logger, t)

		if !cfg.Run.FixedSeed {
			seed = cfg.Run.Seed + uint64(safeconv.MustIntToUint(t))
		}

		result := trial.Run(trial.Params{
			Graph: generator.Config{
				V:       cfg.Graph.VertexCount,
				Alpha:   cfg.Graph.Alpha,
				Delta:   cfg.Sequence.Density,
				Purge:   cfg.Sequence.Purge,
				Length:  cfg.Sequence.Length,
				Seed:    seed,
				Sampler: resolveSampler(cfg.Sequence),
			},
			OutdegBound: cfg.Baseline.OutdegBound,
		})

		for _, outcome := range result.Outcomes {
			checkpoints[outcome.Strategy].Record(report.StrategySample{
				MaxOutdegree: outcome.MaxOutdegree,
				Flips:        outcome.Flips,
			})

			registry.Inc(outcome.Strategy+".flips", int64(outcome.Flips))
			registry.RecordPeak(outcome.Strategy+".outdegree", float64(outcome.MaxOutdegree))

			telemetry.StrategyLogger(trialLogger, outcome.Strategy).Info("trial complete",
				slog.Int("max_outdegree", outcome.MaxOutdegree),
				slog.Int("flips", outcome.Flips),
			)
		}

		if (t+1)%cfg.Run.CheckpointEvery == 0 {
			fmt.Fprintf(w, "--- checkpoint after %d trials ---\n", t+1)
			report.WriteSummary(w, orderedCheckpoints(checkpoints), cfg.Graph.Alpha)
		}
	}

	fmt.Fprintln(w, "--- final summary ---")
	report.WriteSummary(w, orderedCheckpoints(checkpoints), cfg.Graph.Alpha)

	return nil
}

func orderedCheckpoints(checkpoints map[string]*report.Checkpoint) []*report.Checkpoint {
	return []*report.Checkpoint{
		checkpoints[trial.StrategyAMC],
		checkpoints[trial.StrategyKowalik],
		checkpoints[trial.StrategyBrodal],
	}
}
