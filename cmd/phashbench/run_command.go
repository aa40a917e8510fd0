package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"phashbench/internal/bench"
	"phashbench/internal/ledger"
	"phashbench/internal/logging"
	"phashbench/internal/preflight"
)

type runOutput struct {
	RunID   string      `json:"run_id,omitempty"`
	Image   string      `json:"image"`
	Results []runResult `json:"results"`
}

type runResult struct {
	Modification string `json:"modification"`
	Algorithm    string `json:"algorithm"`
	Bits         int    `json:"bits"`
	Fingerprint  string `json:"fingerprint"`
	SavedPath    string `json:"saved_path,omitempty"`
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var outDir string
	var record bool
	var jsonOutput bool
	var algorithms []string

	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Hash an image and each configured modification of it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			input := args[0]

			algs, err := bench.ResolveAlgorithms(algorithmNames(algorithms, cfg), fallbackAlgorithm)
			if err != nil {
				return err
			}

			dir := strings.TrimSpace(outDir)
			if dir == "" {
				dir = cfg.Paths.OutputDir
			}
			if dir != "" {
				if err := preflight.CheckWritableDir(dir); err != nil {
					return fmt.Errorf("output directory: %w", err)
				}
			}

			var runID string
			logger := ctx.loggerFor(cmd)
			if record {
				runID = uuid.NewString()
				logger = logger.With(slog.String(logging.FieldRunID, runID))
			}

			runner, err := bench.New(bench.Options{
				Registry:      ctx.registry,
				Modifications: ctx.modificationNames(cfg),
				Algorithms:    algs,
				OutputDir:     dir,
				Encoder:       ctx.codec,
				Logger:        logger,
			})
			if err != nil {
				return err
			}

			img, err := ctx.codec.Open(input)
			if err != nil {
				return err
			}
			results, err := runner.Run(cmd.Context(), img, input)
			if err != nil {
				return err
			}

			if record {
				if err := recordResults(cmd, cfg.LedgerPath(), runID, input, results); err != nil {
					return err
				}
				logger.Info("results recorded", slog.Int("rows", len(results)))
			}

			if jsonOutput {
				return writeJSON(cmd, buildRunOutput(runID, input, results))
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Modification, r.Algorithm, strconv.Itoa(r.Bits), r.Fingerprint.Hex()})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"modification", "algorithm", "bits", "fingerprint"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			if record {
				fmt.Fprintf(out, "Recorded %d results as run %s\n", len(results), runID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory for modified images (defaults to paths.output_dir)")
	cmd.Flags().BoolVar(&record, "record", false, "Append results to the results ledger")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringSliceVarP(&algorithms, "algorithm", "a", nil, "Hash algorithm (repeatable; defaults to hash_names)")
	return cmd
}

func recordResults(cmd *cobra.Command, path, runID, input string, results []bench.Result) error {
	store, err := ledger.Open(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("open results ledger: %w", err)
	}
	defer store.Close()

	rows := make([]ledger.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, ledger.Row{
			ImagePath:    input,
			Modification: r.Modification,
			Algorithm:    r.Algorithm,
			Bits:         r.Bits,
			Fingerprint:  r.Fingerprint.Hex(),
		})
	}
	return store.Record(cmd.Context(), runID, rows)
}

func buildRunOutput(runID, input string, results []bench.Result) runOutput {
	out := runOutput{RunID: runID, Image: input, Results: make([]runResult, 0, len(results))}
	for _, r := range results {
		out.Results = append(out.Results, runResult{
			Modification: r.Modification,
			Algorithm:    r.Algorithm,
			Bits:         r.Bits,
			Fingerprint:  r.Fingerprint.Hex(),
			SavedPath:    r.SavedPath,
		})
	}
	return out
}
