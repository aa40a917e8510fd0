package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"phashbench/internal/ledger"
)

type historyEntry struct {
	RunID        string    `json:"run_id"`
	CreatedAt    time.Time `json:"created_at"`
	Image        string    `json:"image"`
	Modification string    `json:"modification"`
	Algorithm    string    `json:"algorithm"`
	Bits         int       `json:"bits"`
	Fingerprint  string    `json:"fingerprint"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently recorded results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}

			store, err := ledger.Open(cmd.Context(), cfg.LedgerPath())
			if err != nil {
				return fmt.Errorf("open results ledger: %w", err)
			}
			defer store.Close()

			rows, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				entries := make([]historyEntry, 0, len(rows))
				for _, row := range rows {
					entries = append(entries, historyEntry{
						RunID:        row.RunID,
						CreatedAt:    row.CreatedAt,
						Image:        row.ImagePath,
						Modification: row.Modification,
						Algorithm:    row.Algorithm,
						Bits:         row.Bits,
						Fingerprint:  row.Fingerprint,
					})
				}
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No recorded results")
				return nil
			}
			tableRows := make([][]string, 0, len(rows))
			for _, row := range rows {
				tableRows = append(tableRows, []string{
					shortRunID(row.RunID),
					formatTimestamp(row.CreatedAt),
					row.ImagePath,
					row.Modification,
					row.Algorithm,
					strconv.Itoa(row.Bits),
					row.Fingerprint,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"run", "created_at", "image", "modification", "algorithm", "bits", "fingerprint"},
				tableRows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of rows")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04:05")
}
