package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"phashbench/internal/imagehash"
	"phashbench/internal/modify"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered modifications and hash algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := ctx.registry.Entries()
			modRows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				modRows = append(modRows, []string{entry.Key, entry.Modification.Name(), modify.Describe(entry.Modification)})
			}

			names := imagehash.Names()
			algRows := make([][]string, 0, len(names))
			for _, name := range names {
				alg, err := imagehash.Lookup(name)
				if err != nil {
					return err
				}
				algRows = append(algRows, []string{name, strconv.Itoa(alg.Bits()), imagehash.Describe(alg)})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Modifications")
			fmt.Fprintln(out, renderTable([]string{"key", "self_name", "parameters"}, modRows, nil))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Algorithms")
			fmt.Fprintln(out, renderTable(
				[]string{"name", "bits", "description"},
				algRows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
}
