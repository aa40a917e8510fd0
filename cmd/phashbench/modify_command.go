package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"phashbench/internal/logging"
	"phashbench/internal/modify"
)

func newModifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "modify <image> <modification> <output>",
		Short: "Apply a registered modification and save the result",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			logger := ctx.loggerFor(cmd)

			input, name, output := args[0], args[1], args[2]
			if !ctx.registry.Has(name) {
				return &modify.UnknownModificationError{Name: name}
			}
			img, err := ctx.codec.Open(input)
			if err != nil {
				return err
			}

			applied, err := modify.Process{
				Image:            img,
				ModificationName: name,
				SavePath:         output,
			}.Run(ctx.registry, ctx.codec)
			if err != nil {
				return err
			}

			logger.Info("modification applied",
				slog.String(logging.FieldImage, input),
				slog.String(logging.FieldModification, applied.Name()),
				slog.String(logging.FieldPath, output),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", applied.Name(), output)
			return nil
		},
	}
}
