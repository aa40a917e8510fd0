package main

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/spf13/cobra"

	"phashbench/internal/bench"
	"phashbench/internal/logging"
)

func newHashCommand(ctx *commandContext) *cobra.Command {
	var algorithms []string
	var modification string
	var savePath string

	cmd := &cobra.Command{
		Use:   "hash <image>",
		Short: "Print perceptual hashes of an image",
		Long: "Decode an image, optionally apply one registered modification, and print\n" +
			"one line per algorithm: <algorithm>\\t<modification>\\t<hex>.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.loggerFor(cmd)

			algs, err := bench.ResolveAlgorithms(algorithmNames(algorithms, cfg), fallbackAlgorithm)
			if err != nil {
				return err
			}

			input := args[0]
			img, err := ctx.codec.Open(input)
			if err != nil {
				return err
			}

			key, selfName := bench.Original, bench.Original
			var target image.Image = img
			if name := modification; name != "" {
				m, err := ctx.registry.Resolve(name)
				if err != nil {
					return err
				}
				key, selfName = name, m.Name()
				target = m.Apply(img)
				if savePath != "" {
					if err := ctx.codec.Save(target, savePath); err != nil {
						return err
					}
					logger.Info("modified image written",
						slog.String(logging.FieldModification, selfName),
						slog.String(logging.FieldPath, savePath),
					)
				}
			} else if savePath != "" {
				return fmt.Errorf("--save requires --modification")
			}

			out := cmd.OutOrStdout()
			for _, result := range bench.HashAll(target, key, selfName, algs) {
				fmt.Fprintf(out, "%s\t%s\t%s\n", result.Algorithm, result.Modification, result.Fingerprint.Hex())
				logger.Debug("hash computed",
					slog.String(logging.FieldImage, input),
					slog.String(logging.FieldAlgorithm, result.Algorithm),
					slog.Int("bits", result.Bits),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&algorithms, "algorithm", "a", nil, "Hash algorithm (repeatable; defaults to hash_names)")
	cmd.Flags().StringVarP(&modification, "modification", "m", "", "Registered modification to apply before hashing")
	cmd.Flags().StringVar(&savePath, "save", "", "Write the modified image to this path")
	return cmd
}
