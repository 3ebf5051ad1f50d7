package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"spindex/internal/config"
	"spindex/internal/logging"
	"spindex/internal/manifest"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "merge <incoming> <existing>",
		Short: "Merge one sounds.json into another",
		Long: "Merges the events of <incoming> into <existing>. Sounds are unioned;\n" +
			"the replace flag and subtitle already present in <existing> are kept.\n" +
			"The result is written back to <existing> unless --output or --stdout is given.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "merge")

			incomingPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			existingPath, err := config.ExpandPath(args[1])
			if err != nil {
				return err
			}

			incoming, err := manifest.Load(incomingPath)
			if err != nil {
				return err
			}

			if toStdout {
				existing, err := manifest.Load(existingPath)
				if err != nil {
					return err
				}
				return manifest.Encode(cmd.OutOrStdout(), manifest.Merge(incoming, existing))
			}

			target := existingPath
			if strings.TrimSpace(outputPath) != "" {
				target, err = config.ExpandPath(outputPath)
				if err != nil {
					return err
				}
			}

			var merged manifest.Manifest
			if filepath.Clean(target) == filepath.Clean(existingPath) {
				merged, err = manifest.OpenStore(target, logger).Update(func(existing manifest.Manifest) manifest.Manifest {
					return manifest.Merge(incoming, existing)
				})
				if err != nil {
					return fmt.Errorf("update manifest: %w", err)
				}
			} else {
				existing, err := manifest.Load(existingPath)
				if err != nil {
					return err
				}
				merged = manifest.Merge(incoming, existing)
				if err := manifest.Save(target, merged); err != nil {
					return err
				}
			}

			logger.Info("merged manifests",
				logging.String("incoming", incomingPath),
				logging.String("existing", existingPath),
				logging.String("output", target))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d events (%d sounds) to %s\n", len(merged), merged.SoundCount(), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the merged manifest here instead of <existing>")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the merged manifest instead of writing a file")
	return cmd
}
