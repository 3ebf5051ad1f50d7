package main

import (
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCommand() *cobra.Command {
	var configFlag string
	var opts indexOptions

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "spindex",
		Short: "Index .ogg sound folders into a Minecraft sounds.json",
		Long: "Generates a sounds.json index from folders full of .ogg files.\n" +
			"Optionally merges the generated index into an existing resource pack.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.source, "source", "s", "", "Path to the source folder. Ogg files to be indexed are found here (default: current directory)")
	flags.StringVarP(&opts.target, "target", "t", "", "Path to the target folder. Ogg files will be copied here, if allowed")
	flags.BoolVarP(&opts.indexOnly, "index-only", "i", false, "Only produce the generated sounds file and then exit")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress printing of json file contents. Only show warnings")
	flags.BoolVarP(&opts.abortOnWarnings, "abort-warnings", "a", false, "Treat all warnings as fatal errors, and exit as soon as they occur")
	flags.BoolVarP(&opts.assumeYes, "yes", "y", false, "Answer yes to every prompt")

	rootCmd.AddCommand(newMergeCommand(ctx))
	rootCmd.AddCommand(newCatalogCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
