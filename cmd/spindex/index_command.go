package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"spindex/internal/config"
	"spindex/internal/defaults"
	"spindex/internal/logging"
	"spindex/internal/manifest"
	"spindex/internal/pack"
)

type indexOptions struct {
	source          string
	target          string
	indexOnly       bool
	quiet           bool
	abortOnWarnings bool
	assumeYes       bool
}

// indexRun carries the state of one index invocation.
type indexRun struct {
	cfg    *config.Config
	opts   indexOptions
	out    io.Writer
	color  bool
	prompt *prompter
	logger *slog.Logger
}

func runIndex(cmd *cobra.Command, ctx *commandContext, flags indexOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = logging.NewComponentLogger(logger, "index")

	opts := mergeIndexOptions(flags, cfg)
	out := cmd.OutOrStdout()
	color := shouldColorize(out)
	run := &indexRun{
		cfg:    cfg,
		opts:   opts,
		out:    out,
		color:  color,
		prompt: newPrompter(cmd.InOrStdin(), out, color, opts.assumeYes, opts.abortOnWarnings),
		logger: logger,
	}

	err = run.execute(ctx)
	if errors.Is(err, errStopped) {
		logger.Info("run stopped at prompt")
		fmt.Fprintln(out)
		return nil
	}
	return err
}

// mergeIndexOptions layers command line flags over configured behaviour.
func mergeIndexOptions(flags indexOptions, cfg *config.Config) indexOptions {
	opts := flags
	opts.quiet = flags.quiet || cfg.Behaviour.Quiet
	opts.abortOnWarnings = flags.abortOnWarnings || cfg.Behaviour.AbortOnWarnings
	opts.assumeYes = flags.assumeYes || cfg.Behaviour.AssumeYes
	if opts.target == "" {
		opts.target = cfg.Paths.DefaultTarget
	}
	return opts
}

func (r *indexRun) execute(ctx *commandContext) error {
	source, err := resolveSource(r.opts.source)
	if err != nil {
		return err
	}
	if err := pack.ValidateSource(source); err != nil {
		return err
	}

	if !r.opts.quiet {
		printBanner(r.out, "Processing staging area ogg files:", "Source folder: "+source, r.color)
	}

	soundsDir := filepath.Join(source, pack.SoundsDir)
	found, err := pack.ScanSounds(soundsDir)
	if err != nil {
		return err
	}
	files, warnings := pack.FilterNames(found)
	r.logger.Debug("scanned source sounds",
		logging.String("source", source),
		logging.Int("found", len(found)),
		logging.Int("valid", len(files)))
	if err := r.prompt.warningsGate(warnings,
		fmt.Sprintf("There were %d warnings during the process:", len(warnings)),
		"continue"); err != nil {
		return err
	}

	defaultsPath := filepath.Join(source, r.cfg.Files.DefaultsFile)
	table, err := defaults.Load(defaultsPath)
	if err != nil {
		return fmt.Errorf("load defaults %s: %w", defaultsPath, err)
	}
	r.logger.Debug("loaded defaults",
		logging.String("path", defaultsPath),
		logging.Int("entries", table.Len()))

	cat, err := ctx.loadCatalog()
	if err != nil {
		return err
	}

	generated, warnings := manifest.Generate(filepath.Base(source), files, table, cat)
	if len(generated) == 0 {
		if !r.opts.quiet {
			fmt.Fprintln(r.out, "\nNothing to process")
		}
		return nil
	}
	if len(warnings) > 0 {
		r.logger.Warn("files skipped during indexing", logging.Int("count", len(warnings)))
	}
	if err := r.prompt.warningsGate(warnings,
		fmt.Sprintf("%d files could not be converted to event names:", len(warnings)),
		"skip those files"); err != nil {
		return err
	}

	generatedPath := filepath.Join(source, r.cfg.Files.GeneratedFile)
	if err := manifest.Save(generatedPath, generated); err != nil {
		return err
	}
	r.logger.Info("generated manifest written",
		logging.String("path", generatedPath),
		logging.Int("event_count", len(generated)),
		logging.Int("sound_count", generated.SoundCount()))

	if !r.opts.quiet {
		fmt.Fprintf(r.out, "\n%s contains the following contents:\n\n", r.cfg.Files.GeneratedFile)
		if err := manifest.Encode(r.out, generated); err != nil {
			return err
		}
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, renderSummary(generated))
	}

	if r.opts.indexOnly || r.opts.target == "" {
		fmt.Fprintln(r.out, "\nTarget not specified or index only mode. Program finished.")
		return nil
	}

	return r.incorporate(source, files, generated)
}

// incorporate copies the indexed sounds into the target pack and merges the
// generated manifest into the pack's sounds.json.
func (r *indexRun) incorporate(source string, files []string, generated manifest.Manifest) error {
	target, err := config.ExpandPath(r.opts.target)
	if err != nil {
		return fmt.Errorf("resolve target path: %w", err)
	}

	fmt.Fprintf(r.out, "\nTarget folder set to existing pack at:\n%s\n", colorText(target, ansiCyan, r.color))
	ok, err := r.prompt.confirm("Incorporate source files into existing pack?")
	if err != nil {
		return err
	}
	if !ok {
		return errStopped
	}

	layout := pack.TargetLayout(target)
	if !layout.Complete() {
		ok, err := r.prompt.confirm(fmt.Sprintf("Path %s has an incomplete structure. Create folder structure?", target))
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("aborted by user")
		}
		if err := layout.Create(); err != nil {
			return err
		}
		r.logger.Info("created target layout", logging.String("target", target))
	}

	if !r.opts.quiet {
		printBanner(r.out, "Copying files to target location:", "Target folder: "+target, r.color)
	}

	existingFiles, err := pack.ScanSounds(layout.Sounds)
	if err != nil {
		return err
	}
	overwrites := pack.Overwrites(files, existingFiles)
	if err := r.prompt.warningsGate(overwrites,
		fmt.Sprintf("Files could be overwritten during this process.  %d warning(s):", len(overwrites)),
		"overwrite these files"); err != nil {
		return err
	}

	if err := pack.CopySounds(files, source, target); err != nil {
		return err
	}
	r.logger.Info("copied sounds into target",
		logging.String("target", target),
		logging.Int("files", len(files)))

	if !r.opts.quiet {
		printBanner(r.out, "Incorporating JSON records into target sounds.json:", "Target file: "+layout.ManifestPath, r.color)
	}

	store := manifest.OpenStore(layout.ManifestPath, r.logger)
	combined, err := store.Update(func(existing manifest.Manifest) manifest.Manifest {
		return manifest.Merge(generated, existing)
	})
	if err != nil {
		return fmt.Errorf("update target manifest: %w", err)
	}

	if !r.opts.quiet {
		fmt.Fprintln(r.out, "\nCombined file has the following contents:")
		fmt.Fprintln(r.out)
		if err := manifest.Encode(r.out, combined); err != nil {
			return err
		}
	}
	return nil
}

func resolveSource(source string) (string, error) {
	if source == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		return wd, nil
	}
	path, err := config.ExpandPath(source)
	if err != nil {
		return "", fmt.Errorf("resolve source path: %w", err)
	}
	return path, nil
}
