package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"spindex/internal/catalog"
	"spindex/internal/config"
	"spindex/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the invocation logger, tagged with a fresh run id.
func (c *commandContext) ensureLogger(stderr io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, stderr)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logging: %w", err)
			return
		}
		logger, runID := logging.WithRun(logger)
		logger.Debug("spindex invocation started",
			logging.String(logging.FieldRunID, runID),
			logging.String("version", version))
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// loadCatalog returns the bundled catalog extended with configured events.
func (c *commandContext) loadCatalog() (*catalog.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	cat := catalog.Default()
	if len(cfg.Catalog.ExtraEvents) > 0 {
		cat = cat.With(cfg.Catalog.ExtraEvents...)
	}
	if cfg.Catalog.ExtraFile != "" {
		cat, err = cat.WithFile(cfg.Catalog.ExtraFile)
		if err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
