package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeFiles()
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	var err error
	c.Paths.DefaultTarget = strings.TrimSpace(c.Paths.DefaultTarget)
	if c.Paths.DefaultTarget, err = expandPath(c.Paths.DefaultTarget); err != nil {
		return fmt.Errorf("paths.default_target: %w", err)
	}
	return nil
}

func (c *Config) normalizeFiles() {
	c.Files.DefaultsFile = strings.TrimSpace(c.Files.DefaultsFile)
	if c.Files.DefaultsFile == "" {
		c.Files.DefaultsFile = defaultDefaultsFile
	}
	c.Files.GeneratedFile = strings.TrimSpace(c.Files.GeneratedFile)
	if c.Files.GeneratedFile == "" {
		c.Files.GeneratedFile = defaultGeneratedFile
	}
}

func (c *Config) normalizeCatalog() error {
	events := make([]string, 0, len(c.Catalog.ExtraEvents))
	seen := make(map[string]struct{}, len(c.Catalog.ExtraEvents))
	for _, name := range c.Catalog.ExtraEvents {
		normalized := strings.TrimSpace(name)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		events = append(events, normalized)
	}
	c.Catalog.ExtraEvents = events

	var err error
	c.Catalog.ExtraFile = strings.TrimSpace(c.Catalog.ExtraFile)
	if c.Catalog.ExtraFile, err = expandPath(c.Catalog.ExtraFile); err != nil {
		return fmt.Errorf("catalog.extra_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
