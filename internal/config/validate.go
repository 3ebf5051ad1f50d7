package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFiles(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFiles() error {
	if err := ensureBaseNames(map[string]string{
		"files.defaults_file":  c.Files.DefaultsFile,
		"files.generated_file": c.Files.GeneratedFile,
	}); err != nil {
		return err
	}
	if c.Files.DefaultsFile == c.Files.GeneratedFile {
		return errors.New("files.generated_file must differ from files.defaults_file")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	for _, name := range c.Catalog.ExtraEvents {
		if !strings.Contains(name, ".") || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
			return fmt.Errorf("catalog.extra_events: %q is not a dotted sound event name", name)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

func ensureBaseNames(values map[string]string) error {
	for key, value := range values {
		if value == "" {
			return fmt.Errorf("%s must be set", key)
		}
		if strings.ContainsAny(value, `/\`) {
			return fmt.Errorf("%s must be a file name, not a path", key)
		}
	}
	return nil
}
