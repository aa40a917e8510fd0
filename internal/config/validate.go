package config

import (
	"fmt"
	"strings"

	"phashbench/internal/errs"
)

// Validate ensures the configuration is usable. knownMods and knownHashes are
// the names registered with the modification registry and the hash engine.
func (c *Config) Validate(knownMods, knownHashes []string) error {
	if err := validateNames("mod_names", c.ModNames, knownMods); err != nil {
		return err
	}
	if err := validateNames("hash_names", c.HashNames, knownHashes); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func validateNames(field string, names, known []string) error {
	allowed := make(map[string]struct{}, len(known))
	for _, name := range known {
		allowed[name] = struct{}{}
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := allowed[name]; !ok {
			return errs.Wrap(errs.ErrConfig, field, fmt.Sprintf("unknown name %q (available: %s)", name, strings.Join(known, ", ")), nil)
		}
		if _, dup := seen[name]; dup {
			return errs.Wrap(errs.ErrConfig, field, fmt.Sprintf("duplicate name %q", name), nil)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return errs.Wrap(errs.ErrConfig, "logging.format", fmt.Sprintf("unsupported value %q", c.Logging.Format), nil)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errs.Wrap(errs.ErrConfig, "logging.level", fmt.Sprintf("unsupported value %q", c.Logging.Level), nil)
	}
	return nil
}
