package config

import (
	"strings"

	"phashbench/internal/errs"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.ModNames = normalizeNames(c.ModNames)
	c.HashNames = normalizeNames(c.HashNames)
	c.normalizeLogging()
	if strings.TrimSpace(c.Version) == "" {
		c.Version = Version
	}
	return nil
}

func (c *Config) normalizePaths() error {
	dataDir := strings.TrimSpace(c.Paths.DataDir)
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	expanded, err := expandPath(dataDir)
	if err != nil {
		return errs.Wrap(errs.ErrConfig, "paths.data_dir", dataDir, err)
	}
	c.Paths.DataDir = expanded

	outputDir := strings.TrimSpace(c.Paths.OutputDir)
	expanded, err = expandPath(outputDir)
	if err != nil {
		return errs.Wrap(errs.ErrConfig, "paths.output_dir", outputDir, err)
	}
	c.Paths.OutputDir = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// normalizeNames trims entries and drops blanks. Names stay case-sensitive.
func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
