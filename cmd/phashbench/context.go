package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"phashbench/internal/config"
	"phashbench/internal/imagehash"
	"phashbench/internal/imageio"
	"phashbench/internal/logging"
	"phashbench/internal/modify"
)

// fallbackAlgorithm is used when neither flags nor hash_names pick one.
const fallbackAlgorithm = imagehash.NameAverage

type commandContext struct {
	configFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger

	registry *modify.Registry
	codec    imageio.Codec
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		registry:   modify.DefaultRegistry(),
		codec:      imageio.New(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.Validate(c.registry.Names(), imagehash.Names()); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// loggerFor returns the configured logger, falling back to a discard logger
// when the log file cannot be opened.
func (c *commandContext) loggerFor(cmd *cobra.Command) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger.With(slog.String("command", cmd.CommandPath()))
	})
	return c.logger
}

// modificationNames returns the configured modification keys, or every
// registered key when the config names none.
func (c *commandContext) modificationNames(cfg *config.Config) []string {
	if cfg != nil && len(cfg.ModNames) > 0 {
		return cfg.ModNames
	}
	return c.registry.Names()
}

// algorithmNames picks flag values first, then hash_names.
func algorithmNames(flagValues []string, cfg *config.Config) []string {
	if len(flagValues) > 0 {
		return flagValues
	}
	if cfg != nil && len(cfg.HashNames) > 0 {
		return cfg.HashNames
	}
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
