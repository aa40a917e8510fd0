package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"phashbench/internal/errs"
)

// Paths contains directory configuration.
type Paths struct {
	DataDir   string `toml:"data_dir"`
	OutputDir string `toml:"output_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config enumerates the modifications and hash algorithms a run uses.
//
// HashNames selects the algorithms commands use when none are given on the
// command line; the hashing engine itself never reads it.
type Config struct {
	Version   string   `toml:"version"`
	ModNames  []string `toml:"mod_names"`
	HashNames []string `toml:"hash_names"`
	Paths     Paths    `toml:"paths"`
	Logging   Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path of the per-user config file.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/phashbench/config.toml")
}

// Load locates and parses a configuration file. A missing file yields the
// defaults. The returned bool reports whether a file was read.
func Load(path string) (*Config, string, bool, error) {
	loadDotEnv()

	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, errs.Wrap(errs.ErrConfig, "resolve path", path, err)
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, errs.Wrap(errs.ErrConfig, "open", resolvedPath, err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, errs.Wrap(errs.ErrConfig, "parse", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// loadDotEnv reads ./.env without overriding variables already set.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, err
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("%s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("phashbench.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data directory.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.DataDir, 0o755); err != nil {
		return errs.Wrap(errs.ErrConfig, "create data directory", c.Paths.DataDir, err)
	}
	return nil
}

// LedgerPath is the results database inside the data directory.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.Paths.DataDir, "results.db")
}

// LogPath is the log file inside the data directory.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.DataDir, "phashbench.log")
}

// Marshal renders the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errs.Wrap(errs.ErrConfig, "encode", "", err)
	}
	return data, nil
}

// CreateDefault writes the default configuration to path. It fails with
// errs.ErrConfigExists when the file is present and overwrite is false. A
// sibling lock file serialises concurrent writers and stays in place after
// the write.
func CreateDefault(path string, overwrite bool) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Wrap(errs.ErrConfig, "create config directory", dir, err)
		}
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return errs.Wrap(errs.ErrConfig, "lock", path, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errs.Wrap(errs.ErrConfigExists, "create", path, nil)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return errs.Wrap(errs.ErrConfig, "check", path, err)
		}
	}

	cfg := Default()
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrConfig, "write", path, err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
