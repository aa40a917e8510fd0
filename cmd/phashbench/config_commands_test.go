package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"phashbench/internal/errs"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Data directory")
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote default configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if !errors.Is(err, errs.ErrConfigExists) {
		t.Fatalf("expected config exists error, got %v", err)
	}
	var buf bytes.Buffer
	reportError(&buf, err)
	requireContains(t, buf.String(), "error (config_exists): ")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigValidateRejectsUnknownNames(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestConfig(t, env.configPath, "hash_names = [\"md5\"]\n")

	_, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if !errors.Is(err, errs.ErrConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
	if errs.Kind(err) != "config" {
		t.Fatalf("unexpected kind %q", errs.Kind(err))
	}
}

func TestConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "hash_names")
	requireContains(t, out, "dhash")
	requireContains(t, out, env.dataDir)
}

func TestConfigFromEnvironment(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("PHASH_CONFIG_PATH", env.configPath)

	out, _, err := runCLI(t, []string{"hash", env.imagePath}, "")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	requireContains(t, out, "dhash\tnone\t")
}
