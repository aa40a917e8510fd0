// Package config loads, normalizes, and validates phashbench configuration.
//
// The configuration is a small TOML record naming the modifications and hash
// algorithms a benchmark run should use, plus data and logging settings. The
// package resolves the file location (flag, PHASH_CONFIG_PATH, user config
// directory, working directory), loads an optional .env first, expands tilde
// paths, and writes the default file for `phashbench config init`.
//
// Name validation needs the registered modification and algorithm names; the
// caller passes them to Validate so this package stays independent of the
// engines.
package config
