package config

const (
	// Version is written into new configuration files.
	Version = "0.1.0"

	defaultDataDir   = "~/.local/share/phashbench"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	// EnvConfigPath overrides the configuration file location.
	EnvConfigPath = "PHASH_CONFIG_PATH"
)

var defaultHashNames = []string{"ahash"}

// Default returns a Config populated with repository defaults. ModNames is
// left empty, which means every registered modification.
func Default() Config {
	hashes := make([]string, len(defaultHashNames))
	copy(hashes, defaultHashNames)
	return Config{
		Version:   Version,
		ModNames:  []string{},
		HashNames: hashes,
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
