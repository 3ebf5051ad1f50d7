package config

const (
	defaultConfigPath    = "~/.config/spindex/config.toml"
	projectConfigFile    = "spindex.toml"
	dotEnvFile           = ".env"
	defaultDefaultsFile  = "defaults.json"
	defaultGeneratedFile = "generated-sounds.json"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Files: Files{
			DefaultsFile:  defaultDefaultsFile,
			GeneratedFile: defaultGeneratedFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
