// Package cmd defines the CLI commands wired up by kong.
package cmd

// CLI is the root command structure. Values can come from flags, env vars or
// config files (json/yaml/toml) resolved by the entrypoint.
type CLI struct {
	Config string    `help:"Path to a config file" env:"MACROPAD_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Run       Run           `cmd:"" default:"withargs" help:"Run the macro pad controller"`
	Check     Check         `cmd:"" help:"Validate profile files and report what would load"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}

// LogConfig configures the slog setup.
type LogConfig struct {
	Level string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"MACROPAD_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"MACROPAD_LOG_FILE"`
}
