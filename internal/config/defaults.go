// SPDX-License-Identifier: EPL-2.0

package config

const (
	defaultConfigPath = "~/.config/aup3wav/config.toml"
	projectConfigName = "aup3wav.toml"

	defaultSourceExt = ".aup3"
	defaultOutputExt = ".wav"
	defaultMalformed = "skip"
	defaultWorkers   = 1
	defaultLock      = true
	defaultLogLevel  = "info"
	defaultLogFormat = "auto"

	maxWorkers = 64
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Convert: Convert{
			SourceExt: defaultSourceExt,
			OutputExt: defaultOutputExt,
			Malformed: defaultMalformed,
			Workers:   defaultWorkers,
			Lock:      defaultLock,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
