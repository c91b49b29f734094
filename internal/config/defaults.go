package config

const (
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLockTimeoutSeconds = 10
	defaultSamplePath         = "sample_ingredients.xlsx"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Convert: Convert{
			LockTimeoutSeconds: defaultLockTimeoutSeconds,
		},
		Sample: Sample{
			Path: defaultSamplePath,
		},
	}
}
