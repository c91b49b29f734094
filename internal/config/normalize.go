package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		expanded, err := expandPath(c.Paths.LogDir)
		if err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
		c.Paths.LogDir = expanded
	} else {
		c.Paths.LogDir = ""
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	c.Sample.Path = strings.TrimSpace(c.Sample.Path)
	if c.Sample.Path == "" {
		c.Sample.Path = defaultSamplePath
	}
	return nil
}
