// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeConvert(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeConvert() error {
	var err error
	if c.Convert.Root, err = expandPath(strings.TrimSpace(c.Convert.Root)); err != nil {
		return fmt.Errorf("convert.root: %w", err)
	}
	c.Convert.SourceExt = normalizeExt(c.Convert.SourceExt, defaultSourceExt)
	c.Convert.OutputExt = normalizeExt(c.Convert.OutputExt, defaultOutputExt)

	c.Convert.Malformed = strings.ToLower(strings.TrimSpace(c.Convert.Malformed))
	if c.Convert.Malformed == "" {
		c.Convert.Malformed = defaultMalformed
	}
	if c.Convert.Workers == 0 {
		c.Convert.Workers = defaultWorkers
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

// normalizeExt trims ext and makes sure it starts with a dot.
func normalizeExt(ext, fallback string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return fallback
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
