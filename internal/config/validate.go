// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/ik5/aup3wav/audio"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConvert(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateConvert() error {
	if strings.EqualFold(c.Convert.SourceExt, c.Convert.OutputExt) {
		return fmt.Errorf("convert.output_ext must differ from convert.source_ext (both %q)", c.Convert.SourceExt)
	}
	for _, ext := range []string{c.Convert.SourceExt, c.Convert.OutputExt} {
		if len(ext) < 2 || strings.ContainsAny(ext[1:], `./\`) {
			return fmt.Errorf("extension %q must be a single extension such as \".aup3\"", ext)
		}
	}
	if _, err := audio.ParsePolicy(c.Convert.Malformed); err != nil {
		return fmt.Errorf("convert.malformed: %w", err)
	}
	if c.Convert.Workers < 1 || c.Convert.Workers > maxWorkers {
		return fmt.Errorf("convert.workers must be between 1 and %d", maxWorkers)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format must be auto, console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
