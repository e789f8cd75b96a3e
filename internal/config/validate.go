package config

import (
	"fmt"
	"regexp"
)

var bitratePattern = regexp.MustCompile(`^[0-9]+[kKmM]?$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEncode(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateEncode() error {
	if !bitratePattern.MatchString(c.Encode.AudioBitrate) {
		return fmt.Errorf("encode.audio_bitrate %q is not a valid bitrate (e.g. 192k)", c.Encode.AudioBitrate)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
