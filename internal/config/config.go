// Package config loads observer site settings from an INI file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	gcfg "gopkg.in/gcfg.v1"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Config holds the almanac's file-based settings.
//
// The file uses INI syntax:
//
//	[site]
//	name = Greenwich
//	latitude = 51.4769
//	longitude = 0.0
//
//	[display]
//	refresh = 30s
//	log-level = info
type Config struct {
	Site struct {
		Name      string
		Latitude  float64
		Longitude float64
	}
	Display struct {
		Refresh  string
		LogLevel string `gcfg:"log-level"`
	}
}

// Default returns the built-in configuration: the Greenwich meridian site
// with a 30 second refresh.
func Default() Config {
	var c Config
	c.Site.Name = "Greenwich"
	c.Site.Latitude = 51.4769
	c.Site.Longitude = 0.0
	c.Display.Refresh = "30s"
	c.Display.LogLevel = "info"
	return c
}

// DefaultPath returns the conventional config file location, or "" when
// the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ls-almanac", "config.ini")
}

// Load reads a config file, layering it over the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if err := gcfg.ReadFileInto(&c, path); err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	return c, c.validate()
}

// Parse reads configuration from a string, layered over the defaults.
func Parse(text string) (Config, error) {
	c := Default()
	if err := gcfg.ReadStringInto(&c, text); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	if c.Site.Latitude < -90 || c.Site.Latitude > 90 {
		return fmt.Errorf("latitude %.4f out of range [-90, 90]", c.Site.Latitude)
	}
	if c.Site.Longitude < -180 || c.Site.Longitude > 180 {
		return fmt.Errorf("longitude %.4f out of range [-180, 180]", c.Site.Longitude)
	}
	if _, err := time.ParseDuration(c.Display.Refresh); err != nil {
		return fmt.Errorf("refresh interval %q: %w", c.Display.Refresh, err)
	}
	return nil
}

// Observer returns the configured site as an observer location.
func (c Config) Observer() astro.Observer {
	return astro.Observer{
		LatDeg: c.Site.Latitude,
		LonDeg: c.Site.Longitude,
		Name:   c.Site.Name,
	}
}

// RefreshInterval returns the parsed refresh setting.
func (c Config) RefreshInterval() time.Duration {
	d, err := time.ParseDuration(c.Display.Refresh)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
