// Package config loads pathlens configuration from built-in defaults, an
// optional YAML file, and PATHLENS_* environment variables, in that order
// of increasing precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PATHLENS_"

// Config holds the runtime configuration.
type Config struct {
	IgnoredPrefixes []string      // path prefixes that must never resolve (e.g. network mounts)
	ProbeDelay      time.Duration // settling delay before each existence probe
	LogLevel        string
}

var defaults = map[string]interface{}{
	"ignored_prefixes": "",
	"probe_delay":      "10ms",
	"log_level":        "info",
}

// Load builds the configuration. path may be empty, in which case no
// config file is read.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	delay, err := time.ParseDuration(k.String("probe_delay"))
	if err != nil {
		return nil, fmt.Errorf("parse probe_delay: %w", err)
	}

	return &Config{
		IgnoredPrefixes: SplitPrefixes(k.String("ignored_prefixes")),
		ProbeDelay:      delay,
		LogLevel:        k.String("log_level"),
	}, nil
}

// SplitPrefixes splits a comma-separated prefix list, trimming whitespace
// and dropping empty entries.
func SplitPrefixes(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
