// SPDX-License-Identifier: Apache-2.0
// Package config loads Pathfinder settings with layered precedence:
// defaults, then an optional YAML file, then PATHFINDER_* environment
// variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Log       LogConfig       `koanf:"log"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Pipeline  PipelineConfig  `koanf:"pipeline"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Web       WebConfig       `koanf:"web"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, text
}

type CatalogConfig struct {
	Source string `koanf:"source"` // seed, file, sqlite
	Path   string `koanf:"path"`   // YAML file or sqlite database path
}

type PipelineConfig struct {
	Timeout string `koanf:"timeout"` // Go duration string, 0 disables
}

type TelemetryConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Exporter string `koanf:"exporter"` // stdout, otlp
	Endpoint string `koanf:"endpoint"` // OTLP gRPC endpoint
	Insecure bool   `koanf:"insecure"`
}

type WebConfig struct {
	Addr string `koanf:"addr"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Defaults
	k.Set("log.level", "info")
	k.Set("log.format", "text")
	k.Set("catalog.source", "seed")
	k.Set("catalog.path", "")
	k.Set("pipeline.timeout", "30s")
	k.Set("telemetry.enabled", false)
	k.Set("telemetry.exporter", "stdout")
	k.Set("telemetry.endpoint", "localhost:4317")
	k.Set("telemetry.insecure", true)
	k.Set("web.addr", ":8080")

	// 1. Load from file
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// 2. Load from ENV (PATHFINDER_CATALOG_SOURCE -> catalog.source)
	if err := k.Load(env.Provider("PATHFINDER_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "PATHFINDER_")), "_", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case "seed":
	case "file", "sqlite":
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required when catalog.source is %q", c.Catalog.Source)
		}
	default:
		return fmt.Errorf("catalog.source %q is not one of seed/file/sqlite", c.Catalog.Source)
	}
	if _, err := c.Pipeline.Duration(); err != nil {
		return fmt.Errorf("pipeline.timeout: %w", err)
	}
	switch c.Telemetry.Exporter {
	case "stdout", "otlp":
	default:
		return fmt.Errorf("telemetry.exporter %q is not one of stdout/otlp", c.Telemetry.Exporter)
	}
	return nil
}

// Duration parses the pipeline timeout. An empty value means the
// default of 30s; "0" disables the deadline.
func (p PipelineConfig) Duration() (time.Duration, error) {
	if p.Timeout == "" {
		return 30 * time.Second, nil
	}
	if p.Timeout == "0" {
		return 0, nil
	}
	return time.ParseDuration(p.Timeout)
}
