// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"

	"github.com/bborbe/errors"
	"gopkg.in/yaml.v3"
)

// Loader loads configuration from a file.
//
//counterfeiter:generate -o ../../mocks/config-loader.go --fake-name Loader . Loader
type Loader interface {
	Load(ctx context.Context) (Config, error)
}

// fileLoader implements Loader by reading from a file.
type fileLoader struct {
	configPath string
}

// NewLoader creates a Loader that reads from the given path.
// An empty path falls back to .next-version.yaml in the current directory.
func NewLoader(configPath string) Loader {
	if configPath == "" {
		configPath = ".next-version.yaml"
	}
	return &fileLoader{
		configPath: configPath,
	}
}

// partialConfig is used for YAML unmarshaling to distinguish between
// explicitly set zero values and missing fields.
type partialConfig struct {
	Engine           *Engine  `yaml:"engine"`
	TagPrefixPattern *string  `yaml:"tagPrefixPattern"`
	TagSuffixPattern *string  `yaml:"tagSuffixPattern"`
	MajorTokens      []string `yaml:"majorTokens"`
	MinorTokens      []string `yaml:"minorTokens"`
	PatchTokens      []string `yaml:"patchTokens"`
	IgnoreTokens     []string `yaml:"ignoreTokens"`
	DetectDirty      *bool    `yaml:"detectDirty"`
	Remote           *string  `yaml:"remote"`
}

// Load reads the config file, merges with defaults, validates, and returns the config.
func (l *fileLoader) Load(ctx context.Context) (Config, error) {
	// Start with defaults
	cfg := Defaults()

	// Try to read config file
	// #nosec G304 -- configPath comes from the --config flag
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist - return defaults
			return cfg, nil
		}
		return Config{}, errors.Wrap(ctx, err, "read config file")
	}

	// Parse YAML into partial config to preserve defaults for missing fields
	var partial partialConfig
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return Config{}, errors.Wrap(ctx, err, "parse config file")
	}

	// Merge non-nil values onto defaults
	if partial.Engine != nil {
		cfg.Engine = *partial.Engine
	}
	if partial.TagPrefixPattern != nil {
		cfg.TagPrefixPattern = *partial.TagPrefixPattern
	}
	if partial.TagSuffixPattern != nil {
		cfg.TagSuffixPattern = *partial.TagSuffixPattern
	}
	if partial.MajorTokens != nil {
		cfg.MajorTokens = partial.MajorTokens
	}
	if partial.MinorTokens != nil {
		cfg.MinorTokens = partial.MinorTokens
	}
	if partial.PatchTokens != nil {
		cfg.PatchTokens = partial.PatchTokens
	}
	if partial.IgnoreTokens != nil {
		cfg.IgnoreTokens = partial.IgnoreTokens
	}
	if partial.DetectDirty != nil {
		cfg.DetectDirty = *partial.DetectDirty
	}
	if partial.Remote != nil {
		cfg.Remote = *partial.Remote
	}

	// Validate merged config
	if err := cfg.Validate(ctx); err != nil {
		return Config{}, errors.Wrap(ctx, err, "validate config")
	}

	return cfg, nil
}
