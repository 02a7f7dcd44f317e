// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"regexp"

	"github.com/bborbe/errors"
	"github.com/bborbe/validation"

	"github.com/bborbe/next-version/pkg/classify"
	"github.com/bborbe/next-version/pkg/resolve"
)

// Config holds the next-version configuration.
type Config struct {
	Engine           Engine   `yaml:"engine"`
	TagPrefixPattern string   `yaml:"tagPrefixPattern"`
	TagSuffixPattern string   `yaml:"tagSuffixPattern"`
	MajorTokens      []string `yaml:"majorTokens"`
	MinorTokens      []string `yaml:"minorTokens"`
	PatchTokens      []string `yaml:"patchTokens"`
	IgnoreTokens     []string `yaml:"ignoreTokens"`
	DetectDirty      bool     `yaml:"detectDirty"`
	Remote           string   `yaml:"remote"`
}

// Defaults returns a Config with all default values.
func Defaults() Config {
	return Config{
		Engine:           EngineExec,
		TagPrefixPattern: resolve.DefaultTagPrefixPattern,
		TagSuffixPattern: resolve.DefaultTagSuffixPattern,
		MajorTokens:      classify.DefaultMajorTokens,
		MinorTokens:      classify.DefaultMinorTokens,
		PatchTokens:      classify.DefaultPatchTokens,
		IgnoreTokens:     classify.DefaultIgnoreTokens,
		DetectDirty:      false,
		Remote:           "origin",
	}
}

// Validate validates the config fields.
func (c Config) Validate(ctx context.Context) error {
	return validation.All{
		validation.Name("engine", c.Engine),
		validation.Name("tagPrefixPattern", validation.HasValidationFunc(func(ctx context.Context) error {
			if _, err := regexp.Compile(c.TagPrefixPattern); err != nil {
				return errors.Wrap(ctx, err, "compile tag prefix pattern")
			}
			return nil
		})),
		validation.Name("tagSuffixPattern", validation.HasValidationFunc(func(ctx context.Context) error {
			if _, err := regexp.Compile(c.TagSuffixPattern); err != nil {
				return errors.Wrap(ctx, err, "compile tag suffix pattern")
			}
			return nil
		})),
		validation.Name("tokens", validation.HasValidationFunc(func(ctx context.Context) error {
			_, err := classify.NewRules(ctx, c.MajorTokens, c.MinorTokens, c.PatchTokens, c.IgnoreTokens)
			return err
		})),
		validation.Name("remote", validation.NotEmptyString(c.Remote)),
	}.Validate(ctx)
}
