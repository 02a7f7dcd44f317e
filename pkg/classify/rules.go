// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classify

import (
	"context"
	"regexp"

	"github.com/bborbe/errors"
	"github.com/bborbe/validation"

	"github.com/bborbe/next-version/pkg/semver"
)

// Default token sets. Each commit-type token belongs to exactly one set.
var (
	DefaultMajorTokens  = []string{"apichange", "breaking", "major"}
	DefaultMinorTokens  = []string{"feature", "feat", "minor", "added"}
	DefaultPatchTokens  = []string{"fix", "bugfix", "patch", "perf", "revert"}
	DefaultIgnoreTokens = []string{"docs", "chore", "test", "style", "refactor", "ci", "build", "cleanup", "ignore"}
)

var tokenRegexp = regexp.MustCompile(`^[a-z]+$`)

// Rules is the immutable mapping from commit-type tokens to bump severities.
type Rules struct {
	severities map[string]semver.Bump
}

// NewRules builds Rules from four token sets. Tokens must be lowercase
// words and must not appear in more than one set.
func NewRules(
	ctx context.Context,
	majorTokens []string,
	minorTokens []string,
	patchTokens []string,
	ignoreTokens []string,
) (Rules, error) {
	severities := make(map[string]semver.Bump)
	add := func(tokens []string, bump semver.Bump) error {
		for _, token := range tokens {
			if !tokenRegexp.MatchString(token) {
				return errors.Wrapf(ctx, validation.Error, "invalid token '%s'", token)
			}
			if existing, ok := severities[token]; ok {
				return errors.Wrapf(
					ctx,
					validation.Error,
					"token '%s' mapped to both %s and %s",
					token,
					existing,
					bump,
				)
			}
			severities[token] = bump
		}
		return nil
	}
	if err := add(majorTokens, semver.BumpMajor); err != nil {
		return Rules{}, err
	}
	if err := add(minorTokens, semver.BumpMinor); err != nil {
		return Rules{}, err
	}
	if err := add(patchTokens, semver.BumpPatch); err != nil {
		return Rules{}, err
	}
	if err := add(ignoreTokens, semver.BumpIgnore); err != nil {
		return Rules{}, err
	}
	return Rules{severities: severities}, nil
}

// Lookup returns the bump severity for a token.
func (r Rules) Lookup(token string) (semver.Bump, bool) {
	bump, ok := r.severities[token]
	return bump, ok
}
