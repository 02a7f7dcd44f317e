// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// Bump is the magnitude of a version increment. The values are ordered,
// higher bumps win when aggregating.
const (
	BumpIgnore Bump = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

// AvailableBumps contains all valid bump values.
var AvailableBumps = Bumps{BumpIgnore, BumpPatch, BumpMinor, BumpMajor}

// Bump is an ordered enum for bump severities.
type Bump int

func (b Bump) String() string {
	switch b {
	case BumpIgnore:
		return "ignore"
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	default:
		return "unknown"
	}
}

func (b Bump) Validate(ctx context.Context) error {
	if !AvailableBumps.Contains(b) {
		return errors.Wrapf(ctx, validation.Error, "unknown bump '%d'", b)
	}
	return nil
}

// Max returns the higher of both bumps.
func (b Bump) Max(other Bump) Bump {
	if other > b {
		return other
	}
	return b
}

func (b Bump) Ptr() *Bump {
	return &b
}

// ParseBump parses a bump name into a Bump.
func ParseBump(ctx context.Context, value string) (Bump, error) {
	switch value {
	case "ignore":
		return BumpIgnore, nil
	case "patch":
		return BumpPatch, nil
	case "minor":
		return BumpMinor, nil
	case "major":
		return BumpMajor, nil
	default:
		return BumpIgnore, errors.Wrapf(ctx, validation.Error, "unknown bump '%s'", value)
	}
}

// Bumps is a collection of Bump values.
type Bumps []Bump

func (b Bumps) Contains(bump Bump) bool {
	return collection.Contains(b, bump)
}

// Max returns the highest bump in the collection, BumpIgnore when empty.
func (b Bumps) Max() Bump {
	result := BumpIgnore
	for _, bump := range b {
		result = result.Max(bump)
	}
	return result
}
