// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/bborbe/errors"
)

// Version represents a parsed semantic version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses "X.Y.Z" into a Version.
// Returns error if format is invalid.
func ParseVersion(ctx context.Context, value string) (Version, error) {
	// Match X.Y.Z
	re := regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)
	matches := re.FindStringSubmatch(value)
	if matches == nil {
		return Version{}, errors.Errorf(ctx, "invalid version: %s", value)
	}

	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])
	patch, _ := strconv.Atoi(matches[3])

	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}, nil
}

// String returns the "X.Y.Z" representation.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Next returns the version incremented according to the given bump.
func (v Version) Next(bump Bump) Version {
	switch bump {
	case BumpMajor:
		return Version{
			Major: v.Major + 1,
			Minor: 0,
			Patch: 0,
		}
	case BumpMinor:
		return Version{
			Major: v.Major,
			Minor: v.Minor + 1,
			Patch: 0,
		}
	case BumpPatch:
		return Version{
			Major: v.Major,
			Minor: v.Minor,
			Patch: v.Patch + 1,
		}
	default:
		return v
	}
}

// Less returns true if v is lower than other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// Equal returns true if both versions have the same components.
func (v Version) Equal(other Version) bool {
	return v.Major == other.Major && v.Minor == other.Minor && v.Patch == other.Patch
}
