// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nextversion

import (
	"fmt"

	"github.com/bborbe/next-version/pkg/resolve"
	"github.com/bborbe/next-version/pkg/semver"
)

// Request selects what to calculate.
type Request struct {
	Revision string
	Release  bool
}

// Result is the calculated next version.
type Result struct {
	Version  semver.Version
	Previous semver.Version
	Bump     semver.Bump
	Tag      resolve.Tag
	Release  bool
	Dirty    bool
}

// String renders the version string: the bare triple for releases and
// unchanged versions, the prerelease form built from the distance
// otherwise.
func (r Result) String() string {
	if r.Release || r.Bump == semver.BumpIgnore {
		return r.Version.String()
	}
	result := fmt.Sprintf("%s-%s", r.Version, r.Tag.Distance.PrereleaseTag())
	if r.Dirty {
		result += ".dirty"
	}
	return result
}
