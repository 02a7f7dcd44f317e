// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/bborbe/errors"
)

// ErrNoTagFound signals that no tag is reachable from the requested
// revision. Callers use it to switch to the untagged fallback.
var ErrNoTagFound = stderrors.New("no tag found")

// Gitter answers read-only queries against the repository history.
//
//counterfeiter:generate -o ../../mocks/gitter.go --fake-name Gitter . Gitter
type Gitter interface {
	Describe(ctx context.Context, revision string) (string, error)
	LogSubjects(ctx context.Context, rangeExpr string) ([]string, error)
	RootCommit(ctx context.Context, revision string) (string, error)
	CountCommits(ctx context.Context, rangeExpr string) (int, error)
	ShortHash(ctx context.Context, revision string) (string, error)
	HasUncommittedChanges(ctx context.Context) (bool, error)
}

// Tagger creates and publishes release tags.
//
//counterfeiter:generate -o ../../mocks/tagger.go --fake-name Tagger . Tagger
type Tagger interface {
	CreateTag(ctx context.Context, name string, revision string, message string) error
	PushTag(ctx context.Context, remote string, name string) error
}

// Range builds the expression selecting commits reachable from target
// but not from base. The base commit itself is excluded.
func Range(base string, target string) string {
	return base + ".." + target
}

// SplitRange splits a range expression built by Range.
func SplitRange(ctx context.Context, rangeExpr string) (string, string, error) {
	base, target, found := strings.Cut(rangeExpr, "..")
	if !found || base == "" || target == "" {
		return "", "", errors.Errorf(ctx, "invalid range expression '%s'", rangeExpr)
	}
	return base, target, nil
}
