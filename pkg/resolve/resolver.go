// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/bborbe/errors"
	"go.uber.org/zap"

	"github.com/bborbe/next-version/pkg/git"
	"github.com/bborbe/next-version/pkg/semver"
)

// ErrTagFormat signals that the resolved tag does not match the
// expected version pattern. The true last version is unknown then,
// callers must abort.
var ErrTagFormat = stderrors.New("tag format mismatch")

// DefaultTagPrefixPattern accepts any run of non-digit characters
// before the version triple, e.g. "v" or "release-".
const DefaultTagPrefixPattern = `\D*`

// DefaultTagSuffixPattern accepts nothing after the version triple.
const DefaultTagSuffixPattern = ``

// Describe output is "<tag>-<N>-g<shorthash>". The tag group is greedy,
// tags containing dashes parse correctly from the right.
var describeRegexp = regexp.MustCompile(`^(.*)-(\d+)-g([0-9a-f]+)$`)

// Distance describes how far a revision is past the resolved tag.
type Distance struct {
	Commits int
	Hash    string
}

// PrereleaseTag renders the distance as a prerelease tag component.
func (d Distance) PrereleaseTag() string {
	return fmt.Sprintf("%d.g%s", d.Commits, d.Hash)
}

// Tag is the resolved last release. Tagged is false when the repository
// has no tags and the root commit serves as synthetic tag.
type Tag struct {
	Name     string
	Version  semver.Version
	Distance Distance
	Tagged   bool
}

// Resolver finds the last release tag reachable from a revision.
//
//counterfeiter:generate -o ../../mocks/resolver.go --fake-name Resolver . Resolver
type Resolver interface {
	Resolve(ctx context.Context, revision string) (Tag, error)
}

// resolver implements Resolver.
type resolver struct {
	gitter    git.Gitter
	tagRegexp *regexp.Regexp
	logger    *zap.Logger
}

// NewResolver creates a Resolver. The prefix and suffix patterns bound
// the version triple inside the tag name.
func NewResolver(
	ctx context.Context,
	gitter git.Gitter,
	tagPrefixPattern string,
	tagSuffixPattern string,
	logger *zap.Logger,
) (Resolver, error) {
	tagRegexp, err := regexp.Compile(
		`^` + tagPrefixPattern + `(?P<major>\d+)\.(?P<minor>\d+)\.(?P<patch>\d+)` + tagSuffixPattern + `$`,
	)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "compile tag pattern")
	}
	return &resolver{
		gitter:    gitter,
		tagRegexp: tagRegexp,
		logger:    logger,
	}, nil
}

// Resolve finds the nearest reachable tag for the revision. When no tag
// exists the root commit becomes the synthetic last tag with version
// 0.0.0 and the distance counted from there.
func (r *resolver) Resolve(ctx context.Context, revision string) (Tag, error) {
	described, err := r.gitter.Describe(ctx, revision)
	if err != nil {
		if stderrors.Is(err, git.ErrNoTagFound) {
			r.logger.Debug("no tag found, falling back to root commit", zap.String("revision", revision))
			return r.resolveUntagged(ctx, revision)
		}
		return Tag{}, errors.Wrap(ctx, err, "describe revision")
	}
	return r.parseDescribe(ctx, described)
}

func (r *resolver) parseDescribe(ctx context.Context, described string) (Tag, error) {
	name := described
	var distance Distance
	if matches := describeRegexp.FindStringSubmatch(described); matches != nil {
		commits, err := strconv.Atoi(matches[2])
		if err != nil {
			return Tag{}, errors.Wrapf(ctx, err, "parse distance '%s'", matches[2])
		}
		name = matches[1]
		distance = Distance{
			Commits: commits,
			Hash:    matches[3],
		}
	}
	version, err := r.parseTagName(ctx, name)
	if err != nil {
		return Tag{}, err
	}
	return Tag{
		Name:     name,
		Version:  version,
		Distance: distance,
		Tagged:   true,
	}, nil
}

func (r *resolver) parseTagName(ctx context.Context, name string) (semver.Version, error) {
	matches := r.tagRegexp.FindStringSubmatch(name)
	if matches == nil {
		return semver.Version{}, errors.Wrapf(
			ctx,
			ErrTagFormat,
			"tag '%s' does not match the version pattern",
			name,
		)
	}

	major, _ := strconv.Atoi(matches[r.tagRegexp.SubexpIndex("major")])
	minor, _ := strconv.Atoi(matches[r.tagRegexp.SubexpIndex("minor")])
	patch, _ := strconv.Atoi(matches[r.tagRegexp.SubexpIndex("patch")])

	return semver.Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}, nil
}

func (r *resolver) resolveUntagged(ctx context.Context, revision string) (Tag, error) {
	root, err := r.gitter.RootCommit(ctx, revision)
	if err != nil {
		return Tag{}, errors.Wrap(ctx, err, "find root commit")
	}
	commits, err := r.gitter.CountCommits(ctx, git.Range(root, revision))
	if err != nil {
		return Tag{}, errors.Wrap(ctx, err, "count commits since root")
	}
	hash, err := r.gitter.ShortHash(ctx, revision)
	if err != nil {
		return Tag{}, errors.Wrap(ctx, err, "resolve short hash")
	}
	return Tag{
		Name: root,
		Distance: Distance{
			Commits: commits,
			Hash:    hash,
		},
		Tagged: false,
	}, nil
}
