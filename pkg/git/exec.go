// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bborbe/errors"
)

// execGitter implements Gitter by shelling out to the git binary.
type execGitter struct{}

// NewExecGitter creates a Gitter that runs the git binary in the
// current working directory.
func NewExecGitter() Gitter {
	return &execGitter{}
}

// Describe returns the nearest-tag description for the revision,
// "<tag>-<N>-g<shorthash>" or exactly "<tag>" when the revision is the
// tagged commit. Returns ErrNoTagFound when no tag is reachable.
func (e *execGitter) Describe(ctx context.Context, revision string) (string, error) {
	// #nosec G204 -- revision is the caller supplied target revision
	cmd := exec.CommandContext(ctx, "git", "describe", "--tags", revision)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if isNoTagFound(stderr.String()) {
			return "", errors.Wrapf(ctx, ErrNoTagFound, "describe %s", revision)
		}
		return "", errors.Wrapf(ctx, err, "run git describe: %s", strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// LogSubjects returns one message subject per commit in the range.
func (e *execGitter) LogSubjects(ctx context.Context, rangeExpr string) ([]string, error) {
	output, err := runGit(ctx, "log", "--format=%s", rangeExpr)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list commit subjects")
	}
	return splitLines(output), nil
}

// RootCommit returns the oldest parentless commit in the history of the
// revision.
func (e *execGitter) RootCommit(ctx context.Context, revision string) (string, error) {
	output, err := runGit(ctx, "rev-list", "--max-parents=0", revision)
	if err != nil {
		return "", errors.Wrap(ctx, err, "list root commits")
	}
	roots := splitLines(output)
	if len(roots) == 0 {
		return "", errors.Errorf(ctx, "no root commit found for %s", revision)
	}
	// rev-list prints newest first, the last line is the oldest root
	return roots[len(roots)-1], nil
}

// CountCommits returns the number of commits in the range.
func (e *execGitter) CountCommits(ctx context.Context, rangeExpr string) (int, error) {
	output, err := runGit(ctx, "rev-list", "--count", rangeExpr)
	if err != nil {
		return 0, errors.Wrap(ctx, err, "count commits")
	}
	count, err := strconv.Atoi(output)
	if err != nil {
		return 0, errors.Wrapf(ctx, err, "parse commit count '%s'", output)
	}
	return count, nil
}

// ShortHash returns the abbreviated hash of the revision.
func (e *execGitter) ShortHash(ctx context.Context, revision string) (string, error) {
	output, err := runGit(ctx, "rev-parse", "--short", revision)
	if err != nil {
		return "", errors.Wrap(ctx, err, "resolve short hash")
	}
	return output, nil
}

// HasUncommittedChanges returns true when the worktree or index differ
// from the current head.
func (e *execGitter) HasUncommittedChanges(ctx context.Context) (bool, error) {
	output, err := runGit(ctx, "status", "--porcelain")
	if err != nil {
		return false, errors.Wrap(ctx, err, "read worktree status")
	}
	return output != "", nil
}

// runGit executes git with the given arguments and returns trimmed stdout.
func runGit(ctx context.Context, args ...string) (string, error) {
	// #nosec G204 -- arguments are fixed git subcommands plus caller revisions
	cmd := exec.CommandContext(ctx, "git", args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(ctx, err, "run git %s: %s", args[0], strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// isNoTagFound matches the git describe errors reported when no tag is
// reachable from the revision.
func isNoTagFound(stderr string) bool {
	return strings.Contains(stderr, "No names found") ||
		strings.Contains(stderr, "No tags can describe") ||
		strings.Contains(stderr, "cannot describe")
}

func splitLines(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, "\n")
}
