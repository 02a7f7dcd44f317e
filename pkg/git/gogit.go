// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/bborbe/errors"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// gogitGitter implements Gitter in process on go-git.
type gogitGitter struct {
	path string
}

// NewGogitGitter creates a Gitter that reads the repository at path
// without invoking the git binary.
func NewGogitGitter(path string) Gitter {
	return &gogitGitter{
		path: path,
	}
}

// Describe walks the history from the revision until a tagged commit is
// found and renders the same description format the git binary prints.
func (g *gogitGitter) Describe(ctx context.Context, revision string) (string, error) {
	repo, err := g.open(ctx)
	if err != nil {
		return "", err
	}
	hash, err := g.resolve(ctx, repo, revision)
	if err != nil {
		return "", err
	}
	tags, err := g.tags(ctx, repo)
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", errors.Wrapf(ctx, ErrNoTagFound, "repository has no tags")
	}

	iter, err := repo.Log(&gogit.LogOptions{From: hash})
	if err != nil {
		return "", errors.Wrap(ctx, err, "read log")
	}
	var tagName string
	var distance int
	if err := iter.ForEach(func(commit *object.Commit) error {
		if name, ok := tags[commit.Hash]; ok {
			tagName = name
			return storer.ErrStop
		}
		distance++
		return nil
	}); err != nil {
		return "", errors.Wrap(ctx, err, "walk history")
	}
	if tagName == "" {
		return "", errors.Wrapf(ctx, ErrNoTagFound, "no tag reachable from %s", revision)
	}
	if distance == 0 {
		return tagName, nil
	}
	return fmt.Sprintf("%s-%d-g%s", tagName, distance, shortHash(hash)), nil
}

// LogSubjects returns one message subject per commit in the range.
func (g *gogitGitter) LogSubjects(ctx context.Context, rangeExpr string) ([]string, error) {
	var subjects []string
	err := g.walkRange(ctx, rangeExpr, func(commit *object.Commit) {
		subjects = append(subjects, commitSubject(commit))
	})
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// RootCommit returns the oldest parentless commit in the history of the
// revision.
func (g *gogitGitter) RootCommit(ctx context.Context, revision string) (string, error) {
	repo, err := g.open(ctx)
	if err != nil {
		return "", err
	}
	hash, err := g.resolve(ctx, repo, revision)
	if err != nil {
		return "", err
	}
	iter, err := repo.Log(&gogit.LogOptions{From: hash})
	if err != nil {
		return "", errors.Wrap(ctx, err, "read log")
	}
	var root plumbing.Hash
	if err := iter.ForEach(func(commit *object.Commit) error {
		if commit.NumParents() == 0 {
			root = commit.Hash
		}
		return nil
	}); err != nil {
		return "", errors.Wrap(ctx, err, "walk history")
	}
	if root.IsZero() {
		return "", errors.Errorf(ctx, "no root commit found for %s", revision)
	}
	return root.String(), nil
}

// CountCommits returns the number of commits in the range.
func (g *gogitGitter) CountCommits(ctx context.Context, rangeExpr string) (int, error) {
	var count int
	err := g.walkRange(ctx, rangeExpr, func(commit *object.Commit) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ShortHash returns the abbreviated hash of the revision.
func (g *gogitGitter) ShortHash(ctx context.Context, revision string) (string, error) {
	repo, err := g.open(ctx)
	if err != nil {
		return "", err
	}
	hash, err := g.resolve(ctx, repo, revision)
	if err != nil {
		return "", err
	}
	return shortHash(hash), nil
}

// HasUncommittedChanges returns true when the worktree is not clean.
func (g *gogitGitter) HasUncommittedChanges(ctx context.Context) (bool, error) {
	repo, err := g.open(ctx)
	if err != nil {
		return false, err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return false, errors.Wrap(ctx, err, "get worktree")
	}
	status, err := worktree.Status()
	if err != nil {
		return false, errors.Wrap(ctx, err, "read worktree status")
	}
	return !status.IsClean(), nil
}

func (g *gogitGitter) open(ctx context.Context) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(g.path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "open repository at %s", g.path)
	}
	return repo, nil
}

func (g *gogitGitter) resolve(
	ctx context.Context,
	repo *gogit.Repository,
	revision string,
) (plumbing.Hash, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return plumbing.ZeroHash, errors.Wrapf(ctx, err, "resolve revision %s", revision)
	}
	return *hash, nil
}

// tags maps commit hashes to tag names. Annotated tags are resolved to
// their target commit, lightweight tags point at the commit directly.
func (g *gogitGitter) tags(ctx context.Context, repo *gogit.Repository) (map[plumbing.Hash]string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list tags")
	}
	tags := make(map[plumbing.Hash]string)
	if err := iter.ForEach(func(ref *plumbing.Reference) error {
		tag, err := repo.TagObject(ref.Hash())
		switch {
		case err == nil:
			tags[tag.Target] = ref.Name().Short()
		case stderrors.Is(err, plumbing.ErrObjectNotFound):
			tags[ref.Hash()] = ref.Name().Short()
		default:
			return err
		}
		return nil
	}); err != nil {
		return nil, errors.Wrap(ctx, err, "iterate tags")
	}
	return tags, nil
}

// walkRange visits every commit reachable from the range target until
// the range base is reached. The base commit is not visited.
func (g *gogitGitter) walkRange(
	ctx context.Context,
	rangeExpr string,
	visit func(commit *object.Commit),
) error {
	base, target, err := SplitRange(ctx, rangeExpr)
	if err != nil {
		return err
	}
	repo, err := g.open(ctx)
	if err != nil {
		return err
	}
	baseHash, err := g.resolve(ctx, repo, base)
	if err != nil {
		return err
	}
	targetHash, err := g.resolve(ctx, repo, target)
	if err != nil {
		return err
	}
	iter, err := repo.Log(&gogit.LogOptions{From: targetHash})
	if err != nil {
		return errors.Wrap(ctx, err, "read log")
	}
	if err := iter.ForEach(func(commit *object.Commit) error {
		if commit.Hash == baseHash {
			return storer.ErrStop
		}
		visit(commit)
		return nil
	}); err != nil {
		return errors.Wrap(ctx, err, "walk history")
	}
	return nil
}

func commitSubject(commit *object.Commit) string {
	subject, _, _ := strings.Cut(commit.Message, "\n")
	return subject
}

func shortHash(hash plumbing.Hash) string {
	return hash.String()[:7]
}
