// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nextversion_test

import (
	"context"
	stderrors "errors"

	mastermind "github.com/Masterminds/semver/v3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bborbe/next-version/mocks"
	"github.com/bborbe/next-version/pkg/classify"
	"github.com/bborbe/next-version/pkg/nextversion"
	"github.com/bborbe/next-version/pkg/resolve"
	"github.com/bborbe/next-version/pkg/semver"
)

var _ = Describe("Calculator", func() {
	var ctx context.Context
	var gitter *mocks.Gitter
	var resolver *mocks.Resolver
	var logs *observer.ObservedLogs
	var calculator nextversion.Calculator
	var detectDirty bool

	BeforeEach(func() {
		ctx = context.Background()
		gitter = &mocks.Gitter{}
		resolver = &mocks.Resolver{}
		detectDirty = false
	})

	JustBeforeEach(func() {
		core, observedLogs := observer.New(zap.WarnLevel)
		logs = observedLogs
		logger := zap.New(core)

		rules, err := classify.NewRules(
			ctx,
			classify.DefaultMajorTokens,
			classify.DefaultMinorTokens,
			classify.DefaultPatchTokens,
			classify.DefaultIgnoreTokens,
		)
		Expect(err).To(BeNil())

		calculator = nextversion.NewCalculator(
			gitter,
			resolver,
			classify.NewClassifier(rules, logger),
			detectDirty,
			logger,
		)
	})

	Context("with a tagged repository", func() {
		BeforeEach(func() {
			resolver.ResolveReturns(resolve.Tag{
				Name:     "v1.2.3",
				Version:  semver.Version{Major: 1, Minor: 2, Patch: 3},
				Distance: resolve.Distance{Commits: 2, Hash: "abc1234"},
				Tagged:   true,
			}, nil)
		})

		It("bumps patch for fix commits", func() {
			gitter.LogSubjectsReturns([]string{"fix: a", "docs: b"}, nil)

			result, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
			Expect(err).To(BeNil())
			Expect(result.Bump).To(Equal(semver.BumpPatch))
			Expect(result.Version).To(Equal(semver.Version{Major: 1, Minor: 2, Patch: 4}))
			Expect(result.String()).To(Equal("1.2.4-2.gabc1234"))
		})

		It("bumps minor for feature commits", func() {
			gitter.LogSubjectsReturns([]string{"feature: a", "fix: b"}, nil)

			result, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
			Expect(err).To(BeNil())
			Expect(result.Bump).To(Equal(semver.BumpMinor))
			Expect(result.Version).To(Equal(semver.Version{Major: 1, Minor: 3, Patch: 0}))
		})

		It("bumps major for apichange commits", func() {
			gitter.LogSubjectsReturns([]string{"apichange: a"}, nil)

			result, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
			Expect(err).To(BeNil())
			Expect(result.Bump).To(Equal(semver.BumpMajor))
			Expect(result.Version).To(Equal(semver.Version{Major: 2, Minor: 0, Patch: 0}))
		})

		It("keeps the version when no commits are in range", func() {
			gitter.LogSubjectsReturns(nil, nil)

			result, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
			Expect(err).To(BeNil())
			Expect(result.Bump).To(Equal(semver.BumpIgnore))
			Expect(result.Version).To(Equal(semver.Version{Major: 1, Minor: 2, Patch: 3}))
			Expect(result.String()).To(Equal("1.2.3"))

			release, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD", Release: true})
			Expect(err).To(BeNil())
			Expect(release.String()).To(Equal("1.2.3"))
		})

		It("warns on unclassifiable commits and keeps the bump from the rest", func() {
			gitter.LogSubjectsReturns([]string{"weird: x", "fix: y"}, nil)

			result, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
			Expect(err).To(BeNil())
			Expect(result.Bump).To(Equal(semver.BumpPatch))
			Expect(result.Version).To(Equal(semver.Version{Major: 1, Minor: 2, Patch: 4}))
			Expect(logs.Len()).To(Equal(1))
			Expect(logs.All()[0].ContextMap()["subject"]).To(Equal("weird: x"))
		})

		It("suppresses the prerelease suffix for releases", func() {
			gitter.LogSubjectsReturns([]string{"feature: a"}, nil)

			result, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD", Release: true})
			Expect(err).To(BeNil())
			Expect(result.String()).To(Equal("1.3.0"))
		})

		It("lists subjects between the tag and the target", func() {
			gitter.LogSubjectsReturns(nil, nil)

			_, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
			Expect(err).To(BeNil())
			Expect(gitter.LogSubjectsCallCount()).To(Equal(1))
			_, rangeExpr := gitter.LogSubjectsArgsForCall(0)
			Expect(rangeExpr).To(Equal("v1.2.3..HEAD"))
		})

		It("renders a prerelease string Masterminds semver accepts", func() {
			gitter.LogSubjectsReturns([]string{"fix: a"}, nil)

			result, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
			Expect(err).To(BeNil())
			parsed, err := mastermind.StrictNewVersion(result.String())
			Expect(err).To(BeNil())
			Expect(parsed.Prerelease()).To(Equal("2.gabc1234"))
		})

		Context("with dirty detection enabled", func() {
			BeforeEach(func() {
				detectDirty = true
			})

			It("marks prerelease versions dirty", func() {
				gitter.LogSubjectsReturns([]string{"fix: a"}, nil)
				gitter.HasUncommittedChangesReturns(true, nil)

				result, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
				Expect(err).To(BeNil())
				Expect(result.Dirty).To(BeTrue())
				Expect(result.String()).To(Equal("1.2.4-2.gabc1234.dirty"))
			})

			It("leaves clean worktrees unmarked", func() {
				gitter.LogSubjectsReturns([]string{"fix: a"}, nil)
				gitter.HasUncommittedChangesReturns(false, nil)

				result, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
				Expect(err).To(BeNil())
				Expect(result.String()).To(Equal("1.2.4-2.gabc1234"))
			})

			It("propagates status failures", func() {
				gitter.LogSubjectsReturns([]string{"fix: a"}, nil)
				gitter.HasUncommittedChangesReturns(false, stderrors.New("status failed"))

				_, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
				Expect(err).NotTo(BeNil())
				Expect(err.Error()).To(ContainSubstring("status failed"))
			})
		})

		Context("with dirty detection disabled", func() {
			It("never queries the worktree status", func() {
				gitter.LogSubjectsReturns([]string{"fix: a"}, nil)

				_, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
				Expect(err).To(BeNil())
				Expect(gitter.HasUncommittedChangesCallCount()).To(Equal(0))
			})
		})
	})

	Context("with an untagged repository", func() {
		BeforeEach(func() {
			resolver.ResolveReturns(resolve.Tag{
				Name:     "0000aaaa0000aaaa0000aaaa0000aaaa0000aaaa",
				Version:  semver.Version{},
				Distance: resolve.Distance{Commits: 3, Hash: "abc1234"},
				Tagged:   false,
			}, nil)
		})

		It("starts from version zero with the root distance", func() {
			gitter.LogSubjectsReturns([]string{"fix: x"}, nil)

			result, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
			Expect(err).To(BeNil())
			Expect(result.Version).To(Equal(semver.Version{Major: 0, Minor: 0, Patch: 1}))
			Expect(result.String()).To(Equal("0.0.1-3.gabc1234"))
		})

		It("classifies commits since the root commit", func() {
			gitter.LogSubjectsReturns(nil, nil)

			_, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
			Expect(err).To(BeNil())
			_, rangeExpr := gitter.LogSubjectsArgsForCall(0)
			Expect(rangeExpr).To(Equal("0000aaaa0000aaaa0000aaaa0000aaaa0000aaaa..HEAD"))
		})
	})

	Context("with failing collaborators", func() {
		It("propagates resolver failures", func() {
			resolver.ResolveReturns(resolve.Tag{}, stderrors.New("tag format mismatch"))

			_, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("tag format mismatch"))
			Expect(gitter.LogSubjectsCallCount()).To(Equal(0))
		})

		It("propagates log failures", func() {
			resolver.ResolveReturns(resolve.Tag{
				Name:    "v1.2.3",
				Version: semver.Version{Major: 1, Minor: 2, Patch: 3},
				Tagged:  true,
			}, nil)
			gitter.LogSubjectsReturns(nil, stderrors.New("bad revision"))

			_, err := calculator.Calculate(ctx, nextversion.Request{Revision: "HEAD"})
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("bad revision"))
		})
	})
})
