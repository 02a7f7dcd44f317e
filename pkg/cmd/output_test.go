// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/bborbe/next-version/pkg/cmd"
	"github.com/bborbe/next-version/pkg/nextversion"
	"github.com/bborbe/next-version/pkg/resolve"
	"github.com/bborbe/next-version/pkg/semver"
)

var _ = Describe("Output", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Validate", func() {
		It("succeeds for plain output", func() {
			Expect(cmd.OutputPlain.Validate(ctx)).NotTo(HaveOccurred())
		})

		It("succeeds for json output", func() {
			Expect(cmd.OutputJSON.Validate(ctx)).NotTo(HaveOccurred())
		})

		It("succeeds for yaml output", func() {
			Expect(cmd.OutputYAML.Validate(ctx)).NotTo(HaveOccurred())
		})

		It("fails for unknown output", func() {
			err := cmd.Output("xml").Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown output"))
		})
	})

	Describe("String", func() {
		It("returns string representation", func() {
			Expect(cmd.OutputPlain.String()).To(Equal("plain"))
			Expect(cmd.OutputJSON.String()).To(Equal("json"))
			Expect(cmd.OutputYAML.String()).To(Equal("yaml"))
		})
	})

	Describe("Contains", func() {
		It("returns false for unknown output", func() {
			Expect(cmd.AvailableOutputs.Contains("xml")).To(BeFalse())
		})
	})
})

var _ = Describe("WriteResult", func() {
	var ctx context.Context
	var out *bytes.Buffer
	var result nextversion.Result

	BeforeEach(func() {
		ctx = context.Background()
		out = &bytes.Buffer{}
		result = nextversion.Result{
			Version:  semver.Version{Major: 1, Minor: 3, Patch: 0},
			Previous: semver.Version{Major: 1, Minor: 2, Patch: 3},
			Bump:     semver.BumpMinor,
			Tag: resolve.Tag{
				Name:    "v1.2.3",
				Version: semver.Version{Major: 1, Minor: 2, Patch: 3},
				Distance: resolve.Distance{
					Commits: 2,
					Hash:    "abc1234",
				},
				Tagged: true,
			},
		}
	})

	Describe("plain", func() {
		It("writes the version string", func() {
			err := cmd.WriteResult(ctx, out, result, cmd.OutputPlain)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("1.3.0-2.gabc1234\n"))
		})

		It("writes the bare version for releases", func() {
			result.Release = true
			err := cmd.WriteResult(ctx, out, result, cmd.OutputPlain)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("1.3.0\n"))
		})
	})

	Describe("json", func() {
		It("writes the result document", func() {
			err := cmd.WriteResult(ctx, out, result, cmd.OutputJSON)
			Expect(err).NotTo(HaveOccurred())

			var document map[string]interface{}
			Expect(json.Unmarshal(out.Bytes(), &document)).NotTo(HaveOccurred())
			Expect(document["version"]).To(Equal("1.3.0-2.gabc1234"))
			Expect(document["previous"]).To(Equal("1.2.3"))
			Expect(document["bump"]).To(Equal("minor"))
			Expect(document["tag"]).To(Equal("v1.2.3"))
			Expect(document["tagged"]).To(Equal(true))
			Expect(document["commits"]).To(Equal(float64(2)))
			Expect(document["hash"]).To(Equal("abc1234"))
			Expect(document["dirty"]).To(Equal(false))
		})
	})

	Describe("yaml", func() {
		It("writes the result document", func() {
			err := cmd.WriteResult(ctx, out, result, cmd.OutputYAML)
			Expect(err).NotTo(HaveOccurred())

			var document map[string]interface{}
			Expect(yaml.Unmarshal(out.Bytes(), &document)).NotTo(HaveOccurred())
			Expect(document["version"]).To(Equal("1.3.0-2.gabc1234"))
			Expect(document["bump"]).To(Equal("minor"))
			Expect(document["commits"]).To(Equal(2))
		})
	})

	Describe("unknown", func() {
		It("returns an error", func() {
			err := cmd.WriteResult(ctx, out, result, cmd.Output("xml"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown output"))
		})
	})
})
