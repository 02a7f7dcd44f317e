// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/next-version/pkg/config"
)

var _ = Describe("Config", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Defaults", func() {
		It("returns config with default values", func() {
			cfg := config.Defaults()
			Expect(cfg.Engine).To(Equal(config.EngineExec))
			Expect(cfg.TagPrefixPattern).To(Equal(`\D*`))
			Expect(cfg.TagSuffixPattern).To(Equal(``))
			Expect(cfg.MajorTokens).To(Equal([]string{"apichange", "breaking", "major"}))
			Expect(cfg.MinorTokens).To(Equal([]string{"feature", "feat", "minor", "added"}))
			Expect(cfg.PatchTokens).To(Equal([]string{"fix", "bugfix", "patch", "perf", "revert"}))
			Expect(cfg.IgnoreTokens).To(Equal([]string{"docs", "chore", "test", "style", "refactor", "ci", "build", "cleanup", "ignore"}))
			Expect(cfg.DetectDirty).To(BeFalse())
			Expect(cfg.Remote).To(Equal("origin"))
		})
	})

	Describe("Validate", func() {
		var cfg config.Config

		BeforeEach(func() {
			cfg = config.Defaults()
		})

		It("succeeds for valid config", func() {
			err := cfg.Validate(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("succeeds for custom tag patterns", func() {
			cfg.TagPrefixPattern = `(v|release-)`
			cfg.TagSuffixPattern = `-stable`
			err := cfg.Validate(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails for invalid engine", func() {
			cfg.Engine = "invalid"
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("engine"))
		})

		It("fails for invalid tagPrefixPattern", func() {
			cfg.TagPrefixPattern = `(`
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("tagPrefixPattern"))
		})

		It("fails for invalid tagSuffixPattern", func() {
			cfg.TagSuffixPattern = `[`
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("tagSuffixPattern"))
		})

		It("fails for token in two sets", func() {
			cfg.MajorTokens = []string{"fix"}
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("tokens"))
		})

		It("fails for uppercase token", func() {
			cfg.PatchTokens = []string{"Fix"}
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("tokens"))
		})

		It("fails for empty remote", func() {
			cfg.Remote = ""
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("remote"))
		})
	})

	Describe("Engine", func() {
		Describe("Validate", func() {
			It("succeeds for exec engine", func() {
				err := config.EngineExec.Validate(ctx)
				Expect(err).NotTo(HaveOccurred())
			})

			It("succeeds for gogit engine", func() {
				err := config.EngineGogit.Validate(ctx)
				Expect(err).NotTo(HaveOccurred())
			})

			It("fails for unknown engine", func() {
				err := config.Engine("unknown").Validate(ctx)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("unknown engine"))
			})
		})

		Describe("String", func() {
			It("returns string representation", func() {
				Expect(config.EngineExec.String()).To(Equal("exec"))
				Expect(config.EngineGogit.String()).To(Equal("gogit"))
			})
		})

		Describe("Ptr", func() {
			It("returns pointer to engine", func() {
				ptr := config.EngineGogit.Ptr()
				Expect(ptr).NotTo(BeNil())
				Expect(*ptr).To(Equal(config.EngineGogit))
			})
		})
	})

	Describe("Engines", func() {
		Describe("Contains", func() {
			It("returns true for valid engine", func() {
				Expect(config.AvailableEngines.Contains(config.EngineExec)).To(BeTrue())
				Expect(config.AvailableEngines.Contains(config.EngineGogit)).To(BeTrue())
			})

			It("returns false for invalid engine", func() {
				Expect(config.AvailableEngines.Contains("invalid")).To(BeFalse())
			})
		})
	})

	Describe("Loader", func() {
		var tmpDir string
		var originalDir string
		var loader config.Loader

		BeforeEach(func() {
			var err error
			tmpDir, err = os.MkdirTemp("", "config-test-*")
			Expect(err).NotTo(HaveOccurred())

			originalDir, err = os.Getwd()
			Expect(err).NotTo(HaveOccurred())

			err = os.Chdir(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			loader = config.NewLoader("")
		})

		AfterEach(func() {
			err := os.Chdir(originalDir)
			Expect(err).NotTo(HaveOccurred())
			err = os.RemoveAll(tmpDir)
			Expect(err).NotTo(HaveOccurred())
		})

		Describe("Load", func() {
			It("returns defaults when config file does not exist", func() {
				cfg, err := loader.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg).To(Equal(config.Defaults()))
			})

			It("loads full config from file", func() {
				configContent := `engine: gogit
tagPrefixPattern: "v"
tagSuffixPattern: "-stable"
majorTokens:
  - breaking
minorTokens:
  - feat
patchTokens:
  - fix
ignoreTokens:
  - chore
detectDirty: true
remote: upstream
`
				err := os.WriteFile(
					filepath.Join(tmpDir, ".next-version.yaml"),
					[]byte(configContent),
					0600,
				)
				Expect(err).NotTo(HaveOccurred())

				cfg, err := loader.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Engine).To(Equal(config.EngineGogit))
				Expect(cfg.TagPrefixPattern).To(Equal("v"))
				Expect(cfg.TagSuffixPattern).To(Equal("-stable"))
				Expect(cfg.MajorTokens).To(Equal([]string{"breaking"}))
				Expect(cfg.MinorTokens).To(Equal([]string{"feat"}))
				Expect(cfg.PatchTokens).To(Equal([]string{"fix"}))
				Expect(cfg.IgnoreTokens).To(Equal([]string{"chore"}))
				Expect(cfg.DetectDirty).To(BeTrue())
				Expect(cfg.Remote).To(Equal("upstream"))
			})

			It("merges partial config with defaults", func() {
				configContent := `engine: gogit
`
				err := os.WriteFile(
					filepath.Join(tmpDir, ".next-version.yaml"),
					[]byte(configContent),
					0600,
				)
				Expect(err).NotTo(HaveOccurred())

				cfg, err := loader.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Engine).To(Equal(config.EngineGogit))
				Expect(cfg.TagPrefixPattern).To(Equal(`\D*`))
				Expect(cfg.MajorTokens).To(Equal([]string{"apichange", "breaking", "major"}))
				Expect(cfg.DetectDirty).To(BeFalse())
				Expect(cfg.Remote).To(Equal("origin"))
			})

			It("allows clearing a token set", func() {
				configContent := `ignoreTokens: []
`
				err := os.WriteFile(
					filepath.Join(tmpDir, ".next-version.yaml"),
					[]byte(configContent),
					0600,
				)
				Expect(err).NotTo(HaveOccurred())

				cfg, err := loader.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.IgnoreTokens).To(BeEmpty())
				Expect(cfg.PatchTokens).To(Equal([]string{"fix", "bugfix", "patch", "perf", "revert"}))
			})

			It("reads from an explicit path", func() {
				configContent := `remote: upstream
`
				configPath := filepath.Join(tmpDir, "custom.yaml")
				err := os.WriteFile(configPath, []byte(configContent), 0600)
				Expect(err).NotTo(HaveOccurred())

				cfg, err := config.NewLoader(configPath).Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Remote).To(Equal("upstream"))
			})

			It("returns error for invalid YAML", func() {
				configContent := `engine: gogit
invalid yaml: [unclosed
`
				err := os.WriteFile(
					filepath.Join(tmpDir, ".next-version.yaml"),
					[]byte(configContent),
					0600,
				)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(ctx)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("parse config file"))
			})

			It("returns error for invalid engine value", func() {
				configContent := `engine: invalid
`
				err := os.WriteFile(
					filepath.Join(tmpDir, ".next-version.yaml"),
					[]byte(configContent),
					0600,
				)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(ctx)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("validate config"))
			})

			It("returns error for overlapping token sets", func() {
				configContent := `majorTokens:
  - fix
`
				err := os.WriteFile(
					filepath.Join(tmpDir, ".next-version.yaml"),
					[]byte(configContent),
					0600,
				)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(ctx)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("validate config"))
			})
		})
	})
})
