// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
	"gopkg.in/yaml.v3"

	"github.com/bborbe/next-version/pkg/nextversion"
)

// Output defines how results are rendered.
const (
	OutputPlain Output = "plain"
	OutputJSON  Output = "json"
	OutputYAML  Output = "yaml"
)

// AvailableOutputs contains all valid output values.
var AvailableOutputs = Outputs{OutputPlain, OutputJSON, OutputYAML}

// Output is a string-based enum for result rendering.
type Output string

func (o Output) String() string {
	return string(o)
}

func (o Output) Validate(ctx context.Context) error {
	if !AvailableOutputs.Contains(o) {
		return errors.Wrapf(ctx, validation.Error, "unknown output '%s'", o)
	}
	return nil
}

func (o Output) Ptr() *Output {
	return &o
}

// Outputs is a collection of Output values.
type Outputs []Output

func (o Outputs) Contains(output Output) bool {
	return collection.Contains(o, output)
}

// resultDocument is the structured rendering of a calculation result.
type resultDocument struct {
	Version  string `json:"version" yaml:"version"`
	Previous string `json:"previous" yaml:"previous"`
	Bump     string `json:"bump" yaml:"bump"`
	Tag      string `json:"tag" yaml:"tag"`
	Tagged   bool   `json:"tagged" yaml:"tagged"`
	Commits  int    `json:"commits" yaml:"commits"`
	Hash     string `json:"hash,omitempty" yaml:"hash,omitempty"`
	Dirty    bool   `json:"dirty" yaml:"dirty"`
}

func newResultDocument(result nextversion.Result) resultDocument {
	return resultDocument{
		Version:  result.String(),
		Previous: result.Previous.String(),
		Bump:     result.Bump.String(),
		Tag:      result.Tag.Name,
		Tagged:   result.Tag.Tagged,
		Commits:  result.Tag.Distance.Commits,
		Hash:     result.Tag.Distance.Hash,
		Dirty:    result.Dirty,
	}
}

// WriteResult renders the result to out in the requested format.
func WriteResult(
	ctx context.Context,
	out io.Writer,
	result nextversion.Result,
	output Output,
) error {
	switch output {
	case OutputPlain:
		if _, err := fmt.Fprintln(out, result.String()); err != nil {
			return errors.Wrap(ctx, err, "write result")
		}
		return nil
	case OutputJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(newResultDocument(result)); err != nil {
			return errors.Wrap(ctx, err, "encode json")
		}
		return nil
	case OutputYAML:
		encoder := yaml.NewEncoder(out)
		if err := encoder.Encode(newResultDocument(result)); err != nil {
			return errors.Wrap(ctx, err, "encode yaml")
		}
		if err := encoder.Close(); err != nil {
			return errors.Wrap(ctx, err, "close yaml encoder")
		}
		return nil
	default:
		return errors.Wrapf(ctx, validation.Error, "unknown output '%s'", output)
	}
}
