// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/bborbe/errors"
	"github.com/spf13/cobra"

	"github.com/bborbe/next-version/pkg/version"
)

// newVersionCmd wires the version subcommand.
func newVersionCmd(versionGetter version.Getter) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the next-version version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), versionGetter.Get()); err != nil {
				return errors.Wrap(cmd.Context(), err, "write version")
			}
			return nil
		},
	}
}
