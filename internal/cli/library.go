// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/inkwell/internal/core/library"
	"github.com/taibuivan/inkwell/internal/render"
)

func newLibraryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "library",
		Short: "Show every story with its reading progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stories, err := opts.application.Catalog.ListStories(cmd.Context())
			if err != nil {
				return err
			}

			dashboard := library.Build(stories)
			_, err = fmt.Fprint(cmd.OutOrStdout(), render.Library(dashboard, opts.application.Settings.Get()))
			return err
		},
	}
}
