// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/inkwell/internal/core/reader"
	"github.com/taibuivan/inkwell/internal/render"
)

// errNoChapters is returned when the chosen story has nothing to read yet.
var errNoChapters = errors.New("story has no chapters yet")

func newReadCmd(opts *options) *cobra.Command {
	var chapterNumber int

	cmd := &cobra.Command{
		Use:   "read <story>",
		Short: "Render a chapter of a story",
		Long: `Render a chapter of a story, chosen by numeric ID or slug.

Without --chapter the story opens at its bookmark, or at the first chapter
when the bookmark has not been downloaded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			application := opts.application

			story, err := application.Catalog.GetStory(ctx, args[0])
			if err != nil {
				return err
			}
			bookmark := story.CurrentChapterNumber

			opened, err := application.Session.SelectStory(ctx, story)
			if err != nil {
				return err
			}
			if !opened {
				return fmt.Errorf("%s: %w", story.Name, errNoChapters)
			}

			switch {
			case chapterNumber > 0:
				changed, err := application.Session.ChangeChapter(ctx, chapterNumber)
				if err != nil {
					return err
				}
				if !changed {
					return fmt.Errorf("%s has no chapter %d", story.Name, chapterNumber)
				}
			case bookmark > 1:
				if _, err := application.Session.ChangeChapter(ctx, bookmark); err != nil {
					return err
				}
			}

			view, _ := reader.Build(application.Session.Snapshot(), application.Settings.Get(), application.Now())
			_, err = fmt.Fprint(cmd.OutOrStdout(), render.Reader(view, application.Settings.Get()))
			return err
		},
	}

	cmd.Flags().IntVar(&chapterNumber, "chapter", 0, "Chapter number to open")

	return cmd
}
