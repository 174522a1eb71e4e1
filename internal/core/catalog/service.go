// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/pointer"
	"github.com/taibuivan/inkwell/pkg/slug"
)

// # Service Layer

// Options tunes the story creation flow.
type Options struct {
	// PlaceholderCover is used when a draft has no cover image.
	PlaceholderCover string

	// CreateDelay simulates scraping latency before a story is added.
	CreateDelay time.Duration

	// Now is the clock used for timestamps. Defaults to [time.Now].
	Now func() time.Time
}

// Service orchestrates the catalog: lookups, story creation and bookmarks.
type Service struct {
	storyRepo   StoryRepository
	chapterRepo ChapterRepository
	logger      *slog.Logger
	options     Options
}

// NewService constructs a new [Service] with its required repositories.
func NewService(storyRepo StoryRepository, chapterRepo ChapterRepository, logger *slog.Logger, options Options) *Service {
	if options.Now == nil {
		options.Now = time.Now
	}
	return &Service{
		storyRepo:   storyRepo,
		chapterRepo: chapterRepo,
		logger:      logger,
		options:     options,
	}
}

// # Story Lookups

// ListStories returns every story in insertion order.
func (service *Service) ListStories(context context.Context) ([]*Story, error) {
	return service.storyRepo.List(context)
}

/*
GetStory fetches a single story by numeric ID or slug.

Description: Identifiers that parse as integers are looked up by ID;
everything else resolves through the unique slug.

Parameters:
  - context: context.Context
  - identifier: string (ID or slug)

Returns:
  - *Story: The story
  - error: apperr.NotFound if no match is found
*/
func (service *Service) GetStory(context context.Context, identifier string) (*Story, error) {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return service.storyRepo.FindByID(context, id)
	}
	return service.storyRepo.FindBySlug(context, strings.ToLower(identifier))
}

// GetStoryByID fetches a single story by ID.
func (service *Service) GetStoryByID(context context.Context, id int64) (*Story, error) {
	return service.storyRepo.FindByID(context, id)
}

// # Chapter Lookups

// ListChapters returns a story's chapters ordered by chapter number.
// Unknown story IDs yield an empty list.
func (service *Service) ListChapters(context context.Context, storyID int64) ([]*Chapter, error) {
	return service.chapterRepo.ListByStory(context, storyID)
}

// GetChapter fetches a single chapter by ID.
func (service *Service) GetChapter(context context.Context, id int64) (*Chapter, error) {
	return service.chapterRepo.FindByID(context, id)
}

// # Story Creation

/*
AddStory validates a draft and appends the resulting story to the catalog.

Description: Name and link are required. The cover falls back to the
placeholder image, the current chapter to 1, and a zero or absent total to
unknown. A current chapter past a known total is rejected. The new story gets
the next free ID, a slug derived from its name, and the current time as both
its creation and last-scraped timestamps. Links are not de-duplicated.

Parameters:
  - context: context.Context (cancelling it aborts the simulated delay)
  - draft: Draft

Returns:
  - *Story: The created story
  - error: VALIDATION_ERROR, or the context error if cancelled
*/
func (service *Service) AddStory(context context.Context, draft Draft) (*Story, error) {
	name := strings.TrimSpace(draft.Name)
	link := strings.TrimSpace(draft.Link)

	currentChapter := pointer.Fallback(draft.CurrentChapterNumber, 1)
	totalChapters := draft.TotalChapters
	if totalChapters != nil && *totalChapters == 0 {
		totalChapters = nil
	}

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLength)
	validator.Required(FieldLink, link).MaxLen(FieldLink, link, MaxURLLength)
	validator.MaxLen(FieldDescription, draft.Description, MaxDescriptionLength)
	validator.MaxLen(FieldCoverImage, draft.CoverImage, MaxURLLength)
	validator.Min(FieldCurrentChapterNumber, currentChapter, 1)

	if totalChapters != nil {
		validator.Min(FieldTotalChapters, *totalChapters, 0)
		validator.Custom(FieldCurrentChapterNumber, *totalChapters > 0 && currentChapter > *totalChapters,
			"Cannot exceed total_chapters")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.simulateLatency(context); err != nil {
		return nil, err
	}

	coverImage := strings.TrimSpace(draft.CoverImage)
	if coverImage == "" {
		coverImage = service.options.PlaceholderCover
	}

	now := service.options.Now().UTC()
	story := &Story{
		Slug:                 slug.From(name),
		Name:                 name,
		Link:                 link,
		Description:          strings.TrimSpace(draft.Description),
		CoverImage:           coverImage,
		CurrentChapterNumber: currentChapter,
		TotalChapters:        pointer.Copy(totalChapters),
		CreatedAt:            now,
		LastScrapedAt:        now,
	}

	if err := service.storyRepo.Create(context, story); err != nil {
		return nil, err
	}

	service.logger.Info("story_created",
		slog.Int64("story_id", story.ID),
		slog.String("slug", story.Slug),
		slog.String("link", story.Link),
	)

	return story, nil
}

// # Reading Progress

/*
RecordProgress moves a story's bookmark to the chapter being read.

Parameters:
  - context: context.Context
  - storyID: int64
  - chapterNumber: int

Returns:
  - error: apperr.NotFound if the story is missing
*/
func (service *Service) RecordProgress(context context.Context, storyID int64, chapterNumber int) error {
	if err := service.storyRepo.UpdateCurrentChapter(context, storyID, chapterNumber); err != nil {
		return err
	}

	service.logger.Debug("story_progress_recorded",
		slog.Int64("story_id", storyID),
		slog.Int("chapter_number", chapterNumber),
	)

	return nil
}

// # Internal Helpers

// simulateLatency waits for the configured creation delay or until ctx ends.
func (service *Service) simulateLatency(ctx context.Context) error {
	if service.options.CreateDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(service.options.CreateDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
