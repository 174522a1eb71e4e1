// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// # Story Data Access

// StoryRepository defines the data access contract for stories.
type StoryRepository interface {

	/*
		List returns every story in insertion order.

		Returns:
		  - []*Story: Copies of the stored stories
		  - error: Storage failures
	*/
	List(context context.Context) ([]*Story, error)

	/*
		FindByID returns the story with the given ID.

		Returns:
		  - *Story: A copy of the stored story
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id int64) (*Story, error)

	/*
		FindBySlug returns the story with the given slug.

		Returns:
		  - *Story: A copy of the stored story
		  - error: apperr.NotFound if missing
	*/
	FindBySlug(context context.Context, slug string) (*Story, error)

	/*
		Create appends a story, assigning its ID and de-duplicating its slug.

		Parameters:
		  - context: context.Context
		  - story: *Story (ID is overwritten; Slug is suffixed on collision)

		Returns:
		  - error: Storage failure
	*/
	Create(context context.Context, story *Story) error

	/*
		UpdateCurrentChapter moves a story's bookmark.

		Returns:
		  - error: apperr.NotFound if the story is missing
	*/
	UpdateCurrentChapter(context context.Context, id int64, chapterNumber int) error
}

// # Chapter Data Access

// ChapterRepository defines the read-only data access contract for chapters.
type ChapterRepository interface {

	/*
		ListByStory returns the chapters of a story ordered by chapter number.

		Returns:
		  - []*Chapter: Empty (never an error) for unknown stories
		  - error: Storage failures
	*/
	ListByStory(context context.Context, storyID int64) ([]*Chapter, error)

	/*
		FindByID returns the chapter with the given ID.

		Returns:
		  - *Chapter: A copy of the stored chapter
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id int64) (*Chapter, error)
}
