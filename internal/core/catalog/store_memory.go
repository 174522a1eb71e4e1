// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/pkg/slug"
)

// # In-Memory Repositories

// MemoryStore keeps the whole catalog in process memory.
//
// It implements [StoryRepository] directly and [ChapterRepository] through
// [MemoryStore.Chapters]. Every read returns copies, so the only way to change
// a story is through the store.
type MemoryStore struct {
	mu sync.RWMutex

	stories   []*Story // insertion order
	storyByID map[int64]*Story
	slugs     map[string]int64

	chaptersByStory map[int64][]*Chapter // sorted by ChapterNumber
	chapterByID     map[int64]*Chapter
}

/*
NewMemoryStore builds a store from seed records.

Description: Rejects duplicate story or chapter IDs and slugs, chapters that
reference unknown stories, chapter numbers below 1, and duplicate chapter
numbers within a story. Chapters are sorted by chapter number.

Parameters:
  - stories: []*Story (copied)
  - chapters: []*Chapter (copied)

Returns:
  - *MemoryStore: Ready-to-use store
  - error: The first integrity violation found
*/
func NewMemoryStore(stories []*Story, chapters []*Chapter) (*MemoryStore, error) {
	store := &MemoryStore{
		storyByID:       make(map[int64]*Story, len(stories)),
		slugs:           make(map[string]int64, len(stories)),
		chaptersByStory: make(map[int64][]*Chapter),
		chapterByID:     make(map[int64]*Chapter, len(chapters)),
	}

	for _, story := range stories {
		if story.ID <= 0 {
			return nil, fmt.Errorf("catalog: story %q has invalid id %d", story.Name, story.ID)
		}
		if _, exists := store.storyByID[story.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate story id %d", story.ID)
		}
		if _, exists := store.slugs[story.Slug]; exists && story.Slug != "" {
			return nil, fmt.Errorf("catalog: duplicate story slug %q", story.Slug)
		}

		stored := story.Clone()
		store.stories = append(store.stories, stored)
		store.storyByID[stored.ID] = stored
		if stored.Slug != "" {
			store.slugs[stored.Slug] = stored.ID
		}
	}

	for _, chapter := range chapters {
		if _, exists := store.chapterByID[chapter.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate chapter id %d", chapter.ID)
		}
		if _, exists := store.storyByID[chapter.StoryID]; !exists {
			return nil, fmt.Errorf("catalog: chapter %d references unknown story %d", chapter.ID, chapter.StoryID)
		}
		if chapter.ChapterNumber < 1 {
			return nil, fmt.Errorf("catalog: chapter %d has invalid number %d", chapter.ID, chapter.ChapterNumber)
		}
		for _, sibling := range store.chaptersByStory[chapter.StoryID] {
			if sibling.ChapterNumber == chapter.ChapterNumber {
				return nil, fmt.Errorf("catalog: story %d has duplicate chapter number %d", chapter.StoryID, chapter.ChapterNumber)
			}
		}

		stored := chapter.Clone()
		store.chapterByID[stored.ID] = stored
		store.chaptersByStory[stored.StoryID] = append(store.chaptersByStory[stored.StoryID], stored)
	}

	for _, list := range store.chaptersByStory {
		sort.Slice(list, func(i, j int) bool { return list[i].ChapterNumber < list[j].ChapterNumber })
	}

	return store, nil
}

// # Story Repository Implementation

// List returns copies of all stories in insertion order.
func (store *MemoryStore) List(_ context.Context) ([]*Story, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	stories := make([]*Story, 0, len(store.stories))
	for _, story := range store.stories {
		stories = append(stories, story.Clone())
	}
	return stories, nil
}

// FindByID returns a copy of the story with the given ID.
func (store *MemoryStore) FindByID(_ context.Context, id int64) (*Story, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	story, ok := store.storyByID[id]
	if !ok {
		return nil, apperr.NotFound("Story")
	}
	return story.Clone(), nil
}

// FindBySlug returns a copy of the story with the given slug.
func (store *MemoryStore) FindBySlug(_ context.Context, storySlug string) (*Story, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	id, ok := store.slugs[storySlug]
	if !ok {
		return nil, apperr.NotFound("Story")
	}
	return store.storyByID[id].Clone(), nil
}

/*
Create appends a new story.

Description: The ID is one greater than the largest existing ID. When the
slug is empty or already taken, "-<n>" is appended, counting up from the new
ID until the slug is free.
The caller's story is updated with the assigned ID and slug.
*/
func (store *MemoryStore) Create(_ context.Context, story *Story) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	var nextID int64 = 1
	for id := range store.storyByID {
		nextID = max(nextID, id+1)
	}
	story.ID = nextID

	story.Slug = slug.Unique(story.Slug, story.ID, func(candidate string) bool {
		_, taken := store.slugs[candidate]
		return taken
	})

	stored := story.Clone()
	store.stories = append(store.stories, stored)
	store.storyByID[stored.ID] = stored
	store.slugs[stored.Slug] = stored.ID

	return nil
}

// UpdateCurrentChapter sets the bookmark of an existing story.
func (store *MemoryStore) UpdateCurrentChapter(_ context.Context, id int64, chapterNumber int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	story, ok := store.storyByID[id]
	if !ok {
		return apperr.NotFound("Story")
	}
	story.CurrentChapterNumber = chapterNumber
	return nil
}

// # Chapter Repository Implementation

// ChapterStore adapts a [MemoryStore] to [ChapterRepository].
//
// It exists because both repositories name their lookup FindByID.
type ChapterStore struct {
	store *MemoryStore
}

// Chapters returns the chapter view of the store.
func (store *MemoryStore) Chapters() *ChapterStore {
	return &ChapterStore{store: store}
}

// ListByStory returns copies of a story's chapters ordered by chapter number.
func (chapters *ChapterStore) ListByStory(_ context.Context, storyID int64) ([]*Chapter, error) {
	chapters.store.mu.RLock()
	defer chapters.store.mu.RUnlock()

	list := chapters.store.chaptersByStory[storyID]
	result := make([]*Chapter, 0, len(list))
	for _, chapter := range list {
		result = append(result, chapter.Clone())
	}
	return result, nil
}

// FindByID returns a copy of the chapter with the given ID.
func (chapters *ChapterStore) FindByID(_ context.Context, id int64) (*Chapter, error) {
	chapters.store.mu.RLock()
	defer chapters.store.mu.RUnlock()

	chapter, ok := chapters.store.chapterByID[id]
	if !ok {
		return nil, apperr.NotFound("Chapter")
	}
	return chapter.Clone(), nil
}
