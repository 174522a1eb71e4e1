// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/catalog"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/pkg/pointer"
)

var seededAt = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

// fixtureRecords returns two stories: one with three chapters seeded out of
// order and one with none.
func fixtureRecords() ([]*catalog.Story, []*catalog.Chapter) {
	stories := []*catalog.Story{
		{ID: 1, Slug: "the-tower", Name: "The Tower", Link: "https://example.com/tower", CurrentChapterNumber: 1, TotalChapters: pointer.To(3), CreatedAt: seededAt, LastScrapedAt: seededAt},
		{ID: 2, Slug: "empty-shelf", Name: "Empty Shelf", Link: "https://example.com/empty", CurrentChapterNumber: 1, CreatedAt: seededAt, LastScrapedAt: seededAt},
	}
	chapters := []*catalog.Chapter{
		{ID: 12, StoryID: 1, ChapterNumber: 3, Title: "Summit", Content: "Top.", WordCount: pointer.To(900)},
		{ID: 10, StoryID: 1, ChapterNumber: 1, Title: "Base", Content: "Bottom.\n\nStairs."},
		{ID: 11, StoryID: 1, ChapterNumber: 2, Title: "Landing", Content: "Middle."},
	}
	return stories, chapters
}

func newFixtureStore(t *testing.T) *catalog.MemoryStore {
	t.Helper()
	stories, chapters := fixtureRecords()
	store, err := catalog.NewMemoryStore(stories, chapters)
	require.NoError(t, err)
	return store
}

/*
TestNewMemoryStore_Integrity rejects seeds that break catalog invariants.
*/
func TestNewMemoryStore_Integrity(t *testing.T) {
	tests := []struct {
		name     string
		stories  []*catalog.Story
		chapters []*catalog.Chapter
	}{
		{
			name:    "duplicate_story_id",
			stories: []*catalog.Story{{ID: 1, Slug: "a"}, {ID: 1, Slug: "b"}},
		},
		{
			name:    "duplicate_slug",
			stories: []*catalog.Story{{ID: 1, Slug: "a"}, {ID: 2, Slug: "a"}},
		},
		{
			name:    "non_positive_id",
			stories: []*catalog.Story{{ID: 0, Slug: "a"}},
		},
		{
			name:     "orphan_chapter",
			stories:  []*catalog.Story{{ID: 1, Slug: "a"}},
			chapters: []*catalog.Chapter{{ID: 1, StoryID: 9, ChapterNumber: 1}},
		},
		{
			name:     "duplicate_chapter_number",
			stories:  []*catalog.Story{{ID: 1, Slug: "a"}},
			chapters: []*catalog.Chapter{{ID: 1, StoryID: 1, ChapterNumber: 1}, {ID: 2, StoryID: 1, ChapterNumber: 1}},
		},
		{
			name:     "chapter_number_below_one",
			stories:  []*catalog.Story{{ID: 1, Slug: "a"}},
			chapters: []*catalog.Chapter{{ID: 1, StoryID: 1, ChapterNumber: 0}},
		},
		{
			name:     "duplicate_chapter_id",
			stories:  []*catalog.Story{{ID: 1, Slug: "a"}},
			chapters: []*catalog.Chapter{{ID: 1, StoryID: 1, ChapterNumber: 1}, {ID: 1, StoryID: 1, ChapterNumber: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.NewMemoryStore(tt.stories, tt.chapters)
			assert.Error(t, err)
		})
	}
}

/*
TestMemoryStore_ChaptersSorted verifies chapters come back strictly ascending
regardless of seed order, and unknown stories yield an empty list.
*/
func TestMemoryStore_ChaptersSorted(t *testing.T) {
	store := newFixtureStore(t)
	ctx := context.Background()

	chapters, err := store.Chapters().ListByStory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, chapters, 3)
	for i := 1; i < len(chapters); i++ {
		assert.Less(t, chapters[i-1].ChapterNumber, chapters[i].ChapterNumber)
	}

	empty, err := store.Chapters().ListByStory(ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

/*
TestMemoryStore_ReturnsCopies ensures callers cannot mutate stored records.
*/
func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := newFixtureStore(t)
	ctx := context.Background()

	story, err := store.FindByID(ctx, 1)
	require.NoError(t, err)
	story.Name = "Changed"
	*story.TotalChapters = 99

	again, err := store.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "The Tower", again.Name)
	assert.Equal(t, 3, *again.TotalChapters)
}

/*
TestMemoryStore_Create assigns max+1 identifiers and keeps slugs unique.
*/
func TestMemoryStore_Create(t *testing.T) {
	store := newFixtureStore(t)
	ctx := context.Background()

	first := &catalog.Story{Slug: "the-tower", Name: "The Tower"}
	require.NoError(t, store.Create(ctx, first))
	assert.Equal(t, int64(3), first.ID)
	assert.Equal(t, "the-tower-3", first.Slug)

	second := &catalog.Story{Slug: "", Name: "???"}
	require.NoError(t, store.Create(ctx, second))
	assert.Equal(t, int64(4), second.ID)
	assert.Equal(t, "4", second.Slug)

	bySlug, err := store.FindBySlug(ctx, "the-tower-3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), bySlug.ID)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, int64(4), all[3].ID)
}

/*
TestMemoryStore_Create_SuffixCollision keeps counting when the suffixed slug
already belongs to another story.
*/
func TestMemoryStore_Create_SuffixCollision(t *testing.T) {
	ctx := context.Background()
	store, err := catalog.NewMemoryStore([]*catalog.Story{
		{ID: 1, Slug: "lantern", Name: "Lantern", Link: "https://example.com/lantern"},
		{ID: 2, Slug: "lantern-3", Name: "Lantern 3", Link: "https://example.com/lantern-3"},
	}, nil)
	require.NoError(t, err)

	story := &catalog.Story{Slug: "lantern", Name: "Lantern"}
	require.NoError(t, store.Create(ctx, story))
	assert.Equal(t, int64(3), story.ID)
	assert.Equal(t, "lantern-4", story.Slug)

	for slug, wantID := range map[string]int64{"lantern": 1, "lantern-3": 2, "lantern-4": 3} {
		found, err := store.FindBySlug(ctx, slug)
		require.NoError(t, err, slug)
		assert.Equal(t, wantID, found.ID, slug)
	}
}

/*
TestMemoryStore_NotFound checks every lookup reports a NOT_FOUND AppError.
*/
func TestMemoryStore_NotFound(t *testing.T) {
	store := newFixtureStore(t)
	ctx := context.Background()

	_, err := store.FindByID(ctx, 404)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = store.FindBySlug(ctx, "missing")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = store.Chapters().FindByID(ctx, 404)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	err = store.UpdateCurrentChapter(ctx, 404, 2)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
