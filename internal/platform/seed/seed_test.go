// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/catalog"
	"github.com/taibuivan/inkwell/internal/platform/seed"
)

/*
TestDefault decodes the embedded fixture into a valid catalog.
*/
func TestDefault(t *testing.T) {
	fixture, err := seed.Default()
	require.NoError(t, err)

	require.Len(t, fixture.Stories, 3)
	assert.Len(t, fixture.Chapters, 5)

	first := fixture.Stories[0]
	assert.Equal(t, "the-lamplighter-s-ledger", first.Slug)
	assert.Equal(t, 120, *first.TotalChapters)
	assert.Nil(t, fixture.Stories[1].TotalChapters)

	_, err = catalog.NewMemoryStore(fixture.Stories, fixture.Chapters)
	assert.NoError(t, err)

	for _, chapter := range fixture.Chapters {
		assert.NotEmpty(t, catalog.Paragraphs(chapter.Content), chapter.Title)
	}
}

/*
TestParse applies defaults and rejects malformed fixtures.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, fixture *seed.Catalog)
	}{
		{
			name: "defaults",
			yaml: "stories:\n  - id: 7\n    name: Quiet Hours\n    link: http://q\n    total_chapters: 0\n    created_at: 2024-03-01T00:00:00Z\n",
			check: func(t *testing.T, fixture *seed.Catalog) {
				story := fixture.Stories[0]
				assert.Equal(t, "quiet-hours", story.Slug)
				assert.Equal(t, 1, story.CurrentChapterNumber)
				assert.Nil(t, story.TotalChapters)
				assert.Equal(t, story.CreatedAt, story.LastScrapedAt)
			},
		},
		{
			name: "chapters_inherit_story",
			yaml: "stories:\n  - id: 2\n    name: A\n    link: http://a\n    chapters:\n      - id: 9\n        number: 1\n        title: One\n        content: Hi\n",
			check: func(t *testing.T, fixture *seed.Catalog) {
				require.Len(t, fixture.Chapters, 1)
				assert.Equal(t, int64(2), fixture.Chapters[0].StoryID)
				assert.Nil(t, fixture.Chapters[0].WordCount)
			},
		},
		{
			name:  "empty_document",
			yaml:  "",
			check: func(t *testing.T, fixture *seed.Catalog) { assert.Empty(t, fixture.Stories) },
		},
		{name: "unknown_field", yaml: "stories:\n  - id: 1\n    name: A\n    link: http://a\n    rating: 5\n", wantErr: true},
		{name: "missing_link", yaml: "stories:\n  - id: 1\n    name: A\n", wantErr: true},
		{name: "bad_syntax", yaml: "stories: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture, err := seed.Parse([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, fixture)
		})
	}
}

/*
TestLoad reads an override file and falls back to the embedded fixture.
*/
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stories:\n  - id: 1\n    name: Solo\n    link: http://solo\n"), 0o600))

	fixture, err := seed.Load(path)
	require.NoError(t, err)
	require.Len(t, fixture.Stories, 1)
	assert.Equal(t, "solo", fixture.Stories[0].Slug)

	fixture, err = seed.Load("")
	require.NoError(t, err)
	assert.Len(t, fixture.Stories, 3)

	_, err = seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
