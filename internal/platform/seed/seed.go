// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed loads the initial library from a YAML fixture.

The default fixture is embedded in the binary. A different file can be used by
pointing CATALOG_PATH at it; the format is the same.

Format:

	stories:
	  - id: 1
	    name: Example
	    link: https://example.com/novel
	    total_chapters: 10        # optional, 0 or absent means unknown
	    chapters:
	      - id: 1
	        number: 1
	        title: Opening
	        content: |
	          First paragraph.

	          Second paragraph.
*/
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/inkwell/internal/core/catalog"
	"github.com/taibuivan/inkwell/pkg/pointer"
	"github.com/taibuivan/inkwell/pkg/slug"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// # Fixture Records

type fixture struct {
	Stories []storyRecord `yaml:"stories"`
}

type storyRecord struct {
	ID                   int64           `yaml:"id"`
	Slug                 string          `yaml:"slug"`
	Name                 string          `yaml:"name"`
	Link                 string          `yaml:"link"`
	Description          string          `yaml:"description"`
	CoverImage           string          `yaml:"cover_image"`
	CurrentChapterNumber int             `yaml:"current_chapter_number"`
	TotalChapters        *int            `yaml:"total_chapters"`
	CreatedAt            time.Time       `yaml:"created_at"`
	LastScrapedAt        time.Time       `yaml:"last_scraped_at"`
	Chapters             []chapterRecord `yaml:"chapters"`
}

type chapterRecord struct {
	ID        int64     `yaml:"id"`
	Number    int       `yaml:"number"`
	Title     string    `yaml:"title"`
	Content   string    `yaml:"content"`
	SourceURL string    `yaml:"source_url"`
	ScrapedAt time.Time `yaml:"scraped_at"`
	WordCount *int      `yaml:"word_count"`
}

// # Loading

// Catalog is the decoded fixture, ready for [catalog.NewMemoryStore].
type Catalog struct {
	Stories  []*catalog.Story
	Chapters []*catalog.Chapter
}

// Default decodes the embedded fixture.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

/*
Load reads a fixture from path, or the embedded default when path is empty.

Returns:
  - *Catalog: Decoded stories and chapters
  - error: Read, syntax or record errors
*/
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}

	return Parse(data)
}

/*
Parse decodes fixture YAML.

Description: Unknown keys are rejected. Missing slugs are derived from the
story name, a missing current chapter defaults to 1, and a zero total means
unknown. Empty timestamps fall back to the story's creation time.
*/
func Parse(data []byte) (*Catalog, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file fixture
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}

	result := &Catalog{}
	for _, record := range file.Stories {
		if record.Name == "" || record.Link == "" {
			return nil, fmt.Errorf("seed: story %d needs a name and a link", record.ID)
		}

		story := record.story()
		result.Stories = append(result.Stories, story)

		for _, chapter := range record.Chapters {
			result.Chapters = append(result.Chapters, chapter.chapter(story))
		}
	}

	return result, nil
}

// # Record Mapping

func (record storyRecord) story() *catalog.Story {
	story := &catalog.Story{
		ID:                   record.ID,
		Slug:                 record.Slug,
		Name:                 record.Name,
		Link:                 record.Link,
		Description:          record.Description,
		CoverImage:           record.CoverImage,
		CurrentChapterNumber: max(record.CurrentChapterNumber, 1),
		TotalChapters:        pointer.Copy(record.TotalChapters),
		CreatedAt:            record.CreatedAt,
		LastScrapedAt:        record.LastScrapedAt,
	}

	if story.Slug == "" {
		story.Slug = slug.From(record.Name)
	}
	if pointer.Val(story.TotalChapters) == 0 {
		story.TotalChapters = nil
	}
	if story.LastScrapedAt.IsZero() {
		story.LastScrapedAt = story.CreatedAt
	}

	return story
}

func (record chapterRecord) chapter(story *catalog.Story) *catalog.Chapter {
	scrapedAt := record.ScrapedAt
	if scrapedAt.IsZero() {
		scrapedAt = story.LastScrapedAt
	}

	return &catalog.Chapter{
		ID:            record.ID,
		StoryID:       story.ID,
		ChapterNumber: record.Number,
		Title:         record.Title,
		Content:       record.Content,
		SourceURL:     record.SourceURL,
		ScrapedAt:     scrapedAt,
		WordCount:     pointer.Copy(record.WordCount),
	}
}
