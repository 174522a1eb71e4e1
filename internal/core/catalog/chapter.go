// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strings"
	"time"

	"github.com/taibuivan/inkwell/pkg/pointer"
)

// Chapter is a single installment of a [Story].
type Chapter struct {
	ID            int64     `json:"id"`
	StoryID       int64     `json:"story_id"`
	ChapterNumber int       `json:"chapter_number"` // Unique within a story, defines ordering
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	SourceURL     string    `json:"source_url"`
	ScrapedAt     time.Time `json:"scraped_at"`
	WordCount     *int      `json:"word_count,omitempty"`
}

// Clone returns a deep copy of the chapter.
func (c *Chapter) Clone() *Chapter {
	if c == nil {
		return nil
	}
	clone := *c
	clone.WordCount = pointer.Copy(c.WordCount)
	return &clone
}

// Paragraphs splits the chapter content into display paragraphs.
func (c *Chapter) Paragraphs() []string {
	return Paragraphs(c.Content)
}

// ChapterDetail is a chapter plus the values the reader derives from it.
type ChapterDetail struct {
	*Chapter
	Paragraphs     []string `json:"paragraphs"`
	ReadingMinutes int      `json:"reading_minutes"`
}

// Detail builds the [ChapterDetail] projection of c.
func (c *Chapter) Detail() ChapterDetail {
	return ChapterDetail{
		Chapter:        c,
		Paragraphs:     c.Paragraphs(),
		ReadingMinutes: ReadingMinutes(c.WordCount),
	}
}

// Paragraphs splits text on blank lines. Surrounding whitespace is trimmed and
// empty paragraphs are dropped. Windows line endings are normalised first.
func Paragraphs(content string) []string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")

	paragraphs := make([]string, 0)
	for _, block := range strings.Split(normalized, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}
