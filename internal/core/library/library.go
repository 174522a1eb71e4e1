// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package library builds the dashboard shown on the library screen.
package library

import (
	"time"

	"github.com/taibuivan/inkwell/internal/core/catalog"
	"github.com/taibuivan/inkwell/pkg/slice"
)

// Card is one story tile on the dashboard.
type Card struct {
	ID                   int64     `json:"id"`
	Slug                 string    `json:"slug"`
	Name                 string    `json:"name"`
	Link                 string    `json:"link"`
	Description          string    `json:"description,omitempty"`
	CoverImage           string    `json:"cover_image,omitempty"`
	CurrentChapterNumber int       `json:"current_chapter_number"`
	TotalChapters        *int      `json:"total_chapters,omitempty"`
	CompletionPercent    int       `json:"completion_percent"`
	LastUpdated          time.Time `json:"last_updated"`
}

// HasKnownTotal reports whether the card can show a progress bar.
func (c Card) HasKnownTotal() bool {
	return c.TotalChapters != nil && *c.TotalChapters > 0
}

// Stats are the summary figures above the story grid.
type Stats struct {
	TotalStories    int `json:"total_stories"`
	TotalChapters   int `json:"total_chapters"`
	AverageProgress int `json:"average_progress"`
}

// Dashboard is the complete library view.
type Dashboard struct {
	Stats Stats  `json:"stats"`
	Cards []Card `json:"cards"`
}

// IsEmpty reports whether the library has no stories yet.
func (d Dashboard) IsEmpty() bool {
	return len(d.Cards) == 0
}

// Build projects the catalog into a [Dashboard]. Cards keep catalog order.
func Build(stories []*catalog.Story) Dashboard {
	cards := slice.Map(stories, func(story *catalog.Story) Card {
		clone := story.Clone()
		return Card{
			ID:                   clone.ID,
			Slug:                 clone.Slug,
			Name:                 clone.Name,
			Link:                 clone.Link,
			Description:          clone.Description,
			CoverImage:           clone.CoverImage,
			CurrentChapterNumber: clone.CurrentChapterNumber,
			TotalChapters:        clone.TotalChapters,
			CompletionPercent:    catalog.CompletionPercent(clone),
			LastUpdated:          clone.LastScrapedAt,
		}
	})
	if cards == nil {
		cards = []Card{}
	}

	return Dashboard{
		Stats: Stats{
			TotalStories:    len(stories),
			TotalChapters:   catalog.TotalKnownChapters(stories),
			AverageProgress: catalog.AverageProgress(stories),
		},
		Cards: cards,
	}
}
