// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog defines the story and chapter records of the reading library.

It owns the in-memory collection of web novels and their chapters, the story
creation flow, and the progress arithmetic shown on the library dashboard.

Core Responsibility:

  - Catalogue: Stories in insertion order, chapters ordered by chapter number.
  - Creation: Validates drafts and assigns identifiers and timestamps.
  - Progress: Completion and reading-time computations used by the views.

Chapters are immutable once seeded. The only story field that changes after
creation is the current chapter number, moved by reader navigation.
*/
package catalog

import (
	"time"

	"github.com/taibuivan/inkwell/pkg/pointer"
)

// # Domain Entities

// Story is a web novel tracked in the library.
type Story struct {
	ID                   int64  `json:"id"`
	Slug                 string `json:"slug"` // URL-safe identifier, unique within the catalog
	Name                 string `json:"name"`
	Link                 string `json:"link"` // Source page of the novel
	Description          string `json:"description,omitempty"`
	CoverImage           string `json:"cover_image,omitempty"`
	CurrentChapterNumber int    `json:"current_chapter_number"`

	// TotalChapters is nil when the length of the novel is unknown.
	TotalChapters *int `json:"total_chapters,omitempty"`

	CreatedAt     time.Time `json:"created_at"`
	LastScrapedAt time.Time `json:"last_scraped_at"`
}

// Clone returns a deep copy so callers can never mutate catalog state.
func (s *Story) Clone() *Story {
	if s == nil {
		return nil
	}
	clone := *s
	clone.TotalChapters = pointer.Copy(s.TotalChapters)
	return &clone
}

// HasKnownTotal reports whether the story declares a positive chapter total.
func (s *Story) HasKnownTotal() bool {
	return s.TotalChapters != nil && *s.TotalChapters > 0
}

// # Story Creation

// Draft is the user input of the story creation flow.
//
// Name and Link are required. Nil optional numbers take their defaults:
// the current chapter becomes 1 and the total stays unknown.
type Draft struct {
	Name                 string `json:"name"`
	Link                 string `json:"link"`
	Description          string `json:"description"`
	CoverImage           string `json:"cover_image"`
	CurrentChapterNumber *int   `json:"current_chapter_number"`
	TotalChapters        *int   `json:"total_chapters"`
}

// # Field Identifiers

// Field names for validation details.
const (
	FieldName                 = "name"
	FieldLink                 = "link"
	FieldDescription          = "description"
	FieldCoverImage           = "cover_image"
	FieldCurrentChapterNumber = "current_chapter_number"
	FieldTotalChapters        = "total_chapters"
)

// Input limits for the creation flow.
const (
	MaxNameLength        = 300
	MaxDescriptionLength = 5000
	MaxURLLength         = 2048
)
