// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session tracks what the reader is looking at right now.

A single [Session] exists per process. It records the active view, the story
being read, the open chapter, and the reader-only scroll and activity values.

Invariants:

  - The open chapter always belongs to the selected story.
  - The reader view is active only while both a story and a chapter are set.
  - Navigation never leaves the story's chapter list; failed moves change nothing.
*/
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/inkwell/internal/core/catalog"
	"github.com/taibuivan/inkwell/internal/platform/constants"
)

// # Views

// View is the screen being shown.
type View string

const (
	ViewLibrary View = "library"
	ViewReader  View = "reader"
)

// IsValid reports whether v is a known view.
func (v View) IsValid() bool {
	switch v {
	case ViewLibrary, ViewReader:
		return true
	}
	return false
}

// # Dependencies

// ChapterLister loads the chapters of a story in reading order.
type ChapterLister interface {
	ListChapters(context context.Context, storyID int64) ([]*catalog.Chapter, error)
}

// ProgressRecorder moves a story's bookmark.
type ProgressRecorder interface {
	RecordProgress(context context.Context, storyID int64, chapterNumber int) error
}

// Catalog is the slice of the catalog service a session relies on.
type Catalog interface {
	ChapterLister
	ProgressRecorder
}

// # Snapshots

// Navigation describes the open chapter's position within its story.
type Navigation struct {
	Index       int  `json:"index"` // Zero-based, -1 when no chapter is open
	Count       int  `json:"count"`
	CanPrevious bool `json:"can_previous"`
	CanNext     bool `json:"can_next"`
}

// State is an immutable copy of the session.
type State struct {
	View           View               `json:"view"`
	Story          *catalog.Story     `json:"story"`
	Chapter        *catalog.Chapter   `json:"chapter"`
	Chapters       []*catalog.Chapter `json:"-"`
	Navigation     Navigation         `json:"navigation"`
	ScrollProgress float64            `json:"scroll_progress"`
	LastActivity   time.Time          `json:"last_activity"`
}

// # Session

// Session is the single-reader state machine.
type Session struct {
	mu sync.RWMutex

	catalog Catalog
	logger  *slog.Logger
	now     func() time.Time

	view     View
	story    *catalog.Story
	chapter  *catalog.Chapter
	chapters []*catalog.Chapter // chapters of story, ordered by number

	scrollProgress float64
	lastActivity   time.Time
}

// New constructs a [Session] that starts in the library view.
// A nil clock defaults to [time.Now].
func New(catalog Catalog, logger *slog.Logger, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		catalog: catalog,
		logger:  logger,
		now:     now,
		view:    ViewLibrary,
	}
}

/*
SelectStory makes story the current story and opens its first chapter.

Description: The chapter with the lowest number is opened and the reader view
becomes active. When the story has no chapters, the story is still selected
but no chapter is open and the library view stays active.

Parameters:
  - context: context.Context
  - story: *catalog.Story

Returns:
  - bool: Whether the reader opened
  - error: Chapter lookup failures (the session is left unchanged)
*/
func (session *Session) SelectStory(context context.Context, story *catalog.Story) (bool, error) {
	if story == nil {
		return false, nil
	}

	chapters, err := session.catalog.ListChapters(context, story.ID)
	if err != nil {
		return false, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.story = story.Clone()
	session.chapters = chapters
	session.scrollProgress = 0

	if len(chapters) == 0 {
		session.chapter = nil
		session.view = ViewLibrary
		session.logger.Info("session_story_without_chapters", slog.Int64("story_id", story.ID))
		return false, nil
	}

	session.chapter = chapters[0]
	session.view = ViewReader
	session.lastActivity = session.now()

	session.logger.Info("session_reader_opened",
		slog.Int64("story_id", story.ID),
		slog.Int("chapter_number", session.chapter.ChapterNumber),
	)

	return true, nil
}

/*
ChangeChapter opens the chapter with the given number.

Description: Does nothing when no story is selected or the story has no
chapter with that number. On success the scroll position resets and the
story's bookmark moves to chapterNumber.

Returns:
  - bool: Whether the chapter changed
  - error: Bookmark update failures (the session is left unchanged)
*/
func (session *Session) ChangeChapter(context context.Context, chapterNumber int) (bool, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.story == nil {
		return false, nil
	}

	for _, chapter := range session.chapters {
		if chapter.ChapterNumber == chapterNumber {
			if err := session.open(context, chapter); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, nil
}

// GoToNextChapter opens the chapter after the current one.
// It reports false when already at the last chapter or nothing is open.
func (session *Session) GoToNextChapter(context context.Context) (bool, error) {
	return session.step(context, +1)
}

// GoToPreviousChapter opens the chapter before the current one.
// It reports false when already at the first chapter or nothing is open.
func (session *Session) GoToPreviousChapter(context context.Context) (bool, error) {
	return session.step(context, -1)
}

// ReturnToLibrary shows the library and clears the story and chapter.
func (session *Session) ReturnToLibrary() {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.view = ViewLibrary
	session.story = nil
	session.chapter = nil
	session.chapters = nil
	session.scrollProgress = 0
}

// Snapshot returns a copy of the session that later changes do not affect.
func (session *Session) Snapshot() State {
	session.mu.RLock()
	defer session.mu.RUnlock()

	chapters := make([]*catalog.Chapter, len(session.chapters))
	for i, chapter := range session.chapters {
		chapters[i] = chapter.Clone()
	}

	return State{
		View:           session.view,
		Story:          session.story.Clone(),
		Chapter:        session.chapter.Clone(),
		Chapters:       chapters,
		Navigation:     session.navigation(),
		ScrollProgress: session.scrollProgress,
		LastActivity:   session.lastActivity,
	}
}

// # Reader Interaction

/*
RecordScroll stores the reading position of the open chapter.

Description: The latest call wins. Outside the reader view nothing is stored
and 0 is returned.

Returns:
  - float64: The stored progress in [0, 100]
*/
func (session *Session) RecordScroll(scrollTop, scrollHeight, clientHeight float64) float64 {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.view != ViewReader {
		return 0
	}

	session.scrollProgress = catalog.ScrollProgress(scrollTop, scrollHeight, clientHeight)
	return session.scrollProgress
}

// MarkActivity records user activity at the given time.
func (session *Session) MarkActivity(at time.Time) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if at.After(session.lastActivity) {
		session.lastActivity = at
	}
}

// ControlsVisible reports whether the reader controls should be shown at now.
// Controls hide [constants.ControlsHideAfter] after the last activity.
func (session *Session) ControlsVisible(now time.Time) bool {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return controlsVisible(session.view, session.lastActivity, now)
}

// ControlsVisible reports whether the reader controls were visible at now.
func (state State) ControlsVisible(now time.Time) bool {
	return controlsVisible(state.View, state.LastActivity, now)
}

// # Internal Helpers

func controlsVisible(view View, lastActivity, now time.Time) bool {
	if view != ViewReader || lastActivity.IsZero() {
		return false
	}
	return now.Sub(lastActivity) < constants.ControlsHideAfter
}

// step moves by delta positions within the chapter list.
func (session *Session) step(context context.Context, delta int) (bool, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	index := session.index()
	if index < 0 {
		return false, nil
	}

	target := index + delta
	if target < 0 || target >= len(session.chapters) {
		return false, nil
	}

	if err := session.open(context, session.chapters[target]); err != nil {
		return false, err
	}
	return true, nil
}

// open switches to chapter and records the bookmark. Callers must hold mu.
func (session *Session) open(context context.Context, chapter *catalog.Chapter) error {
	if err := session.catalog.RecordProgress(context, session.story.ID, chapter.ChapterNumber); err != nil {
		return err
	}

	session.chapter = chapter
	session.story.CurrentChapterNumber = chapter.ChapterNumber
	session.scrollProgress = 0

	session.logger.Debug("session_chapter_changed",
		slog.Int64("story_id", session.story.ID),
		slog.Int("chapter_number", chapter.ChapterNumber),
	)

	return nil
}

// index is the position of the open chapter, or -1. Callers must hold mu.
func (session *Session) index() int {
	if session.chapter == nil {
		return -1
	}
	for i, chapter := range session.chapters {
		if chapter.ID == session.chapter.ID {
			return i
		}
	}
	return -1
}

// navigation builds the [Navigation] value. Callers must hold mu.
func (session *Session) navigation() Navigation {
	index := session.index()
	count := len(session.chapters)
	return Navigation{
		Index:       index,
		Count:       count,
		CanPrevious: index > 0,
		CanNext:     index >= 0 && index < count-1,
	}
}
