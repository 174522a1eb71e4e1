// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reader builds the chapter reading view.

The view combines the session's open chapter with the display settings. It is
a pure projection; all state lives in the session and settings stores.
*/
package reader

import (
	"math"
	"time"

	"github.com/taibuivan/inkwell/internal/core/catalog"
	"github.com/taibuivan/inkwell/internal/core/session"
	"github.com/taibuivan/inkwell/internal/core/settings"
)

// MessageNoChapter is shown when the reader is opened without a chapter.
const MessageNoChapter = "No chapter selected"

// Typography is the styling applied to chapter text.
type Typography struct {
	Theme           settings.Theme      `json:"theme"`
	FontSize        settings.FontSize   `json:"font_size"`
	FontSizePoints  int                 `json:"font_size_points"`
	FontFamily      settings.FontFamily `json:"font_family"`
	FontStack       string              `json:"font_stack"`
	BackgroundColor string              `json:"background_color"`
	TextColor       string              `json:"text_color"`
}

// View is everything the reading screen displays.
type View struct {
	StoryID   int64  `json:"story_id"`
	StoryName string `json:"story_name"`

	ChapterID     int64  `json:"chapter_id"`
	ChapterTitle  string `json:"chapter_title"`
	ChapterNumber int    `json:"chapter_number"`
	Of            int    `json:"of"` // Story total when known, else chapters loaded

	Position    int  `json:"position"` // One-based
	Count       int  `json:"count"`
	CanPrevious bool `json:"can_previous"`
	CanNext     bool `json:"can_next"`

	Paragraphs     []string `json:"paragraphs"`
	ReadingMinutes int      `json:"reading_minutes"`

	ScrollProgress  float64 `json:"scroll_progress"`
	ScrollPercent   int     `json:"scroll_percent"`
	ControlsVisible bool    `json:"controls_visible"`

	Typography Typography `json:"typography"`
}

// NewTypography derives the text styling from the user's settings.
func NewTypography(userSettings settings.UserSettings) Typography {
	return Typography{
		Theme:           userSettings.Theme,
		FontSize:        userSettings.FontSize,
		FontSizePoints:  userSettings.FontSize.Points(),
		FontFamily:      userSettings.FontFamily,
		FontStack:       userSettings.FontFamily.CSSStack(),
		BackgroundColor: userSettings.BackgroundColor,
		TextColor:       userSettings.TextColor,
	}
}

/*
Build projects a session snapshot into a [View].

Parameters:
  - state: session.State
  - userSettings: settings.UserSettings
  - now: time.Time (decides whether the controls are still visible)

Returns:
  - View: The reading view
  - bool: false when no story or chapter is open
*/
func Build(state session.State, userSettings settings.UserSettings, now time.Time) (View, bool) {
	if state.Story == nil || state.Chapter == nil {
		return View{}, false
	}

	story, chapter := state.Story, state.Chapter
	detail := chapter.Detail()

	return View{
		StoryID:         story.ID,
		StoryName:       story.Name,
		ChapterID:       chapter.ID,
		ChapterTitle:    chapter.Title,
		ChapterNumber:   chapter.ChapterNumber,
		Of:              chapterTotal(story, len(state.Chapters)),
		Position:        state.Navigation.Index + 1,
		Count:           state.Navigation.Count,
		CanPrevious:     state.Navigation.CanPrevious,
		CanNext:         state.Navigation.CanNext,
		Paragraphs:      detail.Paragraphs,
		ReadingMinutes:  detail.ReadingMinutes,
		ScrollProgress:  state.ScrollProgress,
		ScrollPercent:   int(math.Round(state.ScrollProgress)),
		ControlsVisible: state.ControlsVisible(now),
		Typography:      NewTypography(userSettings),
	}, true
}

// chapterTotal is the "of N" figure next to the chapter number.
func chapterTotal(story *catalog.Story, loaded int) int {
	if story.HasKnownTotal() {
		return *story.TotalChapters
	}
	return loaded
}
