// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package render draws the library and reader views for a terminal.

Colours come from the user's settings. Terminals have a single font, so the
font size controls the wrap width and the font family is shown as a label.
*/
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/taibuivan/inkwell/internal/core/library"
	"github.com/taibuivan/inkwell/internal/core/reader"
	"github.com/taibuivan/inkwell/internal/core/settings"
)

const progressBarWidth = 20

// WrapWidth is the column at which chapter text wraps for a font size.
// Larger type means fewer characters per line.
func WrapWidth(size settings.FontSize) int {
	switch size {
	case settings.FontSizeSmall:
		return 88
	case settings.FontSizeMedium:
		return 76
	case settings.FontSizeLarge:
		return 64
	case settings.FontSizeXL:
		return 56
	default:
		return WrapWidth(settings.FontSizeMedium)
	}
}

// # Styles

type palette struct {
	page   lipgloss.Style
	title  lipgloss.Style
	muted  lipgloss.Style
	accent lipgloss.Style
}

func newPalette(userSettings settings.UserSettings) palette {
	page := lipgloss.NewStyle().
		Foreground(lipgloss.Color(userSettings.TextColor)).
		Background(lipgloss.Color(userSettings.BackgroundColor))

	return palette{
		page:   page,
		title:  page.Bold(true),
		muted:  page.Faint(true),
		accent: page.Underline(true),
	}
}

// # Library

// Library renders the dashboard as stats followed by one block per story.
func Library(dashboard library.Dashboard, userSettings settings.UserSettings) string {
	styles := newPalette(userSettings)
	var out strings.Builder

	out.WriteString(styles.title.Render("Your Stories"))
	out.WriteString("\n")
	out.WriteString(styles.muted.Render(fmt.Sprintf("%d stories · %d chapters · %d%% average progress",
		dashboard.Stats.TotalStories, dashboard.Stats.TotalChapters, dashboard.Stats.AverageProgress)))
	out.WriteString("\n\n")

	if dashboard.IsEmpty() {
		out.WriteString(styles.page.Render("No stories yet. Add your first story to start reading."))
		out.WriteString("\n")
		return out.String()
	}

	width := WrapWidth(userSettings.FontSize)
	for _, card := range dashboard.Cards {
		out.WriteString(styles.accent.Render(fmt.Sprintf("%d. %s", card.ID, card.Name)))
		out.WriteString(styles.muted.Render("  (" + card.Slug + ")"))
		out.WriteString("\n")

		if card.Description != "" {
			out.WriteString(styles.page.Render(wordwrap.String(card.Description, width)))
			out.WriteString("\n")
		}

		out.WriteString(styles.page.Render(progressLine(card)))
		out.WriteString("\n")
		out.WriteString(styles.muted.Render("Updated " + card.LastUpdated.Format("Jan 2, 2006")))
		out.WriteString("\n\n")
	}

	return out.String()
}

func progressLine(card library.Card) string {
	if !card.HasKnownTotal() {
		return fmt.Sprintf("Chapter %d", card.CurrentChapterNumber)
	}
	return fmt.Sprintf("Chapter %d of %d %s %d%%",
		card.CurrentChapterNumber, *card.TotalChapters, ProgressBar(card.CompletionPercent, progressBarWidth), card.CompletionPercent)
}

// ProgressBar draws a fixed-width bar for a percentage in [0, 100].
func ProgressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	filled := max(0, min(width, percent*width/100))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// # Reader

// Reader renders a chapter with its header, wrapped paragraphs and navigation hints.
func Reader(view reader.View, userSettings settings.UserSettings) string {
	styles := newPalette(userSettings)
	width := WrapWidth(userSettings.FontSize)
	var out strings.Builder

	out.WriteString(styles.title.Render(view.StoryName))
	out.WriteString("\n")
	out.WriteString(styles.accent.Render(view.ChapterTitle))
	out.WriteString("\n")
	out.WriteString(styles.muted.Render(fmt.Sprintf("%d min read · Chapter %d of %d · %s",
		view.ReadingMinutes, view.ChapterNumber, view.Of, userSettings.FontFamily)))
	out.WriteString("\n\n")

	for _, paragraph := range view.Paragraphs {
		out.WriteString(styles.page.Render(wordwrap.String(paragraph, width)))
		out.WriteString("\n\n")
	}

	out.WriteString(styles.muted.Render(navigationLine(view)))
	out.WriteString("\n")

	return out.String()
}

func navigationLine(view reader.View) string {
	parts := make([]string, 0, 3)
	if view.CanPrevious {
		parts = append(parts, "< previous")
	}
	parts = append(parts, fmt.Sprintf("%d of %d", view.Position, view.Count))
	if view.CanNext {
		parts = append(parts, "next >")
	}
	return strings.Join(parts, " · ")
}

// # Presets

// Presets lists the colour schemes with a swatch in each scheme's colours.
func Presets(presets []settings.Preset) string {
	var out strings.Builder
	for _, preset := range presets {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(preset.TextColor)).
			Background(lipgloss.Color(preset.BackgroundColor)).
			Padding(0, 1).
			Render(preset.Name)

		out.WriteString(fmt.Sprintf("%-12s %s  %s on %s (%s)\n",
			preset.Slug, swatch, preset.TextColor, preset.BackgroundColor, preset.Theme))
	}
	return out.String()
}
