// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"math"

	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/pkg/pointer"
	"github.com/taibuivan/inkwell/pkg/slice"
)

// # Reading Progress

// CompletionPercent is the rounded share of a story that has been read.
//
// Stories without a known positive total report 0. The result is clamped to
// [0, 100] so a bookmark past the declared total never shows over 100%.
func CompletionPercent(story *Story) int {
	if story == nil || !story.HasKnownTotal() {
		return 0
	}
	percent := float64(story.CurrentChapterNumber) / float64(*story.TotalChapters) * 100
	return clampInt(roundHalfUp(percent), 0, 100)
}

/*
AverageProgress is the library-wide mean completion shown on the dashboard.

Each story contributes current / (total or 1) * 100, unclamped, so a story
with an unknown total contributes its current chapter number times 100. This
is the long-standing dashboard arithmetic and is kept as-is: (5 of 10) and
(3 of unknown) average to 175. An empty library reports 0.
*/
func AverageProgress(stories []*Story) int {
	if len(stories) == 0 {
		return 0
	}

	sum := slice.Reduce(stories, 0.0, func(acc float64, story *Story) float64 {
		total := pointer.Val(story.TotalChapters)
		if total == 0 {
			total = 1
		}
		return acc + float64(story.CurrentChapterNumber)/float64(total)*100
	})

	return roundHalfUp(sum / float64(len(stories)))
}

// TotalKnownChapters sums the declared totals, counting unknown totals as 0.
func TotalKnownChapters(stories []*Story) int {
	return slice.Reduce(stories, 0, func(acc int, story *Story) int {
		return acc + pointer.Val(story.TotalChapters)
	})
}

// ScrollProgress converts a scroll position into a reading percentage.
//
// The result is scrollTop / (scrollHeight - clientHeight) * 100 clamped to
// [0, 100]. A page that cannot scroll reports 0.
func ScrollProgress(scrollTop, scrollHeight, clientHeight float64) float64 {
	scrollable := scrollHeight - clientHeight
	if scrollable <= 0 || math.IsNaN(scrollTop) {
		return 0
	}
	return math.Min(100, math.Max(0, scrollTop/scrollable*100))
}

// ReadingMinutes estimates reading time at [constants.WordsPerMinute].
// Chapters without a word count are assumed to hold [constants.DefaultWordCount] words.
func ReadingMinutes(wordCount *int) int {
	words := pointer.Fallback(wordCount, constants.DefaultWordCount)
	if words <= 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / constants.WordsPerMinute))
}

// # Internal Helpers

// roundHalfUp rounds .5 towards positive infinity, matching browser Math.round.
func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

func clampInt(value, low, high int) int {
	return max(low, min(value, high))
}
