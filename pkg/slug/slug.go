// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug builds the readable identifiers stories are addressed by,
// as in /api/v1/stories/saltwind-cartographer.
//
// Slugs are lowercase ASCII letters and digits separated by single hyphens.
// Accents are folded ("Élan" → "elan"); any other character becomes a separator.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From derives a slug from a story title. Titles without any ASCII letter or
// digit yield "".
func From(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), title)
	if err != nil {
		folded = title
	}

	var out strings.Builder
	separate := false

	for _, r := range strings.ToLower(folded) {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			separate = true
			continue
		}
		if separate && out.Len() > 0 {
			out.WriteByte('-')
		}
		separate = false
		out.WriteRune(r)
	}

	return out.String()
}

// Unique returns base when it is free. Otherwise it appends "-<n>" for the
// first n counting up from start that is not taken. An empty base yields the
// bare number.
func Unique(base string, start int64, taken func(string) bool) string {
	if base != "" && !taken(base) {
		return base
	}

	for n := start; ; n++ {
		candidate := strconv.FormatInt(n, 10)
		if base != "" {
			candidate = base + "-" + candidate
		}
		if !taken(candidate) {
			return candidate
		}
	}
}
