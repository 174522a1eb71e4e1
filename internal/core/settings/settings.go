// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package settings holds the reader's display preferences.

There is a single [UserSettings] value per process. It is replaced wholesale on
every change and observers are told about each new value.

Core Responsibility:

  - Typography: Theme, font size and font family as closed enums.
  - Colours: Free-form background and text colour strings.
  - Presets: Named colour schemes applied in a single step.
*/
package settings

import (
	"strings"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/validate"
)

// # Enumerations

// Theme is the overall light or dark appearance.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid reports whether t is a known theme.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	}
	return false
}

// FontSize is the reading text size.
type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
	FontSizeXL     FontSize = "xl"
)

// IsValid reports whether s is a known font size.
func (s FontSize) IsValid() bool {
	switch s {
	case FontSizeSmall, FontSizeMedium, FontSizeLarge, FontSizeXL:
		return true
	}
	return false
}

// Points returns the pixel size used by the web front-end.
func (s FontSize) Points() int {
	switch s {
	case FontSizeSmall:
		return 14
	case FontSizeMedium:
		return 16
	case FontSizeLarge:
		return 18
	case FontSizeXL:
		return 20
	default:
		return FontSizeMedium.Points()
	}
}

// FontFamily is the reading typeface family.
type FontFamily string

const (
	FontFamilySerif     FontFamily = "serif"
	FontFamilySansSerif FontFamily = "sans-serif"
	FontFamilyMonospace FontFamily = "monospace"
)

// IsValid reports whether f is a known font family.
func (f FontFamily) IsValid() bool {
	switch f {
	case FontFamilySerif, FontFamilySansSerif, FontFamilyMonospace:
		return true
	}
	return false
}

// CSSStack returns a CSS font-family declaration for f.
func (f FontFamily) CSSStack() string {
	switch f {
	case FontFamilySerif:
		return `ui-serif, Georgia, Cambria, "Times New Roman", serif`
	case FontFamilySansSerif:
		return `ui-sans-serif, system-ui, sans-serif`
	case FontFamilyMonospace:
		return `ui-monospace, SFMono-Regular, Menlo, monospace`
	default:
		return FontFamilySerif.CSSStack()
	}
}

// # Parsing

// ParseTheme converts user input into a [Theme].
func ParseTheme(value string) (Theme, error) {
	theme := Theme(strings.ToLower(strings.TrimSpace(value)))
	if !theme.IsValid() {
		return "", invalidValue(KeyTheme, ThemeLight, ThemeDark)
	}
	return theme, nil
}

// ParseFontSize converts user input into a [FontSize].
func ParseFontSize(value string) (FontSize, error) {
	size := FontSize(strings.ToLower(strings.TrimSpace(value)))
	if !size.IsValid() {
		return "", invalidValue(KeyFontSize, FontSizeSmall, FontSizeMedium, FontSizeLarge, FontSizeXL)
	}
	return size, nil
}

// ParseFontFamily converts user input into a [FontFamily].
func ParseFontFamily(value string) (FontFamily, error) {
	family := FontFamily(strings.ToLower(strings.TrimSpace(value)))
	if !family.IsValid() {
		return "", invalidValue(KeyFontFamily, FontFamilySerif, FontFamilySansSerif, FontFamilyMonospace)
	}
	return family, nil
}

func invalidValue[T ~string](key Key, allowed ...T) *apperr.AppError {
	names := make([]string, len(allowed))
	for i, value := range allowed {
		names[i] = string(value)
	}
	return validate.RequiredError(string(key), "Must be one of: "+strings.Join(names, ", "))
}

// # Domain Entities

// Key names one field of [UserSettings].
type Key string

const (
	KeyTheme           Key = "theme"
	KeyFontSize        Key = "font_size"
	KeyFontFamily      Key = "font_family"
	KeyBackgroundColor Key = "background_color"
	KeyTextColor       Key = "text_color"
)

// Keys lists every settings key in display order.
func Keys() []Key {
	return []Key{KeyTheme, KeyFontSize, KeyFontFamily, KeyBackgroundColor, KeyTextColor}
}

// UserSettings is the complete set of display preferences.
type UserSettings struct {
	Theme           Theme      `json:"theme"`
	FontSize        FontSize   `json:"font_size"`
	FontFamily      FontFamily `json:"font_family"`
	BackgroundColor string     `json:"background_color"`
	TextColor       string     `json:"text_color"`
}

// Defaults returns the settings a fresh process starts with.
func Defaults() UserSettings {
	return UserSettings{
		Theme:           ThemeLight,
		FontSize:        FontSizeMedium,
		FontFamily:      FontFamilySerif,
		BackgroundColor: "#ffffff",
		TextColor:       "#000000",
	}
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Theme           *Theme
	FontSize        *FontSize
	FontFamily      *FontFamily
	BackgroundColor *string
	TextColor       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Theme == nil && p.FontSize == nil && p.FontFamily == nil &&
		p.BackgroundColor == nil && p.TextColor == nil
}

// apply returns current with the patch fields replaced.
func (p Patch) apply(current UserSettings) UserSettings {
	next := current
	if p.Theme != nil {
		next.Theme = *p.Theme
	}
	if p.FontSize != nil {
		next.FontSize = *p.FontSize
	}
	if p.FontFamily != nil {
		next.FontFamily = *p.FontFamily
	}
	if p.BackgroundColor != nil {
		next.BackgroundColor = *p.BackgroundColor
	}
	if p.TextColor != nil {
		next.TextColor = *p.TextColor
	}
	return next
}

// # Presets

// Preset is a named colour scheme.
type Preset struct {
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	Theme           Theme  `json:"theme"`
}

var presets = []Preset{
	{Name: "Light", Slug: "light", BackgroundColor: "#ffffff", TextColor: "#000000", Theme: ThemeLight},
	{Name: "Dark", Slug: "dark", BackgroundColor: "#1f2937", TextColor: "#ffffff", Theme: ThemeDark},
	{Name: "Sepia", Slug: "sepia", BackgroundColor: "#f7f3e9", TextColor: "#5c4c3a", Theme: ThemeLight},
	{Name: "Night Blue", Slug: "night-blue", BackgroundColor: "#0f172a", TextColor: "#cbd5e1", Theme: ThemeDark},
}

// Presets returns the built-in colour schemes in display order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// FindPreset looks a preset up by display name or slug, ignoring case.
func FindPreset(name string) (Preset, bool) {
	needle := strings.TrimSpace(name)
	for _, preset := range presets {
		if strings.EqualFold(preset.Name, needle) || strings.EqualFold(preset.Slug, needle) {
			return preset, true
		}
	}
	return Preset{}, false
}

// patch converts the preset into the update it performs.
func (p Preset) patch() Patch {
	theme := p.Theme
	background := p.BackgroundColor
	text := p.TextColor
	return Patch{Theme: &theme, BackgroundColor: &background, TextColor: &text}
}
