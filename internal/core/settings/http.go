// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/internal/platform/validate"
)

// maxColorLength bounds free-form colour strings.
const maxColorLength = 64

// # Handler Implementation

// Handler exposes the settings store over HTTP.
type Handler struct {
	store *Store
}

// NewHandler constructs a new settings [Handler].
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Routes returns the router mounted at /api/v1/settings.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getSettings)
	router.Patch("/", handler.patchSettings)
	router.Get("/presets", handler.listPresets)
	router.Post("/presets/{name}", handler.applyPreset)

	return router
}

// # Settings Endpoints

/*
GET /api/v1/settings.

Response:
  - 200: UserSettings: Current settings
*/
func (handler *Handler) getSettings(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.store.Get())
}

// patchSettingsRequest defines the inbound JSON schema for partial updates.
type patchSettingsRequest struct {
	Theme           *string `json:"theme"`
	FontSize        *string `json:"font_size"`
	FontFamily      *string `json:"font_family"`
	BackgroundColor *string `json:"background_color"`
	TextColor       *string `json:"text_color"`
}

// Validate implements [validation.Validatable].
func (input patchSettingsRequest) Validate() error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.Theme, validation.NilOrNotEmpty,
			validation.In(string(ThemeLight), string(ThemeDark))),
		validation.Field(&input.FontSize, validation.NilOrNotEmpty,
			validation.In(string(FontSizeSmall), string(FontSizeMedium), string(FontSizeLarge), string(FontSizeXL))),
		validation.Field(&input.FontFamily, validation.NilOrNotEmpty,
			validation.In(string(FontFamilySerif), string(FontFamilySansSerif), string(FontFamilyMonospace))),
		validation.Field(&input.BackgroundColor, validation.NilOrNotEmpty, validation.Length(1, maxColorLength)),
		validation.Field(&input.TextColor, validation.NilOrNotEmpty, validation.Length(1, maxColorLength)),
	)
}

// patch maps the validated payload onto a domain [Patch].
func (input patchSettingsRequest) patch() Patch {
	var patch Patch
	if input.Theme != nil {
		theme := Theme(*input.Theme)
		patch.Theme = &theme
	}
	if input.FontSize != nil {
		size := FontSize(*input.FontSize)
		patch.FontSize = &size
	}
	if input.FontFamily != nil {
		family := FontFamily(*input.FontFamily)
		patch.FontFamily = &family
	}
	patch.BackgroundColor = input.BackgroundColor
	patch.TextColor = input.TextColor
	return patch
}

/*
PATCH /api/v1/settings.

Description: Replaces the provided fields and leaves the rest unchanged.
Subscribers receive a single notification.

Request (Body):
  - patchSettingsRequest: JSON object

Response:
  - 200: UserSettings: Updated settings
  - 400: VALIDATION_ERROR: Unknown enum value or empty colour
*/
func (handler *Handler) patchSettings(writer http.ResponseWriter, request *http.Request) {
	var input patchSettingsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validate.FromOzzo(input.Validate()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.store.Apply(request.Context(), input.patch())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

// # Preset Endpoints

/*
GET /api/v1/settings/presets.

Response:
  - 200: []Preset: Built-in colour schemes
*/
func (handler *Handler) listPresets(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, Presets())
}

/*
POST /api/v1/settings/presets/{name}.

Description: Applies a colour scheme by display name or slug.

Response:
  - 200: UserSettings: Updated settings
  - 404: NOT_FOUND: Preset not found
*/
func (handler *Handler) applyPreset(writer http.ResponseWriter, request *http.Request) {
	updated, err := handler.store.ApplyPreset(request.Context(), requestutil.Param(request, "name"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}
