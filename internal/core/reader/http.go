// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/taibuivan/inkwell/internal/core/session"
	"github.com/taibuivan/inkwell/internal/core/settings"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/internal/platform/validate"
)

// SettingsSource provides the current display settings.
type SettingsSource interface {
	Get() settings.UserSettings
}

// # Handler Implementation

// Handler serves the reading view and records reader interaction.
type Handler struct {
	session  *session.Session
	settings SettingsSource
	now      func() time.Time
}

// NewHandler constructs a new reader [Handler]. A nil clock defaults to [time.Now].
func NewHandler(readingSession *session.Session, source SettingsSource, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{session: readingSession, settings: source, now: now}
}

// Routes returns the router mounted at /api/v1/reader.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getView)
	router.Post("/scroll", handler.recordScroll)
	router.Post("/activity", handler.markActivity)

	return router
}

// viewResponse wraps the view with an availability flag.
type viewResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	View    *View  `json:"view,omitempty"`
}

/*
GET /api/v1/reader.

Description: The reading view for the open chapter. When nothing is open the
response has ok=false and a message instead of a view.

Response:
  - 200: viewResponse: Success
*/
func (handler *Handler) getView(writer http.ResponseWriter, request *http.Request) {
	view, ok := Build(handler.session.Snapshot(), handler.settings.Get(), handler.now())
	if !ok {
		respond.OK(writer, viewResponse{OK: false, Message: MessageNoChapter})
		return
	}

	respond.OK(writer, viewResponse{OK: true, View: &view})
}

// scrollRequest defines the inbound JSON schema for POST /reader/scroll.
type scrollRequest struct {
	ScrollTop    float64 `json:"scroll_top"`
	ScrollHeight float64 `json:"scroll_height"`
	ClientHeight float64 `json:"client_height"`
}

// Validate implements [validation.Validatable].
func (input scrollRequest) Validate() error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.ScrollHeight, validation.Min(0.0)),
		validation.Field(&input.ClientHeight, validation.Min(0.0)),
	)
}

/*
POST /api/v1/reader/scroll.

Description: Records the scroll position of the open chapter. Outside the
reader view the position is ignored and 0 is reported.

Request (Body):
  - scrollRequest: JSON object

Response:
  - 200: {scroll_progress}: Stored progress
  - 400: VALIDATION_ERROR: Negative dimensions
*/
func (handler *Handler) recordScroll(writer http.ResponseWriter, request *http.Request) {
	var input scrollRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validate.FromOzzo(input.Validate()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	progress := handler.session.RecordScroll(input.ScrollTop, input.ScrollHeight, input.ClientHeight)
	respond.OK(writer, map[string]float64{"scroll_progress": progress})
}

/*
POST /api/v1/reader/activity.

Description: Marks user activity so the reading controls reappear.

Response:
  - 200: {controls_visible}: Visibility after the activity
*/
func (handler *Handler) markActivity(writer http.ResponseWriter, request *http.Request) {
	now := handler.now()
	handler.session.MarkActivity(now)
	respond.OK(writer, map[string]bool{"controls_visible": handler.session.ControlsVisible(now)})
}
