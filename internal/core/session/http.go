// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/taibuivan/inkwell/internal/core/catalog"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/internal/platform/validate"
)

// StoryFinder resolves a story by numeric ID or slug.
type StoryFinder interface {
	GetStory(context context.Context, identifier string) (*catalog.Story, error)
}

// Action names accepted by PATCH /session.
const (
	ActionSelectStory   = "select_story"
	ActionChangeChapter = "change_chapter"
	ActionNext          = "next"
	ActionPrevious      = "previous"
	ActionLibrary       = "library"
)

// # Handler Implementation

// Handler exposes the reading session over HTTP.
type Handler struct {
	session *Session
	stories StoryFinder
}

// NewHandler constructs a new session [Handler].
func NewHandler(session *Session, stories StoryFinder) *Handler {
	return &Handler{session: session, stories: stories}
}

// Routes returns the router mounted at /api/v1/session.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getSession)
	router.Patch("/", handler.applyAction)
	return router
}

// actionResponse reports whether an action changed anything alongside the new state.
type actionResponse struct {
	Changed bool  `json:"changed"`
	Session State `json:"session"`
}

/*
GET /api/v1/session.

Response:
  - 200: State: Current session snapshot
*/
func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.session.Snapshot())
}

// sessionActionRequest defines the inbound JSON schema for PATCH /session.
type sessionActionRequest struct {
	Action        string `json:"action"`
	Story         string `json:"story"`          // ID or slug, for select_story
	ChapterNumber int    `json:"chapter_number"` // for change_chapter
}

// Validate implements [validation.Validatable].
func (input sessionActionRequest) Validate() error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.Action, validation.Required,
			validation.In(ActionSelectStory, ActionChangeChapter, ActionNext, ActionPrevious, ActionLibrary)),
		validation.Field(&input.Story,
			validation.When(input.Action == ActionSelectStory, validation.Required)),
		validation.Field(&input.ChapterNumber,
			validation.When(input.Action == ActionChangeChapter, validation.Required, validation.Min(1))),
	)
}

/*
PATCH /api/v1/session.

Description: Applies one navigation action. Moves that are not possible
(past the last chapter, unknown chapter number) succeed with changed=false.

Request (Body):
  - sessionActionRequest: JSON object

Response:
  - 200: actionResponse: Result and new snapshot
  - 400: VALIDATION_ERROR: Unknown action or missing argument
  - 404: NOT_FOUND: Story not found
  - 422: UNPROCESSABLE: Story has no chapters yet
*/
func (handler *Handler) applyAction(writer http.ResponseWriter, request *http.Request) {
	var input sessionActionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validate.FromOzzo(input.Validate()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	changed, err := handler.dispatch(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, actionResponse{Changed: changed, Session: handler.session.Snapshot()})
}

// dispatch runs the requested action against the session.
func (handler *Handler) dispatch(ctx context.Context, input sessionActionRequest) (bool, error) {
	switch input.Action {
	case ActionSelectStory:
		story, err := handler.stories.GetStory(ctx, input.Story)
		if err != nil {
			return false, err
		}
		opened, err := handler.session.SelectStory(ctx, story)
		if err != nil {
			return false, err
		}
		if !opened {
			return false, apperr.Unprocessable("Story has no chapters yet")
		}
		return true, nil

	case ActionChangeChapter:
		return handler.session.ChangeChapter(ctx, input.ChapterNumber)

	case ActionNext:
		return handler.session.GoToNextChapter(ctx)

	case ActionPrevious:
		return handler.session.GoToPreviousChapter(ctx)

	case ActionLibrary:
		handler.session.ReturnToLibrary()
		return true, nil
	}

	return false, validate.RequiredError("action", "Unknown action")
}
