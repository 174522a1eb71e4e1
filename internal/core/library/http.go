// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package library

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/core/catalog"
	"github.com/taibuivan/inkwell/internal/platform/respond"
)

// StoryLister returns the whole catalog in display order.
type StoryLister interface {
	ListStories(context context.Context) ([]*catalog.Story, error)
}

// Handler serves the library dashboard.
type Handler struct {
	stories StoryLister
}

// NewHandler constructs a new library [Handler].
func NewHandler(stories StoryLister) *Handler {
	return &Handler{stories: stories}
}

// Routes returns the router mounted at /api/v1/library.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getDashboard)
	return router
}

/*
GET /api/v1/library.

Description: Story cards with completion percentages plus the summary stats.

Response:
  - 200: Dashboard: Success
*/
func (handler *Handler) getDashboard(writer http.ResponseWriter, request *http.Request) {
	stories, err := handler.stories.ListStories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, Build(stories))
}
