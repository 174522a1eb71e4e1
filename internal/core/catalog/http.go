// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for browsing and growing the catalog.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalog [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// StoryRoutes returns the router mounted at /api/v1/stories.
func (handler *Handler) StoryRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listStories)
	router.Post("/", handler.createStory)
	router.Get("/{identifier}", handler.getStory)
	router.Get("/{identifier}/chapters", handler.listChapters)

	return router
}

// ChapterRoutes returns the router mounted at /api/v1/chapters.
func (handler *Handler) ChapterRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{id}", handler.getChapter)
	return router
}

// # Story Endpoints

/*
GET /api/v1/stories.

Description: Lists the catalog in insertion order.

Request:
  - page: int
  - limit: int

Response:
  - 200: []Story: Paginated list of stories
*/
func (handler *Handler) listStories(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	stories, err := handler.service.ListStories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, pagination.Page(stories, paginationParams),
		pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(stories)))
}

/*
GET /api/v1/stories/{identifier}.

Description: Retrieves a story by numeric ID or slug.

Response:
  - 200: Story: Success
  - 404: NOT_FOUND: Story not found
*/
func (handler *Handler) getStory(writer http.ResponseWriter, request *http.Request) {
	story, err := handler.service.GetStory(request.Context(), requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, story)
}

// createStoryRequest defines the inbound JSON schema for story creation.
type createStoryRequest struct {
	Name                 string `json:"name"`
	Link                 string `json:"link"`
	Description          string `json:"description"`
	CoverImage           string `json:"cover_image"`
	CurrentChapterNumber *int   `json:"current_chapter_number"`
	TotalChapters        *int   `json:"total_chapters"`
}

/*
POST /api/v1/stories.

Description: Adds a story to the catalog. Missing optional fields take their
defaults; a zero total is treated as unknown.

Request (Body):
  - createStoryRequest: JSON object

Response:
  - 201: Story: Created story
  - 400: VALIDATION_ERROR: Invalid JSON or field values
*/
func (handler *Handler) createStory(writer http.ResponseWriter, request *http.Request) {
	var input createStoryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	story, err := handler.service.AddStory(request.Context(), Draft{
		Name:                 input.Name,
		Link:                 input.Link,
		Description:          input.Description,
		CoverImage:           input.CoverImage,
		CurrentChapterNumber: input.CurrentChapterNumber,
		TotalChapters:        input.TotalChapters,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, story)
}

// # Chapter Endpoints

/*
GET /api/v1/stories/{identifier}/chapters.

Description: Lists a story's chapters in reading order. Numeric identifiers
of unknown stories yield an empty list; unknown slugs are a 404.

Response:
  - 200: []Chapter: Success
  - 404: NOT_FOUND: Slug does not match a story
*/
func (handler *Handler) listChapters(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	storyID, err := strconv.ParseInt(identifier, 10, 64)
	if err != nil {
		story, lookupErr := handler.service.GetStory(request.Context(), identifier)
		if lookupErr != nil {
			respond.Error(writer, request, lookupErr)
			return
		}
		storyID = story.ID
	}

	chapters, err := handler.service.ListChapters(request.Context(), storyID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapters)
}

/*
GET /api/v1/chapters/{id}.

Description: Retrieves a chapter with its paragraphs and estimated reading time.

Response:
  - 200: ChapterDetail: Success
  - 400: VALIDATION_ERROR: Non-numeric ID
  - 404: NOT_FOUND: Chapter not found
*/
func (handler *Handler) getChapter(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.GetChapter(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapter.Detail())
}
