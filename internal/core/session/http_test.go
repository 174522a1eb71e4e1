// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/session"
)

type actionEnvelope struct {
	Data struct {
		Changed bool          `json:"changed"`
		Session session.State `json:"session"`
	} `json:"data"`
}

/*
TestHandler_Actions drives a full reading session through PATCH /session.
*/
func TestHandler_Actions(t *testing.T) {
	s, service := newSession(t)
	router := session.NewHandler(s, service).Routes()

	steps := []struct {
		name        string
		body        string
		wantStatus  int
		wantChanged bool
		wantView    session.View
		wantChapter int
	}{
		{"select_by_slug", `{"action":"select_story","story":"river-song"}`, http.StatusOK, true, session.ViewReader, 1},
		{"next", `{"action":"next"}`, http.StatusOK, true, session.ViewReader, 2},
		{"jump", `{"action":"change_chapter","chapter_number":5}`, http.StatusOK, true, session.ViewReader, 5},
		{"next_at_end", `{"action":"next"}`, http.StatusOK, false, session.ViewReader, 5},
		{"previous", `{"action":"previous"}`, http.StatusOK, true, session.ViewReader, 2},
		{"unknown_chapter", `{"action":"change_chapter","chapter_number":4}`, http.StatusOK, false, session.ViewReader, 2},
		{"library", `{"action":"library"}`, http.StatusOK, true, session.ViewLibrary, 0},
	}

	for _, step := range steps {
		request := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(step.body))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		require.Equal(t, step.wantStatus, recorder.Code, step.name)

		var envelope actionEnvelope
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope), step.name)
		assert.Equal(t, step.wantChanged, envelope.Data.Changed, step.name)
		assert.Equal(t, step.wantView, envelope.Data.Session.View, step.name)

		if step.wantChapter == 0 {
			assert.Nil(t, envelope.Data.Session.Chapter, step.name)
			continue
		}
		require.NotNil(t, envelope.Data.Session.Chapter, step.name)
		assert.Equal(t, step.wantChapter, envelope.Data.Session.Chapter.ChapterNumber, step.name)
	}
}

/*
TestHandler_Errors covers invalid payloads and stories that cannot be opened.
*/
func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"unknown_action", `{"action":"bookmark"}`, http.StatusBadRequest, `"field":"action"`},
		{"missing_action", `{}`, http.StatusBadRequest, `"field":"action"`},
		{"select_without_story", `{"action":"select_story"}`, http.StatusBadRequest, `"field":"story"`},
		{"change_without_number", `{"action":"change_chapter"}`, http.StatusBadRequest, `"field":"chapter_number"`},
		{"unknown_story", `{"action":"select_story","story":"missing"}`, http.StatusNotFound, `Story not found`},
		{"story_without_chapters", `{"action":"select_story","story":"3"}`, http.StatusUnprocessableEntity, `Story has no chapters yet`},
		{"bad_json", `not json`, http.StatusBadRequest, `Invalid JSON payload`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, service := newSession(t)
			router := session.NewHandler(s, service).Routes()

			request := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
		})
	}
}

/*
TestHandler_GetSession returns the snapshot.
*/
func TestHandler_GetSession(t *testing.T) {
	s, service := newSession(t)
	router := session.NewHandler(s, service).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"view":"library"`)
	assert.Contains(t, recorder.Body.String(), `"index":-1`)
}
