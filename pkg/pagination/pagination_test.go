// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/pkg/pagination"
)

/*
TestFromRequest verifies parsing and clamping of page/limit query parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"explicit", "?page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"negative_page", "?page=-2", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"limit_too_large", "?limit=1000", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"garbage", "?page=abc&limit=xyz", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"huge_page", "?page=922337203685477580&limit=20", pagination.Params{Page: 922337203685477580, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/stories"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(request))
		})
	}
}

/*
TestPage verifies windowing of in-memory lists, including pages past the end.
*/
func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, pagination.Page(items, pagination.Params{Page: 1, Limit: 2}))
	assert.Equal(t, []int{5}, pagination.Page(items, pagination.Params{Page: 3, Limit: 2}))
	assert.Empty(t, pagination.Page(items, pagination.Params{Page: 9, Limit: 2}))

	huge := pagination.Params{Page: math.MaxInt, Limit: pagination.MaxLimit}
	assert.Equal(t, math.MaxInt, huge.Offset())
	assert.Empty(t, pagination.Page(items, huge))

	meta := pagination.NewMeta(3, 2, len(items))
	assert.Equal(t, 3, meta.TotalPages)
}

/*
TestPage_HugePageFromQuery returns an empty page for a page number whose
offset would overflow.
*/
func TestPage_HugePageFromQuery(t *testing.T) {
	request := httptest.NewRequest("GET", "/stories?page=922337203685477580&limit=20", nil)
	params := pagination.FromRequest(request)

	assert.NotPanics(t, func() {
		assert.Empty(t, pagination.Page([]int{1, 2, 3}, params))
	})

	start, end := params.Window(3)
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)
}
