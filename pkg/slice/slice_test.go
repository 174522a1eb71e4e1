// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/pkg/slice"
)

func TestMapFilterReduce(t *testing.T) {
	numbers := []int{1, 2, 3, 4}

	assert.Equal(t, []int{2, 4, 6, 8}, slice.Map(numbers, func(n int) int { return n * 2 }))
	assert.Equal(t, []int{2, 4}, slice.Filter(numbers, func(n int) bool { return n%2 == 0 }))
	assert.Equal(t, 10, slice.Reduce(numbers, 0, func(acc, n int) int { return acc + n }))

	assert.Nil(t, slice.Map[int, int](nil, func(n int) int { return n }))
}

func TestFind(t *testing.T) {
	found, ok := slice.Find([]string{"serif", "monospace"}, func(s string) bool { return s == "monospace" })
	assert.True(t, ok)
	assert.Equal(t, "monospace", found)

	_, ok = slice.Find([]string{"serif"}, func(s string) bool { return s == "cursive" })
	assert.False(t, ok)
}
