package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginatePageCount(t *testing.T) {
	tests := []struct {
		total, pageSize, pages, lastPage int
	}{
		{total: 25, pageSize: 10, pages: 3, lastPage: 5},
		{total: 20, pageSize: 10, pages: 2, lastPage: 10},
		{total: 1, pageSize: 10, pages: 1, lastPage: 1},
		{total: 7, pageSize: 1, pages: 7, lastPage: 1},
		{total: 0, pageSize: 10, pages: 0, lastPage: 0},
	}

	for _, tt := range tests {
		items := makeItems(tt.total)
		first := Paginate(items, 1, tt.pageSize)
		assert.Equal(t, tt.pages, first.TotalPages, "total=%d size=%d", tt.total, tt.pageSize)
		assert.Equal(t, tt.total, first.Total)
		if tt.pages == 0 {
			assert.Empty(t, first.Items)
			continue
		}
		last := Paginate(items, tt.pages, tt.pageSize)
		assert.Len(t, last.Items, tt.lastPage, "total=%d size=%d", tt.total, tt.pageSize)
	}
}

func TestPaginateCoversEveryItemOnce(t *testing.T) {
	items := makeItems(23)
	var seen []int
	for page := 1; page <= 3; page++ {
		seen = append(seen, Paginate(items, page, 10).Items...)
	}
	assert.Equal(t, items, seen)
}

func TestPaginateOutOfRange(t *testing.T) {
	items := makeItems(5)
	assert.Empty(t, Paginate(items, 2, 10).Items)
	assert.Empty(t, Paginate(items, 0, 10).Items)
}

func TestPaginationToken(t *testing.T) {
	token, err := GetPaginationToken(PageToken{Page: 3})
	require.NoError(t, err)

	decoded, err := DecodePaginationToken[PageToken](token)
	require.NoError(t, err)
	assert.Equal(t, 3, decoded.Page)

	_, err = DecodePaginationToken[PageToken]("%%%")
	assert.Error(t, err)
}
