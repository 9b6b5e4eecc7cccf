package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name  string
		total int
		page  int
		limit int
		start int
		end   int
	}{
		{"first page", 50, 1, 20, 0, 20},
		{"middle page", 50, 2, 20, 20, 40},
		{"partial last page", 50, 3, 20, 40, 50},
		{"page past the end", 50, 4, 20, 50, 50},
		{"empty list", 0, 1, 20, 0, 0},
		{"single short page", 5, 1, 20, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := utils.PageBounds(tt.total, utils.PaginationParams{Page: tt.page, Limit: tt.limit})
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestCreatePaginationResult(t *testing.T) {
	result := utils.CreatePaginationResult([]string{"a", "b"}, 42, utils.PaginationParams{Page: 1, Limit: 20})
	assert.Equal(t, int64(42), result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, []string{"a", "b"}, result.Data)
}
