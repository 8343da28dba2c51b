package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestExtractDefaults(t *testing.T) {
	params := Extract(contextWithQuery(""))

	assert.Equal(t, DefaultPage, params.Page)
	assert.Equal(t, DefaultLimit, params.Limit)
	assert.Equal(t, 0, params.Skip)
}

func TestExtractExplicitValues(t *testing.T) {
	params := Extract(contextWithQuery("page=3&limit=10"))

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, 20, params.Skip)
}

func TestExtractCapsLimit(t *testing.T) {
	params := Extract(contextWithQuery("limit=5000"))

	assert.Equal(t, MaxLimit, params.Limit)
}

func TestExtractRejectsGarbage(t *testing.T) {
	params := Extract(contextWithQuery("page=abc&limit=-5"))

	assert.Equal(t, DefaultPage, params.Page)
	assert.Equal(t, DefaultLimit, params.Limit)
}

func TestBounds(t *testing.T) {
	cases := []struct {
		name   string
		params Params
		length int
		start  int
		end    int
	}{
		{"first page", Params{Page: 1, Limit: 10, Skip: 0}, 25, 0, 10},
		{"partial last page", Params{Page: 3, Limit: 10, Skip: 20}, 25, 20, 25},
		{"page past the end", Params{Page: 5, Limit: 10, Skip: 40}, 25, 25, 25},
		{"empty slice", Params{Page: 1, Limit: 10, Skip: 0}, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := tc.params.Bounds(tc.length)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}

func TestMetadataFrom(t *testing.T) {
	meta := MetadataFrom(45, Params{Page: 2, Limit: 20, Skip: 20})

	assert.Equal(t, int64(45), meta.TotalItems)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

func TestMetadataFromLastPage(t *testing.T) {
	meta := MetadataFrom(45, Params{Page: 3, Limit: 20, Skip: 40})

	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

func TestMetadataFromEmpty(t *testing.T) {
	meta := MetadataFrom(0, Params{Page: 1, Limit: 20})

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
}
