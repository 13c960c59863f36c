package httpresp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextFor(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, rec
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		target string
		want   PageParams
	}{
		{"/", PageParams{Page: 1, Limit: 50}},
		{"/?page=3&limit=20", PageParams{Page: 3, Limit: 20}},
		{"/?page=-1&limit=999", PageParams{Page: 1, Limit: 50}},
		{"/?page=abc&limit=0", PageParams{Page: 1, Limit: 50}},
	}

	for _, tc := range cases {
		c, _ := contextFor(tc.target)
		assert.Equal(t, tc.want, ParsePage(c, 50, 200), tc.target)
	}

	assert.Equal(t, 40, PageParams{Page: 3, Limit: 20}.Offset())
}

func TestListSendsEmptyArray(t *testing.T) {
	c, rec := contextFor("/")
	List[string](c, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, rec.Body.String())
}

func TestPage(t *testing.T) {
	c, rec := contextFor("/")
	Page(c, PageParams{Page: 2, Limit: 1}, []int{7}, 3)

	var body PageResponse[int]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []int{7}, body.Data)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, int64(3), body.Total)
}
