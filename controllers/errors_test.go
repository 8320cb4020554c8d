package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/huxiang/dto"
	"github.com/cppla/huxiang/utils"
)

func bindInto(t *testing.T, method, target, body string, bind func(*gin.Context) error) utils.JSONResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	err := bind(ctx)
	require.Error(t, err)
	bindFailed(ctx, 40099, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBindFailed_UsesJSONNames(t *testing.T) {
	body := `{"title":"t","type":"craft","cover_image":"` + strings.Repeat("x", 600) + `"}`
	resp := bindInto(t, http.MethodPost, "/api/resources", body, func(c *gin.Context) error {
		var req dto.CreateResourceRequest
		return c.ShouldBindJSON(&req)
	})
	assert.Equal(t, 40099, resp.Code)
	assert.Equal(t, []utils.FieldError{{Field: "cover_image", Rule: "max"}}, resp.Errors)
}

func TestBindFailed_UsesFormNames(t *testing.T) {
	resp := bindInto(t, http.MethodGet, "/api/resources?sort=random", "", func(c *gin.Context) error {
		var q dto.ListResourcesQuery
		return c.ShouldBindQuery(&q)
	})
	assert.Equal(t, []utils.FieldError{{Field: "sort", Rule: "oneof"}}, resp.Errors)
}

func TestBindFailed_TypeMismatch(t *testing.T) {
	resp := bindInto(t, http.MethodPost, "/", `{"content": 12}`, func(c *gin.Context) error {
		var req dto.CreateCommentRequest
		return c.ShouldBindJSON(&req)
	})
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "type", resp.Errors[0].Rule)
}
