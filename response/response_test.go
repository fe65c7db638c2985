package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func recordResponse(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := recordResponse(t, func(c *gin.Context) {
		Success(c, gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["code"])
	assert.Equal(t, "success", body["message"])
	assert.NotNil(t, body["data"])
	assert.NotContains(t, body, "pagination")
}

func TestSuccessWithPagination(t *testing.T) {
	w, body := recordResponse(t, func(c *gin.Context) {
		SuccessWithPagination(c, []int{1, 2, 3}, 0, 10, 27)
	})

	assert.Equal(t, http.StatusOK, w.Code)
	pagination, ok := body["pagination"].(map[string]interface{})
	if assert.True(t, ok) {
		assert.Equal(t, float64(0), pagination["page"])
		assert.Equal(t, float64(10), pagination["limit"])
		assert.Equal(t, float64(27), pagination["total"])
	}
}

func TestErrorEnvelope(t *testing.T) {
	w, body := recordResponse(t, func(c *gin.Context) {
		Error(c, http.StatusConflict, "NO_ROOMS_AVAILABLE", "no rooms free for the requested dates")
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, float64(0), body["code"])
	assert.Equal(t, "NO_ROOMS_AVAILABLE", body["errorCode"])
	assert.Equal(t, "no rooms free for the requested dates", body["message"])
}

func TestBadRequestEnvelope(t *testing.T) {
	w, body := recordResponse(t, func(c *gin.Context) {
		BadRequest(c, "checkInDate is required")
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "checkInDate is required", body["message"])
}
