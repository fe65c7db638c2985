package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSearchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/rooms/search", SearchRooms)
	router.POST("/api/v1/bookings/search", SearchRoomsBody)
	return router
}

// The POST search route binds the same request shape from a JSON body
// that the GET route binds from query parameters.
func TestSearchRoomsBodyBindsJSON(t *testing.T) {
	router := newSearchRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/search", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid search parameters")

	body := `{"checkInDate":"2020-01-01","checkOutDate":"2020-01-03","adults":2}`
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/bookings/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_DATE_RANGE")
}

func TestSearchRoomsQueryValidation(t *testing.T) {
	router := newSearchRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/rooms/search?checkInDate=2020-01-01&checkOutDate=2020-01-03&adults=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_DATE_RANGE")
}
