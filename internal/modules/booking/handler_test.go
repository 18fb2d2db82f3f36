package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"spotrent/internal/domain"
	"spotrent/internal/repository"
)

func newTestRouter(h *Handler, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	h.RegisterRoutes(api)
	return r
}

func TestHandler_Create_ConflictBody(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(7)).Return(&domain.Spot{ID: 7, OwnerID: 1}, nil)
	mockBookings.On("CreateIfFree", mock.Anything, mock.Anything).Return(repository.ErrOverlap)

	h := NewHandler(NewService(mockBookings, mockSpots))
	r := newTestRouter(h, 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/spots/7/bookings",
		strings.NewReader(`{"startDate":"2024-06-01","endDate":"2024-06-05"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body struct {
		Message    string            `json:"message"`
		StatusCode int               `json:"statusCode"`
		Errors     map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Sorry, this spot is already booked for the specified dates", body.Message)
	assert.Equal(t, http.StatusForbidden, body.StatusCode)
	assert.Contains(t, body.Errors, "startDate")
	assert.Contains(t, body.Errors, "endDate")
}

func TestHandler_Create_OwnerForbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(7)).Return(&domain.Spot{ID: 7, OwnerID: 1}, nil)

	h := NewHandler(NewService(mockBookings, mockSpots))
	r := newTestRouter(h, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/spots/7/bookings",
		strings.NewReader(`{"startDate":"2024-06-01","endDate":"2024-06-05"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Forbidden"`)
}

func TestHandler_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(7)).Return(&domain.Spot{ID: 7, OwnerID: 1}, nil)
	mockBookings.On("CreateIfFree", mock.Anything, mock.Anything).Return(nil)

	h := NewHandler(NewService(mockBookings, mockSpots))
	r := newTestRouter(h, 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/spots/7/bookings",
		strings.NewReader(`{"startDate":"2024-06-01","endDate":"2024-06-05"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, int64(7), body.SpotID)
	assert.Equal(t, int64(2), body.UserID)
	assert.Equal(t, "2024-06-01", body.StartDate)
	assert.Equal(t, "2024-06-05", body.EndDate)
}

func TestHandler_Create_SpotMissing(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSpots := new(MockSpotGate)

	mockSpots.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	h := NewHandler(NewService(mockBookings, mockSpots))
	r := newTestRouter(h, 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/spots/99/bookings",
		strings.NewReader(`{"startDate":"2024-06-01","endDate":"2024-06-05"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Spot couldn't be found")
}
