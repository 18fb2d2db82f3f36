package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"spotrent/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/spots/:spotId/bookings", h.Create)
	protected.GET("/spots/:spotId/bookings", h.ListForSpot)
}

func (h *Handler) Create(c *gin.Context) {
	spotID, err := strconv.ParseInt(c.Param("spotId"), 10, 64)
	if err != nil || spotID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	b, err := h.svc.Create(c.Request.Context(), userID, spotID, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "Forbidden")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "Invalid booking date range")
		case ErrConflict:
			response.ErrorWithFields(c, http.StatusForbidden,
				"Sorry, this spot is already booked for the specified dates",
				map[string]string{
					"startDate": "Start date conflicts with an existing booking",
					"endDate":   "End date conflicts with an existing booking",
				})
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *Handler) ListForSpot(c *gin.Context) {
	spotID, err := strconv.ParseInt(c.Param("spotId"), 10, 64)
	if err != nil || spotID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	userID := c.GetInt64("user_id")
	res, err := h.svc.ListForSpot(c.Request.Context(), userID, spotID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}

	if res.Full != nil {
		c.JSON(http.StatusOK, gin.H{"Bookings": res.Full})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Bookings": res.DatesOnly})
}
