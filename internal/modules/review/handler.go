package review

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

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/spots/:spotId/reviews", h.ListForSpot)
	protected.POST("/spots/:spotId/reviews", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	spotID, err := strconv.ParseInt(c.Param("spotId"), 10, 64)
	if err != nil || spotID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation error")
		return
	}

	userID := c.GetInt64("user_id")
	rv, err := h.svc.Create(c.Request.Context(), userID, spotID, req)
	if err != nil {
		switch err {
		case ErrInvalidRequest:
			response.Error(c, http.StatusBadRequest, "Validation error")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
		case ErrConflict:
			response.Error(c, http.StatusForbidden, "User already has a review for this spot")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create review")
		}
		return
	}

	c.JSON(http.StatusCreated, rv)
}

func (h *Handler) ListForSpot(c *gin.Context) {
	spotID, err := strconv.ParseInt(c.Param("spotId"), 10, 64)
	if err != nil || spotID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	reviews, err := h.svc.ListForSpot(c.Request.Context(), spotID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{"Reviews": reviews})
}
