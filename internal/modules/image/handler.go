package image

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
	protected.POST("/spots/:spotId/images", h.Attach)
}

func (h *Handler) Attach(c *gin.Context) {
	spotID, err := strconv.ParseInt(c.Param("spotId"), 10, 64)
	if err != nil || spotID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	var req AttachImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation error")
		return
	}

	userID := c.GetInt64("user_id")
	img, err := h.svc.Attach(c.Request.Context(), userID, spotID, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "Forbidden")
		case ErrCapacityExceeded:
			response.Error(c, http.StatusForbidden, "Maximum number of images for this resource was reached")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to attach image")
		}
		return
	}

	c.JSON(http.StatusCreated, ImageResponse{
		ID:          img.ID,
		ImageableID: img.SpotID,
		URL:         img.URL,
	})
}
