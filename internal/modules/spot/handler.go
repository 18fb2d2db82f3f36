package spot

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
	public.GET("/spots", h.List)
	public.GET("/spots/:spotId", h.Get)

	protected.POST("/spots", h.Create)
	protected.GET("/spots/current", h.ListCurrent)
	protected.PUT("/spots/:spotId", h.Update)
	protected.DELETE("/spots/:spotId", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	spots, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load spots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"Spots": spots})
}

func (h *Handler) ListCurrent(c *gin.Context) {
	userID := c.GetInt64("user_id")
	spots, err := h.svc.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load spots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"Spots": spots})
}

func (h *Handler) Get(c *gin.Context) {
	spotID, err := strconv.ParseInt(c.Param("spotId"), 10, 64)
	if err != nil || spotID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	detail, err := h.svc.Get(c.Request.Context(), spotID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load spot")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation error")
		return
	}

	userID := c.GetInt64("user_id")
	sp, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		if err == ErrInvalidRequest {
			response.Error(c, http.StatusBadRequest, "Validation error")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create spot")
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (h *Handler) Update(c *gin.Context) {
	spotID, err := strconv.ParseInt(c.Param("spotId"), 10, 64)
	if err != nil || spotID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	var req UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation error")
		return
	}

	userID := c.GetInt64("user_id")
	sp, err := h.svc.Update(c.Request.Context(), userID, spotID, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "Forbidden")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update spot")
		}
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *Handler) Delete(c *gin.Context) {
	spotID, err := strconv.ParseInt(c.Param("spotId"), 10, 64)
	if err != nil || spotID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	userID := c.GetInt64("user_id")
	if err := h.svc.Delete(c.Request.Context(), userID, spotID); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "Forbidden")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete spot")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted", "statusCode": http.StatusOK})
}
