package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spotrent/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidRequest:
			response.Error(c, http.StatusBadRequest, "Invalid request body")
		case ErrEmailTaken:
			response.Error(c, http.StatusConflict, "User with that email already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	c.JSON(http.StatusOK, res)
}
