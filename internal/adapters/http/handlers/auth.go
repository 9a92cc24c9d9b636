package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/petlink/petlink-api/internal/adapters/http"
	"github.com/petlink/petlink-api/internal/adapters/http/dto"
	"github.com/petlink/petlink-api/internal/app"
)

// AuthHandler handles the open authentication endpoints.
type AuthHandler struct {
	service *app.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service *app.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		httpadapter.RespondWithBindingError(c, err)
		return
	}

	session, err := h.service.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httpadapter.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Login successful", dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Username:  session.Username,
	}))
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		httpadapter.RespondWithBindingError(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		httpadapter.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("User registered", dto.ToUserResponse(user)))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		httpadapter.RespondWithBindingError(c, err)
		return
	}

	session, err := h.service.RefreshToken(c.Request.Context(), req.Token)
	if err != nil {
		httpadapter.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Token refreshed", dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Username:  session.Username,
	}))
}

// RegisterAuthRoutes registers the open auth routes on the given group.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/register", h.Register)
	auth.POST("/refresh", h.Refresh)
}
