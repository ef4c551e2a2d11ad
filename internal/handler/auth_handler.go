package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tribalbridge/backend/internal/service"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  *service.User `json:"user"`
}

// RegisterPublicRoutes registers routes that don't require authentication.
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/register", h.Register)
	g.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes registers routes that require authentication.
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/auth/me", h.GetCurrentUser)
}

// Register creates a new account.
// @Summary Register user
// @Description Register a new account and get a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerRequest true "Registration info"
// @Success 200 {object} authResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	resp, err := h.service.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return h.handleAuthError(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{Token: resp.Token, User: resp.User})
}

// Login authenticates an account.
// @Summary Login
// @Description Authenticate an account and get a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Login credentials"
// @Success 200 {object} authResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	resp, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.handleAuthError(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{Token: resp.Token, User: resp.User})
}

// GetCurrentUser returns the current authenticated user.
// @Summary Get current user
// @Description Get the currently authenticated user's info
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.User
// @Failure 401 {object} errorResponse
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return Error(c, http.StatusUnauthorized, "not authenticated")
		}
		c.Logger().Error(err)
		return Error(c, http.StatusInternalServerError, "failed to get user")
	}

	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) handleAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrUserExists):
		return Error(c, http.StatusConflict, "user already exists")
	case errors.Is(err, service.ErrUserNotFound):
		return Error(c, http.StatusUnauthorized, "user not found")
	case errors.Is(err, service.ErrInvalidPassword):
		return Error(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrUsernameRequired):
		return Error(c, http.StatusBadRequest, "username is required")
	case errors.Is(err, service.ErrEmailRequired):
		return Error(c, http.StatusBadRequest, "email is required")
	case errors.Is(err, service.ErrPasswordRequired):
		return Error(c, http.StatusBadRequest, "password is required")
	case errors.Is(err, service.ErrPasswordTooShort):
		return Error(c, http.StatusBadRequest, "password must be at least 6 characters")
	default:
		c.Logger().Error(err)
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}
