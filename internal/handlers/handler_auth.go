package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portssvc "github.com/SscSPs/fluxora_app/internal/core/ports/services"
	"github.com/SscSPs/fluxora_app/internal/dto"
	"github.com/SscSPs/fluxora_app/internal/middleware"
	"github.com/SscSPs/fluxora_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cookie       refreshCookie
}

// refreshCookie describes the HttpOnly cookie carrying the raw refresh token.
type refreshCookie struct {
	name   string
	path   string
	secure bool
}

func (rc refreshCookie) set(c *gin.Context, value string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(rc.name, value, maxAge, rc.path, "", rc.secure, true)
}

func (rc refreshCookie) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(rc.name, "", -1, rc.path, "", rc.secure, true)
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		cookie: refreshCookie{
			name:   cfg.RefreshTokenCookieName,
			path:   cfg.RefreshTokenCookiePath,
			secure: cfg.IsProduction,
		},
	}
}

// RegisterAuthRoutes sets up the public authentication routes under /api/v1/auth.
func RegisterAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	h := NewAuthHandler(services.User, services.TokenService, cfg)

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
	registerGoogleOAuthRoutes(auth, services, h.cookie)
	return nil
}

// Login godoc
// @Summary User login
// @Description Authenticates a user, returns a JWT access token and sets the refresh token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Login failed", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	token, expiresAt, ok := issueTokensFor(c, h.tokenService, h.cookie, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt.Unix()})
}

// Register godoc
// @Summary Register new user
// @Description Creates a new local user account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.CreateUserRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (e.g., username exists)"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchanges the refresh token cookie for a new access token and rotates the cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "User whose session is refreshed"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}
	raw, err := c.Cookie(h.cookie.name)
	if err != nil || raw == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), req.UserID, raw)
	if err != nil {
		h.cookie.clear(c)
		respondError(c, err, "Failed to refresh session")
		return
	}

	token, expiresAt, ok := issueTokensFor(c, h.tokenService, h.cookie, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: token, ExpiresAt: expiresAt.Unix()})
}

// Logout godoc
// @Summary Logout
// @Description Revokes the stored refresh token when the cookie matches it and clears the cookie.
// @Tags auth
// @Accept json
// @Param logout body dto.RefreshTokenRequest true "User logging out"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	if raw, err := c.Cookie(h.cookie.name); err == nil && raw != "" {
		if _, err := h.tokenService.ValidateAndParseRefreshToken(ctx, req.UserID, raw); err == nil {
			if err := h.tokenService.RevokeRefreshToken(ctx, req.UserID); err != nil {
				logger.Error("Failed to revoke refresh token", slog.String("error", err.Error()))
			}
		}
	}
	h.cookie.clear(c)
	c.Status(http.StatusNoContent)
}

// issueTokensFor creates an access token and a rotated refresh token, setting the refresh cookie.
func issueTokensFor(c *gin.Context, ts portssvc.TokenSvcFacade, cookie refreshCookie, user *domain.User) (string, time.Time, bool) {
	ctx := c.Request.Context()
	token, expiresAt, err := ts.GenerateAccessToken(ctx, user)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return "", time.Time{}, false
	}
	refresh, refreshExpiresAt, err := ts.GenerateRefreshToken(ctx, user)
	if err != nil {
		respondError(c, err, "Failed to generate refresh token")
		return "", time.Time{}, false
	}
	cookie.set(c, refresh, refreshExpiresAt)
	return token, expiresAt, true
}
