package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jcpachecoh/cbtw-recruitment/internal/service"
)

const (
	sessionCookieName = "session"
	genericResetMsg   = "If an account exists with this email, you will receive password reset instructions."
)

// AuthHandler mantiene dependencias para los endpoints de autenticacion.
type AuthHandler struct {
	logger        *zap.Logger
	authSvc       *service.AuthService
	sessionSvc    *service.SessionService
	secureCookies bool
	devMode       bool
}

// NewAuthHandler crea una instancia de AuthHandler. Con secureCookies la
// cookie solo viaja por HTTPS; devMode agrega el reset link a la respuesta de
// forgot-password en lugar de depender solo del correo.
func NewAuthHandler(logger *zap.Logger, authSvc *service.AuthService, sessionSvc *service.SessionService, secureCookies, devMode bool) *AuthHandler {
	return &AuthHandler{
		logger:        logger,
		authSvc:       authSvc,
		sessionSvc:    sessionSvc,
		secureCookies: secureCookies,
		devMode:       devMode,
	}
}

// Login maneja POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing email or password"})
		return
	}

	user, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	token, err := h.sessionSvc.Sign(user)
	if err != nil {
		h.logger.Error("session sign failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, int(h.sessionSvc.TTL().Seconds()), "/", "", h.secureCookies, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// Logout maneja POST /api/auth/logout. Siempre responde 200 y es idempotente.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ForgotPassword maneja POST /api/auth/forgot-password. La respuesta es la
// misma exista o no la cuenta.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	resetLink, err := h.authSvc.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		h.logger.Error("password reset request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	message := genericResetMsg
	if h.devMode && resetLink != "" {
		message += " Follow the link: " + resetLink
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ResetPassword maneja POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token and password are required"})
		return
	}

	if err := h.authSvc.CompletePasswordReset(c.Request.Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidOrExpiredToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token"})
			return
		}
		h.logger.Error("password reset failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

// ValidateSession maneja GET /api/auth/validate-session. Cualquier falla de
// verificacion es un resultado ordinario: {isValid:false}, nunca un 500.
func (h *AuthHandler) ValidateSession(c *gin.Context) {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil || cookie == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"isValid": false})
		return
	}

	claims, err := h.sessionSvc.Verify(cookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"isValid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isValid": true,
		"user": gin.H{
			"id":         claims.UserID,
			"email":      claims.Email,
			"userName":   claims.UserName,
			"userType":   claims.UserType,
			"userStatus": claims.UserStatus,
		},
	})
}
