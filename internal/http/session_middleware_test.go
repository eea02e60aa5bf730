package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
	"github.com/jcpachecoh/cbtw-recruitment/internal/service"
)

func setupProtectedRouter(t *testing.T, sessionSvc *service.SessionService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/api/users")
	admin.Use(SessionAuthMiddleware(sessionSvc), RequireUserType(domain.UserTypeAdmin))
	admin.GET("", func(c *gin.Context) {
		claims, _ := GetSessionClaims(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func signSession(t *testing.T, svc *service.SessionService, userType string) *http.Cookie {
	t.Helper()
	token, err := svc.Sign(domain.User{
		ID:         "u-1",
		Email:      "user@example.com",
		UserName:   "Test User",
		UserType:   userType,
		UserStatus: domain.UserStatusActive,
	})
	if err != nil {
		t.Fatalf("sign session: %v", err)
	}
	return &http.Cookie{Name: sessionCookieName, Value: token}
}

func TestSessionAuthMiddleware_NoCookie(t *testing.T) {
	r := setupProtectedRouter(t, service.NewSessionService("secret-1"))

	rec := performRequest(r, http.MethodGet, "/api/users", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestSessionAuthMiddleware_BadToken(t *testing.T) {
	svc := service.NewSessionService("secret-1")
	r := setupProtectedRouter(t, svc)

	foreign := signSession(t, service.NewSessionService("other-secret"), domain.UserTypeAdmin)
	rec := performRequest(r, http.MethodGet, "/api/users", nil, foreign)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireUserType_ForbidsOtherRoles(t *testing.T) {
	svc := service.NewSessionService("secret-1")
	r := setupProtectedRouter(t, svc)

	for _, userType := range []string{domain.UserTypeRecruiter, domain.UserTypeTechnicalLead} {
		rec := performRequest(r, http.MethodGet, "/api/users", nil, signSession(t, svc, userType))
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected status 403, got %d", userType, rec.Code)
		}
	}
}

func TestRequireUserType_AllowsAdmin(t *testing.T) {
	svc := service.NewSessionService("secret-1")
	r := setupProtectedRouter(t, svc)

	rec := performRequest(r, http.MethodGet, "/api/users", nil, signSession(t, svc, domain.UserTypeAdmin))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
