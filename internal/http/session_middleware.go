package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jcpachecoh/cbtw-recruitment/internal/service"
)

const sessionClaimsKey = "session_claims"

// SessionAuthMiddleware valida la cookie de sesion y guarda los claims en el
// contexto de la request.
func SessionAuthMiddleware(sessionSvc *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "session service not configured"})
			c.Abort()
			return
		}

		cookie, err := c.Cookie(sessionCookieName)
		if err != nil || cookie == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := sessionSvc.Verify(cookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(sessionClaimsKey, claims)
		c.Next()
	}
}

// RequireUserType restringe la ruta a los tipos de usuario indicados.
func RequireUserType(userTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetSessionClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}
		for _, t := range userTypes {
			if claims.UserType == t {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
		c.Abort()
	}
}

// GetSessionClaims obtiene los claims de sesion desde el contexto.
func GetSessionClaims(c *gin.Context) (service.SessionClaims, bool) {
	val, ok := c.Get(sessionClaimsKey)
	if !ok {
		return service.SessionClaims{}, false
	}
	claims, ok := val.(service.SessionClaims)
	return claims, ok
}
