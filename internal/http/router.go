package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
	"github.com/jcpachecoh/cbtw-recruitment/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	sessionSvc *service.SessionService,
	authH *AuthHandler,
	userH *UserHandler,
	candidateH *CandidateHandler,
	interviewH *InterviewHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/logout", authH.Logout)
	auth.POST("/forgot-password", authH.ForgotPassword)
	auth.POST("/reset-password", authH.ResetPassword)
	auth.GET("/validate-session", authH.ValidateSession)

	// La administracion de cuentas queda reservada a administradores.
	users := api.Group("/users")
	users.Use(SessionAuthMiddleware(sessionSvc), RequireUserType(domain.UserTypeAdmin))
	users.GET("", userH.ListUsers)
	users.POST("", userH.CreateUser)
	users.PATCH("", userH.UpdateUser)
	users.DELETE("", userH.DeleteUser)

	protected := api.Group("")
	protected.Use(SessionAuthMiddleware(sessionSvc))
	protected.GET("/talent-acquisition", candidateH.ListCandidates)
	protected.POST("/talent-acquisition", candidateH.SubmitCandidate)
	protected.PATCH("/talent-acquisition", candidateH.UpdateCandidate)
	protected.GET("/candidates/:id", candidateH.GetCandidate)
	protected.PATCH("/candidates/:id", candidateH.UpdateCandidateStatus)
	protected.GET("/technical-lead/candidates", candidateH.ListByTechnicalLead)
	protected.GET("/interviews", interviewH.ListResults)
	protected.POST("/interviews", interviewH.SaveGrades)
	protected.GET("/interviews/questions", interviewH.ListQuestions)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
