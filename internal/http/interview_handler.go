package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jcpachecoh/cbtw-recruitment/internal/service"
)

// InterviewHandler mantiene dependencias para los endpoints de entrevistas.
type InterviewHandler struct {
	logger       *zap.Logger
	interviewSvc *service.InterviewService
}

func NewInterviewHandler(logger *zap.Logger, interviewSvc *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		logger:       logger,
		interviewSvc: interviewSvc,
	}
}

// ListResults maneja GET /api/interviews.
func (h *InterviewHandler) ListResults(c *gin.Context) {
	results, err := h.interviewSvc.ListResults(c.Request.Context())
	if err != nil {
		h.logger.Error("list interview results failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching interview results"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": results})
}

// SaveGrades maneja POST /api/interviews.
func (h *InterviewHandler) SaveGrades(c *gin.Context) {
	var req struct {
		CandidateID   string                  `json:"candidateId" binding:"required"`
		Grades        []service.QuestionGrade `json:"grades" binding:"required"`
		PassInterview *bool                   `json:"passInterview"`
		FinalComments string                  `json:"finalComments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	_, err := h.interviewSvc.SaveGrades(c.Request.Context(), service.SaveGradesInput{
		CandidateID:   req.CandidateID,
		Grades:        req.Grades,
		PassInterview: req.PassInterview,
		FinalComments: req.FinalComments,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoGrades):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		case errors.Is(err, service.ErrCandidateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
		default:
			h.logger.Error("save interview grade failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving interview grade"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Interview grade saved"})
}

// ListQuestions maneja GET /api/interviews/questions.
func (h *InterviewHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.interviewSvc.Questions()})
}
