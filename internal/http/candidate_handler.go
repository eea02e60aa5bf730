package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jcpachecoh/cbtw-recruitment/internal/service"
)

// CandidateHandler mantiene dependencias para los endpoints de candidatos.
type CandidateHandler struct {
	logger       *zap.Logger
	candidateSvc *service.CandidateService
}

func NewCandidateHandler(logger *zap.Logger, candidateSvc *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		logger:       logger,
		candidateSvc: candidateSvc,
	}
}

// ListCandidates maneja GET /api/talent-acquisition.
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	candidates, err := h.candidateSvc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list candidates failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving candidates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Candidates retrieved successfully",
		"data":    candidates,
	})
}

// SubmitCandidate maneja POST /api/talent-acquisition.
func (h *CandidateHandler) SubmitCandidate(c *gin.Context) {
	var req struct {
		FirstName     string `json:"firstName" binding:"required"`
		LastName      string `json:"lastName" binding:"required"`
		Position      string `json:"position" binding:"required"`
		LinkedinURL   string `json:"linkedinUrl"`
		Feedback      string `json:"feedback"`
		RecruiterName string `json:"recruiterName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	candidate, err := h.candidateSvc.Submit(c.Request.Context(), service.SubmitCandidateInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Position:      req.Position,
		LinkedinURL:   req.LinkedinURL,
		Feedback:      req.Feedback,
		RecruiterName: req.RecruiterName,
	})
	if err != nil {
		h.logger.Error("submit candidate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error submitting candidate"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Form submitted successfully",
		"data":    candidate,
	})
}

// UpdateCandidate maneja PATCH /api/talent-acquisition. Requiere id y al
// menos uno de status, technicalLeadId o feedback.
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	var req struct {
		ID              string  `json:"id" binding:"required"`
		Status          *string `json:"status"`
		TechnicalLeadID *string `json:"technicalLeadId"`
		Feedback        *string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if req.Status == nil && req.TechnicalLeadID == nil && req.Feedback == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	candidate, err := h.candidateSvc.Update(c.Request.Context(), service.UpdateCandidateInput{
		ID:              req.ID,
		Status:          req.Status,
		TechnicalLeadID: req.TechnicalLeadID,
		Feedback:        req.Feedback,
	})
	if err != nil {
		if errors.Is(err, service.ErrCandidateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
			return
		}
		h.logger.Error("update candidate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating candidate status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Candidate status updated successfully",
		"data":    candidate,
	})
}

// GetCandidate maneja GET /api/candidates/:id.
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	candidate, err := h.candidateSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCandidateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
			return
		}
		h.logger.Error("get candidate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching candidate"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Candidate retrieved successfully",
		"data":    candidate,
	})
}

// UpdateCandidateStatus maneja PATCH /api/candidates/:id.
func (h *CandidateHandler) UpdateCandidateStatus(c *gin.Context) {
	var req struct {
		CandidateStatus string `json:"candidateStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	candidate, err := h.candidateSvc.Update(c.Request.Context(), service.UpdateCandidateInput{
		ID:     c.Param("id"),
		Status: &req.CandidateStatus,
	})
	if err != nil {
		if errors.Is(err, service.ErrCandidateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
			return
		}
		h.logger.Error("update candidate status failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating candidate status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Candidate status updated successfully",
		"data":    candidate,
	})
}

// ListByTechnicalLead maneja GET /api/technical-lead/candidates.
func (h *CandidateHandler) ListByTechnicalLead(c *gin.Context) {
	technicalLeadID := c.Query("technicalLeadId")
	if technicalLeadID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Technical lead ID is required"})
		return
	}

	candidates, err := h.candidateSvc.ListByTechnicalLead(c.Request.Context(), technicalLeadID)
	if err != nil {
		h.logger.Error("list candidates by technical lead failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching candidates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Candidates retrieved successfully",
		"data":    candidates,
	})
}
