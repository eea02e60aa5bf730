package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
	"github.com/jcpachecoh/cbtw-recruitment/internal/repository"
)

var ErrCandidateNotFound = errors.New("candidate not found")

const unassigned = "Unassigned"

// CandidateService coordina el pipeline de candidatos.
type CandidateService struct {
	logger     *zap.Logger
	candidates repository.CandidateRepository
	users      repository.UserRepository
}

func NewCandidateService(logger *zap.Logger, candidates repository.CandidateRepository, users repository.UserRepository) *CandidateService {
	return &CandidateService{
		logger:     logger,
		candidates: candidates,
		users:      users,
	}
}

type SubmitCandidateInput struct {
	FirstName     string
	LastName      string
	Position      string
	LinkedinURL   string
	Feedback      string
	RecruiterName string
}

func (s *CandidateService) Submit(ctx context.Context, input SubmitCandidateInput) (domain.Candidate, error) {
	recruiterName := strings.TrimSpace(input.RecruiterName)
	if recruiterName == "" {
		recruiterName = unassigned
	}

	now := time.Now().UTC()
	candidate := domain.Candidate{
		ID:                uuid.NewString(),
		FirstName:         strings.TrimSpace(input.FirstName),
		LastName:          strings.TrimSpace(input.LastName),
		Position:          strings.TrimSpace(input.Position),
		LinkedinURL:       strings.TrimSpace(input.LinkedinURL),
		Feedback:          input.Feedback,
		Status:            domain.CandidateStatusPending,
		RecruiterName:     recruiterName,
		TechnicalLeadName: unassigned,
		SubmittedAt:       now,
		UpdatedAt:         now,
	}

	if err := s.candidates.Create(ctx, candidate); err != nil {
		return domain.Candidate{}, err
	}
	return candidate, nil
}

func (s *CandidateService) List(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.candidates.List(ctx)
	if err != nil {
		return nil, err
	}
	// Registros antiguos pueden venir sin estado.
	for i := range candidates {
		if candidates[i].Status == "" {
			candidates[i].Status = domain.CandidateStatusPending
		}
	}
	return candidates, nil
}

func (s *CandidateService) Get(ctx context.Context, id string) (domain.Candidate, error) {
	candidate, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Candidate{}, ErrCandidateNotFound
		}
		return domain.Candidate{}, err
	}
	return candidate, nil
}

func (s *CandidateService) ListByTechnicalLead(ctx context.Context, technicalLeadID string) ([]domain.Candidate, error) {
	return s.candidates.ListByTechnicalLead(ctx, technicalLeadID)
}

// UpdateCandidateInput aplica actualizacion parcial de estado y asignacion.
type UpdateCandidateInput struct {
	ID              string
	Status          *string
	TechnicalLeadID *string
	Feedback        *string
}

func (s *CandidateService) Update(ctx context.Context, input UpdateCandidateInput) (domain.Candidate, error) {
	candidate, err := s.candidates.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Candidate{}, ErrCandidateNotFound
		}
		return domain.Candidate{}, err
	}

	if input.Status != nil {
		candidate.Status = *input.Status
	}
	if input.Feedback != nil {
		candidate.Feedback = *input.Feedback
	}
	if input.TechnicalLeadID != nil {
		candidate.TechnicalLeadID = strings.TrimSpace(*input.TechnicalLeadID)
		candidate.TechnicalLeadName = s.lookupLeadName(ctx, candidate.TechnicalLeadID)
	}
	candidate.UpdatedAt = time.Now().UTC()

	if err := s.candidates.Update(ctx, candidate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Candidate{}, ErrCandidateNotFound
		}
		return domain.Candidate{}, err
	}
	return candidate, nil
}

func (s *CandidateService) lookupLeadName(ctx context.Context, leadID string) string {
	if leadID == "" || s.users == nil {
		return unassigned
	}
	lead, err := s.users.GetByID(ctx, leadID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) && s.logger != nil {
			s.logger.Warn("technical lead lookup failed", zap.Error(err), zap.String("lead_id", leadID))
		}
		return unassigned
	}
	return lead.UserName
}
