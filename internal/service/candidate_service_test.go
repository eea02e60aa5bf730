package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
)

type mockCandidateRepo struct {
	candidatesByID map[string]domain.Candidate
}

func newMockCandidateRepo() *mockCandidateRepo {
	return &mockCandidateRepo{candidatesByID: make(map[string]domain.Candidate)}
}

func (m *mockCandidateRepo) Create(_ context.Context, candidate domain.Candidate) error {
	m.candidatesByID[candidate.ID] = candidate
	return nil
}

func (m *mockCandidateRepo) GetByID(_ context.Context, id string) (domain.Candidate, error) {
	candidate, ok := m.candidatesByID[id]
	if !ok {
		return domain.Candidate{}, pgx.ErrNoRows
	}
	return candidate, nil
}

func (m *mockCandidateRepo) List(_ context.Context) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	for _, c := range m.candidatesByID {
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func (m *mockCandidateRepo) ListByTechnicalLead(_ context.Context, technicalLeadID string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	for _, c := range m.candidatesByID {
		if c.TechnicalLeadID == technicalLeadID {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

func (m *mockCandidateRepo) Update(_ context.Context, candidate domain.Candidate) error {
	if _, ok := m.candidatesByID[candidate.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.candidatesByID[candidate.ID] = candidate
	return nil
}

func TestCandidateServiceSubmit_Defaults(t *testing.T) {
	repo := newMockCandidateRepo()
	svc := NewCandidateService(zap.NewNop(), repo, newMockUserRepo())

	candidate, err := svc.Submit(context.Background(), SubmitCandidateInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Position:  "Backend Developer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if candidate.Status != domain.CandidateStatusPending {
		t.Fatalf("expected pending status, got %q", candidate.Status)
	}
	if candidate.RecruiterName != unassigned || candidate.TechnicalLeadName != unassigned {
		t.Fatalf("expected Unassigned defaults, got %q / %q", candidate.RecruiterName, candidate.TechnicalLeadName)
	}
	if candidate.ID == "" || candidate.SubmittedAt.IsZero() {
		t.Fatalf("expected id and submission timestamp")
	}
}

func TestCandidateServiceUpdate_AssignTechnicalLead(t *testing.T) {
	candidateRepo := newMockCandidateRepo()
	userRepo := newMockUserRepo()
	lead := domain.User{
		ID:       "lead-1",
		Email:    "lead@example.com",
		UserName: "Grace Hopper",
		UserType: domain.UserTypeTechnicalLead,
	}
	if err := userRepo.Create(context.Background(), lead); err != nil {
		t.Fatalf("seed lead: %v", err)
	}
	svc := NewCandidateService(zap.NewNop(), candidateRepo, userRepo)

	candidate, err := svc.Submit(context.Background(), SubmitCandidateInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Position:  "Backend Developer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	leadID := "lead-1"
	updated, err := svc.Update(context.Background(), UpdateCandidateInput{
		ID:              candidate.ID,
		TechnicalLeadID: &leadID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.TechnicalLeadID != "lead-1" || updated.TechnicalLeadName != "Grace Hopper" {
		t.Fatalf("expected lead assignment with resolved name, got %+v", updated)
	}
}

func TestCandidateServiceUpdate_NotFound(t *testing.T) {
	svc := NewCandidateService(zap.NewNop(), newMockCandidateRepo(), newMockUserRepo())

	status := domain.CandidateStatusApproved
	_, err := svc.Update(context.Background(), UpdateCandidateInput{ID: "missing", Status: &status})
	if err != ErrCandidateNotFound {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestCandidateServiceList_BackfillsStatus(t *testing.T) {
	repo := newMockCandidateRepo()
	repo.candidatesByID["legacy"] = domain.Candidate{
		ID:          "legacy",
		FirstName:   "Old",
		LastName:    "Record",
		SubmittedAt: time.Now().UTC(),
	}
	svc := NewCandidateService(zap.NewNop(), repo, newMockUserRepo())

	candidates, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 1 || candidates[0].Status != domain.CandidateStatusPending {
		t.Fatalf("expected legacy record backfilled to pending, got %+v", candidates)
	}
}
