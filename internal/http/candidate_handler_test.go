package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
	"github.com/jcpachecoh/cbtw-recruitment/internal/service"
)

type mockCandidateRepo struct {
	byID map[string]domain.Candidate
}

func newMockCandidateRepo() *mockCandidateRepo {
	return &mockCandidateRepo{byID: make(map[string]domain.Candidate)}
}

func (m *mockCandidateRepo) Create(_ context.Context, candidate domain.Candidate) error {
	m.byID[candidate.ID] = candidate
	return nil
}

func (m *mockCandidateRepo) GetByID(_ context.Context, id string) (domain.Candidate, error) {
	candidate, ok := m.byID[id]
	if !ok {
		return domain.Candidate{}, pgx.ErrNoRows
	}
	return candidate, nil
}

func (m *mockCandidateRepo) List(_ context.Context) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	for _, c := range m.byID {
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func (m *mockCandidateRepo) ListByTechnicalLead(_ context.Context, technicalLeadID string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	for _, c := range m.byID {
		if c.TechnicalLeadID == technicalLeadID {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

func (m *mockCandidateRepo) Update(_ context.Context, candidate domain.Candidate) error {
	if _, ok := m.byID[candidate.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.byID[candidate.ID] = candidate
	return nil
}

func setupCandidateRouter(repo *mockCandidateRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewCandidateService(zap.NewNop(), repo, newMockUserRepo())
	h := NewCandidateHandler(zap.NewNop(), svc)
	r := gin.New()
	r.PATCH("/api/talent-acquisition", h.UpdateCandidate)
	return r
}

func seedPendingCandidate(repo *mockCandidateRepo) domain.Candidate {
	candidate := domain.Candidate{
		ID:          "cand-1",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Position:    "Backend Developer",
		Status:      domain.CandidateStatusPending,
		SubmittedAt: time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	repo.byID[candidate.ID] = candidate
	return candidate
}

func TestCandidateHandlerUpdate_Feedback(t *testing.T) {
	repo := newMockCandidateRepo()
	seedPendingCandidate(repo)
	r := setupCandidateRouter(repo)

	rec := performRequest(r, http.MethodPatch, "/api/talent-acquisition", map[string]string{
		"id":       "cand-1",
		"feedback": "Strong fundamentals, schedule second round",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if repo.byID["cand-1"].Feedback != "Strong fundamentals, schedule second round" {
		t.Fatalf("feedback was not persisted: %+v", repo.byID["cand-1"])
	}
	if repo.byID["cand-1"].Status != domain.CandidateStatusPending {
		t.Fatalf("untouched fields must be preserved")
	}
}

func TestCandidateHandlerUpdate_NoUpdatableFields(t *testing.T) {
	repo := newMockCandidateRepo()
	seedPendingCandidate(repo)
	r := setupCandidateRouter(repo)

	rec := performRequest(r, http.MethodPatch, "/api/talent-acquisition", map[string]string{
		"id": "cand-1",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
