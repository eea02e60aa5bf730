package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
	"github.com/jcpachecoh/cbtw-recruitment/internal/repository"
)

var ErrNoGrades = errors.New("no grades provided")

// InterviewService agrega notas de entrevista por banda de seniority y
// conserva el historial de resultados por candidato.
type InterviewService struct {
	logger     *zap.Logger
	interviews repository.InterviewRepository
	candidates repository.CandidateRepository
}

func NewInterviewService(logger *zap.Logger, interviews repository.InterviewRepository, candidates repository.CandidateRepository) *InterviewService {
	return &InterviewService{
		logger:     logger,
		interviews: interviews,
		candidates: candidates,
	}
}

// QuestionGrade es la nota de una pregunta individual.
type QuestionGrade struct {
	QuestionID int     `json:"questionId"`
	Seniority  string  `json:"seniority"`
	Grade      float64 `json:"grade"`
}

type SaveGradesInput struct {
	CandidateID   string
	Grades        []QuestionGrade
	PassInterview *bool
	FinalComments string
}

// SaveGrades calcula el promedio por banda, el promedio final, y mezcla el
// resultado sobre el registro existente del candidato (ultima escritura
// gana). Cuando viene el veredicto, el estado del candidato se actualiza a
// approved o rejected.
func (s *InterviewService) SaveGrades(ctx context.Context, input SaveGradesInput) (domain.Interview, error) {
	if len(input.Grades) == 0 {
		return domain.Interview{}, ErrNoGrades
	}
	if _, err := s.candidates.GetByID(ctx, input.CandidateID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Interview{}, ErrCandidateNotFound
		}
		return domain.Interview{}, err
	}

	results := map[string]any{}
	existing, err := s.interviews.GetByCandidateID(ctx, input.CandidateID)
	if err == nil {
		for k, v := range existing.Results {
			results[k] = v
		}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Interview{}, err
	}

	juniorAvg, hasJunior := bandAverage(input.Grades, domain.SeniorityJunior)
	intermediateAvg, hasIntermediate := bandAverage(input.Grades, domain.SeniorityIntermediate)
	seniorAvg, hasSenior := bandAverage(input.Grades, domain.SenioritySenior)

	var sum float64
	var bands int
	if hasJunior {
		results["juniorGrade"] = juniorAvg
		sum += juniorAvg
		bands++
	}
	if hasIntermediate {
		results["intermediateGrade"] = intermediateAvg
		sum += intermediateAvg
		bands++
	}
	if hasSenior {
		results["seniorGrade"] = seniorAvg
		sum += seniorAvg
		bands++
	}
	// Notas cuyo seniority no pertenece a ninguna banda no promedian; sin
	// bandas no hay promedio final posible.
	if bands == 0 {
		return domain.Interview{}, ErrNoGrades
	}
	results["finalGrade"] = round2(sum / float64(bands))

	if input.FinalComments != "" {
		results["finalComments"] = input.FinalComments
	}
	if input.PassInterview != nil {
		results["passInterview"] = *input.PassInterview
	}

	interview := domain.Interview{
		CandidateID: input.CandidateID,
		Results:     results,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.interviews.Upsert(ctx, interview); err != nil {
		return domain.Interview{}, err
	}

	if input.PassInterview != nil {
		if err := s.updateCandidateStatus(ctx, input.CandidateID, *input.PassInterview); err != nil {
			return domain.Interview{}, err
		}
	}

	return interview, nil
}

func (s *InterviewService) ListResults(ctx context.Context) ([]domain.Interview, error) {
	return s.interviews.List(ctx)
}

// Questions devuelve el banco estatico de preguntas de entrevista.
func (s *InterviewService) Questions() []domain.Question {
	return questionBank
}

func (s *InterviewService) updateCandidateStatus(ctx context.Context, candidateID string, passed bool) error {
	candidate, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCandidateNotFound
		}
		return err
	}
	if passed {
		candidate.Status = domain.CandidateStatusApproved
	} else {
		candidate.Status = domain.CandidateStatusRejected
	}
	candidate.UpdatedAt = time.Now().UTC()
	return s.candidates.Update(ctx, candidate)
}

// bandAverage promedia las notas de una banda; el segundo valor indica si la
// banda tuvo preguntas calificadas.
func bandAverage(grades []QuestionGrade, seniority string) (float64, bool) {
	var sum float64
	var count int
	for _, g := range grades {
		if g.Seniority == seniority {
			sum += g.Grade
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return round2(sum / float64(count)), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
