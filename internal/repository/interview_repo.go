package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
)

// InterviewRepository define el contrato de persistencia para entrevistas.
type InterviewRepository interface {
	GetByCandidateID(ctx context.Context, candidateID string) (domain.Interview, error)
	Upsert(ctx context.Context, interview domain.Interview) error
	List(ctx context.Context) ([]domain.Interview, error)
}

// PgInterviewRepository implementa InterviewRepository usando pgxpool.
type PgInterviewRepository struct {
	pool *pgxpool.Pool
}

func NewPgInterviewRepository(pool *pgxpool.Pool) *PgInterviewRepository {
	return &PgInterviewRepository{pool: pool}
}

func (r *PgInterviewRepository) GetByCandidateID(ctx context.Context, candidateID string) (domain.Interview, error) {
	const query = `
		SELECT candidate_id, results, updated_at
		FROM interviews
		WHERE candidate_id = $1
	`
	var iv domain.Interview
	var raw []byte
	err := r.pool.QueryRow(ctx, query, candidateID).Scan(&iv.CandidateID, &raw, &iv.UpdatedAt)
	if err != nil {
		return domain.Interview{}, err
	}
	if err := json.Unmarshal(raw, &iv.Results); err != nil {
		return domain.Interview{}, err
	}
	return iv, nil
}

func (r *PgInterviewRepository) Upsert(ctx context.Context, interview domain.Interview) error {
	const query = `
		INSERT INTO interviews (candidate_id, results, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (candidate_id)
		DO UPDATE SET
			results = EXCLUDED.results,
			updated_at = EXCLUDED.updated_at
	`
	raw, err := json.Marshal(interview.Results)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query, interview.CandidateID, raw, interview.UpdatedAt)
	return err
}

func (r *PgInterviewRepository) List(ctx context.Context) ([]domain.Interview, error) {
	const query = `
		SELECT candidate_id, results, updated_at
		FROM interviews
		ORDER BY updated_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		var iv domain.Interview
		var raw []byte
		if err := rows.Scan(&iv.CandidateID, &raw, &iv.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &iv.Results); err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}
