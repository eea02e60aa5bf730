package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
)

// CandidateRepository define el contrato de persistencia para candidatos.
type CandidateRepository interface {
	Create(ctx context.Context, candidate domain.Candidate) error
	GetByID(ctx context.Context, id string) (domain.Candidate, error)
	List(ctx context.Context) ([]domain.Candidate, error)
	ListByTechnicalLead(ctx context.Context, technicalLeadID string) ([]domain.Candidate, error)
	Update(ctx context.Context, candidate domain.Candidate) error
}

// PgCandidateRepository implementa CandidateRepository usando pgxpool.
type PgCandidateRepository struct {
	pool *pgxpool.Pool
}

func NewPgCandidateRepository(pool *pgxpool.Pool) *PgCandidateRepository {
	return &PgCandidateRepository{pool: pool}
}

const candidateColumns = `
	id, first_name, last_name, position, COALESCE(linkedin_url, ''), COALESCE(feedback, ''),
	status, recruiter_name, technical_lead_name, COALESCE(technical_lead_id::text, ''),
	submitted_at, updated_at
`

func scanCandidate(row pgx.Row) (domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Position,
		&c.LinkedinURL,
		&c.Feedback,
		&c.Status,
		&c.RecruiterName,
		&c.TechnicalLeadName,
		&c.TechnicalLeadID,
		&c.SubmittedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *PgCandidateRepository) Create(ctx context.Context, candidate domain.Candidate) error {
	const query = `
		INSERT INTO candidates (
			id, first_name, last_name, position, linkedin_url, feedback,
			status, recruiter_name, technical_lead_name, technical_lead_id,
			submitted_at, updated_at
		)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, NULLIF($10, '')::uuid, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		candidate.ID,
		candidate.FirstName,
		candidate.LastName,
		candidate.Position,
		candidate.LinkedinURL,
		candidate.Feedback,
		candidate.Status,
		candidate.RecruiterName,
		candidate.TechnicalLeadName,
		candidate.TechnicalLeadID,
		candidate.SubmittedAt,
		candidate.UpdatedAt,
	)
	return err
}

func (r *PgCandidateRepository) GetByID(ctx context.Context, id string) (domain.Candidate, error) {
	const query = `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	return scanCandidate(r.pool.QueryRow(ctx, query, id))
}

func (r *PgCandidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	const query = `SELECT ` + candidateColumns + ` FROM candidates ORDER BY submitted_at DESC`
	return r.queryCandidates(ctx, query)
}

func (r *PgCandidateRepository) ListByTechnicalLead(ctx context.Context, technicalLeadID string) ([]domain.Candidate, error) {
	const query = `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE technical_lead_id = $1
		ORDER BY submitted_at DESC
	`
	return r.queryCandidates(ctx, query, technicalLeadID)
}

func (r *PgCandidateRepository) Update(ctx context.Context, candidate domain.Candidate) error {
	const query = `
		UPDATE candidates
		SET status = $2,
			technical_lead_name = $3,
			technical_lead_id = NULLIF($4, '')::uuid,
			feedback = NULLIF($5, ''),
			updated_at = $6
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		candidate.ID,
		candidate.Status,
		candidate.TechnicalLeadName,
		candidate.TechnicalLeadID,
		candidate.Feedback,
		candidate.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgCandidateRepository) queryCandidates(ctx context.Context, query string, args ...any) ([]domain.Candidate, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
