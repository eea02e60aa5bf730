package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
)

// UserRepository define el contrato de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id string) (domain.User, error)
	UpdateResetToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error
	FindByActiveResetToken(ctx context.Context, now time.Time) ([]domain.User, error)
	ResetPassword(ctx context.Context, id, newHash string, changedAt time.Time) error
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

const userColumns = `
	id, email, password_hash, user_name, user_type, user_status,
	COALESCE(department, ''), COALESCE(user_role, ''), COALESCE(avatar_url, ''), COALESCE(phone_number, ''),
	COALESCE(reset_token_hash, ''), reset_token_expires_at,
	last_login_at, failed_login_attempts, last_password_change_at, created_at, updated_at
`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.UserName,
		&u.UserType,
		&u.UserStatus,
		&u.Department,
		&u.UserRole,
		&u.AvatarURL,
		&u.PhoneNumber,
		&u.ResetTokenHash,
		&u.ResetTokenExpiresAt,
		&u.LastLoginAt,
		&u.FailedLoginAttempts,
		&u.LastPasswordChangeAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *PgUserRepository) Create(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (
			id, email, password_hash, user_name, user_type, user_status,
			department, user_role, avatar_url, phone_number,
			failed_login_attempts, last_password_change_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13, $14)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.UserName,
		user.UserType,
		user.UserStatus,
		user.Department,
		user.UserRole,
		user.AvatarURL,
		user.PhoneNumber,
		user.FailedLoginAttempts,
		user.LastPasswordChangeAt,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return err
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail busca por igualdad exacta; la sensibilidad a mayusculas es la
// del almacenamiento.
func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *PgUserRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgUserRepository) Update(ctx context.Context, user domain.User) error {
	const query = `
		UPDATE users
		SET email = $2,
			password_hash = $3,
			user_name = $4,
			user_type = $5,
			user_status = $6,
			department = NULLIF($7, ''),
			user_role = NULLIF($8, ''),
			avatar_url = NULLIF($9, ''),
			phone_number = NULLIF($10, ''),
			last_password_change_at = $11,
			updated_at = $12
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.UserName,
		user.UserType,
		user.UserStatus,
		user.Department,
		user.UserRole,
		user.AvatarURL,
		user.PhoneNumber,
		user.LastPasswordChangeAt,
		user.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgUserRepository) Delete(ctx context.Context, id string) (domain.User, error) {
	const query = `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

// UpdateResetToken reemplaza el token pendiente; un token previo queda
// superseded por sobrescritura.
func (r *PgUserRepository) UpdateResetToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	const query = `
		UPDATE users
		SET reset_token_hash = $2,
			reset_token_expires_at = $3,
			updated_at = $4
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, tokenHash, expiresAt, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// FindByActiveResetToken devuelve los registros cuyo token de reset no ha
// expirado. No hay indice sobre el hash del token: el llamador debe comparar
// el token presentado contra cada candidato, O(tokens pendientes activos).
func (r *PgUserRepository) FindByActiveResetToken(ctx context.Context, now time.Time) ([]domain.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE reset_token_hash IS NOT NULL AND reset_token_expires_at > $1
	`
	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ResetPassword actualiza la clave y limpia los campos de reset en una sola
// sentencia: un token consumido no debe quedar redimible.
func (r *PgUserRepository) ResetPassword(ctx context.Context, id, newHash string, changedAt time.Time) error {
	const query = `
		UPDATE users
		SET password_hash = $2,
			last_password_change_at = $3,
			reset_token_hash = NULL,
			reset_token_expires_at = NULL,
			updated_at = $3
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, newHash, changedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
