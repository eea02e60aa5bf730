package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
	"github.com/jcpachecoh/cbtw-recruitment/internal/email"
	"github.com/jcpachecoh/cbtw-recruitment/internal/repository"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
	ErrRateLimited           = errors.New("rate limited")
	ErrInvalidEmail          = errors.New("invalid email")
)

// resetTokenTTL es fijo: un token emitido expira a las 24 horas.
const resetTokenTTL = 24 * time.Hour

// AuthService coordina login y el ciclo de vida de tokens de reset.
type AuthService struct {
	logger       *zap.Logger
	users        repository.UserRepository
	emailSender  email.Sender
	resetLimiter ResetRateLimiter
	baseURL      string
}

func NewAuthService(logger *zap.Logger, users repository.UserRepository, emailSender email.Sender, resetLimiter ResetRateLimiter, baseURL string) *AuthService {
	if resetLimiter == nil {
		resetLimiter = NewResetRateLimiter(10*time.Minute, 3)
	}
	return &AuthService{
		logger:       logger,
		users:        users,
		emailSender:  emailSender,
		resetLimiter: resetLimiter,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

// Login autentica por email y clave. Email sin coincidencia y clave
// incorrecta devuelven el mismo error: el llamador no debe poder distinguir
// cual mitad de la credencial fallo.
func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (domain.User, error) {
	emailAddr = strings.TrimSpace(emailAddr)
	if emailAddr == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if user.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	// last_login_at queda sin tocar en el login.
	return user, nil
}

// RequestPasswordReset emite un token nuevo cuando el email existe. Un token
// pendiente anterior queda superseded por sobrescritura. Cuando el email no
// coincide con ninguna cuenta no hay error: la respuesta debe ser identica
// para evitar enumeracion de cuentas.
func (s *AuthService) RequestPasswordReset(ctx context.Context, emailAddr string) (string, error) {
	emailAddr = strings.TrimSpace(emailAddr)
	if emailAddr == "" {
		return "", ErrInvalidEmail
	}

	if s.resetLimiter != nil && !s.resetLimiter.Allow(emailAddr) {
		return "", ErrRateLimited
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}

	token, tokenHash, expiresAt, err := issueResetToken()
	if err != nil {
		return "", err
	}

	if err := s.users.UpdateResetToken(ctx, user.ID, tokenHash, expiresAt); err != nil {
		return "", err
	}

	resetLink := s.baseURL + "/reset-password?token=" + token

	if s.emailSender != nil {
		if err := s.emailSender.SendPasswordReset(ctx, emailAddr, resetLink, expiresAt); err != nil {
			if s.logger != nil {
				s.logger.Warn("send password reset email failed", zap.Error(err), zap.String("email", emailAddr))
			}
		}
	}

	return resetLink, nil
}

// CompletePasswordReset canjea un token pendiente. Los candidatos se filtran
// por expiracion y el token presentado se compara contra cada hash; no hay
// indice sobre el hash del token. La actualizacion de clave y la limpieza de
// los campos de reset son una sola escritura: el token consumido no queda
// redimible.
func (s *AuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" || newPassword == "" {
		return ErrInvalidOrExpiredToken
	}

	now := time.Now().UTC()
	candidates, err := s.users.FindByActiveResetToken(ctx, now)
	if err != nil {
		return err
	}

	var matched *domain.User
	for i := range candidates {
		if candidates[i].ResetTokenHash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(candidates[i].ResetTokenHash), []byte(token)) == nil {
			matched = &candidates[i]
			break
		}
	}
	if matched == nil {
		return ErrInvalidOrExpiredToken
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.ResetPassword(ctx, matched.ID, string(newHash), now)
}

// issueResetToken genera un token opaco de 256 bits. El texto plano solo se
// devuelve para la transmision unica; en el registro queda el hash bcrypt.
func issueResetToken() (string, string, time.Time, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", time.Time{}, err
	}
	token := hex.EncodeToString(raw)

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", "", time.Time{}, err
	}

	expiresAt := time.Now().UTC().Add(resetTokenTTL)
	return token, string(hashBytes), expiresAt, nil
}
