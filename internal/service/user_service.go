package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
	"github.com/jcpachecoh/cbtw-recruitment/internal/repository"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already exists")
	ErrInvalidUserType = errors.New("invalid user type")
)

// UserService coordina la administracion de cuentas de usuario.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
}

func NewUserService(logger *zap.Logger, users repository.UserRepository) *UserService {
	return &UserService{
		logger: logger,
		users:  users,
	}
}

type CreateUserInput struct {
	Email       string
	Password    string
	UserName    string
	UserType    string
	UserStatus  string
	Department  string
	UserRole    string
	AvatarURL   string
	PhoneNumber string
}

func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (domain.User, error) {
	emailAddr := strings.TrimSpace(input.Email)
	if emailAddr == "" {
		return domain.User{}, ErrInvalidEmail
	}
	if !domain.ValidUserType(input.UserType) {
		return domain.User{}, ErrInvalidUserType
	}

	if _, err := s.users.GetByEmail(ctx, emailAddr); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	status := input.UserStatus
	if status == "" {
		status = domain.UserStatusActive
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:                   uuid.NewString(),
		Email:                emailAddr,
		PasswordHash:         string(hashBytes),
		UserName:             strings.TrimSpace(input.UserName),
		UserType:             input.UserType,
		UserStatus:           status,
		Department:           strings.TrimSpace(input.Department),
		UserRole:             strings.TrimSpace(input.UserRole),
		AvatarURL:            strings.TrimSpace(input.AvatarURL),
		PhoneNumber:          strings.TrimSpace(input.PhoneNumber),
		FailedLoginAttempts:  0,
		LastPasswordChangeAt: now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// UpdateUserInput aplica actualizacion parcial: solo los campos no nulos se
// escriben sobre el registro existente.
type UpdateUserInput struct {
	ID          string
	UserName    *string
	UserType    *string
	UserStatus  *string
	Department  *string
	UserRole    *string
	AvatarURL   *string
	PhoneNumber *string
	Password    *string
}

func (s *UserService) UpdateUser(ctx context.Context, input UpdateUserInput) (domain.User, error) {
	user, err := s.users.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	if input.UserName != nil {
		user.UserName = strings.TrimSpace(*input.UserName)
	}
	if input.UserType != nil {
		if !domain.ValidUserType(*input.UserType) {
			return domain.User{}, ErrInvalidUserType
		}
		user.UserType = *input.UserType
	}
	if input.UserStatus != nil {
		user.UserStatus = *input.UserStatus
	}
	if input.Department != nil {
		user.Department = strings.TrimSpace(*input.Department)
	}
	if input.UserRole != nil {
		user.UserRole = strings.TrimSpace(*input.UserRole)
	}
	if input.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*input.AvatarURL)
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = strings.TrimSpace(*input.PhoneNumber)
	}

	now := time.Now().UTC()
	if input.Password != nil && *input.Password != "" {
		hashBytes, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}
		user.PasswordHash = string(hashBytes)
		user.LastPasswordChangeAt = now
	}
	user.UpdatedAt = now

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.users.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
