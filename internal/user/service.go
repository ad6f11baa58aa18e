package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
	"github.com/sebuszqo/BudgetTracker/internal/log"
	"github.com/sebuszqo/BudgetTracker/internal/validator"
)

const bcryptCost = 12

var (
	ErrUserNotFound    = financeErrors.ErrUserNotFound
	ErrUsernameTaken   = financeErrors.NewConflictError("username already exists")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInternalError   = errors.New("internal Server Error")
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	HashToken    string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,notblank,min=3,max=150"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type Service interface {
	Register(ctx context.Context, request RegisterRequest) (*User, error)
	// EnsureUser returns the existing user or registers it; created reports which happened.
	EnsureUser(ctx context.Context, username, password string) (user *User, created bool, err error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	LookupUsername(ctx context.Context, userID string) (string, error)
	CheckPassword(user *User, password string) error
	RotateHashToken(ctx context.Context, userID string) (string, error)
}

type service struct {
	repo   Repository
	logger *log.Logger
}

func NewUserService(repo Repository, logger *log.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.WithComponent(log.ComponentUser),
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func generateHashToken() (string, error) {
	token := make([]byte, 32)
	_, err := rand.Read(token)
	if err != nil {
		return "", fmt.Errorf("could not generate hash token: %v", err)
	}
	return hex.EncodeToString(token), nil
}

func (s *service) Register(ctx context.Context, request RegisterRequest) (*User, error) {
	request.Username = strings.TrimSpace(request.Username)
	if err := validator.Struct(request); err != nil {
		return nil, err
	}

	_, err := s.repo.getUserByUsername(ctx, request.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		s.logger.ErrorContext(ctx, "could not check username", log.FieldError, err)
		return nil, ErrInternalError
	}

	passwordHash, err := hashPassword(request.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "could not hash password", log.FieldError, err)
		return nil, ErrInternalError
	}

	hashToken, err := generateHashToken()
	if err != nil {
		s.logger.ErrorContext(ctx, "could not generate hash token", log.FieldError, err)
		return nil, ErrInternalError
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     request.Username,
		PasswordHash: passwordHash,
		HashToken:    hashToken,
	}
	if err := s.repo.createUser(ctx, user); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "could not create user", log.FieldError, err)
		return nil, ErrInternalError
	}

	s.logger.InfoContext(ctx, "user registered", log.FieldUserID, user.ID, "username", user.Username)
	return user, nil
}

func (s *service) EnsureUser(ctx context.Context, username, password string) (*User, bool, error) {
	existing, err := s.repo.getUserByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, false, err
	}

	user, err := s.Register(ctx, RegisterRequest{Username: username, Password: password, ConfirmPassword: password})
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *service) GetUserByID(ctx context.Context, userID string) (*User, error) {
	return s.repo.getUserByID(ctx, userID)
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.getUserByUsername(ctx, strings.TrimSpace(username))
}

func (s *service) LookupUsername(ctx context.Context, userID string) (string, error) {
	user, err := s.repo.getUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

func (s *service) CheckPassword(user *User, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}

// RotateHashToken replaces the key refresh tokens are bound to, invalidating all of them.
func (s *service) RotateHashToken(ctx context.Context, userID string) (string, error) {
	hashToken, err := generateHashToken()
	if err != nil {
		return "", err
	}
	if err := s.repo.updateHashToken(ctx, userID, hashToken); err != nil {
		return "", err
	}
	return hashToken, nil
}
