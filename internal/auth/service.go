package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sebuszqo/BudgetTracker/internal/log"
	"github.com/sebuszqo/BudgetTracker/internal/user"
)

var (
	ErrUserNotFound       = user.ErrUserNotFound
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	Login(ctx context.Context, username, password string) (*user.User, string, string, error)
	Logout(ctx context.Context, userID, accessToken string) error
	RefreshAccessToken(ctx context.Context, userID string) (string, string, error)
	JWTRefreshTokenMiddleware() func(http.Handler) http.Handler
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
	revoked     *RevocationList
	logger      *log.Logger
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface, revoked *RevocationList, logger *log.Logger) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
		revoked:     revoked,
		logger:      logger.WithComponent(log.ComponentAuth),
	}
}

func (s *service) Login(ctx context.Context, username, password string) (*user.User, string, string, error) {
	existingUser, err := s.userService.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		s.logger.ErrorContext(ctx, "could not load user", log.FieldError, err)
		return nil, "", "", ErrInternalError
	}

	if err := s.userService.CheckPassword(existingUser, password); err != nil {
		s.logger.InfoContext(ctx, "login rejected", "username", strings.TrimSpace(username))
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokens(existingUser)
	if err != nil {
		s.logger.ErrorContext(ctx, "could not issue tokens", log.FieldError, err, log.FieldUserID, existingUser.ID)
		return nil, "", "", ErrInternalError
	}

	s.logger.InfoContext(ctx, "user logged in", log.FieldUserID, existingUser.ID)
	return existingUser, accessToken, refreshToken, nil
}

// Logout revokes the presented access token and rotates the user's hash token,
// which invalidates every refresh token issued so far.
func (s *service) Logout(ctx context.Context, userID, accessToken string) error {
	claims, err := s.jwtManager.ParseAccessToken(accessToken)
	if err != nil {
		return err
	}
	if claims.UserID != userID {
		return ErrInvalidJWTToken
	}
	s.revoked.Revoke(claims.Id, time.Unix(claims.ExpiresAt, 0))

	if _, err := s.userService.RotateHashToken(ctx, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.ErrorContext(ctx, "could not rotate hash token", log.FieldError, err, log.FieldUserID, userID)
		return ErrInternalError
	}

	s.logger.InfoContext(ctx, "user logged out", log.FieldUserID, userID)
	return nil
}

// RefreshAccessToken requests are already checked in refresh token middleware
func (s *service) RefreshAccessToken(ctx context.Context, userID string) (string, string, error) {
	existingUser, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", "", ErrUserNotFound
		}
		return "", "", ErrInternalError
	}

	accessToken, refreshToken, err := s.issueTokens(existingUser)
	if err != nil {
		return "", "", ErrInternalError
	}
	return accessToken, refreshToken, nil
}

func (s *service) issueTokens(u *user.User) (string, string, error) {
	accessToken, err := s.jwtManager.GenerateAccessJWT(u.ID)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshJWT(u.ID, u.HashToken)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
