package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/casetrack/case-management-api/internal/apperrors"
	"github.com/casetrack/case-management-api/internal/dto"
	"github.com/casetrack/case-management-api/internal/repository"
	"github.com/casetrack/case-management-api/internal/token"
)

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login compares the supplied password against the stored bcrypt hash and
// issues a token carrying the user's role. Unknown username and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrBadCredentials
	}

	signed, err := s.tokens.Issue(user.ID, []string{user.Role})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
	}, nil
}
