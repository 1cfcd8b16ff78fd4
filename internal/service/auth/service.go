// Package auth implements user registration and login with bcrypt password
// hashing and JWT access tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kagehisa/animemo-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
}

// Service implements authentication business logic.
type Service struct {
	users      userRepo
	tokens     tokenIssuer
	log        *slog.Logger
	bcryptCost int
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, users userRepo, tokens tokenIssuer, bcryptCost int) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		log:        log.With("service", "auth"),
		bcryptCost: bcryptCost,
	}
}

// TokenResult bundles an issued access token with its user.
type TokenResult struct {
	User  domain.User
	Token string
}

// Register creates a user account and issues an access token.
// A taken username results in domain.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, input RegisterInput) (TokenResult, error) {
	if err := input.Validate(); err != nil {
		return TokenResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return TokenResult{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return TokenResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return TokenResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", "user_id", user.ID)

	return TokenResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues an access token.
// An unknown username and a wrong password are both domain.ErrUnauthorized,
// so login probing cannot distinguish them.
func (s *Service) Login(ctx context.Context, input LoginInput) (TokenResult, error) {
	if err := input.Validate(); err != nil {
		return TokenResult{}, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return TokenResult{}, domain.ErrUnauthorized
		}
		return TokenResult{}, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return TokenResult{}, domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return TokenResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", "user_id", user.ID)

	return TokenResult{User: user, Token: token}, nil
}
