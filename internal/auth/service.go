package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	CreateUser(ctx context.Context, u *User) error
}

type Service struct {
	repo   Repository
	tokens *TokenIssuer
}

func NewService(repo Repository, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !u.Active || !CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: expires, User: u}, nil
}

type CreateUserParams struct {
	Email    string
	Name     string
	Password string
	Role     Role
}

func (s *Service) CreateUser(ctx context.Context, params CreateUserParams) (*User, error) {
	if !params.Role.Valid() {
		return nil, fmt.Errorf("invalid role %q", params.Role)
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        strings.ToLower(strings.TrimSpace(params.Email)),
		Name:         params.Name,
		PasswordHash: hash,
		Role:         params.Role,
		Active:       true,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate resolves a bearer token to an actor, rejecting deactivated users.
func (s *Service) Authenticate(ctx context.Context, token string) (Actor, error) {
	actor, err := s.tokens.Parse(token)
	if err != nil {
		return Actor{}, err
	}

	u, err := s.repo.GetUser(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Actor{}, ErrInvalidToken
		}

		return Actor{}, fmt.Errorf("looking up user: %w", err)
	}

	if !u.Active {
		return Actor{}, ErrInvalidToken
	}

	// Role comes from the stored user, not the token.
	return Actor{UserID: u.ID, Role: u.Role}, nil
}
