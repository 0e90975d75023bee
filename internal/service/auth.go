package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/repository"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already taken")
	ErrWeakPassword       = errors.New("password does not meet strength requirements")
)

// WeakPasswordError reports a registration password scored below the policy minimum.
type WeakPasswordError struct {
	Result   strength.Result
	MinScore int
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("%s: scored %d/%d, need %d", ErrWeakPassword, e.Result.Score, e.Result.MaxScore, e.MinScore)
}

func (e *WeakPasswordError) Unwrap() error {
	return ErrWeakPassword
}

// Analysis returns the masked evaluation behind the rejection.
func (e *WeakPasswordError) Analysis() model.CheckResponse {
	return toCheckResponse(e.Result)
}

// AuthService handles account registration and login.
type AuthService struct {
	repo     *repository.UserRepository
	hasher   *crypto.Hasher
	tokens   *crypto.TokenIssuer
	minScore int
}

// NewAuthService creates a new AuthService. Passwords scoring below minScore are refused at registration.
func NewAuthService(repo *repository.UserRepository, hasher *crypto.Hasher, tokens *crypto.TokenIssuer, minScore int) *AuthService {
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		minScore: minScore,
	}
}

// Register creates a new account and returns an auth token.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	res := strength.Evaluate(req.Password)
	if !res.Meets(s.minScore) {
		slog.Info("registration refused: weak password", "score", res.Score, "min_score", s.minScore)
		return model.AuthResponse{}, &WeakPasswordError{Result: res, MinScore: s.minScore}
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:            req.Email,
		AuthHash:         hash,
		PasswordStrength: res.Label.String(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	return s.authResponse(user)
}

// Login authenticates an account and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := s.hasher.Verify(req.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// GetUser retrieves an account by ID.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *AuthService) authResponse(user *model.User) (model.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		PasswordStrength: user.PasswordStrength,
		CreatedAt:        user.CreatedAt,
	}
}
