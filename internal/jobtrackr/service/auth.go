package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/domain"
	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/store"
	"github.com/aussiebroadwan/jobtrackr/pkg/cryptox"
	"github.com/aussiebroadwan/jobtrackr/pkg/idx"
	"github.com/aussiebroadwan/jobtrackr/pkg/slogx"
)

type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User  domain.User
	Token string
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and signs a token for it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return AuthResult{}, validationError("Please fill all fields")
	}
	if len(password) > cryptox.MaxPasswordLength {
		return AuthResult{}, validationError(fmt.Sprintf("Password must be at most %d bytes", cryptox.MaxPasswordLength))
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return AuthResult{}, ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return AuthResult{}, storeError("Server error", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return AuthResult{}, storeError("Server error", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// A concurrent registration can pass the lookup above and lose here.
		if errors.Is(err, store.ErrAlreadyExists) {
			return AuthResult{}, wrap(ErrEmailTaken, err)
		}
		return AuthResult{}, storeError("Server error", err)
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return AuthResult{}, storeError("Server error", err)
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", user.ID))
	return AuthResult{User: user, Token: token}, nil
}

// Login checks credentials and signs a token on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, validationError("Please fill all fields")
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, ErrUserNotFound
		}
		return AuthResult{}, storeError("Server error", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			slogx.FromContext(ctx).Warn("stored password hash unusable",
				slog.String("user_id", user.ID), slog.Any("error", err))
		}
		return AuthResult{}, wrap(ErrInvalidCredentials, err)
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return AuthResult{}, storeError("Server error", err)
	}
	return AuthResult{User: user, Token: token}, nil
}

// GetProfile returns the user without its password hash.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, storeError("Server error", err)
	}
	user.PasswordHash = ""
	return user, nil
}
