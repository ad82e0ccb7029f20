package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/safeplace/safeplace-server/internal/domain"
	"github.com/safeplace/safeplace-server/internal/ports"
)

func authLogger() *slog.Logger {
	return slog.Default().With(
		"service", serviceName,
		"module", "auth",
		"layer", "application",
	)
}

// Register creates a new account and issues a session token in one
// call, matching the signup-then-signed-in flow of the client. The
// duplicate-email check is a lookup first for a clean conflict error,
// backed by the store's unique index for the concurrent case.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return AuthResponse{}, err
	}
	if req.Password == "" {
		return AuthResponse{}, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	switch _, err := s.accounts.GetByEmail(ctx, email); {
	case err == nil:
		return AuthResponse{}, domain.ErrConflict
	case !errors.Is(err, domain.ErrNotFound):
		return AuthResponse{}, fmt.Errorf("lookup email: %w", err)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	account, err := s.accounts.Create(ctx, email, passwordHash)
	if err != nil {
		return AuthResponse{}, err
	}

	token, err := s.issueToken(account)
	if err != nil {
		return AuthResponse{}, err
	}

	authLogger().InfoContext(ctx, "account registered",
		"operation", "register",
		"outcome", "success",
		"user_id", account.UserID,
	)
	return AuthResponse{ID: account.UserID, Email: account.Email, Token: token}, nil
}

// Login verifies credentials and issues a fresh token. Unknown email
// and digest mismatch both return domain.ErrInvalidCredentials so the
// response carries no enumeration signal.
func (s *Service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return AuthResponse{}, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return AuthResponse{}, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(account.PasswordHash, req.Password); err != nil {
		authLogger().WarnContext(ctx, "login rejected",
			"operation", "login",
			"outcome", "failure",
			"user_id", account.UserID,
		)
		return AuthResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(account)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{ID: account.UserID, Email: account.Email, Token: token}, nil
}

// issueToken embeds the account identity into a signed claim with the
// fixed configured lifetime.
func (s *Service) issueToken(account domain.Account) (string, error) {
	now := s.nowFn()
	token, err := s.signer.Sign(ports.AuthClaims{
		UserID:    account.UserID,
		Email:     account.Email,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ValidateToken is the gate used by the HTTP auth middleware. Any
// parse or signature failure surfaces as ErrUnauthorized; expiry keeps
// its own sentinel.
func (s *Service) ValidateToken(_ context.Context, raw string) (ports.AuthClaims, error) {
	claims, err := s.signer.ParseAndValidate(raw)
	if err != nil {
		return ports.AuthClaims{}, err
	}
	return claims, nil
}
