// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package auth implements admin panel login.

Login exchanges e-mail and password for a signed RS256 access token. Every
failure mode (unknown e-mail, wrong password, banned account) answers with
the same generic message so the endpoint leaks nothing about which
accounts exist.
*/
package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/demirhancelik/corporate-api/internal/platform/apperr"
	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/internal/platform/sec"
	"github.com/demirhancelik/corporate-api/internal/platform/validate"
	"github.com/demirhancelik/corporate-api/internal/users"
)

const invalidCredentials = "Invalid email or password"

// TokenIssuer signs access tokens for authenticated accounts.
type TokenIssuer interface {
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}

// Service implements the login use case.
type Service struct {
	repo   users.Repository
	tokens TokenIssuer
	logger *slog.Logger
}

// NewService constructs an auth Service.
func NewService(repo users.Repository, tokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, logger: logger}
}

// LoginInput is the credential payload of the login endpoint.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the successful login response.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	User        *users.User `json:"user"`
}

/*
Login authenticates an admin account and issues an access token.

Description: Verifies the password against the stored bcrypt hash and
rejects banned accounts. The token carries the account id, e-mail, and
role so the middleware never needs a database lookup.

Returns:
  - *LoginResult: The signed token with its lifetime and the account profile
  - error: A generic unauthorized error on any credential failure
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	validator := &validate.Validator{}
	if err := validator.
		Required("email", input.Email).
		Email("email", input.Email).
		Required("password", input.Password).
		Err(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := service.repo.GetUserByEmail(ctx, email)
	if err != nil {
		// Burn a hash comparison anyway so unknown and known e-mails
		// take comparable time.
		sec.CheckPasswordHash(input.Password, "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0a0q0pZROvUkO3pQKj1u1uT2C0W")
		return nil, apperr.Unauthorized(invalidCredentials)
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.logger.Warn("login_failed", slog.String("user_id", user.ID))
		return nil, apperr.Unauthorized(invalidCredentials)
	}

	if user.IsBanned {
		service.logger.Warn("login_banned_account", slog.String("user_id", user.ID))
		return nil, apperr.Unauthorized(invalidCredentials)
	}

	token, err := service.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("login_succeeded", slog.String("user_id", user.ID))
	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(constants.AccessTokenTTL.Seconds()),
		User:        user,
	}, nil
}
