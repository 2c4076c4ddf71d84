// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirhancelik/corporate-api/internal/auth"
	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
	"github.com/demirhancelik/corporate-api/internal/platform/sec"
	"github.com/demirhancelik/corporate-api/internal/users"
)

// fakeRepository serves a single stored account by e-mail.
type fakeRepository struct {
	user *users.User
}

func (repo *fakeRepository) ListUsers(_ context.Context) ([]*users.User, error) { return nil, nil }

func (repo *fakeRepository) GetUserByID(_ context.Context, _ string) (*users.User, error) {
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepository) GetUserByEmail(_ context.Context, email string) (*users.User, error) {
	if repo.user != nil && repo.user.Email == email {
		return repo.user, nil
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepository) Create(_ context.Context, _ *users.User) error { return nil }
func (repo *fakeRepository) Update(_ context.Context, _ *users.User) error { return nil }
func (repo *fakeRepository) Delete(_ context.Context, _ string) error      { return nil }

// fakeIssuer returns a fixed token and records the claims it signed.
type fakeIssuer struct {
	signedUserID string
	signedRole   string
}

func (issuer *fakeIssuer) GenerateAccessToken(userID, _, role string, _ time.Duration) (string, error) {
	issuer.signedUserID = userID
	issuer.signedRole = role
	return "signed-token", nil
}

func storedUser(t *testing.T, password string) *users.User {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)
	return &users.User{
		ID:           "0195fb1e-0000-7000-8000-000000000001",
		Email:        "editor@demirhancelik.com",
		PasswordHash: hash,
		Role:         sec.RoleEditor,
	}
}

func newService(repo users.Repository, issuer auth.TokenIssuer) *auth.Service {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return auth.NewService(repo, issuer, logger)
}

/*
TestLogin_Success verifies the happy path: correct credentials yield a
bearer token carrying the account's role.
*/
func TestLogin_Success(t *testing.T) {
	user := storedUser(t, "correct horse battery staple")
	issuer := &fakeIssuer{}
	service := newService(&fakeRepository{user: user}, issuer)

	result, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "Editor@DemirhanCelik.com",
		Password: "correct horse battery staple",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.AccessToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, user.ID, issuer.signedUserID)
	assert.Equal(t, string(sec.RoleEditor), issuer.signedRole)
	assert.Positive(t, result.ExpiresIn)
}

/*
TestLogin_Failures verifies that every credential failure answers with the
same generic error.
*/
func TestLogin_Failures(t *testing.T) {
	user := storedUser(t, "correct horse battery staple")

	testCases := []struct {
		name     string
		mutate   func(*users.User)
		email    string
		password string
	}{
		{"unknown email", nil, "nobody@demirhancelik.com", "whatever"},
		{"wrong password", nil, user.Email, "wrong password"},
		{"banned account", func(u *users.User) { u.IsBanned = true }, user.Email, "correct horse battery staple"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			account := storedUser(t, "correct horse battery staple")
			if testCase.mutate != nil {
				testCase.mutate(account)
			}
			service := newService(&fakeRepository{user: account}, &fakeIssuer{})

			_, err := service.Login(context.Background(), auth.LoginInput{
				Email:    testCase.email,
				Password: testCase.password,
			})

			require.Error(t, err)
			assert.Equal(t, "Invalid email or password", err.Error())
		})
	}
}

/*
TestLogin_InputValidation verifies that malformed credentials are rejected
before any lookup.
*/
func TestLogin_InputValidation(t *testing.T) {
	service := newService(&fakeRepository{}, &fakeIssuer{})

	_, err := service.Login(context.Background(), auth.LoginInput{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)

	_, err = service.Login(context.Background(), auth.LoginInput{Email: "a@b.com", Password: ""})
	assert.Error(t, err)
}
