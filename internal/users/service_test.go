// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package users_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
	"github.com/demirhancelik/corporate-api/internal/platform/sec"
	"github.com/demirhancelik/corporate-api/internal/users"
)

// fakeRepository is an in-memory account store.
type fakeRepository struct {
	accounts map[string]*users.User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{accounts: map[string]*users.User{}}
}

func (repo *fakeRepository) ListUsers(_ context.Context) ([]*users.User, error) {
	result := make([]*users.User, 0, len(repo.accounts))
	for _, account := range repo.accounts {
		result = append(result, account)
	}
	return result, nil
}

func (repo *fakeRepository) GetUserByID(_ context.Context, id string) (*users.User, error) {
	account, ok := repo.accounts[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (repo *fakeRepository) GetUserByEmail(_ context.Context, email string) (*users.User, error) {
	for _, account := range repo.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepository) Create(_ context.Context, account *users.User) error {
	repo.accounts[account.ID] = account
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, account *users.User) error {
	if _, ok := repo.accounts[account.ID]; !ok {
		return dberr.ErrNotFound
	}
	repo.accounts[account.ID] = account
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := repo.accounts[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.accounts, id)
	return nil
}

func newService(repo users.Repository) *users.Service {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return users.NewService(repo, logger)
}

func validCreate() users.CreateInput {
	return users.CreateInput{
		Email:       "Yeni.Editor@DemirhanCelik.com",
		Password:    "uzun ve güvenli parola",
		DisplayName: "Yeni Editör",
		Role:        string(sec.RoleEditor),
	}
}

/*
TestCreateUser verifies account creation: the e-mail is normalized, the
password is stored only as a hash, and the account is confirmed.
*/
func TestCreateUser(t *testing.T) {
	service := newService(newFakeRepository())

	account, err := service.CreateUser(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, "yeni.editor@demirhancelik.com", account.Email)
	assert.NotEmpty(t, account.PasswordHash)
	assert.NotContains(t, account.PasswordHash, "uzun ve güvenli")
	assert.True(t, sec.CheckPasswordHash("uzun ve güvenli parola", account.PasswordHash))
	require.NotNil(t, account.ConfirmedAt)
}

/*
TestCreateUser_Validation verifies the payload rules, the password length
floor included.
*/
func TestCreateUser_Validation(t *testing.T) {
	service := newService(newFakeRepository())

	testCases := []struct {
		name   string
		mutate func(*users.CreateInput)
	}{
		{"invalid email", func(input *users.CreateInput) { input.Email = "not-an-email" }},
		{"short password", func(input *users.CreateInput) { input.Password = "kisa" }},
		{"unknown role", func(input *users.CreateInput) { input.Role = "superuser" }},
		{"missing display name", func(input *users.CreateInput) { input.DisplayName = "" }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			input := validCreate()
			testCase.mutate(&input)

			_, err := service.CreateUser(context.Background(), input)
			assert.Error(t, err)
		})
	}
}

/*
TestUpdateUser_SelfProtection verifies that an admin cannot ban themselves
or change their own role.
*/
func TestUpdateUser_SelfProtection(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	input := validCreate()
	input.Role = string(sec.RoleAdmin)
	account, err := service.CreateUser(context.Background(), input)
	require.NoError(t, err)

	update := users.UpdateInput{
		Email:       account.Email,
		DisplayName: account.DisplayName,
		Role:        string(sec.RoleAdmin),
		IsBanned:    true,
	}
	_, err = service.UpdateUser(context.Background(), account.ID, account.ID, update)
	assert.Error(t, err)

	update.IsBanned = false
	update.Role = string(sec.RoleEditor)
	_, err = service.UpdateUser(context.Background(), account.ID, account.ID, update)
	assert.Error(t, err)

	// A different admin may do both.
	update.IsBanned = true
	updated, err := service.UpdateUser(context.Background(), "another-admin-id", account.ID, update)
	require.NoError(t, err)
	assert.True(t, updated.IsBanned)
	assert.Equal(t, sec.RoleEditor, updated.Role)
}

/*
TestUpdateUser_KeepsPasswordWhenBlank verifies that an empty password in
the edit form leaves the stored hash untouched.
*/
func TestUpdateUser_KeepsPasswordWhenBlank(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	account, err := service.CreateUser(context.Background(), validCreate())
	require.NoError(t, err)
	originalHash := account.PasswordHash

	updated, err := service.UpdateUser(context.Background(), "another-admin-id", account.ID, users.UpdateInput{
		Email:       account.Email,
		DisplayName: "Yeni İsim",
		Role:        string(sec.RoleEditor),
	})
	require.NoError(t, err)
	assert.Equal(t, originalHash, updated.PasswordHash)

	replaced, err := service.UpdateUser(context.Background(), "another-admin-id", account.ID, users.UpdateInput{
		Email:       account.Email,
		DisplayName: "Yeni İsim",
		Role:        string(sec.RoleEditor),
		Password:    "tamamen yeni parola",
	})
	require.NoError(t, err)
	assert.NotEqual(t, originalHash, replaced.PasswordHash)
}

/*
TestDeleteUser_SelfProtection verifies that an admin cannot delete their
own account.
*/
func TestDeleteUser_SelfProtection(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	account, err := service.CreateUser(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Error(t, service.DeleteUser(context.Background(), account.ID, account.ID))
	assert.NoError(t, service.DeleteUser(context.Background(), "another-admin-id", account.ID))
}
