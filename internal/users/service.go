// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package users

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/demirhancelik/corporate-api/internal/platform/apperr"
	"github.com/demirhancelik/corporate-api/internal/platform/sec"
	"github.com/demirhancelik/corporate-api/internal/platform/validate"
	"github.com/demirhancelik/corporate-api/pkg/pointer"
	"github.com/demirhancelik/corporate-api/pkg/uuidv7"
)

// Service implements admin account management.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a users Service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateInput is the payload for a new account.
type CreateInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// UpdateInput is the payload for editing an account. An empty Password
// keeps the current one.
type UpdateInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsBanned    bool   `json:"is_banned"`
}

// ListUsers returns every account.
func (service *Service) ListUsers(ctx context.Context) ([]*User, error) {
	return service.repo.ListUsers(ctx)
}

// GetUser returns one account.
func (service *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return service.repo.GetUserByID(ctx, id)
}

/*
CreateUser registers a new admin panel account.

Description: Validates the payload, hashes the password with bcrypt, and
marks the account confirmed immediately. Accounts are created by an admin
for known staff, so there is no e-mail confirmation round trip.

Returns:
  - *User: The created account, password hash excluded from its JSON shape
  - error: Validation failures, duplicate e-mail conflicts, storage errors
*/
func (service *Service) CreateUser(ctx context.Context, input CreateInput) (*User, error) {
	if err := service.validateCreate(input); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		ID:           uuidv7.New(),
		Email:        normalizeEmail(input.Email),
		PasswordHash: hash,
		DisplayName:  input.DisplayName,
		Role:         sec.UserRole(input.Role),
		ConfirmedAt:  pointer.To(time.Now()),
	}
	if err := service.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_created",
		slog.String("user_id", user.ID), slog.String("role", input.Role))
	return user, nil
}

// UpdateUser replaces an account's profile, role, and ban state. The acting
// admin cannot ban or demote their own account.
func (service *Service) UpdateUser(ctx context.Context, actorID, id string, input UpdateInput) (*User, error) {
	if err := service.validateUpdate(input); err != nil {
		return nil, err
	}

	user, err := service.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actorID == id && (input.IsBanned || sec.UserRole(input.Role) != user.Role) {
		return nil, apperr.Forbidden("You cannot change your own role or ban yourself")
	}

	user.Email = normalizeEmail(input.Email)
	user.DisplayName = input.DisplayName
	user.Role = sec.UserRole(input.Role)
	user.IsBanned = input.IsBanned

	if input.Password != "" {
		hash, err := sec.HashPassword(input.Password)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		user.PasswordHash = hash
	}

	if err := service.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes an account. The acting admin cannot delete themselves.
func (service *Service) DeleteUser(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return apperr.Forbidden("You cannot delete your own account")
	}
	return service.repo.Delete(ctx, id)
}

func (service *Service) validateCreate(input CreateInput) error {
	validator := &validate.Validator{}
	return validator.
		Required("email", input.Email).
		Email("email", input.Email).
		Required("password", input.Password).
		MinLen("password", input.Password, 12).
		Required("display_name", input.DisplayName).
		OneOf("role", input.Role, string(sec.RoleAdmin), string(sec.RoleEditor)).
		Err()
}

func (service *Service) validateUpdate(input UpdateInput) error {
	validator := &validate.Validator{}
	validator.
		Required("email", input.Email).
		Email("email", input.Email).
		Required("display_name", input.DisplayName).
		OneOf("role", input.Role, string(sec.RoleAdmin), string(sec.RoleEditor))

	if input.Password != "" {
		validator.MinLen("password", input.Password, 12)
	}

	return validator.Err()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
