// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package users owns the admin accounts of the content panel.

Accounts are internal staff only, there is no public registration. An
account carries a role that the authorization middleware checks on every
admin route: editors manage content, admins additionally manage accounts.
*/
package users

import (
	"time"

	"github.com/demirhancelik/corporate-api/internal/platform/sec"
)

// User is one admin panel account.
//
// The password hash never leaves the service layer; the JSON shape of this
// struct is what admin endpoints return.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	IsBanned     bool         `json:"is_banned"`
	ConfirmedAt  *time.Time   `json:"confirmed_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
