package model

import (
	"time"

	"salon/shared/model"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID    = "id"
	FieldEmail = "email"
)

const (
	AccessCodeTableName  = "admin_access_codes"
	AccessCodeEntityName = "admin_access_code"

	FieldAccessCodeID        = "id"
	FieldAccessCodeEmail     = "email"
	FieldAccessCodeCode      = "code"
	FieldAccessCodeUsed      = "used"
	FieldAccessCodeUsedAt    = "used_at"
	FieldAccessCodeExpiresAt = "expires_at"
)

// RegistrationLockKey serializes first-admin registration so two concurrent
// requests cannot both see an empty admins table.
const RegistrationLockKey = EntityName + ":registration"

// Admin is a dashboard operator. Email is stored normalized.
type Admin struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	model.Metadata
}

// AccessCode is a one-time login code issued to an existing admin.
type AccessCode struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Code      string     `db:"code"`
	Used      bool       `db:"used"`
	UsedAt    *time.Time `db:"used_at"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// Redeemable reports whether the code can still be exchanged for a token.
func (c AccessCode) Redeemable(now time.Time) bool {
	return c.ID != "" && !c.Used && c.ExpiresAt.After(now)
}

// AccessCodeLockKey serializes redemption of the codes belonging to one admin.
func AccessCodeLockKey(email string) string {
	return AccessCodeEntityName + ":" + email
}
