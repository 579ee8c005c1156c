package models

import (
	"database/sql"
	"time"
)

type User struct {
	ID                     int64          `db:"id"                        json:"id"`
	Email                  string         `db:"email"                     json:"email"`
	HashPassword           string         `db:"hash_password"             json:"hashPassword"`
	Firstname              string         `db:"firstname"                 json:"firstname"`
	Lastname               string         `db:"lastname"                  json:"lastname"`
	Nickname               sql.NullString `db:"nickname"                  json:"nickname"`
	ProfileImg             sql.NullString `db:"profile_img"               json:"profileImg"`
	Birthday               sql.NullTime   `db:"birthday"                  json:"birthday"`
	RefreshToken           sql.NullString `db:"refresh_token"             json:"refreshToken"`
	PasswordResetToken     sql.NullString `db:"password_reset_token"      json:"passwordResetToken"`
	PasswordResetExpiresAt sql.NullTime   `db:"password_reset_expires_at" json:"passwordResetExpiresAt"`
	VerifyEmailAt          sql.NullTime   `db:"verify_email_at"           json:"verifyEmailAt"`
	// TokenVersion is reserved for invalidating previously issued
	// tokens. Nothing reads it yet.
	TokenVersion int64         `db:"token_version" json:"tokenVersion"`
	IsActive     string        `db:"isactive"      json:"isActive"`
	CreatedBy    sql.NullInt64 `db:"created_by"    json:"createdBy"`
	UpdatedBy    sql.NullInt64 `db:"updated_by"    json:"updatedBy"`
	CreatedAt    time.Time     `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time     `db:"updated_at"    json:"updatedAt"`
}
