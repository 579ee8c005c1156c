package dto

import (
	"time"

	md "github.com/we2pos/backend/internal/models"
)

type SignUpRequest struct {
	Email        string `json:"email"         validate:"required,email"`
	HashPassword string `json:"hash_password" validate:"required"`
	Firstname    string `json:"firstname"     validate:"required"`
	Lastname     string `json:"lastname"      validate:"required"`
	Nickname     string `json:"nickname"      validate:"omitempty"`
	Birthday     string `json:"birthday"      validate:"omitempty,datetime=2006-01-02"`
}

type LoginRequest struct {
	Email        string `json:"email"         validate:"required,email"`
	HashPassword string `json:"hash_password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// SafeUser is the user projection returned to callers. Credential and
// token material never appears here.
type SafeUser struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	Firstname     string     `json:"firstname"`
	Lastname      string     `json:"lastname"`
	Nickname      *string    `json:"nickname"`
	ProfileImg    *string    `json:"profileImg"`
	Birthday      *string    `json:"birthday"`
	VerifyEmailAt *time.Time `json:"verifyEmailAt"`
	TokenVersion  int64      `json:"tokenVersion"`
	IsActive      string     `json:"isActive"`
	CreatedBy     *int64     `json:"createdBy"`
	UpdatedBy     *int64     `json:"updatedBy"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func NewSafeUser(u *md.User) *SafeUser {
	res := &SafeUser{
		ID:           u.ID,
		Email:        u.Email,
		Firstname:    u.Firstname,
		Lastname:     u.Lastname,
		TokenVersion: u.TokenVersion,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}

	if u.Nickname.Valid {
		res.Nickname = &u.Nickname.String
	}
	if u.ProfileImg.Valid {
		res.ProfileImg = &u.ProfileImg.String
	}
	if u.Birthday.Valid {
		birthday := u.Birthday.Time.Format("2006-01-02")
		res.Birthday = &birthday
	}
	if u.VerifyEmailAt.Valid {
		res.VerifyEmailAt = &u.VerifyEmailAt.Time
	}
	if u.CreatedBy.Valid {
		res.CreatedBy = &u.CreatedBy.Int64
	}
	if u.UpdatedBy.Valid {
		res.UpdatedBy = &u.UpdatedBy.Int64
	}

	return res
}
