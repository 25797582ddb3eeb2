package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"salon/internal/domains/admin/model"
	"salon/shared"
	gModel "salon/shared/model"
)

type RegistrationStatusResponse struct {
	RegistrationOpen bool   `json:"registrationOpen"`
	Message          string `json:"message"`
}

type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a *AdminResponse) FromModel(m model.Admin) {
	a.ID = m.ID
	a.Email = m.Email
	a.Name = m.Name
}

type RegisterRequest struct {
	Email          string `json:"email"          validate:"omitempty,max=254"`
	Password       string `json:"password"       validate:"omitempty,max=72"`
	Name           string `json:"name"           validate:"omitempty,max=120"`
	SecretPasscode string `json:"secretPasscode"`
}

// Normalize trims every field and lower-cases the email.
func (r *RegisterRequest) Normalize() {
	r.Email = shared.NormalizeEmail(r.Email)
	r.Password = strings.TrimSpace(r.Password)
	r.Name = strings.TrimSpace(r.Name)
	r.SecretPasscode = strings.TrimSpace(r.SecretPasscode)
}

func (r *RegisterRequest) ToModel(passwordHash string, now time.Time) model.Admin {
	return model.Admin{
		ID:           uuid.NewString(),
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: passwordHash,
		Metadata:     gModel.NewMetadata(now),
	}
}

type RegisterResponse struct {
	Message string        `json:"message"`
	Admin   AdminResponse `json:"admin"`
}

type LoginRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	OneTimeCode    string `json:"oneTimeCode"`
	SecretPasscode string `json:"secretPasscode"`
}

func (r *LoginRequest) Normalize() {
	r.Email = shared.NormalizeEmail(r.Email)
	r.Password = strings.TrimSpace(r.Password)
	r.OneTimeCode = strings.TrimSpace(r.OneTimeCode)
	r.SecretPasscode = strings.TrimSpace(r.SecretPasscode)
}

type LoginResponse struct {
	Message   string        `json:"message"`
	Admin     AdminResponse `json:"admin"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

type AccessCodeRequest struct {
	Email          string `json:"email"`
	SecretPasscode string `json:"secretPasscode"`
}

func (r *AccessCodeRequest) Normalize() {
	r.Email = shared.NormalizeEmail(r.Email)
	r.SecretPasscode = strings.TrimSpace(r.SecretPasscode)
}

func (r *AccessCodeRequest) ToModel(code string, now time.Time, ttl time.Duration) model.AccessCode {
	return model.AccessCode{
		ID:        uuid.NewString(),
		Email:     r.Email,
		Code:      code,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

type AccessCodeResponse struct {
	Message          string `json:"message"`
	AccessCode       string `json:"accessCode"`
	ExpiresInMinutes int    `json:"expiresInMinutes"`
}

type VerifyRequest struct {
	Token string `json:"token"`
}

type VerifyResponse struct {
	Valid bool          `json:"valid"`
	Admin AdminResponse `json:"admin"`
}
