package user

import (
	"time"

	"github.com/google/uuid"
)

type RegisterDTO struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type GoogleLoginDTO struct {
	Code string `json:"code"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateProfileDTO struct {
	Name          *string `json:"nome"`
	Age           *int    `json:"idade"`
	Profession    *string `json:"profissao"`
	MaritalStatus *string `json:"estado_civil"`
}

type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"nome"`
	Email         string    `json:"email"`
	Age           *int      `json:"idade,omitempty"`
	Profession    *string   `json:"profissao,omitempty"`
	MaritalStatus *string   `json:"estado_civil,omitempty"`
	CreatedAt     time.Time `json:"data_criacao"`
}

type LoginResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"usuario"`
}
