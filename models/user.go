package models

import "time"

// User зарегистрированный пользователь; id в формате "user:<uuid>"
type User struct {
	ID             string    `json:"id" gorm:"type:varchar(120);primaryKey"`
	FirstName      string    `json:"first_name" gorm:"type:varchar(80)"`
	LastName       string    `json:"last_name" gorm:"type:varchar(80)"`
	Email          string    `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	HashedPassword string    `json:"-" gorm:"type:varchar(255)"`
	GoogleID       *string   `json:"-" gorm:"type:varchar(64);index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required,max=80"`
	LastName  string `json:"last_name" binding:"required,max=80"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse ответ с JWT
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MeResponse кто владелец токена
type MeResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}
