package entity

import (
	"time"

	"realty_analyzer/internal/domain/value"
)

type User struct {
	ID           int64
	Email        value.Email
	Name         string
	PasswordHash string `json:"-"`
	CreatedAt    time.Time
}
