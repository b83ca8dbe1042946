package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string // lower-cased, trimmed
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
