package user

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись владельца задач. Email и пароль опциональны:
// анонимный пользователь не имеет ни того, ни другого.
type User struct {
	UUID         uuid.UUID  `json:"uuid" db:"uuid"`
	Email        *string    `json:"email" db:"email"`
	PasswordHash *string    `json:"-" db:"password_hash"`
	IsAnonymous  bool       `json:"is_anonymous" db:"is_anonymous"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at,omitempty"`
}
