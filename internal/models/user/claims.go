package user

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims — полезная нагрузка токена доступа. Subject хранит uuid пользователя.
type Claims struct {
	Email       *string `json:"email"`
	IsAnonymous bool    `json:"isAnonymous"`
	jwt.RegisteredClaims
}
