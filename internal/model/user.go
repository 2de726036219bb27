package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims - claims access токена, ID (jti) содержит числовой id пользователя
type UserClaims struct {
	jwt.RegisteredClaims
}
