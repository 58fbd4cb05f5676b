package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reads the exp claim without verifying the signature. The
// token is otherwise opaque to this client; verification happens on the
// backend. Tokens that fail to parse or carry no exp are treated as live,
// so expiry still gets discovered reactively on the first failing call.
func TokenExpired(tokenString string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
