// Package auth issues and validates the JSON Web Tokens that identify
// dashboard operators, and provides the middleware protecting management routes.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// secretKey signs operator tokens. It should be kept secure.
var secretKey = []byte("famandadminsecret")

// TOKENEXP defines the token expiration duration.
const TOKENEXP = time.Hour * 8

// Claims carries the operator's admin ID alongside the standard JWT claims.
type Claims struct {
	AdminID int32
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for the given admin ID,
// expiring after TOKENEXP.
func GenerateToken(adminID int32) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TOKENEXP)),
		},
		AdminID: adminID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ParseToken validates a token string and returns its claims,
// or an error when the token is expired or the signature is invalid.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
