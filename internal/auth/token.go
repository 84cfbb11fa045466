// Package auth mints and inspects the opaque session token stored alongside
// the active identity snapshot. The token is an HS256 JWT carrying the
// identity id. There is no server to verify it against: it exists so the
// session key holds something structurally token-shaped, matching the data
// layout this client inherited.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the registered claims plus the identity id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken mints a signed session token for the given identity id,
// issued at the provided instant.
func GenerateToken(userID string, secretKey []byte, issuedAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
		UserID: userID,
	})

	return token.SignedString(secretKey)
}

// UserIDFromToken parses a session token and returns the identity id it was
// minted for.
func UserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
