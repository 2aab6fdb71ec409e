package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hitekgroup/hitek-site-backend/models"
)

// sessionClaims is the JWT payload carried by admin session tokens.
type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// issueSessionToken signs a session token for the given profile.
func issueSessionToken(secret []byte, profile models.Profile, ttl time.Duration, now time.Time) (string, error) {
	claims := sessionClaims{
		Email: profile.Email,
		Role:  profile.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "hitek-site-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// parseSessionToken validates a session token and returns the profile ID it
// was issued for.
func parseSessionToken(secret []byte, tokenString string) (uuid.UUID, *sessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, nil, err
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return uuid.Nil, nil, fmt.Errorf("invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("invalid subject in session token: %w", err)
	}

	return userID, claims, nil
}
