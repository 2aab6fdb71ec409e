package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitekgroup/hitek-site-backend/models"
)

var testSecret = []byte("test-secret-do-not-use-in-prod")

func testProfile() models.Profile {
	return models.Profile{
		ID:    uuid.New(),
		Email: "[email protected]",
		Name:  "Admin",
		Role:  "admin",
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	profile := testProfile()
	now := time.Now().UTC()

	token, err := issueSessionToken(testSecret, profile, 24*time.Hour, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, claims, err := parseSessionToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, userID)
	assert.Equal(t, profile.Email, claims.Email)
	assert.Equal(t, profile.Role, claims.Role)
	assert.Equal(t, "hitek-site-backend", claims.Issuer)
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	token, err := issueSessionToken(testSecret, testProfile(), time.Hour, time.Now())
	require.NoError(t, err)

	_, _, err = parseSessionToken([]byte("a-different-secret"), token)
	assert.Error(t, err)
}

func TestParseSessionTokenRejectsExpired(t *testing.T) {
	issuedAt := time.Now().Add(-48 * time.Hour)
	token, err := issueSessionToken(testSecret, testProfile(), time.Hour, issuedAt)
	require.NoError(t, err)

	_, _, err = parseSessionToken(testSecret, token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseSessionTokenRejectsUnsignedAlg(t *testing.T) {
	claims := sessionClaims{
		Email: "[email protected]",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = parseSessionToken(testSecret, unsigned)
	assert.Error(t, err)
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	_, _, err := parseSessionToken(testSecret, "not.a.token")
	assert.Error(t, err)
}
