package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	jwtSvc := NewJwt("test-secret")
	userID := uuid.New()

	pair, err := jwtSvc.GenerateTokenPair(&TokenPairParams{
		ID:    userID,
		Email: "admin@test.com",
		Role:  "admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := jwtSvc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.ID)
	assert.Equal(t, "admin@test.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	refreshClaims, err := jwtSvc.ValidateToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.ID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	pair, err := NewJwt("secret-a").GenerateTokenPair(&TokenPairParams{
		ID:    uuid.New(),
		Email: "admin@test.com",
		Role:  "admin",
	})
	require.NoError(t, err)

	_, err = NewJwt("secret-b").ValidateToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	jwtSvc := NewJwt("test-secret")

	tokenString, _, err := jwtSvc.createToken(&CreateTokenParams{
		ID:       uuid.New(),
		Email:    "admin@test.com",
		Role:     "admin",
		Duration: -time.Minute,
	})
	require.NoError(t, err)

	_, err = jwtSvc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewJwt("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
