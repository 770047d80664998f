package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/internal/model"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	account := model.Account{
		ID:       uuid.New(),
		Name:     "Riley Chen",
		Email:    "riley@newspaper.com",
		Role:     model.RoleReporter,
		JoinedAt: time.Now().UTC(),
	}

	tokenID, token, err := svc.GenerateSessionToken(account)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, claims.ID)
	assert.Equal(t, account.ID.String(), claims.AccountID)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, model.RoleReporter, claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a")
	verifier := NewJWTService("secret-b")

	_, token, err := issuer.GenerateSessionToken(model.Account{ID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret")
	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
