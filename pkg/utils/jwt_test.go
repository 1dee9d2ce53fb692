package utils_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitcore/pkg/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", time.Hour)
	accountID := uuid.New()

	token, err := manager.CreateToken(accountID, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, identity.AccountID)
	assert.Equal(t, "a@x.com", identity.Email)
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", -time.Minute)

	token, err := manager.CreateToken(uuid.New(), "a@x.com")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestForgedTokenRejected(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", time.Hour)
	forger := utils.NewJWTManager("other-secret", time.Hour)

	token, err := forger.CreateToken(uuid.New(), "a@x.com")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", time.Hour)

	_, err := manager.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}
