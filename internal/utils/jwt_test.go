package utils

import (
	"testing"
	"time"

	"paygate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(&models.UserClaims{UserID: 7, Email: "shop@x.com", Role: "checkout"}, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "checkout", claims.Role)
	assert.ElementsMatch(t, []string{models.PermissionPaymentWrite, models.PermissionTransactionRead}, claims.Permissions)
}

func TestParseToken(t *testing.T) {
	token, err := GenerateToken(&models.UserClaims{UserID: 7, Role: "support"}, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateToken(&models.UserClaims{UserID: 7, Role: "support"}, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	assert.Error(t, err)

	_, err = ParseToken("not-a-token", "secret")
	assert.Error(t, err)

	_, err = GenerateToken(&models.UserClaims{}, "", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}
