package helpers

import (
	"testing"
	"time"

	"cardops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func testUser() *models.User {
	return &models.User{
		Model:    gorm.Model{ID: 42},
		Username: "jdoe",
		Role:     models.RoleManager,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := SignToken(testSecret, testUser(), "sid-1", time.Hour)
	require.NoError(t, err)

	claims, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, models.RoleManager, claims.Role)
	assert.Equal(t, "sid-1", claims.SID)
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	_, err := VerifyToken(testSecret, "")
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := VerifyToken(testSecret, "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := SignToken(testSecret, testUser(), "sid-1", time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	token, err := SignToken(testSecret, testUser(), "sid-1", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
