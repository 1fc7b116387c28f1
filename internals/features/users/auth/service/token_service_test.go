package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "bookstore_backend/internals/features/users/auth/model"
)

func TestBuildAccessClaims(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	user := authModel.UserModel{
		UserID:   uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7"),
		UserName: "budi",
		UserRole: "customer",
	}

	claims := buildAccessClaims(user, now)
	assert.Equal(t, user.UserID.String(), claims["sub"])
	assert.Equal(t, "budi", claims["user_name"])
	assert.Equal(t, "customer", claims["role"])
	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, now.Add(accessTTLDefault).Unix(), claims["exp"])
}

func TestBuildRefreshClaims(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	id := uuid.New()

	claims := buildRefreshClaims(id, now)
	assert.Equal(t, id.String(), claims["sub"])
	assert.Equal(t, "refresh", claims["typ"])
	assert.Equal(t, now.Add(refreshTTLDefault).Unix(), claims["exp"])
}

func TestComputeRefreshHash(t *testing.T) {
	h1 := computeRefreshHash("token-a", "secret")
	h2 := computeRefreshHash("token-a", "secret")
	h3 := computeRefreshHash("token-a", "other-secret")
	h4 := computeRefreshHash("token-b", "secret")

	assert.Equal(t, h1, h2, "hash harus deterministik")
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, h1, h4)
	assert.Len(t, h1, 64) // sha256 hex
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("rahasia-123")
	require.NoError(t, err)
	assert.NoError(t, CheckPasswordHash(hashed, "rahasia-123"))
	assert.Error(t, CheckPasswordHash(hashed, "salah"))
}
