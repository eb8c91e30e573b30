package user

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)

	assert.NotEqual(t, "password", hash)
	assert.True(t, CheckPasswordHash("password", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWT(t *testing.T) {
	u := User{ID: "42", Email: "a@b.c", Role: RoleUser}

	t.Run("Round trip", func(t *testing.T) {
		token, err := GenerateJWT(u, "secret", time.Hour)
		require.NoError(t, err)

		claims, err := ParseJWT(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "42", claims.UserID)
		assert.Equal(t, "a@b.c", claims.Email)
		assert.Equal(t, "42", claims.Subject)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := GenerateJWT(u, "secret", time.Hour)
		require.NoError(t, err)

		_, err = ParseJWT(token, "other")
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		claims := CustomClaims{
			UserID: "42",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = ParseJWT(token, "secret")
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Missing secret", func(t *testing.T) {
		_, err := GenerateJWT(u, "", time.Hour)
		assert.ErrorIs(t, err, ErrMissingSecret)

		_, err = ParseJWT("x.y.z", "")
		assert.ErrorIs(t, err, ErrMissingSecret)
	})
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t,
		"https://ui-avatars.com/api/?name=Jane%20Doe&background=5232C3&color=fff",
		AvatarURL("Jane Doe"),
	)
}
