package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	t.Run("HashPassword_VerifiesAndSalts", func(t *testing.T) {
		h1, err := HashPassword("secret")
		require.NoError(t, err)
		h2, err := HashPassword("secret")
		require.NoError(t, err)

		require.True(t, IsArgon2Hash(h1))
		require.NotEqual(t, h1, h2)

		ok, err := VerifyPassword("secret", h1)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = VerifyPassword("Secret", h1)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("VerifyPassword_RejectsMalformedHash", func(t *testing.T) {
		_, err := VerifyPassword("x", "$bcrypt$abc")
		require.ErrorIs(t, err, ErrInvalidHash)
	})

	t.Run("CheckPassword_HandlesBothFormats", func(t *testing.T) {
		h, err := HashPassword("pw")
		require.NoError(t, err)

		require.True(t, CheckPassword("pw", h))
		require.False(t, CheckPassword("nope", h))
		require.True(t, CheckPassword("plain", "plain"))
		require.False(t, CheckPassword("plain", "plain "))
		require.True(t, CheckPassword("", ""))
	})
}

func TestJWT(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("GenerateJWT_CarriesRole", func(t *testing.T) {
		token, err := GenerateJWT(secret, "Admin")
		require.NoError(t, err)

		claims, err := ParseJWT(secret, token)
		require.NoError(t, err)
		require.Equal(t, "Admin", claims.Subject)
		require.Equal(t, RoleAdmin, claims.Role)
		require.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)

		token, err = GenerateJWT(secret, "bob")
		require.NoError(t, err)
		claims, err = ParseJWT(secret, token)
		require.NoError(t, err)
		require.Equal(t, RoleCustomer, claims.Role)
	})

	t.Run("GenerateJWT_RequiresSecret", func(t *testing.T) {
		_, err := GenerateJWT(nil, "bob")
		require.Error(t, err)
	})

	t.Run("ParseJWT_RejectsWrongSecret", func(t *testing.T) {
		token, err := GenerateJWT(secret, "bob")
		require.NoError(t, err)
		_, err = ParseJWT([]byte("other"), token)
		require.Error(t, err)
	})

	t.Run("ParseJWT_RejectsExpired", func(t *testing.T) {
		claims := Claims{
			Role: RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "admin",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		require.NoError(t, err)

		_, err = ParseJWT(secret, token)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("ParseJWT_RejectsNoneAlgorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: RoleAdmin}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(token, "."))

		_, err = ParseJWT(secret, token)
		require.Error(t, err)
	})
}
