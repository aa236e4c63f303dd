//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delacream-park/internal/pkg/config"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/pkg/jwt"
	"delacream-park/internal/usecase"
)

func newAuthUseCase(t *testing.T) usecase.AuthUseCase {
	t.Helper()

	uc, err := usecase.NewAuthUseCase(
		config.AdminConfig{Username: "admin", Password: "hunter2"},
		jwt.NewService("test-secret", time.Hour),
	)
	require.NoError(t, err)
	return uc
}

func TestAuthLogin(t *testing.T) {
	uc := newAuthUseCase(t)

	t.Run("valid credentials return a token and the admin identity", func(t *testing.T) {
		token, admin, err := uc.Login("admin", "hunter2")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 1, admin.ID)
		assert.Equal(t, "admin", admin.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := uc.Login("admin", "wrong")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, _, err := uc.Login("root", "hunter2")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestAuthVerify(t *testing.T) {
	uc := newAuthUseCase(t)

	token, _, err := uc.Login("admin", "hunter2")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		admin, err := uc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, 1, admin.ID)
		assert.Equal(t, "admin", admin.Username)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := uc.Verify("not-a-jwt")
		assert.ErrorIs(t, err, errs.ErrTokenValidation)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		foreign, err := other.GenerateToken(1, "admin")
		require.NoError(t, err)

		_, err = uc.Verify(foreign)
		assert.ErrorIs(t, err, errs.ErrTokenValidation)
	})
}
