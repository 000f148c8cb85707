package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dev-mohitbeniwal/folio/api/auth"
	folio_errors "github.com/dev-mohitbeniwal/folio/api/errors"
)

func TestTokenService(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 24*time.Hour)

	t.Run("IssueAndVerify_RoundTrip", func(t *testing.T) {
		token, err := tokens.Issue("user-1", "admin")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		principal, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", principal.UserID)
		assert.Equal(t, "admin", principal.Role)
	})

	t.Run("Verify_Garbage", func(t *testing.T) {
		principal, err := tokens.Verify("not-a-token")
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, folio_errors.ErrInvalidToken)
	})

	t.Run("Verify_WrongSecret", func(t *testing.T) {
		other := auth.NewTokenService("other-secret", 24*time.Hour)
		token, err := other.Issue("user-1", "user")
		assert.NoError(t, err)

		principal, err := tokens.Verify(token)
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, folio_errors.ErrInvalidToken)
	})

	t.Run("Verify_Expired", func(t *testing.T) {
		expired := auth.NewTokenService("test-secret", -time.Minute)
		token, err := expired.Issue("user-1", "user")
		assert.NoError(t, err)

		principal, err := tokens.Verify(token)
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, folio_errors.ErrTokenExpired)
	})
}
