package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer("test-secret", 30*time.Minute)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	ti := testIssuer()

	token, err := ti.IssueSessionToken("64f1c0ffee0ddba11ad0beef")
	require.NoError(t, err)

	claims, err := ti.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0ddba11ad0beef", claims.UserID)
}

func TestSessionTokenRejectsGarbage(t *testing.T) {
	ti := testIssuer()

	_, err := ti.ParseSessionToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	token, err := testIssuer().IssueSessionToken("64f1c0ffee0ddba11ad0beef")
	require.NoError(t, err)

	other := NewTokenIssuer("different-secret", 30*time.Minute)
	_, err = other.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestActionTokenRoundTrip(t *testing.T) {
	ti := testIssuer()

	token, err := ti.IssueActionToken(ActionVerify, "64f1c0ffee0ddba11ad0beef", "user@example.com", "ar")
	require.NoError(t, err)

	claims, err := ti.ParseActionToken(token, ActionVerify)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0ddba11ad0beef", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "ar", claims.Lang)
}

func TestActionTokenWrongKindRejected(t *testing.T) {
	ti := testIssuer()

	verify, err := ti.IssueActionToken(ActionVerify, "64f1c0ffee0ddba11ad0beef", "user@example.com", "en")
	require.NoError(t, err)
	reset, err := ti.IssueActionToken(ActionPasswordReset, "64f1c0ffee0ddba11ad0beef", "user@example.com", "en")
	require.NoError(t, err)

	_, err = ti.ParseActionToken(verify, ActionPasswordReset)
	assert.ErrorIs(t, err, ErrWrongTokenAction)
	_, err = ti.ParseActionToken(reset, ActionVerify)
	assert.ErrorIs(t, err, ErrWrongTokenAction)
}

func TestActionTokenUnknownAction(t *testing.T) {
	ti := testIssuer()

	_, err := ti.IssueActionToken("promote", "64f1c0ffee0ddba11ad0beef", "user@example.com", "en")
	assert.Error(t, err)
}

func TestSessionTokenCannotActAsActionToken(t *testing.T) {
	ti := testIssuer()

	token, err := ti.IssueSessionToken("64f1c0ffee0ddba11ad0beef")
	require.NoError(t, err)

	// a session token has no action tag, so consuming it as one fails
	_, err = ti.ParseActionToken(token, ActionVerify)
	assert.Error(t, err)
}
