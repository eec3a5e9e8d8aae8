package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jala-youth/jala-web/internal/config"
)

func newTestAuth() *AuthService {
	return NewAuthService(&config.Config{SessionSecret: "test-secret", SessionTTL: time.Hour})
}

func TestIssueAndValidate(t *testing.T) {
	auth := newTestAuth()

	token, claims, err := auth.IssueSession()
	require.NoError(t, err)
	require.NotEmpty(t, claims.SessionID())

	got, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, claims.SessionID(), got.SessionID())
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, _, err := newTestAuth().IssueSession()
	require.NoError(t, err)

	other := NewAuthService(&config.Config{SessionSecret: "other", SessionTTL: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	auth := newTestAuth()
	token, _, err := auth.IssueSession()
	require.NoError(t, err)

	auth.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := newTestAuth().ValidateToken("not-a-token")
	assert.Error(t, err)
}
