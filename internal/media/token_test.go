package media

import (
	"testing"
	"time"

	"github.com/immxrtalbeast/roomgate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()
	issuer, err := NewIssuer(config.MediaConfig{
		AppID:          "app",
		AppCertificate: "certificate",
		TokenTTL:       time.Hour,
		STUNServers:    []string{"stun:stun.example.org:3478"},
	})
	require.NoError(t, err)
	return issuer
}

func TestIssueAndVerify(t *testing.T) {
	issuer := newTestIssuer(t)

	cred, err := issuer.Issue("standup", 42)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), cred.UID)
	assert.NotEmpty(t, cred.Token)
	require.Len(t, cred.ICEServers, 1)
	assert.Equal(t, []string{"stun:stun.example.org:3478"}, cred.ICEServers[0].URLs)

	claims, err := issuer.Verify(cred.Token, "standup")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), claims.UID)
	assert.Equal(t, RolePublisher, claims.Role)

	_, err = issuer.Verify(cred.Token, "other-room")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestVerifyRejectsExpiredCredential(t *testing.T) {
	issuer := newTestIssuer(t)
	issued := time.Now().Add(-2 * time.Hour)
	issuer.now = func() time.Time { return issued }

	cred, err := issuer.Issue("standup", 7)
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Verify(cred.Token, "standup")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestNewIssuerRequiresSecrets(t *testing.T) {
	_, err := NewIssuer(config.MediaConfig{AppID: "app"})
	assert.Error(t, err)
}

func TestNewUIDIsPositive(t *testing.T) {
	issuer := newTestIssuer(t)
	for range 100 {
		uid := issuer.NewUID()
		assert.NotZero(t, uid)
		assert.LessOrEqual(t, uid, uint32(1<<31-1))
	}
}
