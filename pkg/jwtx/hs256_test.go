package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "appinvite-test"

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("0123456789abcdef0123456789abcdef")
	signer := NewSigner(secret)
	verifier := NewVerifier(secret, testIssuer)

	claims := NewSessionClaims(
		"user-1", "alice@example.com", "Alice",
		[]string{"invite:read"},
		testIssuer, time.Hour, time.Now(),
	)

	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, []string{"invite:read"}, got.Scopes)
	require.NotEmpty(t, got.ID, "jti should be populated")
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewSigner([]byte("secret-a-secret-a-secret-a-secre"))
	verifier := NewVerifier([]byte("secret-b-secret-b-secret-b-secre"), testIssuer)

	raw, err := signer.Sign(NewSessionClaims(
		"user-1", "", "", nil, testIssuer, time.Hour, time.Now(),
	))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	secret := []byte("0123456789abcdef0123456789abcdef")
	signer := NewSigner(secret)
	verifier := NewVerifier(secret, testIssuer)

	raw, err := signer.Sign(NewSessionClaims(
		"user-1", "", "", nil, testIssuer, time.Hour, time.Now().Add(-2*time.Hour),
	))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	secret := []byte("0123456789abcdef0123456789abcdef")
	signer := NewSigner(secret)
	verifier := NewVerifier(secret, testIssuer)

	raw, err := signer.Sign(NewSessionClaims(
		"user-1", "", "", nil, "someone-else", time.Hour, time.Now(),
	))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}
