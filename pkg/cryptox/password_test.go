package cryptox

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Point the pepper at a throwaway file so tests never touch a real one.
	dir, err := filepath.Abs("testdata")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))
	m.Run()
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$v=19$")

	require.NoError(t, VerifyPassword("hunter2!", hash))
	require.Error(t, VerifyPassword("hunter3!", hash))
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedHashes(t *testing.T) {
	for _, hash := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
	} {
		require.Error(t, VerifyPassword("whatever", hash), "hash %q", hash)
	}
}

func TestGeneratePassword(t *testing.T) {
	seen := map[string]struct{}{}
	for range 50 {
		pw, err := GeneratePassword()
		require.NoError(t, err)
		require.Len(t, pw, 12)
		seen[pw] = struct{}{}
	}
	require.Greater(t, len(seen), 1)
}
