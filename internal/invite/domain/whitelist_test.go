package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDomainWhitelist(t *testing.T) {
	t.Parallel()

	t.Run("splits and normalises entries", func(t *testing.T) {
		w := ParseDomainWhitelist(" A.com, @b.com ,a.com,,")
		require.Equal(t, DomainWhitelist{"a.com", "b.com"}, w)
	})

	t.Run("empty input means unrestricted", func(t *testing.T) {
		require.True(t, ParseDomainWhitelist("").Empty())
		require.True(t, ParseDomainWhitelist("  ,  ,").Empty())
	})

	t.Run("round trips through storage form", func(t *testing.T) {
		w := ParseDomainWhitelist("a.com,b.com")
		require.Equal(t, "a.com,b.com", w.String())
		require.Equal(t, w, ParseDomainWhitelist(w.String()))
	})
}

func TestDomainWhitelistAllows(t *testing.T) {
	t.Parallel()

	w := ParseDomainWhitelist("a.com,b.com")

	require.True(t, w.Allows("x@a.com"))
	require.True(t, w.Allows("x@B.COM"))
	require.True(t, w.Allows("x@mail.a.com"), "subdomains match a parent entry")
	require.False(t, w.Allows("x@c.com"))
	require.False(t, w.Allows("x@nota.com"), "suffix match must respect label boundaries")
	require.False(t, w.Allows("no-at-sign"))
	require.False(t, w.Allows(""))

	require.True(t, DomainWhitelist(nil).Allows("anyone@anywhere.org"))
}

func TestEmailDomain(t *testing.T) {
	t.Parallel()

	require.Equal(t, "example.com", EmailDomain("user@example.com"))
	require.Equal(t, "example.com", EmailDomain(`"weird@local"@Example.com`))
	require.Empty(t, EmailDomain("user@"))
	require.Empty(t, EmailDomain("no-at-sign"))
}
